// Package press defines the newsletter domain: subjects, sources, and
// classified articles.
package press

import "strings"

// Subject is one of the nine fixed editorial categories articles are
// bucketed under.
type Subject string

const (
	Economy           Subject = "Economy"
	EconomicReforms   Subject = "Economic Issues and Reforms"
	Agriculture       Subject = "Agriculture"
	Geopolitics       Subject = "Geopolitics"
	NationalSecurity  Subject = "National Security"
	ForeignPolicy     Subject = "Foreign Policy"
	ConstitutionalLaw Subject = "Constitutional Law and Judiciary"
	Gender            Subject = "Gender"
	SocialIssues      Subject = "Social Issues"
)

// Subjects lists every subject in classification and display order. The
// order is part of the classifier contract: when an article matches
// keywords from two subjects, the earlier one wins.
var Subjects = []Subject{
	Economy,
	EconomicReforms,
	Agriculture,
	Geopolitics,
	NationalSecurity,
	ForeignPolicy,
	ConstitutionalLaw,
	Gender,
	SocialIssues,
}

// Keywords maps each subject to its ordered, lowercase match list.
// Matching is plain substring search, so short tokens ("us", "sc", "fm")
// match aggressively on purpose.
var Keywords = map[Subject][]string{
	Economy: {
		"economy", "economic growth", "gdp", "inflation", "interest rate",
		"sbp", "state bank", "pkru", "stock market", "psx",
		"fiscal deficit", "current account", "trade deficit", "remittances",
	},
	EconomicReforms: {
		"imf", "reforms", "privatisation", "privatization", "tax reform",
		"fbr", "revenue", "subsidy", "circular debt", "energy tariff",
		"structural reform", "privatising", "austerity",
	},
	Agriculture: {
		"agriculture", "crop", "wheat", "cotton", "rice", "sugarcane",
		"fertiliser", "fertilizer", "farmer", "livestock", "waterlogging",
		"canal", "irrigation", "agri",
	},
	Geopolitics: {
		"geopolitics", "great power", "china", "india", "us", "russia",
		"middle east", "gulf", "saudi", "iran", "turkey", "taliban",
		"multipolar", "cold war", "bloc",
	},
	NationalSecurity: {
		"terror", "terrorism", "militant", "ctd", "security forces",
		"army", "military", "nacta", "internal security", "insurgency",
		"balochistan unrest", "taksim", "counterterrorism",
	},
	ForeignPolicy: {
		"foreign policy", "diplomacy", "bilateral", "summit",
		"oic", "unsc", "united nations", "strategic partnership",
		"border", "kashmir", "fm", "foreign office", "fo spokesperson",
	},
	ConstitutionalLaw: {
		"supreme court", "sc", "high court", "lhr hc", "shc", "ihc",
		"constitution", "constitutional", "article", "basic structure",
		"judiciary", "bench", "locus standi", "habeas corpus", "reference",
	},
	Gender: {
		"women", "gender", "harassment", "violence against women",
		"domestic violence", "honour killing", "honor killing",
		"girls’ education", "women’s rights", "gender parity",
		"sexual harassment",
	},
	SocialIssues: {
		"poverty", "inequality", "healthcare", "education", "literacy",
		"housing", "slums", "informal settlements", "malnutrition",
		"stunting", "public health", "epidemic", "social safety net",
		"bisp", "ehsaas", "youth", "labour", "labor rights",
	},
}

// Classify assigns a subject to an article from its title and normalized
// summary. Subjects are scanned in declared order, each keyword list in
// declared order, and the first substring hit wins. The second return is
// false when nothing matches.
func Classify(title, summary string) (Subject, bool) {
	blob := strings.ToLower(title + " " + summary)
	for _, subject := range Subjects {
		for _, kw := range Keywords[subject] {
			if strings.Contains(blob, kw) {
				return subject, true
			}
		}
	}
	return "", false
}
