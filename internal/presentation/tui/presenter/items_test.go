package presenter

import (
	"strings"
	"testing"
	"time"

	"github.com/tesso57/akhbar/internal/domain/press"
)

func presenterDigest() *press.Digest {
	digest := press.NewDigest(time.Date(2026, 5, 11, 7, 0, 0, 0, time.UTC))
	digest.Append(press.Economy, press.Article{
		Source: "Dawn", Title: "Inflation eases", Summary: "CPI slows.", Link: "https://example.com/cpi",
	})
	digest.Append(press.Economy, press.Article{
		Source: "The Express Tribune", Title: "PSX rallies", Link: "https://example.com/psx",
	})
	digest.Append(press.Gender, press.Article{
		Source: "Dawn", Title: "Harassment bill tabled", Link: "https://example.com/bill",
	})
	return digest
}

func TestBuildDigestItems(t *testing.T) {
	items := BuildDigestItems(presenterDigest(), nil)

	// Two active subjects -> 2 headers + 3 articles.
	if len(items) != 5 {
		t.Fatalf("Expected 5 rows, got %d", len(items))
	}

	header := items[0].(*Item)
	if !header.IsSectionHeader() {
		t.Error("Expected first row to be a header")
	}
	if header.TitleText != "1. Economy (2)" {
		t.Errorf("Expected numbered header with count, got %q", header.TitleText)
	}

	article := items[1].(*Item)
	if article.IsSectionHeader() {
		t.Error("Expected second row to be an article")
	}
	if article.TitleText != "Inflation eases" || article.Source != "Dawn" {
		t.Errorf("Unexpected article row: %+v", article)
	}
	if article.Description() != "Dawn" {
		t.Errorf("Description() = %q, want source", article.Description())
	}

	gender := items[3].(*Item)
	if !gender.IsSectionHeader() || gender.TitleText != "2. Gender (1)" {
		t.Errorf("Expected renumbered Gender header, got %+v", gender)
	}
}

func TestBuildDigestItemsSkipsDisabledSubjects(t *testing.T) {
	enabled := map[press.Subject]bool{}
	for _, subject := range press.Subjects {
		enabled[subject] = true
	}
	enabled[press.Economy] = false

	items := BuildDigestItems(presenterDigest(), enabled)

	if len(items) != 2 {
		t.Fatalf("Expected 2 rows with Economy hidden, got %d", len(items))
	}
	header := items[0].(*Item)
	if header.Subject != press.Gender || header.TitleText != "1. Gender (1)" {
		t.Errorf("Expected Gender renumbered to 1, got %q", header.TitleText)
	}
}

func TestBuildDigestItemsNilDigest(t *testing.T) {
	if items := BuildDigestItems(nil, nil); items != nil {
		t.Errorf("Expected nil rows for nil digest, got %d", len(items))
	}
}

func TestSubjectSummary(t *testing.T) {
	enabled := map[press.Subject]bool{}
	for _, subject := range press.Subjects {
		enabled[subject] = true
	}
	enabled[press.Agriculture] = false

	got := SubjectSummary(presenterDigest(), enabled)

	lines := strings.Split(got, "\n")
	if len(lines) != len(press.Subjects) {
		t.Fatalf("Expected one line per subject, got %d", len(lines))
	}
	if lines[0] != "1. Economy (2) [on]" {
		t.Errorf("Unexpected first line %q", lines[0])
	}
	if lines[2] != "3. Agriculture (0) [off]" {
		t.Errorf("Unexpected Agriculture line %q", lines[2])
	}
}
