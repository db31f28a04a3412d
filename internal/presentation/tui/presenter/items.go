// Package presenter builds view models for the TUI.
package presenter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/tesso57/akhbar/internal/domain/press"
)

// Item is a view model for list rows. A row is either a subject header
// or an article beneath one.
type Item struct {
	TitleText string
	Desc      string
	Link      string
	Source    string
	Summary   string
	Subject   press.Subject
	Header    bool
}

// FilterValue implements list.Item.
func (i *Item) FilterValue() string { return i.TitleText }

// Title returns the row title.
func (i *Item) Title() string { return i.TitleText }

// Description returns the secondary line for list display.
func (i *Item) Description() string { return i.Desc }

// URL returns the linked article URL; empty for headers.
func (i *Item) URL() string { return i.Link }

// IsSectionHeader reports whether the row is a subject divider.
func (i *Item) IsSectionHeader() bool { return i.Header }

// BuildDigestItems flattens a digest into list rows: a numbered header
// per enabled subject with articles, each followed by its articles. The
// numbering matches the digit keys used for section jumps.
func BuildDigestItems(digest *press.Digest, enabled map[press.Subject]bool) []list.Item {
	if digest == nil {
		return nil
	}
	var items []list.Item
	num := 0
	for _, subject := range digest.ActiveSubjects() {
		if enabled != nil && !enabled[subject] {
			continue
		}
		articles := digest.Articles(subject)
		num++
		items = append(items, &Item{
			TitleText: fmt.Sprintf("%d. %s (%d)", num, subject, len(articles)),
			Subject:   subject,
			Header:    true,
		})
		for _, article := range articles {
			items = append(items, &Item{
				TitleText: article.Title,
				Desc:      article.Source,
				Link:      article.Link,
				Source:    article.Source,
				Summary:   article.Summary,
				Subject:   subject,
			})
		}
	}
	return items
}

// ApplyDigestList replaces the list rows and parks the selection on the
// first article.
func ApplyDigestList(model *list.Model, digest *press.Digest, enabled map[press.Subject]bool) {
	items := BuildDigestItems(digest, enabled)
	model.SetItems(items)
	for idx, item := range items {
		if row, ok := item.(*Item); ok && !row.IsSectionHeader() {
			model.Select(idx)
			return
		}
	}
	model.Select(0)
}

// SubjectSummary builds the sidebar body: every subject with its bucket
// size, marking disabled ones.
func SubjectSummary(digest *press.Digest, enabled map[press.Subject]bool) string {
	var b strings.Builder
	for i, subject := range press.Subjects {
		count := 0
		if digest != nil {
			count = len(digest.Articles(subject))
		}
		marker := "on"
		if enabled != nil && !enabled[subject] {
			marker = "off"
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s (%d) [%s]", i+1, subject, count, marker)
	}
	return b.String()
}
