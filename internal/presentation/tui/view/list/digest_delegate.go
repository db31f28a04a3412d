// Package listview provides the list item delegate for the digest.
package listview

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/akhbar/internal/presentation/tui/metrics"
	"github.com/tesso57/akhbar/internal/presentation/tui/textutil"
)

// DigestItem interface for rows that can be rendered by DigestDelegate.
type DigestItem interface {
	list.Item
	Title() string
	URL() string
	IsSectionHeader() bool
}

// DigestDelegate renders subject headers and the article rows beneath
// them.
type DigestDelegate struct {
	Styles list.DefaultItemStyles
	Accent lipgloss.Color
}

// NewDigestDelegate creates a DigestDelegate using the theme accent for
// subject headers.
func NewDigestDelegate(accent lipgloss.Color) *DigestDelegate {
	styles := list.NewDefaultItemStyles()
	styles.NormalTitle = styles.NormalTitle.PaddingRight(metrics.ItemRightPadding)
	styles.SelectedTitle = styles.SelectedTitle.PaddingRight(metrics.ItemRightPadding)
	styles.DimmedTitle = styles.DimmedTitle.PaddingRight(metrics.ItemRightPadding)

	return &DigestDelegate{Styles: styles, Accent: accent}
}

// Height returns the height of the item.
func (d *DigestDelegate) Height() int {
	return 1
}

// Spacing returns the spacing between items.
func (d *DigestDelegate) Spacing() int {
	return 0
}

// Update handles messages for the delegate.
func (d *DigestDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders the row.
func (d *DigestDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(DigestItem)
	if !ok {
		return
	}

	var style lipgloss.Style
	switch {
	case i.IsSectionHeader():
		style = lipgloss.NewStyle().Bold(true).Foreground(d.Accent)
		if index == m.Index() {
			style = style.Underline(true)
		}
	case index == m.Index():
		style = d.Styles.SelectedTitle
	default:
		style = d.Styles.NormalTitle
	}

	maxWidth := m.Width() - style.GetHorizontalFrameSize() - metrics.ItemSafetyPadding
	_, _ = io.WriteString(w, style.Render(textutil.Truncate(i.Title(), maxWidth)))
}
