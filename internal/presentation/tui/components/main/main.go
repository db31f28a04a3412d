// Package mainview provides the digest content pane.
package mainview

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the main view component.
type Props struct {
	Width  int
	Height int
	Header string
	Body   string
}

// Render renders the main pane: an optional article header above the
// digest list, detail text, or loading message. Lines are cut at the
// pane width so the footer and sidebar keep their columns.
func Render(p Props) string {
	content := p.Body
	switch {
	case p.Header != "" && p.Body != "":
		content = lipgloss.JoinVertical(lipgloss.Left, p.Header, p.Body)
	case p.Header != "":
		content = p.Header
	}

	pane := lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		PaddingLeft(1).
		Render(content)

	if p.Width <= 0 {
		return pane
	}
	return lipgloss.NewStyle().MaxWidth(p.Width).Render(pane)
}
