// Package sidebar provides the subject overview pane.
package sidebar

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the sidebar component.
type Props struct {
	View   string
	Width  int
	Height int
	Title  string
	Active bool
}

// Render renders the sidebar pane. Long subject lines are cut at the
// pane width so the column never pushes the main view aside.
func Render(p Props) string {
	borderColor := lipgloss.Color("63")
	if p.Active {
		borderColor = lipgloss.Color("205")
	}

	paneStyle := lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(borderColor)

	titleStyle := lipgloss.NewStyle().
		PaddingLeft(2).
		PaddingBottom(1).
		Foreground(lipgloss.Color("205")) // match the active border and spinner

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(p.Title),
		p.View,
	)
	if p.Width > 0 {
		content = lipgloss.NewStyle().MaxWidth(p.Width).Render(content)
	}

	return paneStyle.Render(content)
}
