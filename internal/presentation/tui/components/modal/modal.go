// Package modal provides modal dialog components.
package modal

import (
	"github.com/charmbracelet/lipgloss"
)

// Kind represents the type of modal.
type Kind int

const (
	// None indicates no modal.
	None Kind = iota
	// Settings shows the subject and cap controls.
	Settings
	// Quit shows the quit confirmation.
	Quit
	// Help shows the help dialog.
	Help
)

// Props defines the properties for the modal component.
type Props struct {
	Visible bool
	Kind    Kind
	Body    string
	Width   int
	Height  int
}

// Render renders the modal component.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(1, 2)

	switch p.Kind {
	case Settings:
		style = style.Width(48).BorderForeground(lipgloss.Color("205"))
	case Quit:
		style = style.BorderForeground(lipgloss.Color("205"))
	}

	content := style.Render(p.Body)
	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, content)
}
