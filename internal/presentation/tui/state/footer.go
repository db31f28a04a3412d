package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// FooterText returns the footer content for the current session.
func FooterText(session Session, loading bool, status, helpText string) string {
	status = strings.TrimSpace(status)
	if !loading && status != "" && (session == DashboardView || session == DetailView) {
		if helpText == "" {
			return status
		}
		return status + "\n" + helpText
	}
	return helpText
}

// FooterHelpText renders the two-row help line for the footer: movement
// keys on top, actions below.
func FooterHelpText(h help.Model, keys KeyMap) string {
	top := h.ShortHelpView([]key.Binding{keys.Up, keys.Down, keys.Open, keys.Back})
	bottom := h.ShortHelpView([]key.Binding{keys.Refresh, keys.Settings, keys.ToggleSubject, keys.Quit, keys.Help})
	return top + "\n" + bottom
}
