// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/akhbar/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	ToggleHelp
	Open
	Back
	Refresh
	Settings
	ToggleSubject
	Browse
	FetchBody
)

// Intent represents a parsed user intent.
type Intent struct {
	Type Type
}

// FromKeyMsg maps a key message to an intent.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Help):
		return Intent{Type: ToggleHelp}
	case key.Matches(msg, keys.Right) || key.Matches(msg, keys.Open):
		return Intent{Type: Open}
	case key.Matches(msg, keys.Left) || key.Matches(msg, keys.Back):
		return Intent{Type: Back}
	case key.Matches(msg, keys.Refresh):
		return Intent{Type: Refresh}
	case key.Matches(msg, keys.Settings):
		return Intent{Type: Settings}
	case key.Matches(msg, keys.ToggleSubject):
		return Intent{Type: ToggleSubject}
	case key.Matches(msg, keys.Browse):
		return Intent{Type: Browse}
	case key.Matches(msg, keys.FetchBody):
		return Intent{Type: FetchBody}
	default:
		return Intent{Type: None}
	}
}
