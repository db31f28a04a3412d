// Package state holds UI state types for the TUI.
package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/tesso57/akhbar/internal/application/usecase"
	"github.com/tesso57/akhbar/internal/domain/press"
)

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Session  Session
	Previous Session

	List     list.Model
	Viewport viewport.Model
	Help     help.Model
	Spinner  spinner.Model
	Keys     KeyMap

	Width   int
	Height  int
	Loading bool
	Err     error

	// Digest is the last successful build; nil until the first fetch
	// lands.
	Digest *press.Digest
	Report usecase.FetchReport

	// Enabled tracks which subjects the dashboard shows. Toggling is a
	// pure view filter; the digest keeps every bucket.
	Enabled map[press.Subject]bool

	// MaxPerSubject is the applied per-subject cap. PendingMax stages
	// edits inside the settings panel until it closes.
	MaxPerSubject int
	PendingMax    int

	// SettingsIndex is the cursor row in the settings panel: subjects
	// first, the cap control last.
	SettingsIndex int

	DetailTitle string
	DetailLink  string
	DetailBody  string

	StatusMessage string
}

// EnabledSubjects returns the enabled subjects in display order.
func (s *ModelState) EnabledSubjects() []press.Subject {
	out := make([]press.Subject, 0, len(press.Subjects))
	for _, subject := range press.Subjects {
		if s.Enabled == nil || s.Enabled[subject] {
			out = append(out, subject)
		}
	}
	return out
}
