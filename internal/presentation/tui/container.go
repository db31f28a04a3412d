// Package tui provides the main user interface model and view components.
package tui

import (
	"fmt"
	"strings"

	"github.com/tesso57/akhbar/internal/domain/press"
	"github.com/tesso57/akhbar/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/akhbar/internal/presentation/tui/components/main"
	"github.com/tesso57/akhbar/internal/presentation/tui/components/modal"
	"github.com/tesso57/akhbar/internal/presentation/tui/components/sidebar"
	"github.com/tesso57/akhbar/internal/presentation/tui/metrics"
	"github.com/tesso57/akhbar/internal/presentation/tui/presenter"
	"github.com/tesso57/akhbar/internal/presentation/tui/state"
	"github.com/tesso57/akhbar/internal/presentation/tui/textutil"
	"github.com/tesso57/akhbar/internal/presentation/tui/view"
)

func (m *Model) buildProps() view.Props {
	return view.Props{
		Sidebar: m.buildSidebarProps(),
		Header:  m.buildHeaderProps(),
		Main:    m.buildMainProps(),
		Modal:   m.buildModalProps(),
		Footer:  m.buildFooterProps(),
	}
}

func (m *Model) buildSidebarProps() sidebar.Props {
	return sidebar.Props{
		View:   presenter.SubjectSummary(m.state.Digest, m.state.Enabled),
		Width:  m.state.Width / 3,
		Height: m.state.List.Height(),
		Active: m.state.Session == state.DashboardView,
		Title:  "Subjects",
	}
}

func (m *Model) buildHeaderProps() header.Props {
	visible := headerVisible(m.state)
	var link, source string

	if visible {
		if item, ok := m.state.List.SelectedItem().(*presenter.Item); ok && item != nil {
			sidebarWidth := m.state.Width / 3
			mainWidth := m.state.Width - sidebarWidth - metrics.SidebarRightBorderWidth
			availableWidth := mainWidth - metrics.HeaderWidthPadding
			link = headerLine(item.Link, availableWidth)
			source = headerLine(item.Source, availableWidth)
		}
	}

	return header.Props{
		Visible: visible,
		Link:    link,
		Source:  source,
	}
}

func (m *Model) buildMainProps() mainview.Props {
	var body string
	switch {
	case m.state.Loading:
		message := "Building digest..."
		if m.state.StatusMessage != "" {
			message = m.state.StatusMessage
		}
		body = fmt.Sprintf("\n\n   %s %s", m.state.Spinner.View(), message)
	case m.state.Session == state.DetailView:
		body = m.state.Viewport.View()
	default:
		body = m.state.List.View()
	}
	if m.state.Err != nil && m.state.Session == state.DashboardView && !m.state.Loading {
		body = fmt.Sprintf("Error: %v\n\n%s", m.state.Err, body)
	}

	headerHeight := 0
	if headerVisible(m.state) {
		headerHeight = metrics.HeaderLines
	}

	return mainview.Props{
		Width:  m.state.List.Width(),
		Height: m.state.List.Height() + headerHeight,
		Header: "", // filled in by Render from the header props
		Body:   body,
	}
}

func (m *Model) buildModalProps() modal.Props {
	if m.state.Session == state.SettingsView {
		return modal.Props{
			Visible: true,
			Kind:    modal.Settings,
			Body:    buildSettingsBody(m.state),
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	if m.state.Session == state.QuitView {
		return modal.Props{
			Visible: true,
			Kind:    modal.Quit,
			Body:    "Are you sure you want to quit?\n\n(y/n)",
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	if m.state.Help.ShowAll {
		return modal.Props{
			Visible: true,
			Kind:    modal.Help,
			Body:    m.state.Help.View(&m.state.Keys),
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	return modal.Props{Visible: false}
}

func (m *Model) buildFooterProps() string {
	helpText := state.FooterHelpText(m.state.Help, m.state.Keys)
	return state.FooterText(m.state.Session, m.state.Loading, m.state.StatusMessage, helpText)
}

// buildSettingsBody lays out the settings panel: one row per subject with
// its checkbox, then the per-subject cap control.
func buildSettingsBody(st *state.ModelState) string {
	var b strings.Builder
	b.WriteString("Digest Settings\n\n")
	for i, subject := range press.Subjects {
		cursor := "  "
		if st.SettingsIndex == i {
			cursor = "> "
		}
		mark := "[x]"
		if st.Enabled != nil && !st.Enabled[subject] {
			mark = "[ ]"
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, mark, subject)
	}

	cursor := "  "
	if st.SettingsIndex == len(press.Subjects) {
		cursor = "> "
	}
	fmt.Fprintf(&b, "\n%sArticles per subject: < %d >\n", cursor, st.PendingMax)
	b.WriteString("\n(space toggles, left/right adjust, esc closes)")
	return b.String()
}

func headerVisible(st *state.ModelState) bool {
	if st == nil {
		return false
	}
	switch st.Session {
	case state.DashboardView, state.DetailView:
		item, ok := st.List.SelectedItem().(*presenter.Item)
		return ok && item != nil && !item.IsSectionHeader()
	default:
		return false
	}
}

func headerLine(text string, width int) string {
	return textutil.Truncate(textutil.SingleLine(text), width)
}
