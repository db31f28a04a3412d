package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/akhbar/internal/application/settings"
	"github.com/tesso57/akhbar/internal/application/usecase"
	"github.com/tesso57/akhbar/internal/domain/press"
	"github.com/tesso57/akhbar/internal/presentation/tui/state"
	"github.com/tesso57/akhbar/internal/presentation/tui/update"
	"github.com/tesso57/akhbar/internal/presentation/tui/view"
	listview "github.com/tesso57/akhbar/internal/presentation/tui/view/list"
)

// Model represents the main application state.
type Model struct {
	settings settings.Settings
	digests  *usecase.DigestCache
	bodies   *usecase.BodyService
	state    *state.ModelState
}

// NewModel creates a new application model.
func NewModel(cfg settings.Settings, digests *usecase.DigestCache, bodies *usecase.BodyService) *Model {
	return &Model{
		settings: cfg,
		digests:  digests,
		bodies:   bodies,
		state:    newModelState(cfg),
	}
}

// Init kicks off the first digest build.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.state.Spinner.Tick,
		update.BuildDigestCmd(m.digests, usecase.BuildOptions{MaxPerSubject: m.state.MaxPerSubject}),
	)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps())
		if handled {
			update.UpdateListSizes(m.state)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
	case update.DigestBuiltMsg:
		update.HandleDigestBuiltMsg(m.state, msg)
	case update.BodyLoadedMsg:
		update.HandleBodyLoadedMsg(m.state, msg)
	}

	if m.state.Loading {
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	switch m.state.Session {
	case state.DashboardView:
		m.state.List, cmd = m.state.List.Update(msg)
		cmds = append(cmds, cmd)
	case state.DetailView:
		m.state.Viewport, cmd = m.state.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Digests:     m.digests,
		Bodies:      m.bodies,
		OpenBrowser: openBrowser,
	}
}

func newModelState(cfg settings.Settings) *state.ModelState {
	st := &state.ModelState{
		Session:       state.DashboardView,
		List:          newDigestList(cfg),
		Viewport:      newViewport(),
		Help:          help.New(),
		Spinner:       newSpinner(),
		Keys:          state.NewKeyMap(cfg.KeyMap),
		Loading:       true,
		Enabled:       allSubjectsEnabled(),
		MaxPerSubject: cfg.Dashboard.ClampedMax(),
	}
	st.PendingMax = st.MaxPerSubject

	st.List.KeyMap.PrevPage = st.Keys.UpPage
	st.List.KeyMap.NextPage = st.Keys.DownPage

	return st
}

func allSubjectsEnabled() map[press.Subject]bool {
	enabled := make(map[press.Subject]bool, len(press.Subjects))
	for _, subject := range press.Subjects {
		enabled[subject] = true
	}
	return enabled
}

func newDigestList(cfg settings.Settings) list.Model {
	l := list.New([]list.Item{}, listview.NewDigestDelegate(lipgloss.Color(cfg.Theme.Accent)), 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	return l
}

func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return s
}

func newViewport() viewport.Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)
	return vp
}
