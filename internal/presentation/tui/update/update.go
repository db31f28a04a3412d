// Package update holds UI update logic for the TUI.
package update

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/akhbar/internal/application/settings"
	"github.com/tesso57/akhbar/internal/application/usecase"
	"github.com/tesso57/akhbar/internal/domain/press"
	"github.com/tesso57/akhbar/internal/presentation/tui/intent"
	"github.com/tesso57/akhbar/internal/presentation/tui/presenter"
	"github.com/tesso57/akhbar/internal/presentation/tui/state"
)

// Deps groups external dependencies for updates.
type Deps struct {
	Digests     *usecase.DigestCache
	Bodies      *usecase.BodyService
	OpenBrowser func(string) error
}

// DigestBuiltMsg is emitted after a digest build finishes.
type DigestBuiltMsg struct {
	Digest    *press.Digest
	Report    usecase.FetchReport
	FromCache bool
}

// BodyLoadedMsg is emitted after extracting one article's full text.
type BodyLoadedMsg struct {
	Link string
	Body string
	Err  error
}

// BuildDigestCmd creates a command that builds the digest, reusing the
// cached one when it is still fresh for the same options.
func BuildDigestCmd(cache *usecase.DigestCache, opts usecase.BuildOptions) tea.Cmd {
	return func() tea.Msg {
		digest, report, fromCache := cache.Get(context.Background(), opts)
		return DigestBuiltMsg{Digest: digest, Report: report, FromCache: fromCache}
	}
}

// LoadBodyCmd creates a command that extracts one article's body text.
func LoadBodyCmd(bodies *usecase.BodyService, link string) tea.Cmd {
	link = strings.TrimSpace(link)
	return func() tea.Msg {
		if bodies == nil {
			return BodyLoadedMsg{Link: link, Err: fmt.Errorf("article extraction is not configured")}
		}
		body, err := bodies.Load(context.Background(), link)
		return BodyLoadedMsg{Link: link, Body: body, Err: err}
	}
}

// HandleKeyMsg processes key input based on the current session.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	if s.Session == state.SettingsView {
		return handleSettingsView(s, msg, deps)
	}
	if s.Session == state.QuitView {
		return handleQuitView(s, msg)
	}
	if s.Session == state.DashboardView && s.List.FilterState() == list.Filtering {
		// The filter input owns the keyboard until accepted or cancelled.
		return nil, false
	}
	if handleSectionJump(s, msg) {
		return nil, true
	}

	parsed := intent.FromKeyMsg(msg, s.Keys)
	if parsed.Type == intent.Quit {
		s.Previous = s.Session
		s.Session = state.QuitView
		return nil, true
	}

	switch s.Session {
	case state.DashboardView:
		return handleDashboardIntent(s, parsed, deps)
	case state.DetailView:
		return handleDetailIntent(s, parsed, deps)
	default:
		return nil, false
	}
}

func handleSectionJump(s *state.ModelState, msg tea.KeyMsg) bool {
	if s == nil || s.Session != state.DashboardView {
		return false
	}
	if s.List.FilterState() == list.Filtering {
		return false
	}

	switch msg.String() {
	case "J":
		return jumpSelectionToAdjacentSection(&s.List, 1)
	case "K":
		return jumpSelectionToAdjacentSection(&s.List, -1)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		sectionNumber := int(msg.String()[0] - '0')
		return jumpSelectionToSectionNumber(&s.List, sectionNumber)
	default:
		return false
	}
}

func jumpSelectionToAdjacentSection(model *list.Model, direction int) bool {
	if model == nil {
		return false
	}
	headers := sectionHeaderIndexes(model.Items())
	if len(headers) == 0 {
		return false
	}

	currentIndex := model.Index()
	currentHeader := -1
	for _, headerIndex := range headers {
		if headerIndex <= currentIndex {
			currentHeader = headerIndex
			continue
		}
		break
	}

	targetHeader := -1
	switch {
	case direction > 0:
		for _, headerIndex := range headers {
			if headerIndex > currentHeader {
				targetHeader = headerIndex
				break
			}
		}
	case direction < 0:
		if currentHeader < 0 {
			return true
		}
		for _, headerIndex := range headers {
			if headerIndex >= currentHeader {
				break
			}
			targetHeader = headerIndex
		}
	}
	if targetHeader < 0 {
		return true
	}

	selectFirstItemInSection(model, targetHeader)
	return true
}

func jumpSelectionToSectionNumber(model *list.Model, sectionNumber int) bool {
	if model == nil {
		return false
	}
	headers := sectionHeaderIndexes(model.Items())
	if len(headers) == 0 {
		return false
	}
	if sectionNumber <= 0 || sectionNumber > len(headers) {
		return true
	}

	selectFirstItemInSection(model, headers[sectionNumber-1])
	return true
}

func sectionHeaderIndexes(items []list.Item) []int {
	headers := make([]int, 0, len(items))
	for index, item := range items {
		row, ok := item.(*presenter.Item)
		if !ok || row == nil || !row.IsSectionHeader() {
			continue
		}
		headers = append(headers, index)
	}
	return headers
}

func selectFirstItemInSection(model *list.Model, headerIndex int) {
	if model == nil || headerIndex < 0 || headerIndex >= len(model.Items()) {
		return
	}

	items := model.Items()
	targetIndex := headerIndex
	for index := headerIndex + 1; index < len(items); index++ {
		row, ok := items[index].(*presenter.Item)
		if !ok || row == nil {
			continue
		}
		if row.IsSectionHeader() {
			break
		}
		targetIndex = index
		break
	}
	model.Select(targetIndex)
}

// HandleWindowSize updates layout sizing based on terminal size.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height

	UpdateListSizes(s)
}

// HandleDigestBuiltMsg applies a finished digest build to the dashboard.
func HandleDigestBuiltMsg(s *state.ModelState, msg DigestBuiltMsg) {
	s.Loading = false
	defer UpdateListSizes(s)

	s.Digest = msg.Digest
	s.Report = msg.Report
	s.Err = nil
	presenter.ApplyDigestList(&s.List, s.Digest, s.Enabled)
	s.StatusMessage = digestStatusMessage(msg.Report, msg.FromCache)
}

// HandleBodyLoadedMsg applies one extracted article body to the detail view.
func HandleBodyLoadedMsg(s *state.ModelState, msg BodyLoadedMsg) {
	s.Loading = false
	if msg.Err != nil {
		s.StatusMessage = fmt.Sprintf("article fetch failed: %s", strings.TrimSpace(msg.Err.Error()))
		return
	}
	if msg.Link != s.DetailLink {
		// Stale fetch for an article the user has already left.
		return
	}
	s.DetailBody = msg.Body
	s.StatusMessage = ""
	if s.Session == state.DetailView {
		if item, ok := selectedArticleItem(s); ok {
			refreshDetailViewport(s, item)
		}
	}
}

func handleSettingsView(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	capRow := len(press.Subjects)
	switch msg.String() {
	case "up", "k":
		if s.SettingsIndex > 0 {
			s.SettingsIndex--
		}
		return nil, true
	case "down", "j":
		if s.SettingsIndex < capRow {
			s.SettingsIndex++
		}
		return nil, true
	case " ":
		if s.SettingsIndex < capRow {
			toggleSubject(s, press.Subjects[s.SettingsIndex])
		}
		return nil, true
	case "left", "h":
		if s.SettingsIndex == capRow && s.PendingMax > settings.MinSubjectCap {
			s.PendingMax--
		}
		return nil, true
	case "right", "l":
		if s.SettingsIndex == capRow && s.PendingMax < settings.MaxSubjectCap {
			s.PendingMax++
		}
		return nil, true
	case "enter", "esc", "s", "q":
		return closeSettingsView(s, deps), true
	}
	return nil, true
}

// closeSettingsView leaves the settings panel. A changed cap means every
// bucket may need more articles than the cache holds, so the digest is
// rebuilt; subject toggles only refilter the rows already on hand.
func closeSettingsView(s *state.ModelState, deps Deps) tea.Cmd {
	s.Session = state.DashboardView
	if s.PendingMax != s.MaxPerSubject {
		s.MaxPerSubject = s.PendingMax
		return beginDigestBuild(s, deps)
	}
	presenter.ApplyDigestList(&s.List, s.Digest, s.Enabled)
	return nil
}

func handleQuitView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y":
		return tea.Quit, true
	case "n", "N", "esc", "q", "Q":
		s.Session = s.Previous
		return nil, true
	}
	return nil, true
}

func handleDashboardIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Open:
		if item, ok := selectedArticleItem(s); ok {
			if item.Link != s.DetailLink {
				s.DetailBody = ""
			}
			s.DetailTitle = item.TitleText
			s.DetailLink = item.Link
			s.Session = state.DetailView
			refreshDetailViewport(s, item)
		}
		return nil, true
	case intent.Refresh:
		if deps.Digests != nil {
			deps.Digests.Invalidate()
		}
		return beginDigestBuild(s, deps), true
	case intent.Settings:
		s.Previous = s.Session
		s.Session = state.SettingsView
		s.PendingMax = s.MaxPerSubject
		s.SettingsIndex = 0
		return nil, true
	case intent.ToggleSubject:
		if row, ok := selectedRow(s); ok {
			toggleSubject(s, row.Subject)
		}
		return nil, true
	case intent.Browse:
		if item, ok := selectedArticleItem(s); ok && deps.OpenBrowser != nil {
			if err := deps.OpenBrowser(item.Link); err != nil {
				s.Err = err
			}
		}
		return nil, true
	case intent.ToggleHelp:
		s.Help.ShowAll = !s.Help.ShowAll
		return nil, true
	}
	return nil, false
}

func handleDetailIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Back:
		s.Session = state.DashboardView
		return nil, true
	case intent.Open, intent.Browse:
		if s.DetailLink != "" && deps.OpenBrowser != nil {
			if err := deps.OpenBrowser(s.DetailLink); err != nil {
				s.Err = err
			}
		}
		return nil, true
	case intent.FetchBody:
		return beginBodyFetch(s, deps), true
	case intent.ToggleHelp:
		s.Help.ShowAll = !s.Help.ShowAll
		return nil, true
	}
	return nil, false
}

func beginDigestBuild(s *state.ModelState, deps Deps) tea.Cmd {
	s.Loading = true
	s.Err = nil
	s.StatusMessage = ""
	return tea.Batch(s.Spinner.Tick, BuildDigestCmd(deps.Digests, usecase.BuildOptions{MaxPerSubject: s.MaxPerSubject}))
}

func beginBodyFetch(s *state.ModelState, deps Deps) tea.Cmd {
	if s.DetailLink == "" {
		return nil
	}
	s.Loading = true
	s.StatusMessage = "fetching article text..."
	return tea.Batch(s.Spinner.Tick, LoadBodyCmd(deps.Bodies, s.DetailLink))
}

func toggleSubject(s *state.ModelState, subject press.Subject) {
	if subject == "" {
		return
	}
	ensureEnabled(s)
	s.Enabled[subject] = !s.Enabled[subject]
	presenter.ApplyDigestList(&s.List, s.Digest, s.Enabled)
}

func ensureEnabled(s *state.ModelState) {
	if s.Enabled != nil {
		return
	}
	s.Enabled = make(map[press.Subject]bool, len(press.Subjects))
	for _, subject := range press.Subjects {
		s.Enabled[subject] = true
	}
}

func refreshDetailViewport(s *state.ModelState, item *presenter.Item) {
	if s == nil {
		return
	}
	content := buildDetailContent(item, s.DetailBody)
	if width := detailWrapWidth(s); width > 0 {
		content = lipgloss.NewStyle().Width(width).Render(content)
	}
	s.Viewport.SetContent(content)
	s.Viewport.GotoTop()
}

func detailWrapWidth(s *state.ModelState) int {
	if s == nil {
		return 0
	}
	// The viewport sits in the main pane, which pads one column on the
	// left; wrapped lines must clear both frames to avoid spill.
	frame := s.Viewport.Style.GetHorizontalFrameSize() + 1
	viewportContentWidth := s.Viewport.Width - frame
	if viewportContentWidth > 0 {
		return viewportContentWidth
	}
	// Fallback for early calls before the first resize.
	return clampMin(s.List.Width()-frame, 1)
}

func digestStatusMessage(report usecase.FetchReport, fromCache bool) string {
	msg := fmt.Sprintf("%d feeds fetched", report.Succeeded)
	if report.Succeeded == 1 {
		msg = "1 feed fetched"
	}
	switch {
	case report.Failed == 1:
		msg += ", 1 failed"
	case report.Failed > 1:
		msg += fmt.Sprintf(", %d failed", report.Failed)
	}
	if fromCache {
		msg += " (cached)"
	}
	return msg
}

func selectedRow(s *state.ModelState) (*presenter.Item, bool) {
	if s == nil {
		return nil, false
	}
	item, ok := s.List.SelectedItem().(*presenter.Item)
	if !ok || item == nil {
		return nil, false
	}
	return item, true
}

func selectedArticleItem(s *state.ModelState) (*presenter.Item, bool) {
	item, ok := selectedRow(s)
	if !ok || item.IsSectionHeader() {
		return nil, false
	}
	return item, true
}
