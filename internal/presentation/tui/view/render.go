// Package view composes the dashboard screen from its components.
package view

import (
	"github.com/tesso57/akhbar/internal/presentation/tui/components/header"
	"github.com/tesso57/akhbar/internal/presentation/tui/components/layout"
	mainview "github.com/tesso57/akhbar/internal/presentation/tui/components/main"
	"github.com/tesso57/akhbar/internal/presentation/tui/components/modal"
	"github.com/tesso57/akhbar/internal/presentation/tui/components/sidebar"
)

// Props carries everything one frame needs: the subject sidebar, the
// article header, the main pane, an optional modal, and the footer line.
type Props struct {
	Sidebar sidebar.Props
	Header  header.Props
	Main    mainview.Props
	Modal   modal.Props
	Footer  string
}

// Render draws a full frame. A visible modal (settings or the quit
// prompt) replaces the screen; otherwise the article header is stacked
// into the main pane and joined with the sidebar and footer.
func Render(p Props) string {
	if p.Modal.Visible {
		return modal.Render(p.Modal)
	}

	sidebarStr := sidebar.Render(p.Sidebar)
	headerStr := header.Render(p.Header)

	p.Main.Header = headerStr
	mainStr := mainview.Render(p.Main)

	layoutProps := layout.Props{
		Sidebar: sidebarStr,
		Main:    mainStr,
		Footer:  p.Footer,
	}

	return layout.Render(layoutProps)
}
