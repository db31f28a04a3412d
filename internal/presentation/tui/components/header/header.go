// Package header provides the article header above the main pane.
package header

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the header component.
type Props struct {
	Visible bool
	Link    string
	Source  string
}

var headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// Render renders the link and outlet of the selected article. Both rows
// are always emitted so the layout height stays stable while the
// selection moves.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}
	return headerStyle.Render(fmt.Sprintf("🔗 %s\n🏷️  %s", p.Link, p.Source))
}
