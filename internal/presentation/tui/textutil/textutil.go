// Package textutil provides small text helpers for list rows and
// header lines.
package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const ellipsis = "..."

// SingleLine collapses runs of whitespace, including newlines from
// multi-line feed titles, into single spaces.
func SingleLine(text string) string {
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(text), " ")
}

// Truncate cuts text to width terminal cells, ANSI-aware, appending an
// ellipsis when something was cut.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(text, width, ellipsis)
}
