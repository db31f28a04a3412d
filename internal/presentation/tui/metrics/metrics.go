// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	// HeaderLines is the height of the link/source header above the
	// digest list and the detail view.
	HeaderLines = 2

	// HeaderWidthPadding covers the emoji prefix and main-pane padding
	// when truncating header lines.
	HeaderWidthPadding = 7

	// SidebarRightBorderWidth is the column the subject pane's border
	// takes from the main pane.
	SidebarRightBorderWidth = 1

	// ItemRightPadding keeps list rows off the sidebar border.
	ItemRightPadding = 1

	// ItemSafetyPadding absorbs the rounding between the list width and
	// the styled row frame when truncating row titles.
	ItemSafetyPadding = 1
)
