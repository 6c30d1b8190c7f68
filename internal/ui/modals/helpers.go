package modals

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// RenderSelectableList renders a simple list with selection highlighting.
func RenderSelectableList(items []string, selectedIndex int) string {
	var result strings.Builder
	for i, item := range items {
		style := SidebarItemStyle
		prefix := "  "
		if i == selectedIndex {
			style = SidebarSelectedStyle
			prefix = "> "
		}
		result.WriteString(style.Render(prefix+item) + "\n")
	}
	return result.String()
}

// TruncateString truncates s to maxWidth display cells with an ellipsis.
func TruncateString(s string, maxWidth int) string {
	return ansi.Truncate(s, maxWidth, "…")
}

// renderLabel renders a muted field label
func renderLabel(text string) string {
	return lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Render(text)
}

// renderSectionHeader renders a bold secondary-colored heading
func renderSectionHeader(title string) string {
	return lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true).
		Render(title)
}
