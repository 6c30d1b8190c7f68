package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// AppTitle is shown at the left of the header
const AppTitle = "Instagram Bot Console"

// View identifies the main panel shown beside the sidebar
type View int

const (
	ViewChat View = iota
	ViewSettings
)

// String returns the label used in the header
func (v View) String() string {
	switch v {
	case ViewSettings:
		return "Settings"
	default:
		return "Chat Simulator"
	}
}

// Header represents the top header bar
type Header struct {
	width int
	view  View
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetView sets the active view highlighted on the right
func (h *Header) SetView(v View) {
	h.view = v
}

// View renders the header
func (h *Header) View() string {
	title := " " + AppTitle
	tabs := []View{ViewChat, ViewSettings}

	var tabParts []string
	tabWidth := 0
	for _, t := range tabs {
		tabWidth += ansi.StringWidth(t.String()) + 2
		tabParts = append(tabParts, t.String())
	}

	padding := max(h.width-ansi.StringWidth(title)-tabWidth, 0)

	var sb strings.Builder
	sb.WriteString(renderGradient(title+strings.Repeat(" ", padding), h.width))
	for i, t := range tabs {
		style := HeaderTabStyle
		if t == h.view {
			style = HeaderTabActiveStyle
		}
		sb.WriteString(lipgloss.NewStyle().Background(ColorBg).Render(" "))
		sb.WriteString(style.Background(ColorBg).Render(tabParts[i]))
		sb.WriteString(lipgloss.NewStyle().Background(ColorBg).Render(" "))
	}
	return sb.String()
}

// parseHexColor parses a hex color string (e.g., "#833AB4") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders content over a purple-to-background gradient that
// spans totalWidth cells
func renderGradient(content string, totalWidth int) string {
	if content == "" {
		return ""
	}

	startR, startG, startB := parseHexColor(headerGradientStart)
	endR, endG, endB := parseHexColor(headerGradientEnd)

	runes := []rune(content)
	span := max(totalWidth, len(runes))
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(span)
		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Foreground(ColorText).
			Bold(i <= len(AppTitle))

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
