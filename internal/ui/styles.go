package ui

import (
	"charm.land/lipgloss/v2"

	"github.com/zhubert/botconsole/internal/ui/modals"
)

// Color palette - Instagram purple/pink/orange on dark gray
var (
	ColorPrimary     = lipgloss.Color("#C13584") // Magenta
	ColorSecondary   = lipgloss.Color("#F77737") // Orange
	ColorAccent      = lipgloss.Color("#833AB4") // Purple
	ColorMuted       = lipgloss.Color("#6B7280") // Gray
	ColorBorder      = lipgloss.Color("#374151") // Dark gray
	ColorBorderFocus = lipgloss.Color("#C13584") // Magenta when focused
	ColorBg          = lipgloss.Color("#1F2937") // Dark background
	ColorText        = lipgloss.Color("#F9FAFB") // Light text
	ColorTextMuted   = lipgloss.Color("#B0B8C4") // Muted text
	ColorTextInverse = lipgloss.Color("#1F2937") // Dark text for light backgrounds
	ColorUser        = lipgloss.Color("#E1306C") // Pink bubbles for the user
	ColorBot         = lipgloss.Color("#374151") // Gray bubbles for the bot
	ColorWarning     = lipgloss.Color("#F59E0B") // Amber
	ColorInfo        = lipgloss.Color("#38BDF8") // Sky
	ColorError       = lipgloss.Color("#EF4444") // Red
	ColorSuccess     = lipgloss.Color("#10B981") // Green
)

// Header gradient endpoints
const (
	headerGradientStart = "#833AB4"
	headerGradientEnd   = "#1F2937"
)

// Header styles
var (
	HeaderTabStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	HeaderTabActiveStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Bold(true).
				Underline(true)
)

// Footer styles
var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)
)

// Sidebar styles
var (
	SidebarItemStyle = lipgloss.NewStyle().
				Padding(0, 1)

	SidebarSelectedStyle = lipgloss.NewStyle().
				Background(ColorAccent).
				Foreground(ColorText).
				Bold(true).
				Padding(0, 1)

	SidebarSectionStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true).
				MarginTop(1)

	StatCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 1)

	StatValueStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	StatLabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Chat styles
var (
	ChatUserBubbleStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Background(ColorUser).
				Padding(0, 1)

	ChatBotBubbleStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Background(ColorBot).
				Padding(0, 1)

	ChatErrorBubbleStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(ColorError).
				PaddingLeft(1)

	ChatMediaStyle = lipgloss.NewStyle().
			Foreground(ColorInfo).
			Underline(true)

	ChatTimestampStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	ChatTypingStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Background(ColorBot).
			Padding(0, 1)

	ChatInputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ChatInputFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus).
				Padding(0, 1)
)

// Settings styles
var (
	SettingsTabStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Padding(0, 2)

	SettingsTabActiveStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Background(ColorPrimary).
				Bold(true).
				Padding(0, 2)

	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	TableRowStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	TableRowSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Background(ColorAccent).
				Bold(true)

	InfoBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorInfo).
			Padding(0, 1)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2).
			Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			MarginTop(1)
)

// Status styles
var (
	StatusLoadingStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)
)

// Flash message styles, keyed by FlashType in footer.go
var (
	FlashInfoStyle    = lipgloss.NewStyle().Foreground(ColorInfo).Bold(true)
	FlashSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	FlashWarningStyle = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	FlashErrorStyle   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
)

func init() {
	// modals cannot import ui, so the palette is handed down here
	modals.SetStyles(
		ModalTitleStyle, ModalHelpStyle, SidebarItemStyle, SidebarSelectedStyle, StatusErrorStyle,
		ColorPrimary, ColorSecondary, ColorText, ColorTextMuted, ColorTextInverse, ColorWarning, ColorError,
		ModalInputWidth, ModalInputCharLimit, ModalWidth, ModalWidthWide,
	)
}
