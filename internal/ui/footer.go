package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType selects the color of a footer flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// FlashTickMsg is sent to check whether the flash message has expired
type FlashTickMsg time.Time

// FlashTick returns a command that fires once the flash duration has passed
func FlashTick() tea.Cmd {
	return tea.Tick(FlashDuration, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// FooterContext is what the footer needs to pick its bindings
type FooterContext struct {
	View        View
	SettingsTab SettingsTab
	Typing      bool // a reply is pending in the chat
	HasTrigger  bool // a trigger row is selected
}

// Footer represents the bottom footer bar with keybindings and flash messages
type Footer struct {
	width   int
	context FooterContext

	flashText    string
	flashType    FlashType
	flashExpires time.Time
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(c FooterContext) {
	f.context = c
}

// SetFlash shows text until FlashDuration has passed
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.flashText = text
	f.flashType = flashType
	f.flashExpires = time.Now().Add(FlashDuration)
}

// ClearFlash removes the flash message immediately
func (f *Footer) ClearFlash() {
	f.flashText = ""
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashText != ""
}

// FlashText returns the current flash message
func (f *Footer) FlashText() string {
	return f.flashText
}

// ClearIfExpired drops the flash message once its time is up. A newer flash
// set after the tick was scheduled survives until its own expiry.
func (f *Footer) ClearIfExpired(now time.Time) {
	if f.flashText != "" && !now.Before(f.flashExpires) {
		f.flashText = ""
	}
}

// Bindings returns the key bindings shown for the current context
func (f *Footer) Bindings() []KeyBinding {
	c := f.context
	if c.View == ViewSettings {
		bindings := []KeyBinding{{Key: "tab", Desc: "chat"}, {Key: "←/→", Desc: "section"}}
		switch c.SettingsTab {
		case TabText:
			bindings = append(bindings, KeyBinding{Key: "e", Desc: "edit delay"})
		default:
			bindings = append(bindings, KeyBinding{Key: "a", Desc: "add"})
			if c.HasTrigger {
				bindings = append(bindings, KeyBinding{Key: "↑/↓", Desc: "select"}, KeyBinding{Key: "d", Desc: "delete"})
			}
		}
		return append(bindings,
			KeyBinding{Key: "r", Desc: "reload"},
			KeyBinding{Key: "?", Desc: "help"},
			KeyBinding{Key: "q", Desc: "quit"},
		)
	}

	bindings := []KeyBinding{
		{Key: "enter", Desc: "send"},
		{Key: "ctrl+g", Desc: "image"},
		{Key: "ctrl+a", Desc: "audio"},
		{Key: "ctrl+u", Desc: "recipient"},
		{Key: "tab", Desc: "settings"},
		{Key: "pgup/dn", Desc: "scroll"},
	}
	if c.Typing {
		bindings = append(bindings, KeyBinding{Key: "…", Desc: "bot is typing"})
	}
	return append(bindings, KeyBinding{Key: "?", Desc: "help"})
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashText != "" {
		return FooterStyle.Width(f.width).Render(f.flashStyle().Render(f.flashText))
	}

	var parts []string
	for _, b := range f.Bindings() {
		parts = append(parts, FooterKeyStyle.Render(b.Key)+FooterDescStyle.Render(": "+b.Desc))
	}
	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	return FooterStyle.Width(f.width).Render(content)
}

func (f *Footer) flashStyle() lipgloss.Style {
	switch f.flashType {
	case FlashSuccess:
		return FlashSuccessStyle
	case FlashWarning:
		return FlashWarningStyle
	case FlashError:
		return FlashErrorStyle
	default:
		return FlashInfoStyle
	}
}
