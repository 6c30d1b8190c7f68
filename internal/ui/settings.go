package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/botconsole/internal/bot"
	"github.com/zhubert/botconsole/internal/keys"
	"github.com/zhubert/botconsole/internal/ui/modals"
)

// SettingsTab selects a section of the settings panel
type SettingsTab int

const (
	TabText SettingsTab = iota
	TabImage
	TabVoice
)

var settingsTabs = []SettingsTab{TabText, TabImage, TabVoice}

func (t SettingsTab) String() string {
	switch t {
	case TabImage:
		return "Image Triggers"
	case TabVoice:
		return "Voice Triggers"
	default:
		return "Text Responses"
	}
}

// Kind returns the media kind triggers on this tab carry, or "" for the text tab
func (t SettingsTab) Kind() bot.Kind {
	switch t {
	case TabImage:
		return bot.KindImage
	case TabVoice:
		return bot.KindAudio
	default:
		return ""
	}
}

// Settings is the settings panel: delay parameters and the trigger tables
type Settings struct {
	width   int
	height  int
	focused bool

	tab      SettingsTab
	image    []bot.Trigger
	audio    []bot.Trigger
	delay    bot.DelaySettings
	selected map[SettingsTab]int

	loaded    bool
	loading   bool
	loadError string
}

// NewSettings creates a new settings panel
func NewSettings() *Settings {
	return &Settings{
		delay:    bot.DelaySettings{}.WithDefaults(),
		selected: make(map[SettingsTab]int),
	}
}

// SetSize sets the panel dimensions
func (s *Settings) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// SetFocused sets the focus state
func (s *Settings) SetFocused(focused bool) {
	s.focused = focused
}

// SetTriggers replaces the trigger tables and delay record after a fetch
func (s *Settings) SetTriggers(triggers []bot.Trigger, delay bot.DelaySettings) {
	s.image, s.audio = bot.PartitionTriggers(triggers)
	s.delay = delay.WithDefaults()
	s.loaded = true
	s.loading = false
	s.loadError = ""
	s.clampSelection(TabImage)
	s.clampSelection(TabVoice)
}

// SetDelay replaces the local delay record
func (s *Settings) SetDelay(delay bot.DelaySettings) {
	s.delay = delay
}

// Delay returns the local delay record
func (s *Settings) Delay() bot.DelaySettings {
	return s.delay
}

// SetLoading marks a fetch as in flight
func (s *Settings) SetLoading(loading bool) {
	s.loading = loading
}

// IsLoading reports whether a fetch is in flight
func (s *Settings) IsLoading() bool {
	return s.loading
}

// SetLoadError records a failed fetch. Previously loaded tables stay.
func (s *Settings) SetLoadError(detail string) {
	s.loading = false
	s.loadError = detail
}

// Loaded reports whether triggers have been fetched at least once
func (s *Settings) Loaded() bool {
	return s.loaded
}

// Tab returns the active tab
func (s *Settings) Tab() SettingsTab {
	return s.tab
}

// SetTab switches to tab
func (s *Settings) SetTab(tab SettingsTab) {
	if tab < TabText || tab > TabVoice {
		return
	}
	s.tab = tab
}

// NextTab moves one tab right, wrapping
func (s *Settings) NextTab() {
	s.tab = (s.tab + 1) % SettingsTab(len(settingsTabs))
}

// PrevTab moves one tab left, wrapping
func (s *Settings) PrevTab() {
	s.tab = (s.tab + SettingsTab(len(settingsTabs)) - 1) % SettingsTab(len(settingsTabs))
}

// Triggers returns the triggers listed on tab
func (s *Settings) Triggers(tab SettingsTab) []bot.Trigger {
	switch tab {
	case TabImage:
		return s.image
	case TabVoice:
		return s.audio
	default:
		return nil
	}
}

// SelectedTrigger returns the highlighted row on the active trigger tab
func (s *Settings) SelectedTrigger() (bot.Trigger, bool) {
	rows := s.Triggers(s.tab)
	if len(rows) == 0 {
		return bot.Trigger{}, false
	}
	return rows[s.selected[s.tab]], true
}

// MoveSelection moves the highlighted row by delta, clamped to the table
func (s *Settings) MoveSelection(delta int) {
	if s.tab == TabText {
		return
	}
	s.selected[s.tab] += delta
	s.clampSelection(s.tab)
}

func (s *Settings) clampSelection(tab SettingsTab) {
	n := len(s.Triggers(tab))
	idx := s.selected[tab]
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	s.selected[tab] = idx
}

// Update handles navigation keys. Action keys are left to the app.
func (s *Settings) Update(msg tea.Msg) (*Settings, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !s.focused {
		return s, nil
	}
	switch keyMsg.String() {
	case keys.Left, "h":
		s.PrevTab()
	case keys.Right, "l":
		s.NextTab()
	case "1", "2", "3":
		n, _ := strconv.Atoi(keyMsg.String())
		s.SetTab(SettingsTab(n - 1))
	case keys.Up, "k":
		s.MoveSelection(-1)
	case keys.Down, "j":
		s.MoveSelection(1)
	case keys.Home:
		s.MoveSelection(-len(s.Triggers(s.tab)))
	case keys.End:
		s.MoveSelection(len(s.Triggers(s.tab)))
	}
	return s, nil
}

func (s *Settings) renderTabs() string {
	var tabs []string
	for i, t := range settingsTabs {
		label := fmt.Sprintf("%d %s", i+1, t)
		if t == s.tab {
			tabs = append(tabs, SettingsTabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, SettingsTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func formatSeconds(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64) + "s"
}

func (s *Settings) renderText(width int) string {
	label := lipgloss.NewStyle().Foreground(ColorTextMuted)
	value := lipgloss.NewStyle().Foreground(ColorText).Bold(true)

	var sb strings.Builder
	sb.WriteString(PanelTitleStyle.Render("⏱  Typing Delay"))
	sb.WriteString("\n\n")
	rows := []struct{ name, val string }{
		{"Base delay", formatSeconds(s.delay.BaseSeconds)},
		{"Per word", formatSeconds(s.delay.PerWordSeconds)},
		{"Maximum", formatSeconds(s.delay.MaxSeconds)},
	}
	for _, r := range rows {
		sb.WriteString(label.Render(fmt.Sprintf("  %-12s", r.name)) + value.Render(r.val) + "\n")
	}
	sb.WriteString("\n")

	info := fmt.Sprintf("💡 Replies wait base + words × per-word seconds, capped at the maximum.\n"+
		"A %d-word reply waits about %.2fs.", bot.ExampleWordCount, s.delay.Estimate(bot.ExampleWordCount))
	sb.WriteString(InfoBoxStyle.Width(min(width, 72)).Render(info))
	return sb.String()
}

func (s *Settings) renderTable(width int) string {
	rows := s.Triggers(s.tab)
	kind := "image"
	if s.tab == TabVoice {
		kind = "voice"
	}

	var sb strings.Builder
	sb.WriteString(PanelTitleStyle.Render(fmt.Sprintf("%s (%d)", s.tab, len(rows))))
	sb.WriteString("\n\n")

	if len(rows) == 0 {
		sb.WriteString(lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true).
			Render(fmt.Sprintf("No %s triggers yet. Press a to add one.", kind)))
		return sb.String()
	}

	// name and keywords get a quarter and a third, path takes the rest
	nameW := max(width/4, 8)
	kwW := max(width/3, 10)
	pathW := max(width-nameW-kwW-4, 8)
	cell := func(s string, w int) string {
		s = modals.TruncateString(s, w)
		return s + strings.Repeat(" ", max(w-lipgloss.Width(s), 0))
	}
	line := func(name, kw, path string) string {
		return "  " + cell(name, nameW) + " " + cell(kw, kwW) + " " + cell(path, pathW)
	}

	sb.WriteString(TableHeaderStyle.Render(line("Name", "Keywords", "Path")))
	sb.WriteString("\n")
	sel := s.selected[s.tab]
	for i, t := range rows {
		row := line(t.Name, t.KeywordList(), t.Path)
		if i == sel && s.focused {
			sb.WriteString(TableRowSelectedStyle.Render(row))
		} else {
			sb.WriteString(TableRowStyle.Render(row))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// View renders the settings panel
func (s *Settings) View() string {
	panelStyle := PanelStyle
	if s.focused {
		panelStyle = PanelFocusedStyle
	}
	inner := GetViewContext().InnerWidth(s.width)

	var body string
	switch {
	case s.loading && !s.loaded:
		body = StatusLoadingStyle.Render("Loading settings...")
	case s.tab == TabText:
		body = s.renderText(inner)
	default:
		body = s.renderTable(inner)
	}
	if s.loadError != "" {
		body = StatusErrorStyle.Render("⚠ "+modals.TruncateString(s.loadError, inner-2)) + "\n\n" + body
	}

	content := lipgloss.JoinVertical(lipgloss.Left, s.renderTabs(), "", body)
	return panelStyle.Width(s.width).Height(s.height).Render(content)
}
