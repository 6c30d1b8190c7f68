package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/botconsole/internal/keys"
	"github.com/zhubert/botconsole/internal/ui"
	"github.com/zhubert/botconsole/internal/ui/modals"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for shortcuts shown in help.
type Shortcut struct {
	Key         string                              // The key binding (e.g., "a", "ctrl+g")
	DisplayKey  string                              // Display name in help; defaults to Key
	Description string                              // Human-readable description
	Category    string                              // Section for help modal grouping
	Views       []ui.View                           // Views the shortcut works in; nil means all
	Handler     func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition   func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryGeneral  = "General"
	CategoryChat     = "Chat Simulator"
	CategorySettings = "Settings"
)

var categoryOrder = []string{CategoryGeneral, CategoryChat, CategorySettings}

var (
	chatOnly     = []ui.View{ui.ViewChat}
	settingsOnly = []ui.View{ui.ViewSettings}
)

// ShortcutRegistry lists every executable shortcut
var ShortcutRegistry = []Shortcut{
	{Key: keys.Tab, DisplayKey: "Tab", Description: "Switch between chat and settings", Category: CategoryGeneral, Handler: shortcutToggleView},
	{Key: "q", Description: "Quit", Category: CategoryGeneral, Views: settingsOnly, Handler: shortcutQuit},

	{Key: keys.Enter, DisplayKey: "Enter", Description: "Send message", Category: CategoryChat, Views: chatOnly, Handler: shortcutSend},
	{Key: keys.CtrlG, Description: "Preview an image reply", Category: CategoryChat, Views: chatOnly, Handler: shortcutImagePrompt},
	{Key: keys.CtrlA, Description: "Preview an audio reply", Category: CategoryChat, Views: chatOnly, Handler: shortcutAudioPrompt},
	{Key: keys.CtrlU, Description: "Change test user id", Category: CategoryChat, Views: chatOnly, Handler: shortcutRecipient},
	{Key: keys.CtrlY, Description: "Copy last bot reply", Category: CategoryChat, Views: chatOnly, Handler: shortcutCopyReply},
	{Key: keys.CtrlL, Description: "Clear transcript", Category: CategoryChat, Views: chatOnly, Handler: shortcutClear},

	{Key: "a", Description: "Add trigger", Category: CategorySettings, Views: settingsOnly, Handler: shortcutAddTrigger,
		Condition: func(m *Model) bool { return m.settings.Tab() != ui.TabText }},
	{Key: "d", Description: "Delete selected trigger", Category: CategorySettings, Views: settingsOnly, Handler: shortcutDeleteTrigger,
		Condition: func(m *Model) bool { _, ok := m.settings.SelectedTrigger(); return ok }},
	{Key: "e", Description: "Edit typing delay", Category: CategorySettings, Views: settingsOnly, Handler: shortcutEditDelay,
		Condition: func(m *Model) bool { return m.settings.Tab() == ui.TabText }},
	{Key: "r", Description: "Reload triggers", Category: CategorySettings, Views: settingsOnly, Handler: shortcutReload},
}

// helpShortcut is kept out of the registry because its handler reads the
// registry. ExecuteShortcut calls shortcutHelp directly.
var helpShortcut = Shortcut{
	Key:         "?",
	Description: "Show keyboard shortcuts",
	Category:    CategoryGeneral,
	// In chat, ? only opens help while the composer is empty
	Condition: func(m *Model) bool { return m.view != ui.ViewChat || m.chat.RawInput() == "" },
}

// DisplayOnlyShortcuts are shown in help but handled by the components
var DisplayOnlyShortcuts = []Shortcut{
	{DisplayKey: "ctrl+c", Description: "Quit", Category: CategoryGeneral},
	{DisplayKey: "shift+enter", Description: "New line in message", Category: CategoryChat},
	{DisplayKey: "PgUp/PgDn", Description: "Scroll transcript", Category: CategoryChat},
	{DisplayKey: "Home/End", Description: "Jump to top or bottom", Category: CategoryChat},
	{DisplayKey: "←/→ or 1-3", Description: "Switch section", Category: CategorySettings},
	{DisplayKey: "↑/↓ or j/k", Description: "Select trigger", Category: CategorySettings},
}

func (s Shortcut) inView(v ui.View) bool {
	if s.Views == nil {
		return true
	}
	for _, sv := range s.Views {
		if sv == v {
			return true
		}
	}
	return false
}

// isShortcutApplicable checks a shortcut's guards against the current state
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	if !s.inView(m.view) {
		return false
	}
	return s.Condition == nil || s.Condition(m)
}

// ExecuteShortcut finds and executes a shortcut by key.
// Returns (model, cmd, true) if the shortcut was found and its guards passed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	if key == helpShortcut.Key {
		if !m.isShortcutApplicable(helpShortcut) {
			return m, nil, false
		}
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if !m.isShortcutApplicable(s) {
			return m, nil, false
		}
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// getApplicableHelpSections builds help sections for the current view
func (m *Model) getApplicableHelpSections() []modals.HelpSection {
	categories := make(map[string][]modals.HelpShortcut)
	add := func(s Shortcut) {
		key := s.DisplayKey
		if key == "" {
			key = s.Key
		}
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{Key: key, Desc: s.Description})
	}

	for _, s := range append(ShortcutRegistry, helpShortcut) {
		if s.inView(m.view) {
			add(s)
		}
	}
	for _, s := range DisplayOnlyShortcuts {
		if s.Category == CategoryGeneral ||
			(s.Category == CategoryChat && m.view == ui.ViewChat) ||
			(s.Category == CategorySettings && m.view == ui.ViewSettings) {
			add(s)
		}
	}

	var sections []modals.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts := categories[cat]; len(shortcuts) > 0 {
			sections = append(sections, modals.HelpSection{Title: cat, Shortcuts: shortcuts})
		}
	}
	return sections
}

func shortcutToggleView(m *Model) (tea.Model, tea.Cmd) {
	return m, m.toggleView()
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewHelpState(m.getApplicableHelpSections()))
	return m, nil
}

func shortcutSend(m *Model) (tea.Model, tea.Cmd) {
	return m, m.sendMessage()
}

func shortcutImagePrompt(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewPromptState(modals.PromptImageURL, clipboardURL()))
	return m, nil
}

func shortcutAudioPrompt(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewPromptState(modals.PromptAudioURL, clipboardURL()))
	return m, nil
}

func shortcutRecipient(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewPromptState(modals.PromptRecipient, m.chat.Recipient()))
	return m, nil
}

func shortcutCopyReply(m *Model) (tea.Model, tea.Cmd) {
	return m, m.copyLastReply()
}

func shortcutClear(m *Model) (tea.Model, tea.Cmd) {
	m.chat.ClearMessages()
	return m, nil
}

func shortcutAddTrigger(m *Model) (tea.Model, tea.Cmd) {
	kind := m.settings.Tab().Kind()
	state, ok := m.addForms[kind]
	if !ok {
		state = modals.NewAddTriggerState(kind)
		m.addForms[kind] = state
	}
	m.modal.Show(state)
	return m, nil
}

func shortcutDeleteTrigger(m *Model) (tea.Model, tea.Cmd) {
	t, _ := m.settings.SelectedTrigger()
	m.modal.Show(modals.NewConfirmDeleteTriggerState(t))
	return m, nil
}

func shortcutEditDelay(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewDelaySettingsState(m.settings.Delay()))
	return m, nil
}

func shortcutReload(m *Model) (tea.Model, tea.Cmd) {
	if m.settings.IsLoading() {
		return m, nil
	}
	return m, m.loadTriggers()
}
