// Package app wires the console's Bubble Tea model: it owns the UI
// components, routes keys and messages, and turns backend calls into
// commands whose results come back as messages.
package app

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/botconsole/internal/api"
	"github.com/zhubert/botconsole/internal/bot"
	"github.com/zhubert/botconsole/internal/config"
	"github.com/zhubert/botconsole/internal/ui"
	"github.com/zhubert/botconsole/internal/ui/modals"
)

// Backend is the chatbot REST API the console drives
type Backend interface {
	Stats(ctx context.Context) (bot.Stats, error)
	Chat(ctx context.Context, userID, message string) (api.ChatResponse, error)
	Triggers(ctx context.Context) (api.TriggersResponse, error)
	AddTrigger(ctx context.Context, t bot.Trigger) error
	DeleteTrigger(ctx context.Context, name string) error
	UpdateDelay(ctx context.Context, d bot.DelaySettings) error
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	backend Backend
	version string

	header   *ui.Header
	footer   *ui.Footer
	sidebar  *ui.Sidebar
	chat     *ui.Chat
	settings *ui.Settings
	modal    *ui.Modal

	width  int
	height int
	view   ui.View

	// addForms keeps unsent add-trigger input per kind until a submit succeeds
	addForms map[bot.Kind]*modals.AddTriggerState

	// now is replaced in tests
	now func() time.Time
}

// New creates a new app model talking to backend
func New(cfg *config.Config, backend Backend, version string) *Model {
	m := &Model{
		config:   cfg,
		backend:  backend,
		version:  version,
		header:   ui.NewHeader(),
		footer:   ui.NewFooter(),
		sidebar:  ui.NewSidebar(),
		chat:     ui.NewChat(cfg.GetTestUserID()),
		settings: ui.NewSettings(),
		modal:    ui.NewModal(),
		view:     ui.ViewChat,
		addForms: make(map[bot.Kind]*modals.AddTriggerState),
		now:      time.Now,
	}

	m.sidebar.SetAPIURL(cfg.GetAPIURL())
	m.sidebar.SetRecipient(cfg.GetTestUserID())
	m.chat.SetFocused(true)
	m.header.SetView(m.view)
	return m
}

// Init fetches stats immediately and starts the poll loop
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		fetchStats(m.backend),
		StatsPollTick(m.config.StatsInterval()),
	)
}

// ActiveView returns the active main view
func (m *Model) ActiveView() ui.View {
	return m.view
}

// setView switches the main panel and moves focus with it. The first visit
// to settings loads the triggers.
func (m *Model) setView(v ui.View) tea.Cmd {
	m.view = v
	m.header.SetView(v)
	m.chat.SetFocused(v == ui.ViewChat)
	m.settings.SetFocused(v == ui.ViewSettings)

	if v == ui.ViewSettings && !m.settings.Loaded() && !m.settings.IsLoading() {
		return m.loadTriggers()
	}
	return nil
}

// toggleView flips between chat and settings
func (m *Model) toggleView() tea.Cmd {
	if m.view == ui.ViewChat {
		return m.setView(ui.ViewSettings)
	}
	return m.setView(ui.ViewChat)
}

// setRecipient changes the simulated user for subsequent sends
func (m *Model) setRecipient(id string) {
	m.chat.SetRecipient(id)
	m.sidebar.SetRecipient(id)
	m.config.SetTestUserID(id)
}
