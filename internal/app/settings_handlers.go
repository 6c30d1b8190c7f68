package app

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/botconsole/internal/api"
	"github.com/zhubert/botconsole/internal/bot"
	"github.com/zhubert/botconsole/internal/errors"
	"github.com/zhubert/botconsole/internal/logger"
	"github.com/zhubert/botconsole/internal/ui/modals"
)

// Result texts shown after settings changes
const (
	msgTriggerAdded     = "Trigger added successfully!"
	msgTriggerAddFailed = "Failed to add trigger: "
	msgTriggerDeleted   = "Trigger deleted successfully!"
	msgTriggerDelFailed = "Failed to delete trigger"
	msgDelayUpdated     = "Delay settings updated successfully!"
	msgDelayFailed      = "Failed to update delay settings"
	msgLoadFailed       = "Failed to load triggers: "
)

// TriggersLoadedMsg carries the result of GET /triggers
type TriggersLoadedMsg struct {
	Response api.TriggersResponse
	Err      error
}

// TriggerAddedMsg carries the result of POST /triggers/add
type TriggerAddedMsg struct {
	Trigger bot.Trigger
	Err     error
}

// TriggerDeletedMsg carries the result of DELETE /triggers/{name}
type TriggerDeletedMsg struct {
	Name string
	Err  error
}

// DelayUpdatedMsg carries the result of PUT /settings/delay
type DelayUpdatedMsg struct {
	Delay bot.DelaySettings
	Err   error
}

// loadTriggers marks the panel loading and fetches triggers and delay settings
func (m *Model) loadTriggers() tea.Cmd {
	m.settings.SetLoading(true)
	backend := m.backend
	return func() tea.Msg {
		resp, err := backend.Triggers(context.Background())
		return TriggersLoadedMsg{Response: resp, Err: err}
	}
}

func (m *Model) handleTriggersLoaded(msg TriggersLoadedMsg) tea.Cmd {
	if msg.Err != nil {
		logger.WithComponent("settings").Error("fetch triggers failed", "error", msg.Err)
		detail := api.Detail(msg.Err)
		m.settings.SetLoadError(detail)
		return m.ShowFlashError(msgLoadFailed + detail)
	}
	m.settings.SetTriggers(msg.Response.Triggers, msg.Response.TypingDelay)
	return nil
}

// submitAddTrigger validates the form and posts the trigger. Invalid input
// stays in the modal with an inline error and nothing is sent.
func (m *Model) submitAddTrigger(state *modals.AddTriggerState) tea.Cmd {
	t, err := state.Trigger()
	if err != nil {
		m.modal.SetError(errors.Message(err))
		return nil
	}
	m.modal.Hide()

	backend := m.backend
	return func() tea.Msg {
		return TriggerAddedMsg{Trigger: t, Err: backend.AddTrigger(context.Background(), t)}
	}
}

func (m *Model) handleTriggerAdded(msg TriggerAddedMsg) tea.Cmd {
	if msg.Err != nil {
		logger.WithComponent("settings").Error("add trigger failed", "name", msg.Trigger.Name, "error", msg.Err)
		text := msgTriggerAddFailed + api.Detail(msg.Err)
		return m.showSettingsResult(text, false)
	}

	if state, ok := m.addForms[msg.Trigger.Type]; ok {
		state.Reset()
	}
	logger.WithComponent("settings").Info("trigger added", "name", msg.Trigger.Name, "type", msg.Trigger.Type)
	return tea.Batch(m.showSettingsResult(msgTriggerAdded, true), m.loadTriggers())
}

// submitDeleteTrigger deletes the confirmed trigger. Choosing cancel closes
// the modal without a call.
func (m *Model) submitDeleteTrigger(state *modals.ConfirmDeleteTriggerState) tea.Cmd {
	m.modal.Hide()
	if !state.ShouldDelete() {
		return nil
	}

	name := state.Trigger.Name
	backend := m.backend
	return func() tea.Msg {
		return TriggerDeletedMsg{Name: name, Err: backend.DeleteTrigger(context.Background(), name)}
	}
}

func (m *Model) handleTriggerDeleted(msg TriggerDeletedMsg) tea.Cmd {
	if msg.Err != nil {
		logger.WithComponent("settings").Error("delete trigger failed", "name", msg.Name, "error", msg.Err)
		return m.showSettingsResult(msgTriggerDelFailed, false)
	}
	logger.WithComponent("settings").Info("trigger deleted", "name", msg.Name)
	return tea.Batch(m.showSettingsResult(msgTriggerDeleted, true), m.loadTriggers())
}

// submitDelay parses the delay form and sends the whole record
func (m *Model) submitDelay(state *modals.DelaySettingsState) tea.Cmd {
	d, err := state.Settings()
	if err != nil {
		m.modal.SetError(errors.Message(err))
		return nil
	}
	m.modal.Hide()

	backend := m.backend
	return func() tea.Msg {
		return DelayUpdatedMsg{Delay: d, Err: backend.UpdateDelay(context.Background(), d)}
	}
}

func (m *Model) handleDelayUpdated(msg DelayUpdatedMsg) tea.Cmd {
	if msg.Err != nil {
		logger.WithComponent("settings").Error("update delay failed", "error", msg.Err)
		return m.showSettingsResult(msgDelayFailed, false)
	}
	m.settings.SetDelay(msg.Delay)
	return m.showSettingsResult(msgDelayUpdated, true)
}
