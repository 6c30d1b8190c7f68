package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/botconsole/internal/keys"
	"github.com/zhubert/botconsole/internal/ui/modals"
)

// handleModalKey routes modal key events to the handler for the modal type.
// Enter submits and Esc cancels; other keys go to the modal itself.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if help, ok := m.modal.State.(*modals.HelpState); ok {
		return m.handleHelpModal(key, msg, help)
	}

	if key == keys.Escape {
		m.modal.Hide()
		return m, nil
	}

	if key == keys.Enter {
		switch s := m.modal.State.(type) {
		case *modals.PromptState:
			return m, m.handlePromptSubmit(s)
		case *modals.AddTriggerState:
			return m, m.submitAddTrigger(s)
		case *modals.ConfirmDeleteTriggerState:
			return m, m.submitDeleteTrigger(s)
		case *modals.DelaySettingsState:
			return m, m.submitDelay(s)
		}
	}

	return m.forwardToModal(msg)
}

// handleHelpModal handles key events for the Help modal.
func (m *Model) handleHelpModal(key string, msg tea.KeyPressMsg, state *modals.HelpState) (tea.Model, tea.Cmd) {
	// While filtering, forward all keys to the list (Esc cancels filter, Enter applies)
	if state.IsFiltering() {
		return m.forwardToModal(msg)
	}

	switch key {
	case keys.Escape, "?", "q", keys.Enter:
		m.modal.Hide()
		return m, nil
	}
	return m.forwardToModal(msg)
}

func (m *Model) forwardToModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	// Clear a stale inline error once the user edits again
	if _, isKey := msg.(tea.KeyPressMsg); isKey && m.modal.GetError() != "" {
		m.modal.SetError("")
	}
	return m, cmd
}
