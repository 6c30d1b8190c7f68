package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/botconsole/internal/keys"
	"github.com/zhubert/botconsole/internal/logger"
	"github.com/zhubert/botconsole/internal/ui"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case StatsPollTickMsg:
		return m, m.handleStatsPollTick()

	case StatsResultMsg:
		m.handleStatsResult(msg)
		return m, nil

	case ChatResponseMsg:
		return m, m.handleChatResponse(msg)

	case ReplyReadyMsg:
		m.handleReplyReady(msg)
		return m, nil

	case ClipboardCopiedMsg:
		return m, m.handleClipboardCopied(msg)

	case TriggersLoadedMsg:
		return m, m.handleTriggersLoaded(msg)

	case TriggerAddedMsg:
		return m, m.handleTriggerAdded(msg)

	case TriggerDeletedMsg:
		return m, m.handleTriggerDeleted(msg)

	case DelayUpdatedMsg:
		return m, m.handleDelayUpdated(msg)

	case ui.FlashTickMsg:
		m.footer.ClearIfExpired(m.now())
		return m, nil

	case ui.TypingTickMsg:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd
	}

	// Everything else (mouse wheel, paste, cursor blink) goes to the modal
	// when one is open, otherwise to the active panel
	if m.modal.IsVisible() {
		return m.forwardToModal(msg)
	}
	var cmd tea.Cmd
	if m.view == ui.ViewChat {
		m.chat, cmd = m.chat.Update(msg)
	} else {
		m.settings, cmd = m.settings.Update(msg)
	}
	return m, cmd
}

// handleKey routes a key press: global quit, then the open modal, then
// shortcuts, then the active panel.
func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == keys.CtrlC {
		logger.WithComponent("app").Info("quit requested")
		return m, tea.Quit
	}

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	if result, cmd, ok := m.ExecuteShortcut(key); ok {
		return result, cmd
	}

	var cmd tea.Cmd
	if m.view == ui.ViewChat {
		m.chat, cmd = m.chat.Update(msg)
	} else {
		m.settings, cmd = m.settings.Update(msg)
	}
	return m, cmd
}
