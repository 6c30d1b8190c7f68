package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/botconsole/internal/logger"
	"github.com/zhubert/botconsole/internal/notification"
	"github.com/zhubert/botconsole/internal/ui"
)

// ShowFlash sets the footer flash and returns the tick that expires it
func (m *Model) ShowFlash(text string, flashType ui.FlashType) tea.Cmd {
	m.footer.SetFlash(text, flashType)
	return ui.FlashTick()
}

func (m *Model) ShowFlashError(text string) tea.Cmd   { return m.ShowFlash(text, ui.FlashError) }
func (m *Model) ShowFlashWarning(text string) tea.Cmd { return m.ShowFlash(text, ui.FlashWarning) }
func (m *Model) ShowFlashInfo(text string) tea.Cmd    { return m.ShowFlash(text, ui.FlashInfo) }
func (m *Model) ShowFlashSuccess(text string) tea.Cmd { return m.ShowFlash(text, ui.FlashSuccess) }

// showSettingsResult reports the outcome of a settings change in the footer
// and, when enabled, as a desktop notification.
func (m *Model) showSettingsResult(text string, ok bool) tea.Cmd {
	flash := m.ShowFlashSuccess
	if !ok {
		flash = m.ShowFlashError
	}
	return tea.Batch(flash(text), m.notifyResult(text))
}

// notifyResult returns nil when notifications are disabled in config
func (m *Model) notifyResult(text string) tea.Cmd {
	if !m.config.GetNotificationsEnabled() {
		return nil
	}
	return func() tea.Msg {
		if err := notification.SettingsResult(text); err != nil {
			logger.WithComponent("settings").Warn("notification failed", "error", err)
		}
		return nil
	}
}
