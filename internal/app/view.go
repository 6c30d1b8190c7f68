package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/botconsole/internal/ui"
)

// updateSizes recalculates and applies dimensions to all UI components
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.sidebar.SetSize(ctx.SidebarWidth, ctx.ContentHeight)
	m.chat.SetSize(ctx.MainWidth, ctx.ContentHeight)
	m.settings.SetSize(ctx.MainWidth, ctx.ContentHeight)
}

// updateFooterContext feeds the footer what it needs to pick bindings
func (m *Model) updateFooterContext() {
	_, hasTrigger := m.settings.SelectedTrigger()
	m.footer.SetContext(ui.FooterContext{
		View:        m.view,
		SettingsTab: m.settings.Tab(),
		Typing:      m.chat.IsTyping(),
		HasTrigger:  hasTrigger,
	})
}

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current screen as a string.
// Tests use it to inspect the screen without a terminal.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	m.updateFooterContext()

	main := m.chat.View()
	if m.view == ui.ViewSettings {
		main = m.settings.View()
	}

	panels := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), main)
	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), panels, m.footer.View())
}
