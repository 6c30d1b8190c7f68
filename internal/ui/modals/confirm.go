package modals

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/botconsole/internal/bot"
	"github.com/zhubert/botconsole/internal/keys"
)

// =============================================================================
// ConfirmDeleteTriggerState - State for the Confirm Delete modal
// =============================================================================

type ConfirmDeleteTriggerState struct {
	Trigger       bot.Trigger
	Options       []string
	SelectedIndex int
}

func (*ConfirmDeleteTriggerState) modalState() {}

func (s *ConfirmDeleteTriggerState) Title() string { return "Delete Trigger?" }

func (s *ConfirmDeleteTriggerState) Help() string {
	return "up/down to select, Enter to confirm, Esc to cancel"
}

func (s *ConfirmDeleteTriggerState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	nameLabel := lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true).
		Render(s.Trigger.Name)

	detail := renderLabel(TruncateString("Keywords: "+s.Trigger.KeywordList(), ModalWidth-8))

	message := lipgloss.NewStyle().
		Foreground(ColorText).
		MarginTop(1).
		MarginBottom(1).
		Render("The backend stops sending this " + string(s.Trigger.Type) + " reply.")

	optionList := RenderSelectableList(s.Options, s.SelectedIndex)
	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, nameLabel, detail, message, optionList, help)
}

func (s *ConfirmDeleteTriggerState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Up, "k":
			if s.SelectedIndex > 0 {
				s.SelectedIndex--
			}
		case keys.Down, "j":
			if s.SelectedIndex < len(s.Options)-1 {
				s.SelectedIndex++
			}
		}
	}
	return s, nil
}

// ShouldDelete reports whether the delete option is selected
func (s *ConfirmDeleteTriggerState) ShouldDelete() bool {
	return s.SelectedIndex == 1
}

// NewConfirmDeleteTriggerState creates a confirmation for t with Cancel preselected
func NewConfirmDeleteTriggerState(t bot.Trigger) *ConfirmDeleteTriggerState {
	return &ConfirmDeleteTriggerState{
		Trigger:       t,
		Options:       []string{"Cancel", "Delete trigger"},
		SelectedIndex: 0,
	}
}
