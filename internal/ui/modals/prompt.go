package modals

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// PromptKind identifies what a single-line prompt collects
type PromptKind int

const (
	PromptImageURL PromptKind = iota
	PromptAudioURL
	PromptRecipient
)

// =============================================================================
// PromptState - State for single-line input modals
// =============================================================================

type PromptState struct {
	Kind  PromptKind
	Input textinput.Model
}

func (*PromptState) modalState() {}

func (s *PromptState) Title() string {
	switch s.Kind {
	case PromptImageURL:
		return "Send Image"
	case PromptAudioURL:
		return "Send Audio"
	default:
		return "Recipient ID"
	}
}

func (s *PromptState) Help() string {
	if s.Kind == PromptRecipient {
		return "Enter: save  Esc: cancel"
	}
	return "Enter: preview in chat  Esc: cancel"
}

func (s *PromptState) label() string {
	switch s.Kind {
	case PromptImageURL:
		return "Image URL (local preview, nothing is sent to the backend):"
	case PromptAudioURL:
		return "Audio URL (local preview, nothing is sent to the backend):"
	default:
		return "User ID the simulator chats as:"
	}
}

func (s *PromptState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	label := renderLabel(s.label())
	input := lipgloss.NewStyle().
		BorderLeft(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorPrimary).
		PaddingLeft(1).
		Render(s.Input.View())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, label, input, help)
}

func (s *PromptState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.Input, cmd = s.Input.Update(msg)
	return s, cmd
}

// Value returns the trimmed input
func (s *PromptState) Value() string {
	return strings.TrimSpace(s.Input.Value())
}

// NewPromptState creates a focused prompt prefilled with initial
func NewPromptState(kind PromptKind, initial string) *PromptState {
	ti := textinput.New()
	ti.CharLimit = ModalInputCharLimit
	ti.SetWidth(ModalInputWidth)
	switch kind {
	case PromptImageURL:
		ti.Placeholder = "https://example.com/photo.jpg"
	case PromptAudioURL:
		ti.Placeholder = "https://example.com/voice.mp3"
	default:
		ti.Placeholder = "test_user_123"
	}
	ti.SetValue(initial)
	ti.Focus()

	return &PromptState{Kind: kind, Input: ti}
}
