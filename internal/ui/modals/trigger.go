package modals

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/botconsole/internal/bot"
)

// Character limits for trigger form inputs
const (
	TriggerNameCharLimit     = 64
	TriggerKeywordsCharLimit = 256
	TriggerURLCharLimit      = 1024
)

// =============================================================================
// AddTriggerState - State for the Add Trigger modal
// =============================================================================

// AddTriggerState collects a new keyword trigger. The kind is fixed by the
// settings tab the modal was opened from.
type AddTriggerState struct {
	Kind     bot.Kind
	Name     string
	Keywords string
	URL      string

	form *huh.Form
}

func (*AddTriggerState) modalState() {}

func (s *AddTriggerState) PreferredWidth() int { return ModalWidthWide }

func (s *AddTriggerState) Title() string {
	if s.Kind == bot.KindAudio {
		return "Add Voice Trigger"
	}
	return "Add Image Trigger"
}

func (s *AddTriggerState) Help() string {
	return "Tab: next field  Enter: add  Esc: cancel"
}

func (s *AddTriggerState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *AddTriggerState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// Trigger validates the form and returns the trigger to submit.
// Every field is required after trimming.
func (s *AddTriggerState) Trigger() (bot.Trigger, error) {
	return bot.NewTrigger(s.Name, s.Keywords, s.Kind, s.URL)
}

// Reset clears the entered values
func (s *AddTriggerState) Reset() {
	s.Name = ""
	s.Keywords = ""
	s.URL = ""
	s.form = s.buildForm()
}

func (s *AddTriggerState) buildForm() *huh.Form {
	urlPlaceholder := "https://example.com/menu.jpg"
	if s.Kind == bot.KindAudio {
		urlPlaceholder = "https://example.com/greeting.mp3"
	}

	return newModalForm(ModalWidthWide-formContentPadding,
		huh.NewInput().
			Title("Trigger name").
			Placeholder("menu").
			CharLimit(TriggerNameCharLimit).
			Validate(requiredField("name")).
			Value(&s.Name),
		huh.NewInput().
			Title("Keywords").
			Description("Comma-separated, e.g. menu, food, order").
			Placeholder("menu, food").
			CharLimit(TriggerKeywordsCharLimit).
			Validate(requiredKeywords).
			Value(&s.Keywords),
		huh.NewInput().
			Title(mediaLabel(s.Kind)+" URL").
			Placeholder(urlPlaceholder).
			CharLimit(TriggerURLCharLimit).
			Validate(requiredField("url")).
			Value(&s.URL),
	)
}

// NewAddTriggerState creates a new AddTriggerState for the given media kind
func NewAddTriggerState(kind bot.Kind) *AddTriggerState {
	s := &AddTriggerState{Kind: kind}
	s.form = s.buildForm()
	return s
}

func mediaLabel(kind bot.Kind) string {
	if kind == bot.KindAudio {
		return "Audio"
	}
	return "Image"
}

func requiredField(name string) func(string) error {
	return func(v string) error {
		if strings.TrimSpace(v) == "" {
			return errRequired(name)
		}
		return nil
	}
}

func requiredKeywords(v string) error {
	if len(bot.ParseKeywords(v)) == 0 {
		return errRequired("keywords")
	}
	return nil
}
