package modals

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/botconsole/internal/bot"
)

const delayFieldCharLimit = 8

func errRequired(field string) error {
	return fmt.Errorf("%s is required", field)
}

// =============================================================================
// DelaySettingsState - State for the Typing Delay modal
// =============================================================================

// DelaySettingsState edits the three typing-delay parameters as text
type DelaySettingsState struct {
	Base    string
	PerWord string
	Max     string

	form *huh.Form
}

func (*DelaySettingsState) modalState() {}

func (s *DelaySettingsState) Title() string { return "Typing Delay Settings" }

func (s *DelaySettingsState) Help() string {
	return "Tab: next field  Enter: save  Esc: cancel"
}

func (s *DelaySettingsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	preview := ""
	if d, err := s.Settings(); err == nil {
		preview = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			MarginTop(1).
			Render(fmt.Sprintf("A %d-word reply waits about %.2fs", bot.ExampleWordCount, d.Estimate(bot.ExampleWordCount)))
	}

	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), preview, help)
}

func (s *DelaySettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// Settings parses the three fields into a delay record
func (s *DelaySettingsState) Settings() (bot.DelaySettings, error) {
	base, err := parseSeconds("base delay", s.Base)
	if err != nil {
		return bot.DelaySettings{}, err
	}
	perWord, err := parseSeconds("per-word delay", s.PerWord)
	if err != nil {
		return bot.DelaySettings{}, err
	}
	maxSecs, err := parseSeconds("max delay", s.Max)
	if err != nil {
		return bot.DelaySettings{}, err
	}
	return bot.DelaySettings{BaseSeconds: base, PerWordSeconds: perWord, MaxSeconds: maxSecs}, nil
}

func parseSeconds(field, v string) (float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, errRequired(field)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", field)
	}
	if f < 0 {
		return 0, errors.New(field + " cannot be negative")
	}
	return f, nil
}

func secondsValidator(field string) func(string) error {
	return func(v string) error {
		_, err := parseSeconds(field, v)
		return err
	}
}

func formatSeconds(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// NewDelaySettingsState creates a DelaySettingsState prefilled from current
func NewDelaySettingsState(current bot.DelaySettings) *DelaySettingsState {
	current = current.WithDefaults()
	s := &DelaySettingsState{
		Base:    formatSeconds(current.BaseSeconds),
		PerWord: formatSeconds(current.PerWordSeconds),
		Max:     formatSeconds(current.MaxSeconds),
	}

	s.form = newModalForm(ModalInputWidth,
		huh.NewInput().
			Title("Base delay (seconds)").
			Description("Fixed wait before every reply").
			CharLimit(delayFieldCharLimit).
			Validate(secondsValidator("base delay")).
			Value(&s.Base),
		huh.NewInput().
			Title("Per-word delay (seconds)").
			Description("Added for each word in the reply").
			CharLimit(delayFieldCharLimit).
			Validate(secondsValidator("per-word delay")).
			Value(&s.PerWord),
		huh.NewInput().
			Title("Max delay (seconds)").
			Description("Upper bound on the total wait").
			CharLimit(delayFieldCharLimit).
			Validate(secondsValidator("max delay")).
			Value(&s.Max),
	)
	return s
}
