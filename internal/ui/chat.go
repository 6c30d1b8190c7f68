package ui

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/botconsole/internal/bot"
	"github.com/zhubert/botconsole/internal/ui/modals"
)

// ChatTitle is shown above the transcript
const ChatTitle = "Instagram Chatbot Preview"

// Chat is the chat simulator panel: a scrolling transcript and a composer
type Chat struct {
	viewport viewport.Model
	input    textarea.Model
	width    int
	height   int
	focused  bool

	messages  []bot.Message
	recipient string

	// pending counts sends whose reply has not resolved yet
	pending     int
	typingFrame int
	// typingID tags the running tick chain; ticks from an older chain are dropped
	typingID int
}

// NewChat creates a new chat panel addressed to recipient
func NewChat(recipient string) *Chat {
	ti := textarea.New()
	ti.Placeholder = "Type your message..."
	ti.CharLimit = 0
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""
	// enter sends; newlines need shift+enter
	ti.KeyMap.InsertNewline.SetKeys("shift+enter", "ctrl+j")
	modals.ApplyTextareaStyles(&ti)

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &Chat{
		viewport:  vp,
		input:     ti,
		recipient: recipient,
	}
	c.updateContent()
	return c
}

// SetSize sets the chat panel dimensions
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height

	ctx := GetViewContext()

	chatPanelHeight := height - InputTotalHeight
	c.viewport.SetWidth(ctx.InnerWidth(width))
	c.viewport.SetHeight(max(ctx.InnerHeight(chatPanelHeight)-ChatTitleHeight, 1))

	// Input width accounts for its own border and padding
	c.input.SetWidth(max(ctx.InnerWidth(width)-InputPaddingWidth, 1))
	c.updateContent()
}

// SetFocused sets the focus state
func (c *Chat) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// IsFocused returns the focus state
func (c *Chat) IsFocused() bool {
	return c.focused
}

// SetRecipient sets the test user id replies are addressed to
func (c *Chat) SetRecipient(id string) {
	c.recipient = id
}

// Recipient returns the test user id
func (c *Chat) Recipient() string {
	return c.recipient
}

// AddMessage appends a message to the transcript and scrolls to it
func (c *Chat) AddMessage(msg bot.Message) {
	c.messages = append(c.messages, msg)
	c.updateContent()
}

// Messages returns the transcript in order
func (c *Chat) Messages() []bot.Message {
	return c.messages
}

// ClearMessages empties the transcript. Pending replies still land.
func (c *Chat) ClearMessages() {
	c.messages = nil
	c.updateContent()
}

// LastBotContent returns the content of the newest bot message, or ""
func (c *Chat) LastBotContent() string {
	for i := len(c.messages) - 1; i >= 0; i-- {
		if !c.messages[i].IsUser() {
			return c.messages[i].Content()
		}
	}
	return ""
}

// RawInput returns the composer text exactly as typed
func (c *Chat) RawInput() string {
	return c.input.Value()
}

// ClearInput clears the composer
func (c *Chat) ClearInput() {
	c.input.Reset()
}

// SetInput sets the composer text
func (c *Chat) SetInput(value string) {
	c.input.SetValue(value)
}

func (c *Chat) updateContent() {
	wrapWidth := c.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	var parts []string
	if len(c.messages) == 0 && c.pending == 0 {
		parts = append(parts, renderWelcome(wrapWidth))
	}
	for _, msg := range c.messages {
		parts = append(parts, RenderMessage(msg, wrapWidth))
	}
	if c.pending > 0 {
		parts = append(parts, RenderTypingIndicator(c.typingFrame))
	}

	c.viewport.SetContent(strings.Join(parts, "\n\n"))
	c.viewport.GotoBottom()
}

// renderTitle renders the recipient line above the transcript
func (c *Chat) renderTitle(width int) string {
	status := lipgloss.NewStyle().Foreground(ColorSuccess).Render("● Active & Monitoring")
	title := PanelTitleStyle.Render(ChatTitle)
	user := lipgloss.NewStyle().Foreground(ColorTextMuted).Render(" · user " + c.recipient)
	left := title + user

	gap := width - lipgloss.Width(left) - lipgloss.Width(status)
	if gap < 1 {
		return modals.TruncateString(left, width)
	}
	return left + strings.Repeat(" ", gap) + status
}

// Update handles messages
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	if tick, ok := msg.(TypingTickMsg); ok {
		return c, c.handleTypingTick(tick)
	}

	if c.focused {
		if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
			switch keyMsg.String() {
			case "pgup", "pgdown", "ctrl+up", "ctrl+down", "home", "end":
				var cmd tea.Cmd
				c.viewport, cmd = c.viewport.Update(msg)
				return c, cmd
			}
			// Other keys go to the composer only, so typing never scrolls
			var cmd tea.Cmd
			c.input, cmd = c.input.Update(msg)
			return c, cmd
		}

		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		var vpCmd tea.Cmd
		c.viewport, vpCmd = c.viewport.Update(msg)
		return c, tea.Batch(cmd, vpCmd)
	}

	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	return c, cmd
}

// View renders the chat panel
func (c *Chat) View() string {
	panelStyle := PanelStyle
	if c.focused {
		panelStyle = PanelFocusedStyle
	}

	inner := GetViewContext().InnerWidth(c.width)
	body := lipgloss.JoinVertical(lipgloss.Left, c.renderTitle(inner), c.viewport.View())
	chatPanel := panelStyle.Width(c.width).Height(c.height - InputTotalHeight).Render(body)

	inputStyle := ChatInputStyle
	if c.focused {
		inputStyle = ChatInputFocusedStyle
	}
	inputArea := inputStyle.Width(c.width).Render(c.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, chatPanel, inputArea)
}
