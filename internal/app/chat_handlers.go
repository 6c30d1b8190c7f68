package app

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/botconsole/internal/api"
	"github.com/zhubert/botconsole/internal/bot"
	"github.com/zhubert/botconsole/internal/clipboard"
	"github.com/zhubert/botconsole/internal/logger"
	"github.com/zhubert/botconsole/internal/ui/modals"
)

// ChatResponseMsg carries the backend's answer to one send
type ChatResponseMsg struct {
	UserID   string
	Response api.ChatResponse
	Err      error
}

// ReplyReadyMsg is sent once a reply's typing delay has elapsed
type ReplyReadyMsg struct {
	Text string
}

// ClipboardCopiedMsg reports the result of copying a reply
type ClipboardCopiedMsg struct {
	Err error
}

// sendMessage turns the composer text into a user message and posts it.
// Blank input is ignored without a network call.
func (m *Model) sendMessage() tea.Cmd {
	raw := m.chat.RawInput()
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	userID := m.chat.Recipient()
	m.chat.AddMessage(bot.NewUserMessage(raw))
	m.chat.ClearInput()
	typing := m.chat.BeginPending()

	logger.WithComponent("chat").Debug("sending message", "user", userID, "len", len(raw))
	return tea.Batch(typing, postChat(m.backend, userID, raw))
}

// postChat returns a command that runs POST /chat
func postChat(backend Backend, userID, message string) tea.Cmd {
	return func() tea.Msg {
		resp, err := backend.Chat(context.Background(), userID, message)
		return ChatResponseMsg{UserID: userID, Response: resp, Err: err}
	}
}

// handleChatResponse waits out the declared typing delay on success, or
// shows the failure immediately.
func (m *Model) handleChatResponse(msg ChatResponseMsg) tea.Cmd {
	if msg.Err != nil {
		logger.WithComponent("chat").Error("send failed", "user", msg.UserID, "error", msg.Err)
		m.chat.EndPending()
		m.chat.AddMessage(bot.NewErrorMessage(api.Detail(msg.Err)))
		return nil
	}

	text := msg.Response.Response
	delay := bot.ReplyDelay(msg.Response.TypingDelay)
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ReplyReadyMsg{Text: text}
	})
}

// handleReplyReady appends the bot reply and resolves one pending send
func (m *Model) handleReplyReady(msg ReplyReadyMsg) {
	m.chat.EndPending()
	m.chat.AddMessage(bot.NewBotMessage(msg.Text))
}

// injectMedia appends a local media preview. Nothing is sent to the backend.
func (m *Model) injectMedia(kind bot.Kind, url string) {
	if url == "" {
		return
	}
	label := "image"
	if kind == bot.KindAudio {
		label = "audio"
	}
	logger.WithComponent("chat").Info("Sending "+label, "url", url, "user", m.chat.Recipient())
	m.chat.AddMessage(bot.NewMediaMessage(kind, url))
}

// copyLastReply copies the newest bot reply text or media URL
func (m *Model) copyLastReply() tea.Cmd {
	content := m.chat.LastBotContent()
	if content == "" {
		return m.ShowFlashWarning("No bot reply to copy")
	}
	return func() tea.Msg {
		return ClipboardCopiedMsg{Err: writeClipboard(content)}
	}
}

func (m *Model) handleClipboardCopied(msg ClipboardCopiedMsg) tea.Cmd {
	if msg.Err != nil {
		logger.WithComponent("chat").Warn("clipboard write failed", "error", msg.Err)
		return m.ShowFlashError("Copy failed: " + msg.Err.Error())
	}
	return m.ShowFlashSuccess("Copied last reply")
}

// Clipboard access, replaced in tests
var (
	defaultReadClipboard  = clipboard.ReadText
	defaultWriteClipboard = clipboard.WriteText

	readClipboard  = defaultReadClipboard
	writeClipboard = defaultWriteClipboard
)

// clipboardURL returns the clipboard text when it looks like a URL, so media
// prompts open prefilled with a copied link.
func clipboardURL() string {
	text, err := readClipboard()
	if err != nil {
		return ""
	}
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "http://") || strings.HasPrefix(text, "https://") {
		return text
	}
	return ""
}

// handlePromptSubmit applies a submitted single-line prompt
func (m *Model) handlePromptSubmit(state *modals.PromptState) tea.Cmd {
	value := state.Value()
	switch state.Kind {
	case modals.PromptImageURL:
		m.injectMedia(bot.KindImage, value)
	case modals.PromptAudioURL:
		m.injectMedia(bot.KindAudio, value)
	case modals.PromptRecipient:
		if value == "" {
			m.modal.SetError("User id cannot be empty")
			return nil
		}
		m.setRecipient(value)
		m.modal.Hide()
		return m.ShowFlashInfo("Chatting as " + value)
	}
	m.modal.Hide()
	return nil
}
