package ui

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/botconsole/internal/bot"
)

// Avatars shown beside each bubble
const (
	BotAvatar  = "🤖"
	UserAvatar = "👤"
)

// Media markers used in place of embedded players
const (
	ImageMarker = "🖼  "
	AudioMarker = "🎵 ▶ "
)

// FormatBubbleTime formats a message timestamp as HH:mm
func FormatBubbleTime(t time.Time) string {
	return t.Format("15:04")
}

// bubbleWidth returns the widest a bubble may be inside a transcript of width
func bubbleWidth(width int) int {
	if width <= 0 {
		width = DefaultWrapWidth
	}
	return max(width*BubbleWidthPercent/100, 12)
}

// messageBody returns the unstyled text a message renders
func messageBody(msg bot.Message) string {
	switch msg.Kind {
	case bot.KindImage:
		return ImageMarker + msg.URL
	case bot.KindAudio:
		return AudioMarker + msg.URL
	default:
		return msg.Text
	}
}

// RenderMessage renders one message bubble. Bot messages sit on the left with
// the bot avatar, user messages on the right with the user avatar.
func RenderMessage(msg bot.Message, width int) string {
	if width <= 0 {
		width = DefaultWrapWidth
	}
	// avatar plus its spacer and the bubble's horizontal padding
	textWidth := max(bubbleWidth(width)-ansi.StringWidth(BotAvatar)-1-2, 8)
	body := ansi.Wrap(strings.TrimRight(messageBody(msg), "\n"), textWidth, " -/")

	var bubble string
	switch {
	case msg.IsError:
		bubble = ChatErrorBubbleStyle.Render(body)
	case msg.IsUser():
		bubble = ChatUserBubbleStyle.Render(body)
	case msg.Kind == bot.KindImage || msg.Kind == bot.KindAudio:
		bubble = ChatBotBubbleStyle.Render(ChatMediaStyle.Render(body))
	default:
		bubble = ChatBotBubbleStyle.Render(body)
	}

	align := lipgloss.Left
	if msg.IsUser() {
		align = lipgloss.Right
	}
	stamp := ChatTimestampStyle.Render(FormatBubbleTime(msg.Timestamp))
	block := lipgloss.JoinVertical(align, bubble, stamp)

	if msg.IsUser() {
		row := lipgloss.JoinHorizontal(lipgloss.Top, block, " ", UserAvatar)
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, row)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, BotAvatar, " ", block)
}

// RenderTypingIndicator renders the bot-side three-dot animation at frame
func RenderTypingIndicator(frame int) string {
	dots := typingFrames[frame%len(typingFrames)]
	return lipgloss.JoinHorizontal(lipgloss.Top, BotAvatar, " ", ChatTypingStyle.Render(dots))
}

// renderWelcome renders the placeholder shown before the first message
func renderWelcome(width int) string {
	msgStyle := lipgloss.NewStyle().Foreground(ColorTextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)
	titleStyle := lipgloss.NewStyle().Foreground(ColorText).Bold(true)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("👋 Welcome to the Instagram Chatbot preview"))
	sb.WriteString("\n\n")
	sb.WriteString(msgStyle.Render("✨ Test the core features:"))
	sb.WriteString("\n")
	lines := []struct{ label, desc string }{
		{"🧠 NLP responses", "human-like conversation"},
		{"⏱  Typing delays", "waits scale with reply length"},
		{"🖼  Image triggers", `try "pricing", "catalog", "products"`},
		{"🎵 Audio triggers", `try "hello", "hi", "hey"`},
	}
	for _, l := range lines {
		sb.WriteString("  " + keyStyle.Render(l.label) + msgStyle.Render(" - "+l.desc) + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(msgStyle.Italic(true).Render("💡 Type anything and press enter to start chatting."))

	return lipgloss.NewStyle().Width(max(width, 20)).Render(sb.String())
}
