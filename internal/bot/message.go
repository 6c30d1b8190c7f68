// Package bot holds the view models the console renders: transcript messages,
// keyword triggers, typing-delay settings and usage stats. Everything here
// mirrors a backend record or is created locally for display.
package bot

import (
	"time"

	"github.com/google/uuid"
)

// Sender identifies who authored a transcript message
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Kind is the payload type of a message or trigger
type Kind string

const (
	KindText  Kind = "text"
	KindImage Kind = "image"
	KindAudio Kind = "audio"
)

// ErrorPrefix is prepended to bot messages that report a failed send
const ErrorPrefix = "❌ Error: "

// Message is a single transcript entry. Messages are never mutated after creation.
type Message struct {
	ID        string
	Kind      Kind
	Text      string // Set for KindText
	URL       string // Set for KindImage and KindAudio
	Sender    Sender
	Timestamp time.Time
	IsError   bool
}

// IsUser reports whether the message was authored by the user
func (m Message) IsUser() bool {
	return m.Sender == SenderUser
}

// Content returns the text for text messages and the URL for media messages
func (m Message) Content() string {
	if m.Kind == KindImage || m.Kind == KindAudio {
		return m.URL
	}
	return m.Text
}

func newMessage(kind Kind, sender Sender) Message {
	return Message{
		ID:        uuid.New().String(),
		Kind:      kind,
		Sender:    sender,
		Timestamp: time.Now(),
	}
}

// NewUserMessage creates a user-authored text message
func NewUserMessage(text string) Message {
	m := newMessage(KindText, SenderUser)
	m.Text = text
	return m
}

// NewBotMessage creates a bot-authored text message
func NewBotMessage(text string) Message {
	m := newMessage(KindText, SenderBot)
	m.Text = text
	return m
}

// NewErrorMessage creates a bot-authored message describing a failed send
func NewErrorMessage(detail string) Message {
	m := newMessage(KindText, SenderBot)
	m.Text = ErrorPrefix + detail
	m.IsError = true
	return m
}

// NewMediaMessage creates a bot-authored image or audio message
func NewMediaMessage(kind Kind, url string) Message {
	m := newMessage(kind, SenderBot)
	m.URL = url
	return m
}
