package ui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// TypingTickMsg advances the typing indicator animation. ID identifies the
// tick chain that scheduled it.
type TypingTickMsg struct {
	ID   int
	Time time.Time
}

// typingFrames cycle a highlighted dot left to right
var typingFrames = []string{"● ∙ ∙", "∙ ● ∙", "∙ ∙ ●", "∙ ● ∙"}

// TypingTick returns a command that sends a typing tick for chain id after TypingTickInterval
func TypingTick(id int) tea.Cmd {
	return tea.Tick(TypingTickInterval, func(t time.Time) tea.Msg {
		return TypingTickMsg{ID: id, Time: t}
	})
}

// BeginPending records an in-flight send and shows the typing indicator.
// It starts a new tick chain only when the indicator was idle. Starting a
// chain retires any older one whose tick is still in flight.
func (c *Chat) BeginPending() tea.Cmd {
	c.pending++
	c.updateContent()
	if c.pending == 1 {
		c.typingFrame = 0
		c.typingID++
		return TypingTick(c.typingID)
	}
	return nil
}

// EndPending records that one send has resolved. The indicator stays
// until every pending send resolves.
func (c *Chat) EndPending() {
	if c.pending > 0 {
		c.pending--
	}
	c.updateContent()
}

// IsTyping reports whether any reply is pending
func (c *Chat) IsTyping() bool {
	return c.pending > 0
}

// PendingCount returns the number of unresolved sends
func (c *Chat) PendingCount() int {
	return c.pending
}

// handleTypingTick advances the animation and schedules the next frame while
// a reply is pending. The chain stops once nothing is pending, and ticks
// from a retired chain are ignored.
func (c *Chat) handleTypingTick(tick TypingTickMsg) tea.Cmd {
	if c.pending == 0 || tick.ID != c.typingID {
		return nil
	}
	c.typingFrame = (c.typingFrame + 1) % len(typingFrames)
	c.updateContent()
	return TypingTick(c.typingID)
}
