package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhubert/botconsole/internal/bot"
)

func TestNewStore_Seeds(t *testing.T) {
	s := NewStore()

	triggers := s.Triggers()
	require.Len(t, triggers, 2)
	assert.Equal(t, bot.KindImage, triggers[0].Type)
	assert.Equal(t, []string{"hello", "hi", "hey"}, triggers[1].Keywords)
	assert.Equal(t, bot.DelaySettings{}.WithDefaults(), s.Delay())
	assert.Equal(t, bot.Stats{}, s.Stats())
}

func TestStore_SeedsNotShared(t *testing.T) {
	a := NewStore()
	require.NoError(t, a.DeleteTrigger("pricing"))

	b := NewStore()
	assert.Len(t, b.Triggers(), 2)
	assert.Len(t, SeedTriggers, 2)
}

func TestStore_AddAndDelete(t *testing.T) {
	s := NewStore()
	tr := bot.Trigger{Name: "menu", Keywords: []string{"menu"}, Type: bot.KindImage, Path: "https://x/menu.png"}

	require.NoError(t, s.AddTrigger(tr))
	assert.ErrorIs(t, s.AddTrigger(tr), ErrDuplicate)
	assert.Len(t, s.Triggers(), 3)

	require.NoError(t, s.DeleteTrigger("menu"))
	assert.ErrorIs(t, s.DeleteTrigger("menu"), ErrNotFound)
	assert.Len(t, s.Triggers(), 2)
}

func TestStore_ChatCountsSessions(t *testing.T) {
	s := NewStore()

	s.Chat("u1", "one")
	s.Chat("u1", "two")
	s.Chat("u2", "three")

	assert.Equal(t, bot.Stats{ActiveSessions: 2, TotalConversations: 3}, s.Stats())
}

func TestStore_ChatDelayUsesEstimate(t *testing.T) {
	s := NewStore()
	s.SetDelay(bot.DelaySettings{BaseSeconds: 0.5, PerWordSeconds: 0.1, MaxSeconds: 100})

	reply, delay := s.Chat("u1", "hello there")
	words := len(splitWords(reply))
	assert.InDelta(t, 0.5+0.1*float64(words), delay, 1e-9)
}

func TestReplyFor(t *testing.T) {
	triggers := NewStore().Triggers()

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"image keyword", "What is your pricing?", "Sure! Sending our pricing image now."},
		{"audio keyword", "Hey!", "Sure! Sending our greeting voice note now."},
		{"no keyword", "  where are you  ", `Thanks for your message! You said: "where are you". A teammate will follow up soon.`},
		{"substring does not match", "highlights", `Thanks for your message! You said: "highlights". A teammate will follow up soon.`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, replyFor(tt.message, triggers))
		})
	}
}
