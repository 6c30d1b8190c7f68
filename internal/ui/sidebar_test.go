package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/botconsole/internal/bot"
)

func TestSidebar_StatsAndFailure(t *testing.T) {
	s := NewSidebar()
	s.SetSize(40, 40)
	s.SetAPIURL("http://localhost:8000")
	s.SetRecipient("test_user_123")

	out := ansi.Strip(s.View())
	if !strings.Contains(out, "waiting for first update") {
		t.Error("sidebar should note that no stats arrived yet")
	}

	s.SetStats(bot.Stats{ActiveSessions: 1234, TotalConversations: 56789}, time.Now())
	out = ansi.Strip(s.View())
	for _, want := range []string{"1,234", "56,789", "🟢 Active", "none selected"} {
		if !strings.Contains(out, want) {
			t.Errorf("sidebar missing %q", want)
		}
	}

	s.MarkPollFailed()
	if s.Stats().ActiveSessions != 1234 {
		t.Error("failed poll must keep the previous stats")
	}
	out = ansi.Strip(s.View())
	if !strings.Contains(out, "1,234") || !strings.Contains(out, "Unreachable") {
		t.Error("failed poll should keep counters and flip status")
	}

	s.SetStats(bot.Stats{ActiveSessions: 1}, time.Now())
	if strings.Contains(ansi.Strip(s.View()), "Unreachable") {
		t.Error("successful poll should clear the failure status")
	}
}
