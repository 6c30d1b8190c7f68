package app

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/botconsole/internal/bot"
	"github.com/zhubert/botconsole/internal/logger"
)

// StatsPollTickMsg triggers a stats fetch
type StatsPollTickMsg time.Time

// StatsResultMsg carries the result of one GET /stats
type StatsResultMsg struct {
	Stats bot.Stats
	Err   error
}

// StatsPollTick returns a command that sends a StatsPollTickMsg after interval
func StatsPollTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return StatsPollTickMsg(t)
	})
}

// fetchStats returns a command that runs GET /stats
func fetchStats(backend Backend) tea.Cmd {
	return func() tea.Msg {
		stats, err := backend.Stats(context.Background())
		return StatsResultMsg{Stats: stats, Err: err}
	}
}

// handleStatsPollTick fetches now and schedules the next tick. Polling never
// backs off.
func (m *Model) handleStatsPollTick() tea.Cmd {
	return tea.Batch(fetchStats(m.backend), StatsPollTick(m.config.StatsInterval()))
}

// handleStatsResult replaces the sidebar counters on success. A failure is
// logged and the previous counters stay.
func (m *Model) handleStatsResult(msg StatsResultMsg) {
	if msg.Err != nil {
		logger.WithComponent("stats-poller").Warn("fetch stats failed", "error", msg.Err)
		m.sidebar.MarkPollFailed()
		return
	}
	m.sidebar.SetStats(msg.Stats, m.now())
}
