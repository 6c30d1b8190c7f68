package ui

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/zhubert/botconsole/internal/bot"
)

// sidebarFeatures are the capabilities advertised under the stats cards
var sidebarFeatures = []string{
	"🧠 OpenAI NLP",
	"⏱  Human-like delays",
	"🖼  Media responses",
	"⚡ High concurrency",
}

// Sidebar shows live usage stats and static info about the bot
type Sidebar struct {
	width  int
	height int

	stats       bot.Stats
	hasStats    bool
	lastUpdated time.Time
	pollFailed  bool

	apiURL       string
	recipient    string
	conversation string // selected conversation reference; never populated yet
}

// NewSidebar creates a new sidebar
func NewSidebar() *Sidebar {
	return &Sidebar{}
}

// SetSize sets the sidebar dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// SetStats replaces the displayed counters after a successful poll
func (s *Sidebar) SetStats(stats bot.Stats, at time.Time) {
	s.stats = stats
	s.hasStats = true
	s.lastUpdated = at
	s.pollFailed = false
}

// MarkPollFailed records a failed poll. The previous counters stay on screen.
func (s *Sidebar) MarkPollFailed() {
	s.pollFailed = true
}

// Stats returns the displayed counters
func (s *Sidebar) Stats() bot.Stats {
	return s.stats
}

// SetAPIURL sets the backend shown in the info section
func (s *Sidebar) SetAPIURL(u string) {
	s.apiURL = u
}

// SetRecipient sets the simulated user shown in the info section
func (s *Sidebar) SetRecipient(id string) {
	s.recipient = id
}

// View renders the sidebar
func (s *Sidebar) View() string {
	ctx := GetViewContext()
	inner := ctx.InnerWidth(s.width)

	brand := lipgloss.JoinVertical(lipgloss.Left,
		PanelTitleStyle.Render("📱 Instagram Bot"),
		StatLabelStyle.PaddingLeft(1).Render("Admin Dashboard"),
	)

	sections := []string{
		brand,
		SidebarSectionStyle.PaddingLeft(1).Render("📊 Statistics"),
		s.renderStatCard("👥", "Active Sessions", s.stats.ActiveSessions, inner),
		s.renderStatCard("💬", "Total Conversations", s.stats.TotalConversations, inner),
		s.renderUpdated(),
		SidebarSectionStyle.PaddingLeft(1).Render("✨ Features"),
	}
	for _, f := range sidebarFeatures {
		sections = append(sections, SidebarItemStyle.Render(f))
	}

	sections = append(sections, SidebarSectionStyle.PaddingLeft(1).Render("ℹ  Info"))
	sections = append(sections,
		s.renderInfo("Capacity", "2000-3000 users", inner),
		s.renderInfo("Responses", "Natural language", inner),
		s.renderInfo("Status", s.statusText(), inner),
		s.renderInfo("Backend", s.apiURL, inner),
		s.renderInfo("Test user", s.recipient, inner),
		s.renderInfo("Conversation", s.conversationText(), inner),
	)

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return PanelStyle.Width(s.width).Height(s.height).Render(content)
}

func (s *Sidebar) renderStatCard(icon, label string, value, width int) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		StatLabelStyle.Render(label),
		StatValueStyle.Render(humanize.Comma(int64(value))),
	)
	card := lipgloss.JoinHorizontal(lipgloss.Center, icon+" ", body)
	return StatCardStyle.Width(max(width, 10)).Render(card)
}

func (s *Sidebar) renderUpdated() string {
	style := StatLabelStyle.Italic(true).PaddingLeft(1)
	switch {
	case !s.hasStats && s.pollFailed:
		return style.Render("stats unavailable")
	case !s.hasStats:
		return style.Render("waiting for first update")
	default:
		return style.Render("updated " + humanize.Time(s.lastUpdated))
	}
}

func (s *Sidebar) renderInfo(label, value string, width int) string {
	labelText := label + ": "
	avail := max(width-2-ansi.StringWidth(labelText), 4)
	return SidebarItemStyle.Render(
		StatLabelStyle.Render(labelText) + lipgloss.NewStyle().Foreground(ColorText).Render(ansi.Truncate(value, avail, "…")),
	)
}

func (s *Sidebar) statusText() string {
	if s.pollFailed {
		return "🔴 Unreachable"
	}
	return "🟢 Active"
}

func (s *Sidebar) conversationText() string {
	if strings.TrimSpace(s.conversation) == "" {
		return "none selected"
	}
	return s.conversation
}
