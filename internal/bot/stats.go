package bot

// Stats are the backend's aggregate usage counters
type Stats struct {
	ActiveSessions     int `json:"active_sessions"`
	TotalConversations int `json:"total_conversations"`
}
