package models

import "time"

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"` // user or assistant
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Snapshot is the persisted form of a session: the full message history plus
// per-message backend latencies in milliseconds, keyed by message ID. Locally
// synthesized replies never get a duration entry.
type Snapshot struct {
	Messages  []Message        `json:"messages"`
	Durations map[string]int64 `json:"durations"`
}

// RequestStatus tracks the lifecycle of the current backend request.
type RequestStatus string

const (
	StatusIdle      RequestStatus = "idle"
	StatusSubmitted RequestStatus = "submitted"
	StatusStreaming RequestStatus = "streaming"
	StatusError     RequestStatus = "error"
)
