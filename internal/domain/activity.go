package domain

import "time"

// Well-known activity actions. The backend accepts any short string; these
// are the ones the client emits itself.
const (
	ActionView     = "view"
	ActionComplete = "complete"
)

// Activity is a logged learning event as stored by the backend
type Activity struct {
	ID         int            `json:"id"`
	UserID     int            `json:"user_id"`
	MaterialID int            `json:"material_id"`
	Action     string         `json:"action"`
	Duration   *float64       `json:"duration,omitempty"`
	Score      *float64       `json:"score,omitempty"`
	Meta       map[string]any `json:"meta,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}

// ActivityEntry is one row of the current user's recent-activity feed.
// It is denormalized server-side so the dashboard can render it directly.
type ActivityEntry struct {
	Action        string    `json:"action"`
	MaterialType  string    `json:"material_type"`
	MaterialTitle string    `json:"material_title"`
	Timestamp     time.Time `json:"timestamp"`
}
