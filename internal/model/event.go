package model

import "time"

// DefaultMessage is shown for fired events that carry no description.
const DefaultMessage = "It's time for your event!"

// Event represents a reminder tracked by the event store.
type Event struct {
	ID          string    `json:"id"`          // opaque identifier, stable for the event's lifetime
	Title       string    `json:"title"`       // display title, never empty
	DueAt       time.Time `json:"due_at"`      // instant the reminder fires at
	Description string    `json:"description"` // optional free text
	Notified    bool      `json:"notified"`    // always false outside a scan
}

// HasDueTime reports whether the event carries a usable due instant.
// Events restored with a malformed due time have a zero DueAt and never fire.
func (e Event) HasDueTime() bool {
	return !e.DueAt.IsZero()
}

// IsDue reports whether the event is due at now.
func (e Event) IsDue(now time.Time) bool {
	return e.HasDueTime() && !e.DueAt.After(now)
}

// FiredEvent is what notification sinks receive when an event comes due.
type FiredEvent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Message returns the alert body, falling back to DefaultMessage.
func (f FiredEvent) Message() string {
	if f.Description == "" {
		return DefaultMessage
	}

	return f.Description
}
