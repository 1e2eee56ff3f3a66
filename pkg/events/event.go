package events

import (
	"context"
	"time"

	"anilab-chat-be/pkg/b2b"
)

const TypeLeadCaptured = "lead_captured"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the subject suffix for this event (e.g. "lead_captured").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Publisher sends events to a bus.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewLeadCaptured wraps a dispatched lead together with the chat excerpt.
func NewLeadCaptured(lead b2b.Lead, excerpt []string) BaseEvent {
	at := lead.CreatedAt
	if at.IsZero() {
		at = time.Now()
	}
	return BaseEvent{
		Type: TypeLeadCaptured,
		Data: map[string]interface{}{
			"lead":        lead,
			"excerpt":     excerpt,
			"occurred_at": at.UTC().Format(time.RFC3339),
		},
		OccurredAt: at,
	}
}
