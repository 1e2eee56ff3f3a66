package events

import (
	"testing"
	"time"

	"anilab-chat-be/pkg/b2b"

	"github.com/stretchr/testify/assert"
)

func TestNewLeadCaptured(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	ev := NewLeadCaptured(b2b.Lead{ID: "l1", Email: "a@b.sk", CreatedAt: created}, []string{"x"})

	assert.Equal(t, TypeLeadCaptured, ev.EventType())
	assert.Equal(t, created, ev.Timestamp())
	assert.Equal(t, "2026-01-02T03:04:05Z", ev.Payload()["occurred_at"])
	assert.Equal(t, []string{"x"}, ev.Payload()["excerpt"])
}

func TestNewLeadCapturedDefaultsTime(t *testing.T) {
	ev := NewLeadCaptured(b2b.Lead{ID: "l1"}, nil)
	assert.WithinDuration(t, time.Now(), ev.Timestamp(), time.Minute)
}
