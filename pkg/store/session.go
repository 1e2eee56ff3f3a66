package store

import (
	"time"

	"anilab-chat-be/pkg/b2b"
)

// HistoryLimit caps the rolling log of raw user messages.
const HistoryLimit = 30

// Session represents the conversation state kept between turns
type Session struct {
	ID string `json:"id"` // client sessionId or requester IP

	// AskedOnce flips to true after the clarifying question; it never flips back
	AskedOnce bool `json:"asked_once"`

	// Sticky preferences detected in earlier turns
	LastGoal        string `json:"last_goal,omitempty"`
	PreferredFormat string `json:"preferred_format,omitempty"`
	LastIntent      string `json:"last_intent,omitempty"`

	History []string `json:"history,omitempty"`

	B2B b2b.State `json:"b2b"`

	UpdatedAt time.Time `json:"updated_at"`
}

func NewSession(id string) *Session {
	return &Session{ID: id}
}

// AppendHistory adds a raw message and drops the oldest beyond HistoryLimit.
func (s *Session) AppendHistory(message string) {
	s.History = append(s.History, message)
	if over := len(s.History) - HistoryLimit; over > 0 {
		s.History = append([]string(nil), s.History[over:]...)
	}
}

// Clone returns a copy that shares no slices with the receiver.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	c.History = append([]string(nil), s.History...)
	return &c
}
