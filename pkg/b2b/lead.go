package b2b

import (
	"context"
	"errors"
	"time"
)

const (
	StepIdle         = 0
	StepBusinessType = 1
	StepCountry      = 2
	StepProducts     = 3
	StepVolume       = 4
	StepContact      = 5

	// ExcerptSize is how many recent messages travel with a lead.
	ExcerptSize = 12
)

var ErrNoNotifier = errors.New("lead notifier not configured")

// Lead is the business inquiry collected over the dialogue.
// Only Email is guaranteed to be set when a lead is dispatched.
type Lead struct {
	ID        string    `json:"id"`
	Type      string    `json:"type,omitempty"`
	Country   string    `json:"country,omitempty"`
	Products  string    `json:"products,omitempty"`
	Volume    string    `json:"volume,omitempty"`
	Name      string    `json:"name,omitempty"`
	Company   string    `json:"company,omitempty"`
	Email     string    `json:"email"`
	Web       string    `json:"web,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// State is the per-session dialogue progress.
type State struct {
	Active bool `json:"active"`
	Step   int  `json:"step"`
	Lead   Lead `json:"lead"`
}

func (s *State) Reset() {
	*s = State{}
}

// Notifier hands a finished lead to whoever follows up on it.
type Notifier interface {
	NotifyLead(ctx context.Context, lead Lead, excerpt []string) error
}

// Excerpt returns the last n entries of history.
func Excerpt(history []string, n int) []string {
	if len(history) <= n {
		return append([]string(nil), history...)
	}
	return append([]string(nil), history[len(history)-n:]...)
}
