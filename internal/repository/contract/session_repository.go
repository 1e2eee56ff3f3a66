package contract

import (
	"context"

	"anilab-chat-be/pkg/store"
)

// SessionRepository stores conversation state between turns.
// Get returns (nil, nil) when the session does not exist.
type SessionRepository interface {
	Get(ctx context.Context, id string) (*store.Session, error)
	Save(ctx context.Context, session *store.Session) error
	Delete(ctx context.Context, id string) error
}
