package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"anilab-chat-be/internal/repository/contract"
	"anilab-chat-be/pkg/store"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "anilab:session:"

// SessionRepository keeps sessions as JSON blobs so several server
// instances can share a conversation.
type SessionRepository struct {
	rdb *goredis.Client
	ttl time.Duration
}

var _ contract.SessionRepository = (*SessionRepository)(nil)

// NewSessionRepository wraps an existing client. ttl <= 0 stores keys without expiry.
func NewSessionRepository(rdb *goredis.Client, ttl time.Duration) *SessionRepository {
	if ttl < 0 {
		ttl = 0
	}
	return &SessionRepository{rdb: rdb, ttl: ttl}
}

// Connect parses a redis:// URL (or bare host:port) and pings the server.
func Connect(ctx context.Context, url string) (*goredis.Client, error) {
	opt, err := goredis.ParseURL(url)
	if err != nil {
		opt = &goredis.Options{Addr: url}
	}

	rdb := goredis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*store.Session, error) {
	data, err := r.rdb.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}

	var s store.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &s, nil
}

func (r *SessionRepository) Save(ctx context.Context, session *store.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.ID, err)
	}
	if err := r.rdb.Set(ctx, keyPrefix+session.ID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", session.ID, err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.rdb.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}
