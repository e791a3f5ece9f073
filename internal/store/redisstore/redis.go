package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"codearea/internal/config"
	"codearea/internal/domain/user"
	"codearea/internal/store/repositories"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	sessionKeyPrefix = "session:"
	viewedKeyPrefix  = "viewed:"
)

// Open creates a client and waits for the server to answer PING
func Open(ctx context.Context, cfg config.RedisCfg, retries int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if retries < 0 {
		retries = 0
	}
	ping := func() error {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Addr).Msg("redis ping failed, retrying")
			return err
		}
		return nil
	}
	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(retries)), ctx)
	if err := backoff.Retry(ping, bo); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// SessionStore reads sessions written by the auth service. Each session is
// a JSON-encoded user stored under session:<token>.
type SessionStore struct {
	rdb *redis.Client
}

func NewSessionStore(rdb *redis.Client) *SessionStore {
	return &SessionStore{rdb: rdb}
}

// Lookup returns the user for token, or repositories.ErrNotFound when the
// token is unknown or its payload is unusable
func (s *SessionStore) Lookup(ctx context.Context, token string) (*user.User, error) {
	raw, err := s.rdb.Get(ctx, sessionKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("session lookup: %w", err)
	}

	// an unreadable session is treated like a missing one
	var u user.User
	if err := json.Unmarshal(raw, &u); err != nil {
		log.Warn().Err(err).Msg("discarding malformed session")
		return nil, fmt.Errorf("decode session: %w", repositories.ErrNotFound)
	}
	if err := u.Validate(); err != nil {
		log.Warn().Err(err).Msg("discarding invalid session")
		return nil, fmt.Errorf("invalid session: %w", repositories.ErrNotFound)
	}
	return &u, nil
}

// ViewTracker records question views with SET NX so repeated views inside
// the window are not counted twice.
type ViewTracker struct {
	rdb *redis.Client
}

func NewViewTracker(rdb *redis.Client) *ViewTracker {
	return &ViewTracker{rdb: rdb}
}

func (t *ViewTracker) FirstView(ctx context.Context, questionID, viewerID int64, window time.Duration) (bool, error) {
	key := viewedKeyPrefix + strconv.FormatInt(questionID, 10) + ":" + strconv.FormatInt(viewerID, 10)
	ok, err := t.rdb.SetNX(ctx, key, 1, window).Result()
	if err != nil {
		return false, fmt.Errorf("track view: %w", err)
	}
	return ok, nil
}

var (
	_ repositories.SessionStore = (*SessionStore)(nil)
	_ repositories.ViewTracker  = (*ViewTracker)(nil)
)
