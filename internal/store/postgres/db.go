package postgres

import (
	"context"
	"fmt"
	"time"

	"codearea/internal/config"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// Open connects to the database, retrying the initial ping with
// exponential backoff while the database comes up.
func Open(ctx context.Context, dsn string, retries int) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	if retries < 0 {
		retries = 0
	}
	bo := backoff.NewExponentialBackOff()
	bo.MaxInterval = 5 * time.Second
	ping := func() error {
		if err := pool.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("db ping failed, retrying")
			return err
		}
		return nil
	}
	if err := backoff.Retry(ping, backoff.WithContext(backoff.WithMaxRetries(bo, uint64(retries)), ctx)); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return pool, nil
}

// Connect opens the pool and, when enabled, applies pending migrations. The
// migrations run only after the retried ping succeeds.
func Connect(ctx context.Context, cfg config.DBCfg) (*pgxpool.Pool, error) {
	pool, err := Open(ctx, cfg.DSN, cfg.ConnectRetries)
	if err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		if err := MigrateUp(cfg.DSN); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return pool, nil
}
