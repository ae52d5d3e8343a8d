package kvstore

import (
	"context"
	"errors"
	"log/slog"

	"rebate-ledger/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresBackend keeps each list as one row of kv_lists. The table is
// created by the migrations directory. Every write is a single autocommit
// statement.
type PostgresBackend struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresBackend(pool *pgxpool.Pool, logger *slog.Logger) *PostgresBackend {
	return &PostgresBackend{pool: pool, logger: logger}
}

func (p *PostgresBackend) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := p.pool.QueryRow(ctx, `SELECT value FROM kv_lists WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.Wrapf(err, "load %s", key)
	}
	return []byte(value), true, nil
}

func (p *PostgresBackend) Save(ctx context.Context, key string, value []byte) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO kv_lists (key, value, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, string(value),
	)
	if err != nil {
		p.logger.Error("kv_lists upsert failed", slog.String("key", key), slog.String("error", err.Error()))
		return errs.Wrapf(err, "save %s", key)
	}
	return nil
}

func (p *PostgresBackend) Remove(ctx context.Context, key string) error {
	if _, err := p.pool.Exec(ctx, `DELETE FROM kv_lists WHERE key = $1`, key); err != nil {
		return errs.Wrapf(err, "remove %s", key)
	}
	return nil
}
