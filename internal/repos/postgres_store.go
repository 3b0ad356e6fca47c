package repos

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct{ pool *pgxpool.Pool }

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore { return &PostgresStore{pool: pool} }

// ConnectPostgres opens a pool and verifies connectivity.
func ConnectPostgres(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return pool, nil
}

func (s *PostgresStore) Get(ctx context.Context, profile, key string) ([]byte, bool, error) {
	var v string
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM profile_entries WHERE profile_id = $1 AND key = $2`, profile, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(v), true, nil
}

func (s *PostgresStore) Put(ctx context.Context, profile, key string, value []byte) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO profile_entries (profile_id, key, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (profile_id, key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now()
	`, profile, key, string(value))
	return err
}

func (s *PostgresStore) Delete(ctx context.Context, profile, key string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM profile_entries WHERE profile_id = $1 AND key = $2`, profile, key)
	return err
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
