package repos

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type SQLiteStore struct{ db *sqlx.DB }

func NewSQLiteStore(db *sqlx.DB) *SQLiteStore { return &SQLiteStore{db: db} }

func (s *SQLiteStore) Get(ctx context.Context, profile, key string) ([]byte, bool, error) {
	var v string
	err := s.db.GetContext(ctx, &v, `SELECT value FROM profile_entries WHERE profile_id = ? AND key = ?`, profile, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(v), true, nil
}

func (s *SQLiteStore) Put(ctx context.Context, profile, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
	  INSERT INTO profile_entries(profile_id, key, value, updated_at)
	  VALUES(?, ?, ?, CURRENT_TIMESTAMP)
	  ON CONFLICT(profile_id, key) DO UPDATE
	  SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, profile, key, string(value))
	return err
}

func (s *SQLiteStore) Delete(ctx context.Context, profile, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM profile_entries WHERE profile_id = ? AND key = ?`, profile, key)
	return err
}

func (s *SQLiteStore) Close() error { return s.db.Close() }
