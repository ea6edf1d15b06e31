package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresStore keeps each blob as a row in a single table. It exists
// so several hosts can share one store; the whole-blob contract is
// unchanged, so concurrent writers still clobber each other.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the blobs table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS blobs (
		key TEXT PRIMARY KEY,
		data BYTEA NOT NULL,
		updated_on TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure blobs schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Read(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	query := `SELECT data FROM blobs WHERE key = $1`
	err := s.db.QueryRowContext(ctx, query, key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %q: %w", key, err)
	}
	return data, nil
}

func (s *PostgresStore) Write(ctx context.Context, key string, data []byte) error {
	query := `INSERT INTO blobs (key, data, updated_on) VALUES ($1, $2, NOW())
	          ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_on = NOW()`
	if _, err := s.db.ExecContext(ctx, query, key, data); err != nil {
		return fmt.Errorf("failed to write blob %q: %w", key, err)
	}
	return nil
}
