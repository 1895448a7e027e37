package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	_ "github.com/mattn/go-sqlite3"

	"github.com/anshuchowdary926-eng/visamate/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
    key TEXT PRIMARY KEY,
    snapshot TEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);`

// sqliteStore persists one JSON snapshot per session key.
type sqliteStore struct {
	db *sql.DB
}

func newSQLiteStore(path string) (*sqliteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Save(ctx context.Context, key string, snap *models.Snapshot) error {
	val, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	query := `
        INSERT INTO sessions (key, snapshot, updated_at)
        VALUES (?, ?, CURRENT_TIMESTAMP)
        ON CONFLICT(key) DO UPDATE SET snapshot = excluded.snapshot, updated_at = CURRENT_TIMESTAMP`

	_, err = s.db.ExecContext(ctx, query, key, string(val))
	return err
}

func (s *sqliteStore) Load(ctx context.Context, key string) (*models.Snapshot, error) {
	var val string
	err := s.db.QueryRowContext(ctx, "SELECT snapshot FROM sessions WHERE key = ?", key).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return emptySnapshot(), nil
	}
	if err != nil {
		return nil, err
	}

	var snap models.Snapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		// Unreadable rows are treated as an empty session, not a failure.
		return emptySnapshot(), nil
	}
	if snap.Messages == nil {
		snap.Messages = []models.Message{}
	}
	if snap.Durations == nil {
		snap.Durations = map[string]int64{}
	}
	return &snap, nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
