// Package localstore handles the client-side SQLite database. It keeps
// state that is local to this terminal and never synced to the order
// service: the operator's view-mode preference and a cache of the last good
// board snapshot so the board stays usable while the service is down.
package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mgolovko/tsekh/internal/models"
)

// ViewModeKey is the preference key the board's card rendering mode is
// persisted under.
const ViewModeKey = "view_mode"

// View modes
const (
	ViewModeNormal  = "normal"
	ViewModeCompact = "compact"
)

const schema = `
CREATE TABLE IF NOT EXISTS preferences (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS snapshot_cache (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	payload TEXT NOT NULL,
	fetched_at TIMESTAMP NOT NULL
);
`

// Store wraps the local SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the local database at
// ~/.tsekh/tsekh.db and applies the schema.
func Open(ctx context.Context) (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, ".tsekh")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return OpenPath(ctx, filepath.Join(dir, "tsekh.db"))
}

// OpenPath opens the local database at an explicit path. Tests use
// ":memory:".
func OpenPath(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open local database: %w", err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	// A single writer connection keeps SQLite happy.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Preference returns the value stored under key, or fallback if the key
// has never been written.
func (s *Store) Preference(ctx context.Context, key, fallback string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return fallback, nil
	}
	if err != nil {
		return fallback, fmt.Errorf("failed to read preference %q: %w", key, err)
	}
	return value, nil
}

// SetPreference stores value under key, replacing any existing value.
func (s *Store) SetPreference(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO preferences (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	if err != nil {
		return fmt.Errorf("failed to write preference %q: %w", key, err)
	}
	return nil
}

// CacheSnapshot stores the board as the last known good snapshot.
func (s *Store) CacheSnapshot(ctx context.Context, board *models.Board, fetchedAt time.Time) error {
	payload, err := json.Marshal(board)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO snapshot_cache (id, payload, fetched_at) VALUES (1, ?, ?) ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at",
		string(payload), fetchedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to cache snapshot: %w", err)
	}
	return nil
}

// CachedSnapshot returns the last cached board and when it was fetched.
// Returns (nil, zero, nil) when no snapshot has been cached yet.
func (s *Store) CachedSnapshot(ctx context.Context) (*models.Board, time.Time, error) {
	var payload string
	var fetchedAt time.Time
	err := s.db.QueryRowContext(ctx, "SELECT payload, fetched_at FROM snapshot_cache WHERE id = 1").Scan(&payload, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, time.Time{}, nil
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to read snapshot cache: %w", err)
	}

	var board models.Board
	if err := json.Unmarshal([]byte(payload), &board); err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to decode cached snapshot: %w", err)
	}
	return &board, fetchedAt, nil
}
