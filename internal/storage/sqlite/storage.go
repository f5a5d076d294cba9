// Package sqlite provides the SQLite implementation of the shared state
// store. SQLite tolerates concurrent access from both peer processes, which
// makes it the default driver when the two sides share a filesystem.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/liftlink/watchsync/internal/storage"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Store is the SQLite-backed shared state store.
type Store struct {
	db *sql.DB
}

// New creates a new SQLite store instance.
// dbPath is the path to the database file; use ":memory:" for tests.
func New(ctx context.Context, dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// SQLite with WAL mode supports multiple readers but one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	s := &Store{db: db}

	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) runMigrations() error {
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	goose.SetBaseFS(embedMigrations)
	if err := goose.Up(s.db, "migrations"); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}
	return nil
}

// StoreValue serializes v under key, replacing any previous value.
func (s *Store) StoreValue(ctx context.Context, key string, v any) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value for %q: %w", key, err)
	}

	query := `
		INSERT INTO channel_state (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	now := time.Now().UnixMilli()
	if _, err := s.db.ExecContext(ctx, query, key, data, now); err != nil {
		return fmt.Errorf("failed to save value: %w", err)
	}

	return s.touchLastSync(ctx, now)
}

// RetrieveValue decodes the value under key into out.
func (s *Store) RetrieveValue(ctx context.Context, key string, out any) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	var data []byte
	row := s.db.QueryRowContext(ctx, `SELECT value FROM channel_state WHERE key = ?`, key)
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("failed to query value: %w", err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: key %q: %v", storage.ErrDecodeFailed, key, err)
	}

	return nil
}

// DeleteValue removes the value under key.
func (s *Store) DeleteValue(ctx context.Context, key string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM channel_state WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}

	return s.touchLastSync(ctx, time.Now().UnixMilli())
}

// GetLastSyncTimestamp returns the time of the last mutating call.
func (s *Store) GetLastSyncTimestamp(ctx context.Context) (time.Time, error) {
	if s.db == nil {
		return time.Time{}, storage.ErrStorageClosed
	}

	var millis int64
	row := s.db.QueryRowContext(ctx,
		`SELECT value FROM metadata WHERE key = 'last_sync_timestamp'`)
	if err := row.Scan(&millis); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("failed to get last sync timestamp: %w", err)
	}

	return time.UnixMilli(millis), nil
}

func (s *Store) touchLastSync(ctx context.Context, millis int64) error {
	query := `
		INSERT INTO metadata (key, value)
		VALUES ('last_sync_timestamp', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	if _, err := s.db.ExecContext(ctx, query, millis); err != nil {
		return fmt.Errorf("failed to save last sync timestamp: %w", err)
	}
	return nil
}
