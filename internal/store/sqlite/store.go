// Package sqlite provides a SQLite-backed user store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"campus-planner/internal/store"
)

const schema = `CREATE TABLE IF NOT EXISTS users (
	name     TEXT PRIMARY KEY,
	schedule TEXT NOT NULL,
	friends  TEXT NOT NULL
)`

// Store persists user data in a SQLite database. Schedules and friends lists
// are stored as JSON text.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (creating if needed) a SQLite store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Get returns the data saved for user.
func (s *Store) Get(ctx context.Context, user string) (store.UserData, bool, error) {
	var sched, friends string
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT schedule, friends FROM users WHERE name = ?`, user,
	).Scan(&sched, &friends)
	if errors.Is(err, sql.ErrNoRows) {
		return store.UserData{}, false, nil
	}
	if err != nil {
		return store.UserData{}, false, fmt.Errorf("get user %q: %w", user, err)
	}

	var data store.UserData
	if err := json.Unmarshal([]byte(sched), &data.Schedule); err != nil {
		return store.UserData{}, false, fmt.Errorf("decode schedule of %q: %w", user, err)
	}
	if err := json.Unmarshal([]byte(friends), &data.Friends); err != nil {
		return store.UserData{}, false, fmt.Errorf("decode friends of %q: %w", user, err)
	}
	return data, true, nil
}

// Set replaces the data saved for user.
func (s *Store) Set(ctx context.Context, user string, data store.UserData) error {
	sched, err := json.Marshal(data.Schedule)
	if err != nil {
		return fmt.Errorf("encode schedule: %w", err)
	}
	friends, err := json.Marshal(data.Friends)
	if err != nil {
		return fmt.Errorf("encode friends: %w", err)
	}

	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO users (name, schedule, friends) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET schedule = excluded.schedule, friends = excluded.friends`,
		user, string(sched), string(friends),
	)
	if err != nil {
		return fmt.Errorf("set user %q: %w", user, err)
	}
	return nil
}

var _ store.Store = (*Store)(nil)
