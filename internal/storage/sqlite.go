// Package storage provides SQLite-based persistence for session replays.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-dodge/internal/replay"
)

// ErrNotFound is returned when a replay ID does not exist.
var ErrNotFound = errors.New("storage: replay not found")

// Store manages the SQLite database connection for replay persistence.
type Store struct {
	db *sql.DB
}

// ReplayEntry is the listing view of a stored replay.
type ReplayEntry struct {
	ID        int64
	Seed      int64
	Ticks     int
	Duration  time.Duration
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS replays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			started_at INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			config BLOB NOT NULL,
			events BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_created ON replays(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveReplay stores a recording and returns its ID.
func (s *Store) SaveReplay(rec replay.Recording) (int64, error) {
	cfgBlob, err := replay.EncodeConfig(rec.Config)
	if err != nil {
		return 0, fmt.Errorf("storage: %w", err)
	}
	eventsBlob, err := replay.EncodeEvents(rec.Events)
	if err != nil {
		return 0, fmt.Errorf("storage: %w", err)
	}

	result, err := s.db.Exec(
		`INSERT INTO replays (seed, started_at, ticks, duration_ms, config, events)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Seed, rec.StartedAt, rec.Ticks(), rec.DurationMillis(), cfgBlob, eventsBlob,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save replay: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// ListReplays returns the most recent replays, newest first.
func (s *Store) ListReplays(limit int) ([]ReplayEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, ticks, duration_ms, created_at
		 FROM replays
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var entries []ReplayEntry
	for rows.Next() {
		var e ReplayEntry
		var durationMs int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Seed, &e.Ticks, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationMs) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// LoadReplay fetches a full recording by ID.
func (s *Store) LoadReplay(id int64) (replay.Recording, error) {
	var rec replay.Recording
	var cfgBlob, eventsBlob []byte

	err := s.db.QueryRow(
		`SELECT seed, started_at, config, events FROM replays WHERE id = ?`,
		id,
	).Scan(&rec.Seed, &rec.StartedAt, &cfgBlob, &eventsBlob)
	if errors.Is(err, sql.ErrNoRows) {
		return rec, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return rec, fmt.Errorf("storage: cannot load replay %d: %w", id, err)
	}

	if rec.Config, err = replay.DecodeConfig(cfgBlob); err != nil {
		return rec, fmt.Errorf("storage: replay %d: %w", id, err)
	}
	if rec.Events, err = replay.DecodeEvents(eventsBlob); err != nil {
		return rec, fmt.Errorf("storage: replay %d: %w", id, err)
	}

	return rec, nil
}

// DeleteReplay removes a replay by ID.
func (s *Store) DeleteReplay(id int64) error {
	result, err := s.db.Exec("DELETE FROM replays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay %d: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return nil
}

// parseTime handles both time.Time and string datetime values from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
