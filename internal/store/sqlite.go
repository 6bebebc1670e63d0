// Package store persists which weather.com location each city query resolved to,
// so repeat lookups skip the search listbox.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Cyclone1070/weatheragent/internal/weather"
	"github.com/gofrs/flock"

	_ "modernc.org/sqlite"
)

const timeFormat = time.RFC3339Nano

// LocationStore is a SQLite backed weather.LocationCache.
// A process holds the store exclusively while it is open.
type LocationStore struct {
	db   *sql.DB
	lock *flock.Flock
	now  func() time.Time
}

// Open opens (or creates) the cache at dbPath and runs pending migrations.
// It fails with ErrLocked when another process has the cache open.
func Open(dbPath string) (*LocationStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	lock, err := acquireLock(dbPath)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		_ = lock.Unlock()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if err := runMigrations(db); err != nil {
		db.Close()
		_ = lock.Unlock()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &LocationStore{db: db, lock: lock, now: time.Now}, nil
}

// Lookup implements weather.LocationCache.
func (s *LocationStore) Lookup(ctx context.Context, query string) (weather.Location, bool, error) {
	var loc weather.Location
	err := s.db.QueryRowContext(ctx,
		"SELECT label, location_id FROM locations WHERE query = ?", query,
	).Scan(&loc.Label, &loc.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return weather.Location{}, false, nil
	}
	if err != nil {
		return weather.Location{}, false, fmt.Errorf("query location: %w", err)
	}
	return loc, true, nil
}

// Store implements weather.LocationCache. An existing entry for query is replaced.
func (s *LocationStore) Store(ctx context.Context, query string, loc weather.Location) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO locations (query, label, location_id, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(query) DO UPDATE SET
			label = excluded.label,
			location_id = excluded.location_id,
			updated_at = excluded.updated_at`,
		query, loc.Label, loc.ID, s.now().UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("upsert location: %w", err)
	}
	return nil
}

// Forget removes the entry for query, if any.
func (s *LocationStore) Forget(ctx context.Context, query string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM locations WHERE query = ?", query); err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	return nil
}

// Close closes the database and releases the process lock.
func (s *LocationStore) Close() error {
	dbErr := s.db.Close()
	lockErr := s.lock.Unlock()
	return errors.Join(dbErr, lockErr)
}
