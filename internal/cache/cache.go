// Package cache persists raw weather payload JSON between runs so that
// repeated loads for the same location skip the network.
package cache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"weathercompare.app/internal/apperrors"
)

// PayloadCache is a sqlite-backed read-through cache keyed by location
type PayloadCache struct {
	db  *sql.DB
	ttl time.Duration
}

// Open opens (creating if needed) the payload cache at dbPath. Entries
// older than ttl are treated as misses; ttl <= 0 never expires.
func Open(dbPath string, ttl time.Duration) (*PayloadCache, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, apperrors.NewCacheError("creating cache directory", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, apperrors.NewCacheError("opening cache database", err)
	}

	// Set pragmas for performance
	_, _ = db.Exec("PRAGMA journal_mode=WAL")
	_, _ = db.Exec("PRAGMA synchronous=NORMAL")

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS payloads (
			location TEXT PRIMARY KEY,
			payload BLOB NOT NULL,
			fetched_at INTEGER NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, apperrors.NewCacheError("creating payloads table", err)
	}

	return &PayloadCache{db: db, ttl: ttl}, nil
}

// Get returns the cached payload for location. The second return value
// is false on a miss or when the entry is older than the TTL.
func (c *PayloadCache) Get(location string) ([]byte, bool, error) {
	var payload []byte
	var fetchedAt int64

	err := c.db.QueryRow(
		"SELECT payload, fetched_at FROM payloads WHERE location = ?",
		location,
	).Scan(&payload, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperrors.NewCacheError(fmt.Sprintf("querying payload for %s", location), err)
	}

	if c.ttl > 0 && time.Now().Unix()-fetchedAt > int64(c.ttl.Seconds()) {
		return nil, false, nil
	}

	return payload, true, nil
}

// Put stores (or replaces) the payload for location
func (c *PayloadCache) Put(location string, payload []byte) error {
	_, err := c.db.Exec(
		"INSERT OR REPLACE INTO payloads (location, payload, fetched_at) VALUES (?, ?, ?)",
		location, payload, time.Now().Unix(),
	)
	if err != nil {
		return apperrors.NewCacheError(fmt.Sprintf("storing payload for %s", location), err)
	}
	return nil
}

// Close closes the underlying database
func (c *PayloadCache) Close() error {
	return c.db.Close()
}
