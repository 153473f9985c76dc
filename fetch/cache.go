// Copyright © 2026 Gridsmith contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: fetch/cache.go
// Summary: SQLite-backed cache of fetched document bodies.

package fetch

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const cacheSchema = `
CREATE TABLE IF NOT EXISTS documents (
    url        TEXT PRIMARY KEY,
    body       TEXT NOT NULL,
    fetched_at INTEGER NOT NULL      -- UnixNano
);
`

// Cache stores fetched document bodies keyed by export URL so repeated
// decodes of the same document skip the network. It lives entirely in the
// transport layer; the decode pipeline itself stays stateless.
type Cache struct {
	db *sql.DB
}

// OpenCache opens (creating if needed) a cache database at path.
func OpenCache(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to cache database: %w", err)
	}
	if _, err := db.Exec(cacheSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create cache schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// DefaultCachePath returns the cache database location under the user
// cache directory.
func DefaultCachePath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "gridsmith", "documents.db"), nil
}

// Get returns the cached body for url, if present.
func (c *Cache) Get(url string) (string, bool) {
	var body string
	err := c.db.QueryRow("SELECT body FROM documents WHERE url = ?", url).Scan(&body)
	if err != nil {
		if err != sql.ErrNoRows {
			debugLog.Printf("cache read for %s failed: %v", url, err)
		}
		return "", false
	}
	return body, true
}

// Put stores or replaces the body for url.
func (c *Cache) Put(url, body string) error {
	_, err := c.db.Exec(
		"INSERT INTO documents (url, body, fetched_at) VALUES (?, ?, ?) "+
			"ON CONFLICT(url) DO UPDATE SET body = excluded.body, fetched_at = excluded.fetched_at",
		url, body, time.Now().UnixNano())
	return err
}

// Delete removes the cached body for url, if any.
func (c *Cache) Delete(url string) error {
	_, err := c.db.Exec("DELETE FROM documents WHERE url = ?", url)
	return err
}

// Close releases the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}
