// Package viewcount tracks per-post view counters in a single SQLite table.
package viewcount

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Record is one view counter row.
type Record struct {
	Slug  string
	Count int
}

// Store provides read and increment operations over the views table.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path and ensures the
// views table exists.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open views db: %w", err)
	}
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("ensure views schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS views (
    slug TEXT PRIMARY KEY,
    count INTEGER NOT NULL CHECK (count >= 0)
);
`)
	return err
}

// SelectAll returns every view record, so listing pages annotate all posts
// from one query instead of N lookups.
func (s *Store) SelectAll() ([]Record, error) {
	rows, err := s.db.Query(`SELECT slug, count FROM views`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.Slug, &r.Count); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Aggregate returns the sum of all counters.
func (s *Store) Aggregate() (int, error) {
	var total int
	err := s.db.QueryRow(`SELECT COALESCE(SUM(count), 0) FROM views`).Scan(&total)
	return total, err
}

// Increment adds one view for slug, creating the record at 1 if absent.
// The increment happens inside SQLite, so concurrent calls for the same
// slug never lose updates. Callers are responsible for invoking this at
// most once per logical page view.
func (s *Store) Increment(slug string) error {
	_, err := s.db.Exec(`
INSERT INTO views (slug, count) VALUES (?, 1)
ON CONFLICT (slug) DO UPDATE SET count = count + 1
`, slug)
	return err
}

// CountFor returns the counter for one slug from an already loaded record
// set, zero if the slug has never been viewed.
func CountFor(records []Record, slug string) int {
	for _, r := range records {
		if r.Slug == slug {
			return r.Count
		}
	}
	return 0
}
