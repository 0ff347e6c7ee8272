// Package content owns blog post persistence and the read-through index
// that turns raw front-matter documents into renderable posts.
package content

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = sql.ErrNoRows

// RawPost is a single stored document: a slug and its Markdown source,
// front matter included. Parsing happens in the Index, not here.
type RawPost struct {
	Slug    string
	Content string
}

// Store wraps a SQLite database holding raw post documents.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the posts table.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL for concurrent read/write, busy timeout so writers wait instead of
	// failing with SQLITE_BUSY, synchronous=NORMAL is safe under WAL.
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
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS posts (
    slug TEXT PRIMARY KEY,
    content TEXT NOT NULL
);
`)
	return err
}

// LoadAll returns every stored post in rowid order, so documents saved
// earlier keep their position. Callers needing date order sort after parsing.
func (s *Store) LoadAll() ([]RawPost, error) {
	rows, err := s.db.Query(`SELECT slug, content FROM posts ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []RawPost
	for rows.Next() {
		var p RawPost
		if err := rows.Scan(&p.Slug, &p.Content); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// Load returns a single raw post by slug. Absence surfaces as ErrNotFound.
func (s *Store) Load(slug string) (RawPost, error) {
	var p RawPost
	p.Slug = slug
	err := s.db.QueryRow(`SELECT content FROM posts WHERE slug = ?`, slug).Scan(&p.Content)
	if err != nil {
		return RawPost{}, err
	}
	return p, nil
}

// Save upserts a raw post document.
func (s *Store) Save(p RawPost) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO posts (slug, content) VALUES (?, ?)`, p.Slug, p.Content)
	return err
}

// Delete removes a post by slug.
func (s *Store) Delete(slug string) error {
	_, err := s.db.Exec(`DELETE FROM posts WHERE slug = ?`, slug)
	return err
}
