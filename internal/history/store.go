// internal/history/store.go
package history

import (
	"database/sql"
	"time"

	"github.com/adrg/xdg"
	_ "github.com/mattn/go-sqlite3"
)

// Store persists the copy log with a SQLite backend
type Store struct {
	db    *sql.DB
	limit int
}

// NewStore opens the copy log at the XDG data path
func NewStore(limit int) (*Store, error) {
	dbPath, err := xdg.DataFile("snipview/history.db")
	if err != nil {
		return nil, err
	}
	return NewStoreAt(dbPath, limit)
}

// NewStoreAt opens a copy log at an explicit path (":memory:" in tests)
func NewStoreAt(path string, limit int) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS copies (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			snippet TEXT NOT NULL,
			bytes INTEGER NOT NULL,
			copied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_copies_copied_at ON copies(copied_at);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	if limit <= 0 {
		limit = 200
	}
	store := &Store{db: db, limit: limit}
	// Best-effort retention sweep on startup
	_ = store.cleanup()
	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Add inserts a copy event and fills in its ID and timestamp
func (s *Store) Add(entry *Entry) error {
	if entry.CopiedAt.IsZero() {
		entry.CopiedAt = time.Now().UTC()
	}
	res, err := s.db.Exec(
		`INSERT INTO copies (snippet, bytes, copied_at) VALUES (?, ?, ?)`,
		entry.Snippet, entry.Bytes, entry.CopiedAt,
	)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	entry.ID = id

	return s.enforceLimit()
}

// Recent returns the most recent copy events, newest first
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, snippet, bytes, copied_at
		FROM copies
		ORDER BY copied_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Snippet, &e.Bytes, &e.CopiedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the total number of logged copies
func (s *Store) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM copies`).Scan(&count)
	return count, err
}

// enforceLimit keeps only the most recent entries
func (s *Store) enforceLimit() error {
	_, err := s.db.Exec(`
		DELETE FROM copies
		WHERE id NOT IN (
			SELECT id FROM copies
			ORDER BY copied_at DESC, id DESC
			LIMIT ?
		)
	`, s.limit)
	return err
}

// cleanup removes copy events older than 90 days
func (s *Store) cleanup() error {
	_, err := s.db.Exec(`
		DELETE FROM copies
		WHERE copied_at < datetime('now', '-90 days')
	`)
	return err
}
