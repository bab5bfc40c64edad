package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// HistoryEntry represents a single visited page.
type HistoryEntry struct {
	ID        int64
	URL       string
	Title     string
	VisitedAt time.Time
}

// HistoryStore records page visits in SQLite.
type HistoryStore struct {
	db      *sql.DB
	maxSize int
	now     func() time.Time
}

// NewHistoryStore creates a history store using the given database.
func NewHistoryStore(db *DB) *HistoryStore {
	return &HistoryStore{
		db:      db.Conn(),
		maxSize: 1000,
		now:     time.Now,
	}
}

// Add records a page visit. If the URL was already the most recent entry,
// it updates the timestamp instead of creating a duplicate.
func (hs *HistoryStore) Add(url, title string) error {
	if url == "" {
		return nil
	}
	now := hs.now().Unix()

	var (
		lastID  int64
		lastURL string
	)
	err := hs.db.QueryRow(
		`SELECT id, url FROM history ORDER BY visited_at DESC, id DESC LIMIT 1`,
	).Scan(&lastID, &lastURL)
	switch {
	case err == nil && lastURL == url:
		_, err = hs.db.Exec(
			`UPDATE history SET visited_at = ?, title = CASE WHEN ? = '' THEN title ELSE ? END WHERE id = ?`,
			now, title, title, lastID,
		)
		if err != nil {
			return fmt.Errorf("updating history: %w", err)
		}
		return nil
	case err != nil && !errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("reading history: %w", err)
	}

	if _, err := hs.db.Exec(
		`INSERT INTO history (url, title, visited_at) VALUES (?, ?, ?)`,
		url, title, now,
	); err != nil {
		return fmt.Errorf("adding history: %w", err)
	}

	// Trim if over max.
	_, err = hs.db.Exec(
		`DELETE FROM history WHERE id NOT IN (
			SELECT id FROM history ORDER BY visited_at DESC, id DESC LIMIT ?
		)`, hs.maxSize,
	)
	if err != nil {
		return fmt.Errorf("trimming history: %w", err)
	}
	return nil
}

// List returns up to limit entries, newest first. A non-positive limit
// returns everything.
func (hs *HistoryStore) List(limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := hs.db.Query(
		`SELECT id, url, title, visited_at FROM history
		 ORDER BY visited_at DESC, id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()
	return scanHistory(rows)
}

// Search finds entries matching a query in title or URL.
func (hs *HistoryStore) Search(query string) ([]HistoryEntry, error) {
	like := "%" + query + "%"
	rows, err := hs.db.Query(
		`SELECT id, url, title, visited_at FROM history
		 WHERE title LIKE ? OR url LIKE ?
		 ORDER BY visited_at DESC, id DESC`,
		like, like,
	)
	if err != nil {
		return nil, fmt.Errorf("searching history: %w", err)
	}
	defer rows.Close()
	return scanHistory(rows)
}

// Clear removes all history entries.
func (hs *HistoryStore) Clear() error {
	_, err := hs.db.Exec(`DELETE FROM history`)
	return err
}

// Count returns the number of history entries.
func (hs *HistoryStore) Count() int {
	var count int
	hs.db.QueryRow(`SELECT COUNT(*) FROM history`).Scan(&count)
	return count
}

func scanHistory(rows *sql.Rows) ([]HistoryEntry, error) {
	var entries []HistoryEntry
	for rows.Next() {
		var (
			e         HistoryEntry
			visitedAt int64
		)
		if err := rows.Scan(&e.ID, &e.URL, &e.Title, &visitedAt); err != nil {
			return nil, fmt.Errorf("scanning history: %w", err)
		}
		e.VisitedAt = time.Unix(visitedAt, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
