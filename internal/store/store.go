// Package store provides SQLite persistence for ReelRank.
//
// Two tables back the two persisted blobs: the item collection and the
// comparison history. Absence of either is simply an empty state, never
// an error. Every session mutation writes through here before it is
// considered complete.
package store

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mredding/reelrank/internal/model"
)

// Store handles SQLite persistence. NOT an interface - concrete type.
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open creates a new Store with the given database path.
// Creates tables if they don't exist.
// Uses WAL mode for better concurrent read performance (file-based DBs only).
func Open(dbPath string) (*Store, error) {
	// Build connection string based on database type
	connStr := dbPath
	if dbPath == ":memory:" {
		// For in-memory databases, use shared cache mode so all connections
		// in the pool see the same database
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// For in-memory databases, limit to 1 connection to avoid issues
	// with multiple connections getting different databases
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// Enable WAL mode for file-based databases (not :memory:)
	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{db: db}

	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return s, nil
}

// createTables creates the required tables and indexes if they don't exist.
func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS items (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		year TEXT,
		rating REAL,
		elo INTEGER NOT NULL,
		played INTEGER DEFAULT 0,
		wins INTEGER DEFAULT 0,
		losses INTEGER DEFAULT 0,
		position INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_items_position ON items(position);
	CREATE INDEX IF NOT EXISTS idx_items_elo ON items(elo DESC);

	CREATE TABLE IF NOT EXISTS history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		resolved_at DATETIME NOT NULL,
		winner_id TEXT NOT NULL,
		loser_id TEXT NOT NULL,
		winner_before INTEGER NOT NULL,
		loser_before INTEGER NOT NULL,
		winner_after INTEGER NOT NULL,
		loser_after INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_history_resolved ON history(resolved_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveItems replaces the whole persisted collection in a single
// transaction. The slice order is the collection order and is preserved
// through the position column.
func (s *Store) SaveItems(items []model.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	// Rollback is safe to call even after commit - it's a no-op
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM items"); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO items (id, title, year, rating, elo, played, wins, losses, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for pos, it := range items {
		var rating sql.NullFloat64
		if it.Rating != nil {
			rating = sql.NullFloat64{Float64: *it.Rating, Valid: true}
		}
		if _, err := stmt.Exec(it.ID, it.Title, it.Year, rating, it.Elo, it.Played, it.Wins, it.Losses, pos); err != nil {
			return fmt.Errorf("insert item %s: %w", it.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RecordResult persists one resolved comparison: both updated items and
// the history entry land in the same transaction, so the played counters
// and the audit log never drift apart.
func (s *Store) RecordResult(winner, loser model.Item, entry model.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		UPDATE items SET elo = ?, played = ?, wins = ?, losses = ? WHERE id = ?
	`)
	if err != nil {
		return fmt.Errorf("prepare update: %w", err)
	}
	defer stmt.Close()

	for _, it := range []model.Item{winner, loser} {
		if _, err := stmt.Exec(it.Elo, it.Played, it.Wins, it.Losses, it.ID); err != nil {
			return fmt.Errorf("update item %s: %w", it.ID, err)
		}
	}

	_, err = tx.Exec(`
		INSERT INTO history (resolved_at, winner_id, loser_id, winner_before, loser_before, winner_after, loser_after)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.Time, entry.WinnerID, entry.LoserID, entry.WinnerBefore, entry.LoserBefore, entry.WinnerAfter, entry.LoserAfter)
	if err != nil {
		return fmt.Errorf("insert history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// LoadItems retrieves the collection in its persisted order.
func (s *Store) LoadItems() ([]model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`
		SELECT id, title, year, rating, elo, played, wins, losses
		FROM items
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var it model.Item
		var year sql.NullString
		var rating sql.NullFloat64
		if err := rows.Scan(&it.ID, &it.Title, &year, &rating, &it.Elo, &it.Played, &it.Wins, &it.Losses); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		it.Year = year.String
		if rating.Valid {
			v := rating.Float64
			it.Rating = &v
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

// LoadHistory retrieves history entries, most recent first. limit <= 0
// loads the full log.
func (s *Store) LoadHistory(limit int) ([]model.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		SELECT resolved_at, winner_id, loser_id, winner_before, loser_before, winner_after, loser_after
		FROM history
		ORDER BY id DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []model.HistoryEntry
	for rows.Next() {
		var e model.HistoryEntry
		if err := rows.Scan(&e.Time, &e.WinnerID, &e.LoserID, &e.WinnerBefore, &e.LoserBefore, &e.WinnerAfter, &e.LoserAfter); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return entries, nil
}

// Reset clears both the collection and the history log in one
// transaction. From the caller's perspective both end up empty or
// neither does.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM items"); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM history"); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
