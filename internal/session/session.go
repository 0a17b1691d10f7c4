// Package session owns the in-memory state for one ranking session: the
// item collection and the comparison history. Every mutation flows
// through here and is mirrored to the SQLite store before the call
// returns (write-through). A failed write is logged and never fatal; a
// failed read at startup degrades to an empty session.
package session

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/mredding/reelrank/internal/export"
	"github.com/mredding/reelrank/internal/ingest"
	"github.com/mredding/reelrank/internal/logging"
	"github.com/mredding/reelrank/internal/model"
	"github.com/mredding/reelrank/internal/pick"
	"github.com/mredding/reelrank/internal/rating"
	"github.com/mredding/reelrank/internal/store"
)

// Session is the single owner of the collection and history. The TUI
// drives it one discrete event at a time; no caller keeps a reference
// into its internals across events.
type Session struct {
	mu       sync.Mutex // tea commands run off the update goroutine
	st       *store.Store
	selector *pick.Selector
	k        float64

	items   []model.Item
	history []model.HistoryEntry // most recent first
}

// New loads prior state from the store. A corrupt or empty store is not
// an error: the session starts empty.
func New(st *store.Store, selector *pick.Selector, k float64) *Session {
	s := &Session{st: st, selector: selector, k: k}

	items, err := st.LoadItems()
	if err != nil {
		logging.Warn("Failed to load items, starting empty", "error", err)
		items = nil
	}
	history, err := st.LoadHistory(0)
	if err != nil {
		logging.Warn("Failed to load history, starting empty", "error", err)
		history = nil
	}

	s.items = items
	s.history = history
	logging.Info("Session loaded", "items", len(items), "history", len(history))
	return s
}

// Items returns a copy of the collection in its current order.
func (s *Session) Items() []model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// History returns the most recent entries, newest first. limit <= 0
// returns the full log.
func (s *Session) History(limit int) []model.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.history)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]model.HistoryEntry, n)
	copy(out, s.history[:n])
	return out
}

// NextPair picks the next comparison. ok is false with fewer than two
// items; callers treat that as "nothing to do", not an error.
func (s *Session) NextPair() (model.Item, model.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, j, ok := s.selector.Pick(s.items)
	if !ok {
		return model.Item{}, model.Item{}, false
	}
	return s.items[i], s.items[j], true
}

// Resolve applies one comparison outcome: the winner's Elo rises, the
// loser's falls, both play counters advance and a history entry is
// recorded. Unknown IDs make it a no-op. The result is persisted before
// Resolve returns; a persist failure is logged but does not undo the
// in-memory update.
func (s *Session) Resolve(winnerID, loserID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	wi := s.indexOf(winnerID)
	li := s.indexOf(loserID)
	if wi < 0 || li < 0 || wi == li {
		return false
	}

	winner, loser := &s.items[wi], &s.items[li]
	prevW, prevL := winner.Elo, loser.Elo
	winner.Elo, loser.Elo = rating.Update(prevW, prevL, 1, s.k)

	winner.Played++
	winner.Wins++
	loser.Played++
	loser.Losses++

	entry := model.HistoryEntry{
		Time:         time.Now(),
		WinnerID:     winner.ID,
		LoserID:      loser.ID,
		WinnerBefore: prevW,
		LoserBefore:  prevL,
		WinnerAfter:  winner.Elo,
		LoserAfter:   loser.Elo,
	}
	s.history = append([]model.HistoryEntry{entry}, s.history...)

	if err := s.st.RecordResult(*winner, *loser, entry); err != nil {
		logging.Error("Failed to persist comparison", "winner", winner.ID, "loser", loser.ID, "error", err)
	}
	logging.Debug("Comparison resolved",
		"winner", winner.ID, "loser", loser.ID,
		"winner_elo", winner.Elo, "loser_elo", loser.Elo)
	return true
}

// Import parses CSV from r and folds it into the collection. merge=true
// appends new titles only; merge=false replaces the collection (history
// stays). A parse error leaves the collection untouched.
func (s *Session) Import(r io.Reader, merge bool) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := ingest.ParseCSV(r)
	if err != nil {
		logging.Warn("Import parse failed", "error", err)
		return "", fmt.Errorf("parse import: %w", err)
	}

	items, res := ingest.Merge(s.items, rows, merge)
	s.items = items

	if err := s.st.SaveItems(s.items); err != nil {
		logging.Error("Failed to persist import", "error", err)
	}
	logging.Info("Import complete", "imported", res.Imported, "merge", merge, "total", len(s.items))
	return res.Message(), nil
}

// ExportCSV snapshots the collection as CSV text, sorted by Elo.
// Empty when the collection is empty; callers suppress the export then.
func (s *Session) ExportCSV() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return export.CSV(s.items)
}

// Reset clears the collection, the history and the persisted state.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.st.Reset(); err != nil {
		return fmt.Errorf("reset store: %w", err)
	}
	s.items = nil
	s.history = nil
	logging.Info("Session reset")
	return nil
}

// Len returns the collection size.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items)
}

// Comparisons returns how many resolutions this session's log holds.
func (s *Session) Comparisons() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.history)
}

// Title resolves an item ID to its title for display. Dangling IDs
// (e.g. history referencing items dropped by a fresh import) fall back
// to the raw ID string.
func (s *Session) Title(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return s.items[i].Title
	}
	return id
}

func (s *Session) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
