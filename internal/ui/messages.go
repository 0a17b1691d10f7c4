// Package ui provides the Bubble Tea TUI for ReelRank.
package ui

import "github.com/mredding/reelrank/internal/model"

// StateLoaded is sent when the collection and history are fetched from
// the session.
type StateLoaded struct {
	Items   []model.Item
	History []model.HistoryEntry
	Err     error
}

// PairPicked is sent when the selector has chosen the next matchup.
// OK is false when the collection is too small to compare.
type PairPicked struct {
	A  model.Item
	B  model.Item
	OK bool
}

// ComparisonResolved is sent after a pick has been applied and
// persisted. It carries the refreshed state so the views stay in sync.
type ComparisonResolved struct {
	Items   []model.Item
	History []model.HistoryEntry
}

// ExportDone is sent when a rankings export finishes.
type ExportDone struct {
	Path string
	Err  error
}

// ResetDone is sent when a reset of all state has completed.
type ResetDone struct {
	Err error
}
