// Package ingest converts an exported CSV of rated movies into the
// collection, either replacing it outright or merging new titles in.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/mredding/reelrank/internal/model"
	"github.com/mredding/reelrank/internal/rating"
)

// Row is one parsed CSV record: the file's column order plus the named
// field values. Unrecognized columns ride along and are ignored by the
// entity conversion.
type Row struct {
	Headers []string
	Fields  map[string]string
}

// Result summarizes one import for the status line.
type Result struct {
	Imported int
	Merged   bool
}

// Message is the human-readable status for the result.
func (r Result) Message() string {
	if r.Merged {
		return fmt.Sprintf("Merged %d new movies", r.Imported)
	}
	return fmt.Sprintf("Imported %d movies", r.Imported)
}

// ParseCSV reads a header row plus records. A malformed file returns an
// error and the caller leaves the collection untouched.
func ParseCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ratings exports are often ragged

	headers, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}

		fields := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(record) {
				fields[h] = record[i]
			}
		}
		rows = append(rows, Row{Headers: headers, Fields: fields})
	}
	return rows, nil
}

// Merge folds parsed rows into the collection.
//
// merge=false replaces the collection with the parsed items; merge=true
// appends only IDs not already present. Either way an ID collision keeps
// the first occurrence and silently drops the rest (first write wins, no
// rating reconciliation), so IDs stay unique. History is never touched
// here: after a fresh import old entries may reference absent IDs, which
// the display tolerates.
func Merge(existing []model.Item, rows []Row, merge bool) ([]model.Item, Result) {
	seen := make(map[string]bool)
	var out []model.Item
	if merge {
		out = make([]model.Item, len(existing))
		copy(out, existing)
		for _, it := range existing {
			seen[it.ID] = true
		}
	}

	imported := 0
	for _, row := range rows {
		item := model.FromRow(row.Headers, row.Fields)
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		item.Elo = rating.InitialRating(item.Rating)
		out = append(out, item)
		imported++
	}

	return out, Result{Imported: imported, Merged: merge}
}
