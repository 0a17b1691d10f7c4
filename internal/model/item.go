// Package model defines the core entities for ReelRank.
//
// An Item is one ranked movie. Its identity is the natural key
// title + "|" + year, which is what deduplicates rows across separate
// imports of the same dataset.
package model

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Item is one ranked movie.
type Item struct {
	ID     string
	Title  string
	Year   string
	Rating *float64 // source-scale rating (0-5), nil when unrated
	Elo    int
	Played int
	Wins   int
	Losses int
}

// HistoryEntry records one resolved comparison. Entries are append-only;
// nothing ever mutates or removes one short of a full reset.
type HistoryEntry struct {
	Time         time.Time
	WinnerID     string
	LoserID      string
	WinnerBefore int
	LoserBefore  int
	WinnerAfter  int
	LoserAfter   int
}

// Field synonym priority lists for import headers. Tried in order; the
// first header present in the row wins.
var (
	TitleFields  = []string{"Title", "title", "Film", "Name"}
	YearFields   = []string{"Year", "year", "Release Year"}
	RatingFields = []string{"Rating", "rating", "Your Rating", "your_rating"}
)

// UnknownTitle is the placeholder used when a row has no usable title.
const UnknownTitle = "Unknown"

// ItemID derives the natural key from a title and year.
func ItemID(title, year string) string {
	return strings.TrimSpace(title) + "|" + strings.TrimSpace(year)
}

// FromRow converts one parsed import row into an Item. headers preserves
// the row's column order so the first column can serve as a title fallback.
// Conversion never fails: a row with nothing usable still yields an Item
// titled UnknownTitle.
//
// Elo and the play counters are left zero; the importer seeds them.
func FromRow(headers []string, record map[string]string) Item {
	title := firstField(record, TitleFields)
	if title == "" && len(headers) > 0 {
		title = record[headers[0]]
	}
	if title == "" {
		title = UnknownTitle
	}

	year := firstField(record, YearFields)

	var rating *float64
	if raw := firstField(record, RatingFields); raw != "" {
		if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil && !math.IsNaN(v) {
			rating = &v
		}
	}

	return Item{
		ID:     ItemID(title, year),
		Title:  title,
		Year:   year,
		Rating: rating,
	}
}

func firstField(record map[string]string, names []string) string {
	for _, name := range names {
		if v, ok := record[name]; ok && v != "" {
			return v
		}
	}
	return ""
}
