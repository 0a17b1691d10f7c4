// Package export serializes the collection to CSV, sorted by rating.
package export

import (
	"encoding/csv"
	"sort"
	"strconv"
	"strings"

	"github.com/mredding/reelrank/internal/model"
)

// DefaultFilename is the artifact name offered to the user.
const DefaultFilename = "movie_rankings.csv"

var header = []string{"Title", "Year", "Rating", "Elo", "Played", "Wins", "Losses"}

// CSV renders the collection as CSV text, one row per item ordered by
// descending Elo. The sort is stable: ties keep the collection's current
// relative order. An empty collection yields empty output and callers
// suppress the export.
func CSV(items []model.Item) string {
	if len(items) == 0 {
		return ""
	}

	sorted := make([]model.Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Elo > sorted[j].Elo
	})

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	w.Write(header)
	for _, it := range sorted {
		rating := ""
		if it.Rating != nil {
			rating = strconv.FormatFloat(*it.Rating, 'f', -1, 64)
		}
		w.Write([]string{
			it.Title,
			it.Year,
			rating,
			strconv.Itoa(it.Elo),
			strconv.Itoa(it.Played),
			strconv.Itoa(it.Wins),
			strconv.Itoa(it.Losses),
		})
	}
	w.Flush()
	return sb.String()
}
