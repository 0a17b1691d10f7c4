package model

import "testing"

func TestFromRowSynonyms(t *testing.T) {
	headers := []string{"Film", "Release Year", "your_rating"}
	record := map[string]string{
		"Film":         "Stalker",
		"Release Year": "1979",
		"your_rating":  "4.5",
	}

	item := FromRow(headers, record)
	if item.Title != "Stalker" {
		t.Errorf("expected title Stalker, got %q", item.Title)
	}
	if item.Year != "1979" {
		t.Errorf("expected year 1979, got %q", item.Year)
	}
	if item.Rating == nil || *item.Rating != 4.5 {
		t.Errorf("expected rating 4.5, got %v", item.Rating)
	}
	if item.ID != "Stalker|1979" {
		t.Errorf("expected id Stalker|1979, got %q", item.ID)
	}
}

func TestFromRowSynonymPriority(t *testing.T) {
	// "Title" outranks "Film" when both are present.
	headers := []string{"Film", "Title"}
	record := map[string]string{"Film": "Alien 3", "Title": "Alien"}

	item := FromRow(headers, record)
	if item.Title != "Alien" {
		t.Errorf("expected Title synonym to win, got %q", item.Title)
	}
}

func TestFromRowTitleFallback(t *testing.T) {
	// No recognized title field: first column's value is used.
	headers := []string{"Movie", "Year"}
	record := map[string]string{"Movie": "Heat", "Year": "1995"}

	item := FromRow(headers, record)
	if item.Title != "Heat" {
		t.Errorf("expected first-column fallback Heat, got %q", item.Title)
	}
}

func TestFromRowUnknownPlaceholder(t *testing.T) {
	item := FromRow(nil, map[string]string{})
	if item.Title != UnknownTitle {
		t.Errorf("expected placeholder %q, got %q", UnknownTitle, item.Title)
	}
	if item.ID != UnknownTitle+"|" {
		t.Errorf("unexpected id %q", item.ID)
	}
}

func TestFromRowBadRating(t *testing.T) {
	for _, raw := range []string{"", "five", "4.5 stars", "NaN"} {
		record := map[string]string{"Title": "Ran", "Rating": raw}
		item := FromRow([]string{"Title", "Rating"}, record)
		if item.Rating != nil {
			t.Errorf("rating %q: expected nil, got %v", raw, *item.Rating)
		}
	}
}

func TestItemIDTrims(t *testing.T) {
	if got := ItemID("  Heat ", " 1995 "); got != "Heat|1995" {
		t.Errorf("expected trimmed id, got %q", got)
	}
}
