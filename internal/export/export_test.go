package export

import (
	"strings"
	"testing"

	"github.com/mredding/reelrank/internal/model"
)

func TestCSVEmpty(t *testing.T) {
	if got := CSV(nil); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestCSVSortedByEloDescending(t *testing.T) {
	items := []model.Item{
		{Title: "Low", Year: "2000", Elo: 900},
		{Title: "High", Year: "2001", Elo: 1700},
		{Title: "Mid", Year: "2002", Elo: 1200},
	}

	lines := strings.Split(strings.TrimRight(CSV(items), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines", len(lines))
	}
	if lines[0] != "Title,Year,Rating,Elo,Played,Wins,Losses" {
		t.Errorf("unexpected header %q", lines[0])
	}
	for i, want := range []string{"High", "Mid", "Low"} {
		if !strings.HasPrefix(lines[i+1], want+",") {
			t.Errorf("row %d: expected %s first, got %q", i+1, want, lines[i+1])
		}
	}
}

func TestCSVStableTies(t *testing.T) {
	items := []model.Item{
		{Title: "First", Elo: 1200},
		{Title: "Second", Elo: 1200},
		{Title: "Third", Elo: 1200},
	}

	lines := strings.Split(strings.TrimRight(CSV(items), "\n"), "\n")
	for i, want := range []string{"First", "Second", "Third"} {
		if !strings.HasPrefix(lines[i+1], want+",") {
			t.Errorf("tie order broken at row %d: %q", i+1, lines[i+1])
		}
	}
}

func TestCSVEscaping(t *testing.T) {
	rating := 3.5
	items := []model.Item{
		{Title: `Me, Myself & "Irene"`, Year: "2000", Rating: &rating, Elo: 1400, Played: 2, Wins: 1, Losses: 1},
	}

	out := CSV(items)
	want := `"Me, Myself & ""Irene""",2000,3.5,1400,2,1,1`
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[1] != want {
		t.Errorf("expected %q, got %q", want, lines[1])
	}
}

func TestCSVNilRatingEmptyCell(t *testing.T) {
	items := []model.Item{{Title: "Unrated", Year: "2020", Elo: 1200}}

	lines := strings.Split(strings.TrimRight(CSV(items), "\n"), "\n")
	if lines[1] != "Unrated,2020,,1200,0,0,0" {
		t.Errorf("unexpected row %q", lines[1])
	}
}

func TestCSVDoesNotReorderInput(t *testing.T) {
	items := []model.Item{
		{Title: "B", Elo: 900},
		{Title: "A", Elo: 1700},
	}
	CSV(items)
	if items[0].Title != "B" {
		t.Error("export reordered the caller's collection")
	}
}
