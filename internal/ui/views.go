package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mredding/reelrank/internal/model"
)

var modeNames = [...]string{"Duel", "Rankings", "History"}

// renderHeader draws the top line with the active view name.
func (a App) renderHeader() string {
	tabs := make([]string, len(modeNames))
	for i, name := range modeNames {
		if viewMode(i) == a.mode {
			tabs[i] = StatusBarKey.Render(name)
		} else {
			tabs[i] = StatusBarText.Render(name)
		}
	}
	title := TitleStyle.Render("ReelRank")
	return title + "  " + strings.Join(tabs, StatusBarText.Render(" / "))
}

// renderDuel draws the two contenders side by side.
func (a App) renderDuel() string {
	if len(a.items) < 2 {
		return EmptyStyle.Render("Not enough movies to compare. Import a CSV with --import to get started.")
	}
	if !a.hasPair {
		return EmptyStyle.Render(a.spin.View() + " Picking a matchup...")
	}

	left := a.renderCard(a.pairA, "1")
	right := a.renderCard(a.pairB, "2")
	vs := VersusStyle.Render("vs")

	duel := lipgloss.JoinHorizontal(lipgloss.Center, left, vs, right)
	hint := StatusBarText.Render("  Which did you like more? Press 1/2 or the arrow keys, s to skip.")
	return duel + "\n" + hint
}

// renderCard draws one contender.
func (a App) renderCard(item model.Item, key string) string {
	cardWidth := 30
	if a.width > 0 && a.width/2-6 < cardWidth {
		cardWidth = a.width/2 - 6
	}
	if cardWidth < 12 {
		cardWidth = 12
	}

	title := CardTitle.Render(truncate(item.Title, cardWidth))
	meta := CardMeta.Render(fmt.Sprintf("(%s)  Elo %d", displayYear(item.Year), item.Elo))
	record := CardMeta.Render(fmt.Sprintf("%dW / %dL in %d", item.Wins, item.Losses, item.Played))
	hint := StatusBarKey.Render("[" + key + "]")

	return CardStyle.Width(cardWidth).Render(title + "\n" + meta + "\n" + record + "\n" + hint)
}

// renderRankings draws the collection sorted by Elo, best first.
func (a App) renderRankings() string {
	if len(a.items) == 0 {
		return EmptyStyle.Render("No movies yet.")
	}

	ranked := make([]model.Item, len(a.items))
	copy(ranked, a.items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Elo > ranked[j].Elo
	})

	visible := a.contentHeight()
	start := 0
	if a.cursor >= visible {
		start = a.cursor - visible + 1
	}
	end := start + visible
	if end > len(ranked) {
		end = len(ranked)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		it := ranked[i]
		line := fmt.Sprintf("%3d. %-40s %s  Elo %4d  %dW/%dL",
			i+1, truncate(it.Title, 40), displayYear(it.Year), it.Elo, it.Wins, it.Losses)
		if i == a.cursor {
			b.WriteString(SelectedRow.Render(line))
		} else {
			b.WriteString(NormalRow.Render(line))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderHistory draws the comparison log, newest first. Entries that
// reference movies dropped by a later import fall back to the raw ID.
func (a App) renderHistory() string {
	if len(a.history) == 0 {
		return EmptyStyle.Render("No comparisons yet.")
	}

	titles := make(map[string]string, len(a.items))
	for _, it := range a.items {
		titles[it.ID] = it.Title
	}
	name := func(id string) string {
		if t, ok := titles[id]; ok {
			return t
		}
		return id
	}

	entries := a.history
	if len(entries) > a.cfg.HistoryLimit {
		entries = entries[:a.cfg.HistoryLimit]
	}

	visible := a.contentHeight()
	start := 0
	if a.cursor >= visible {
		start = a.cursor - visible + 1
	}
	end := start + visible
	if end > len(entries) {
		end = len(entries)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		e := entries[i]
		line := fmt.Sprintf("%s  %s %s %s  (%d>%d, %d>%d)",
			e.Time.Format("Jan 02 15:04"),
			HistoryWinner.Render(truncate(name(e.WinnerID), 28)),
			StatusBarText.Render("beat"),
			truncate(name(e.LoserID), 28),
			e.WinnerBefore, e.WinnerAfter, e.LoserBefore, e.LoserAfter)
		if i == a.cursor {
			b.WriteString(SelectedRow.Render(line))
		} else {
			b.WriteString(HistoryRow.Render(line))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderStatusBar draws the bottom bar with counts and key hints.
func (a App) renderStatusBar() string {
	left := fmt.Sprintf("%d movies  %d comparisons", len(a.items), len(a.history))
	if a.loading {
		left = a.spin.View() + " " + left
	}

	hints := strings.Join([]string{
		StatusBarKey.Render("tab") + StatusBarText.Render(" view"),
		StatusBarKey.Render("e") + StatusBarText.Render(" export"),
		StatusBarKey.Render("R") + StatusBarText.Render(" reset"),
		StatusBarKey.Render("q") + StatusBarText.Render(" quit"),
	}, "  ")

	bar := left + "  " + hints
	if a.width > 0 {
		return StatusBar.Width(a.width).Render(bar)
	}
	return StatusBar.Render(bar)
}

// contentHeight is the number of list rows that fit between the header
// and the status bar.
func (a App) contentHeight() int {
	h := a.height - 4
	if h < 1 {
		h = 1
	}
	return h
}

func displayYear(year string) string {
	if year == "" {
		return "----"
	}
	return year
}

func truncate(s string, max int) string {
	if max <= 3 || len(s) <= max {
		if len(s) <= max {
			return s
		}
		return s[:max]
	}
	return s[:max-3] + "..."
}
