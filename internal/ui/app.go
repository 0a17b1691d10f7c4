package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mredding/reelrank/internal/model"
)

// viewMode selects which screen the app is showing.
type viewMode int

const (
	modeDuel viewMode = iota
	modeRankings
	modeHistory
)

// defaultHistoryLimit caps how many log entries the history view shows.
const defaultHistoryLimit = 200

// AppConfig wires the app to the session. App never holds the session
// directly; every state change arrives as a message from one of these
// commands.
type AppConfig struct {
	LoadState func() tea.Cmd
	NextPair  func() tea.Cmd
	Resolve   func(winnerID, loserID string) tea.Cmd
	Export    func() tea.Cmd
	Reset     func() tea.Cmd

	HistoryLimit int
}

// App is the root Bubble Tea model.
type App struct {
	cfg AppConfig

	mode    viewMode
	items   []model.Item
	history []model.HistoryEntry

	pairA   model.Item
	pairB   model.Item
	hasPair bool

	cursor       int
	width        int
	height       int
	ready        bool
	loading      bool
	confirmReset bool
	status       string
	err          error

	spin spinner.Model
}

// NewAppWithConfig creates an App wired to the given command functions.
func NewAppWithConfig(cfg AppConfig) App {
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = defaultHistoryLimit
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return App{cfg: cfg, spin: sp}
}

// Init loads persisted state and starts the spinner.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.spin.Tick}
	if a.cfg.LoadState != nil {
		a.loading = true
		cmds = append(cmds, a.cfg.LoadState())
	}
	return tea.Batch(cmds...)
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case StateLoaded:
		a.loading = false
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.items = msg.Items
		a.history = msg.History
		a.err = nil
		a.clampCursor()
		if a.cfg.NextPair != nil {
			return a, a.cfg.NextPair()
		}
		return a, nil

	case PairPicked:
		a.pairA = msg.A
		a.pairB = msg.B
		a.hasPair = msg.OK
		return a, nil

	case ComparisonResolved:
		a.items = msg.Items
		a.history = msg.History
		a.clampCursor()
		if a.cfg.NextPair != nil {
			return a, a.cfg.NextPair()
		}
		return a, nil

	case ExportDone:
		if msg.Err != nil {
			a.err = msg.Err
		} else {
			a.status = "Exported rankings to " + msg.Path
		}
		return a, nil

	case ResetDone:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.items = nil
		a.history = nil
		a.hasPair = false
		a.cursor = 0
		a.status = "All rankings cleared"
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd
	}

	return a, nil
}

// handleKeyMsg processes keyboard input.
func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// A pending reset confirmation captures the next key.
	if a.confirmReset {
		a.confirmReset = false
		if key == "y" || key == "Y" {
			if a.cfg.Reset != nil {
				return a, a.cfg.Reset()
			}
		}
		a.status = "Reset cancelled"
		return a, nil
	}

	// Any other key clears transient feedback.
	a.status = ""
	if a.err != nil {
		a.err = nil
	}

	switch key {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "tab":
		a.mode = (a.mode + 1) % 3
		a.cursor = 0
		return a, nil

	case "e":
		if len(a.items) == 0 {
			a.status = "Nothing to export"
			return a, nil
		}
		if a.cfg.Export != nil {
			return a, a.cfg.Export()
		}
		return a, nil

	case "R":
		if len(a.items) == 0 && len(a.history) == 0 {
			return a, nil
		}
		a.confirmReset = true
		return a, nil
	}

	switch a.mode {
	case modeDuel:
		return a.handleDuelKey(key)
	case modeRankings, modeHistory:
		return a.handleListKey(key)
	}
	return a, nil
}

// handleDuelKey resolves picks in the comparison view.
func (a App) handleDuelKey(key string) (tea.Model, tea.Cmd) {
	if !a.hasPair {
		return a, nil
	}

	switch key {
	case "left", "1":
		if a.cfg.Resolve != nil {
			return a, a.cfg.Resolve(a.pairA.ID, a.pairB.ID)
		}

	case "right", "2":
		if a.cfg.Resolve != nil {
			return a, a.cfg.Resolve(a.pairB.ID, a.pairA.ID)
		}

	case "s":
		if a.cfg.NextPair != nil {
			return a, a.cfg.NextPair()
		}
	}
	return a, nil
}

// handleListKey scrolls the rankings and history views.
func (a App) handleListKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.cursor < a.listLen()-1 {
			a.cursor++
		}

	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}

	case "g", "home":
		a.cursor = 0

	case "G", "end":
		if n := a.listLen(); n > 0 {
			a.cursor = n - 1
		}
	}
	return a, nil
}

// listLen is the row count of the active list view.
func (a App) listLen() int {
	if a.mode == modeHistory {
		n := len(a.history)
		if n > a.cfg.HistoryLimit {
			n = a.cfg.HistoryLimit
		}
		return n
	}
	return len(a.items)
}

func (a *App) clampCursor() {
	if n := a.listLen(); a.cursor >= n {
		if n > 0 {
			a.cursor = n - 1
		} else {
			a.cursor = 0
		}
	}
}

// View renders the UI.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	header := a.renderHeader()

	var content string
	switch a.mode {
	case modeDuel:
		content = a.renderDuel()
	case modeRankings:
		content = a.renderRankings()
	case modeHistory:
		content = a.renderHistory()
	}

	feedback := ""
	switch {
	case a.confirmReset:
		feedback = ConfirmStyle.Width(a.width).Render("Delete all movies and history? Press y to confirm, any other key to cancel")
	case a.err != nil:
		feedback = ErrorStyle.Width(a.width).Render("Error: " + a.err.Error() + " (press any key to dismiss)")
	case a.status != "":
		feedback = StatusMsgStyle.Width(a.width).Render(a.status)
	}
	if feedback != "" {
		feedback += "\n"
	}

	return header + "\n" + content + "\n" + feedback + a.renderStatusBar()
}

// Mode returns the active view (for testing).
func (a App) Mode() int {
	return int(a.mode)
}

// Cursor returns the current cursor position (for testing).
func (a App) Cursor() int {
	return a.cursor
}

// Items returns the current items (for testing).
func (a App) Items() []model.Item {
	return a.items
}

// Pair returns the current matchup (for testing).
func (a App) Pair() (model.Item, model.Item, bool) {
	return a.pairA, a.pairB, a.hasPair
}
