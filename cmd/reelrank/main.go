package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mredding/reelrank/internal/config"
	"github.com/mredding/reelrank/internal/export"
	"github.com/mredding/reelrank/internal/logging"
	"github.com/mredding/reelrank/internal/pick"
	"github.com/mredding/reelrank/internal/session"
	"github.com/mredding/reelrank/internal/store"
	"github.com/mredding/reelrank/internal/ui"
)

func main() {
	var (
		dbPath     string
		importPath string
		merge      bool
		exportPath string
		seed       int64
	)
	flag.StringVar(&dbPath, "db", "", "path to the SQLite database (default ~/.reelrank/reelrank.db)")
	flag.StringVar(&importPath, "import", "", "CSV file to fold into the collection before starting")
	flag.BoolVar(&merge, "merge", false, "keep existing movies and add only new titles from -import")
	flag.StringVar(&exportPath, "export", "", "write the current rankings as CSV to this file and exit")
	flag.Int64Var(&seed, "seed", 0, "seed for the matchup selector (0 seeds from the clock)")
	flag.Parse()

	// Data directory: ~/.reelrank/
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}
	dataDir := filepath.Join(homeDir, ".reelrank")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "reelrank.db")
	}

	if err := logging.Init(dataDir); err != nil {
		log.Printf("Warning: logging disabled: %v", err)
	}
	defer logging.Close()

	cfg := config.Load(dataDir)

	st, err := store.Open(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer st.Close()

	selector := pick.New()
	if seed != 0 {
		selector = pick.NewSeeded(seed)
	}

	sess := session.New(st, selector, cfg.Rating.KFactor)

	if importPath != "" {
		f, err := os.Open(importPath)
		if err != nil {
			log.Fatalf("Failed to open import file: %v", err)
		}
		msg, err := sess.Import(f, merge)
		f.Close()
		if err != nil {
			log.Fatalf("Import failed: %v", err)
		}
		fmt.Println(msg)
	}

	// -export runs headless: dump the rankings and exit.
	if exportPath != "" {
		data := sess.ExportCSV()
		if data == "" {
			fmt.Println("Nothing to export")
			return
		}
		if err := os.WriteFile(exportPath, []byte(data), 0644); err != nil {
			log.Fatalf("Failed to write export: %v", err)
		}
		fmt.Printf("Exported %d movies to %s\n", sess.Len(), exportPath)
		return
	}

	// Create UI app with dependency injection.
	appCfg := ui.AppConfig{
		LoadState: func() tea.Cmd {
			return func() tea.Msg {
				return ui.StateLoaded{Items: sess.Items(), History: sess.History(0)}
			}
		},
		NextPair: func() tea.Cmd {
			return func() tea.Msg {
				a, b, ok := sess.NextPair()
				return ui.PairPicked{A: a, B: b, OK: ok}
			}
		},
		Resolve: func(winnerID, loserID string) tea.Cmd {
			return func() tea.Msg {
				sess.Resolve(winnerID, loserID)
				return ui.ComparisonResolved{Items: sess.Items(), History: sess.History(0)}
			}
		},
		Export: func() tea.Cmd {
			return func() tea.Msg {
				data := sess.ExportCSV()
				if data == "" {
					return ui.ExportDone{Err: errors.New("nothing to export")}
				}
				if err := os.WriteFile(export.DefaultFilename, []byte(data), 0644); err != nil {
					return ui.ExportDone{Err: err}
				}
				return ui.ExportDone{Path: export.DefaultFilename}
			}
		},
		Reset: func() tea.Cmd {
			return func() tea.Msg {
				return ui.ResetDone{Err: sess.Reset()}
			}
		},
		HistoryLimit: cfg.UI.HistoryLimit,
	}

	app := ui.NewAppWithConfig(appCfg)
	program := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		log.Printf("Error running program: %v", err)
	}
}
