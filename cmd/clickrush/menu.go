package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkotenko/clickrush/internal/config"
	"github.com/dkotenko/clickrush/internal/core"
	"github.com/dkotenko/clickrush/internal/games/rush"
	"github.com/dkotenko/clickrush/internal/platform/tui"
	"github.com/dkotenko/clickrush/internal/registry"
	"github.com/dkotenko/clickrush/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  clickrush menu
  clickrush menu --fps 60
  clickrush menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, "rush", "Target Rush", cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		if gameID == "rush" {
			rushCfg, cfgErr := config.LoadRush("")
			if cfgErr != nil {
				fmt.Fprintf(os.Stderr, "Error loading config: %v\n", cfgErr)
				continue
			}

			selection, updatedCfg, selErr := tui.RunRushSetup(cfg, rushCfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				continue
			}
			cfg = updatedCfg

			// User pressed back or quit
			if selection == nil {
				continue
			}
			rush.SetStartDuration(selection.DurationSecs)
		}

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each game
		cfg.Seed = time.Now().UnixNano()

		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
