package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkotenko/clickrush/internal/config"
	"github.com/dkotenko/clickrush/internal/core"
	"github.com/dkotenko/clickrush/internal/games/rush"
	"github.com/dkotenko/clickrush/internal/platform/tui"
	"github.com/dkotenko/clickrush/internal/registry"
	"github.com/dkotenko/clickrush/internal/storage"
)

var (
	flagConfig   string
	flagDuration int
	flagPreset   string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move the cursor
  Space/Enter  - Press at the cursor (or just click with the mouse)
  R            - Retry (after the round ends)
  Q/Ctrl+C     - Quit

Duration presets:
  blitz    - 10 second round
  classic  - 30 second round
  marathon - 60 second round

Examples:
  clickrush play rush
  clickrush play rush --preset blitz
  clickrush play rush --duration 45
  clickrush play rush --config ./my-rush.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().IntVar(&flagDuration, "duration", 0, "Round duration in seconds (0 = ask)")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Duration preset: blitz, classic, marathon")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'clickrush list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size early for the setup menu
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if gameID == "rush" {
		rush.SetConfigPath(flagConfig)

		rushCfg, cfgErr := config.LoadRush(flagConfig)
		if cfgErr != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", cfgErr)
			os.Exit(1)
		}

		duration, ok := resolveDuration(rushCfg)
		if !ok {
			// Ask via the setup menu
			selection, updatedCfg, selErr := tui.RunRushSetup(cfg, rushCfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				os.Exit(1)
			}
			cfg = updatedCfg

			// User pressed back or quit
			if selection == nil {
				return
			}
			duration = selection.DurationSecs
		}
		rush.SetStartDuration(duration)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// resolveDuration picks the round duration from the --duration and --preset
// flags. The second return value is false when neither flag was given.
func resolveDuration(rushCfg config.RushConfig) (int, bool) {
	if flagDuration > 0 {
		return rushCfg.ClampDuration(flagDuration), true
	}

	if flagPreset != "" {
		secs := config.DurationForPreset(config.DurationPreset(flagPreset))
		if secs == 0 {
			fmt.Fprintf(os.Stderr, "Error: unknown preset %q (try blitz, classic, marathon)\n", flagPreset)
			os.Exit(1)
		}
		return rushCfg.ClampDuration(secs), true
	}

	return 0, false
}
