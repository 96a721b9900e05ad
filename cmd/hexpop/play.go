package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexpop/internal/core"
	"github.com/vovakirdan/hexpop/internal/platform/tui"
	"github.com/vovakirdan/hexpop/internal/registry"
	"github.com/vovakirdan/hexpop/internal/storage"
)

var (
	flagLevel   string
	flagEndless bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play HexPop",
	Long: `Start playing. The mode defaults to the campaign; without --level a
level picker is shown first.

Controls:
  Left/Right, A/D  - Aim
  Space/Up/W       - Fire
  Down/S           - Swap loaded and next ball
  P                - Pause
  Esc/B            - Back (while paused or after game over)
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  hexpop play
  hexpop play --level lvl03
  hexpop play --endless --difficulty hard
  hexpop play --levels ./my-levels
  hexpop play --config ./my-hexpop.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Campaign level ID to start at (skips the level picker)")
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play endless mode")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "hexpop"
	if len(args) > 0 {
		gameID = args[0]
	}
	if flagEndless {
		gameID = "hexpop-endless"
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'hexpop list' to see available modes.")
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := playLoop(gameID, store, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// playLoop runs the level picker and the game until the user quits.
// Leaving a game with Back returns to the picker.
func playLoop(gameID string, store *storage.Store, cfg core.RuntimeConfig) error {
	for {
		levelID := flagLevel
		picked := false
		if gameID == "hexpop" && levelID == "" {
			sel, updated, err := tui.RunLevelSelector(store, cfg)
			if err != nil {
				return err
			}
			cfg = updated
			// User pressed back or quit
			if sel == nil {
				return nil
			}
			levelID = sel.LevelID
			picked = true
		}

		game, err := registry.Create(gameID)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}
		if ls, ok := game.(registry.LevelStarter); ok {
			ls.StartAt(levelID)
		}

		back, err := tui.Run(game, store, cfg)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !back || !picked {
			return nil
		}
	}
}
