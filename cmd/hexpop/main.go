// hexpop is a hex-grid bubble shooter for the terminal.
//
// Usage:
//
//	hexpop list              - List game modes
//	hexpop play [mode]       - Play the campaign or endless mode
//	hexpop menu              - Pick a mode interactively
//	hexpop levels            - List and check campaign levels
//	hexpop scores [mode]     - Show high scores
//	hexpop config            - Print the default gameplay config
//	hexpop serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.hexpop/scores.db)
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hexpop/internal/config"
	"github.com/vovakirdan/hexpop/internal/core"
	"github.com/vovakirdan/hexpop/internal/games/hexpop"
	"github.com/vovakirdan/hexpop/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagTheme      string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexpop",
	Short: "HexPop - pop colored balls on a hex grid in your terminal",
	Long: `HexPop is a bubble shooter played on a hexagonal grid.
Aim, bounce off the walls and match three or more balls of a color.
Balls cut off from the ceiling fall and score as well.

Available commands:
  list     - Show the game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  levels   - List, check and preview campaign levels
  scores   - View high scores
  config   - Print the default gameplay config
  serve    - Start SSH server for remote play

Examples:
  hexpop play
  hexpop play --endless --difficulty hard
  hexpop levels --preview lvl02+lvl01
  hexpop serve --ssh :2222`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagTheme != "" && !tui.SetThemeByName(flagTheme) {
			return fmt.Errorf("unknown theme %q (available: %s)", flagTheme, strings.Join(tui.ThemeNames(), ", "))
		}
		if _, ok := config.ParsePreset(flagDifficulty); flagDifficulty != "" && !ok {
			return fmt.Errorf("unknown difficulty %q (available: easy, normal, hard, fixed)", flagDifficulty)
		}
		applyGameFlags()
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hexpop/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files (default: built-in levels)")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Menu theme: "+strings.Join(tui.ThemeNames(), ", "))

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// applyGameFlags passes the gameplay flags to the game package before any
// game is created.
func applyGameFlags() {
	hexpop.SetConfigPath(flagConfig)
	hexpop.SetDifficultyPreset(flagDifficulty)
	hexpop.SetLevelsDir(flagLevelsDir)
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
