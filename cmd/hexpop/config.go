package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexpop/internal/config"
)

var flagConfigWrite string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default gameplay config",
	Long: `Print the default gameplay config as YAML, or write it to a file
to start a custom config. Pass the file back with --config, or save it as
~/.hexpop/configs/hexpop.yaml to make it the default.

Examples:
  hexpop config
  hexpop config --write ./my-hexpop.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigWrite, "write", "", "Write the default config to this path")
}

func runConfig(_ *cobra.Command, _ []string) {
	data := config.GetDefaultYAML("hexpop")

	if flagConfigWrite == "" {
		fmt.Print(string(data))
		return
	}

	if dir := filepath.Dir(flagConfigWrite); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if err := os.WriteFile(flagConfigWrite, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", flagConfigWrite)
}
