// blocks is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blocks                   - Play (same as "blocks play")
//	blocks play              - Play
//	blocks list              - List registered games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for a reproducible piece sequence
//	--log <path>    - Write debug logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-blocks/internal/games/blocks"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blocks",
	Short: "Blocks - a falling-block puzzle in your terminal",
	Long: `Blocks drops shaped pieces into a 10x20 well. Steer and rotate them,
fill complete rows to clear them, and keep the stack below the top.

Available commands:
  play     - Play (default)
  list     - Show registered games

Examples:
  blocks
  blocks --difficulty hard
  blocks play --seed 42 --log /tmp/blocks.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")
	addPlayFlags(rootCmd)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
}
