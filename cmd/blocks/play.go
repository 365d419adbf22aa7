package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play blocks",
	Long: `Start a game of blocks.

Controls:
  Left/A, Right/D  - Move
  Down/S           - Drop one row
  Up/W             - Nudge up one row
  X / Z            - Rotate clockwise / counter-clockwise
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Screenshot to ~/.blocks/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 1000ms start, speeds up with score
  normal - Configured start (750ms by default), speeds up with score
  hard   - 500ms start, speeds up with score
  fixed  - Configured start, no speed-up

Without --difficulty a selector is shown first.

Examples:
  blocks play
  blocks play --difficulty easy
  blocks play --config ./my-blocks.yaml --seed 7`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the game flags on cmd. The root command shares
// them so that "blocks --difficulty hard" works without "play".
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom blocks config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	stderr := log.NewWithOptions(os.Stderr, log.Options{Prefix: "blocks"})

	gameCfg, err := config.LoadBlocks(flagConfig, stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var preset config.DifficultyPreset
	if flagDifficulty != "" {
		preset, err = config.ParsePreset(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	if preset == "" {
		chosen, ok, selErr := tui.RunDifficultySelector(cfg, gameCfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		if !ok {
			return
		}
		preset = chosen
	}
	config.ApplyBlocksPreset(&gameCfg, preset)

	logger, closeLog := openLogger(flagLogPath, stderr)
	defer closeLog()

	blocks.SetConfig(gameCfg)
	blocks.SetLogger(logger)
	logger.Debug("config loaded",
		"preset", preset,
		"interval_ms", gameCfg.Timing.DropIntervalMS,
		"ramp", gameCfg.Difficulty.Enabled,
	)

	game, err := registry.Create("blocks")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// openLogger returns a debug logger writing to path, or a discarding one
// when path is empty. Bubble Tea owns the terminal, so logs never go to
// stdout or stderr during play.
func openLogger(path string, warn *log.Logger) (*log.Logger, func()) {
	if path == "" {
		return log.New(io.Discard), func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		warn.Warn("could not open log file, logging disabled", "path", path, "error", err)
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "blocks",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }
}
