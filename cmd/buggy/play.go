package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/buggy-racer/internal/config"
	"github.com/vovakirdan/buggy-racer/internal/core"
	"github.com/vovakirdan/buggy-racer/internal/games/racer"
	"github.com/vovakirdan/buggy-racer/internal/platform/tui"
	"github.com/vovakirdan/buggy-racer/internal/registry"
	"github.com/vovakirdan/buggy-racer/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Start a race",
	Long: `Start racing immediately.

Controls:
  Left/A, Right/D - Steer
  Up              - Center the steering
  W               - Accelerate in the selected gear
  S/Down          - Brake
  F / R           - Forward / reverse gear (only when nearly stopped)
  C               - Switch camera (chase, overhead, trackside)
  P/Esc           - Pause
  N/Enter         - Restart after the session ends
  Ctrl+S          - Save a screenshot
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Start slow with self-centering steering, 4 minute session
  normal - Start at 30% speed scaling, 3 minute session
  hard   - Start at 70% speed scaling, 2 minute session
  fixed  - Full speed, no progression

Examples:
  buggy play
  buggy play --difficulty easy
  buggy play racer --config ./my-racer.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom racer config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := gameArg(args)

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'buggy list' to see available games", gameID)
	}

	if err := applyRacerFlags(); err != nil {
		return err
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// applyRacerFlags validates --config and --difficulty before the terminal
// switches to the game screen, then hands them to the racer.
func applyRacerFlags() error {
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagConfig != "" {
		if _, err := config.LoadRacer(flagConfig); err != nil {
			return err
		}
	}

	racer.SetConfigPath(flagConfig)
	racer.SetDifficultyPreset(flagDifficulty)
	return nil
}

// runtimeConfig builds the simulation settings from flags and the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
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

// openStore opens the score database. Play continues without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		return nil
	}
	return store
}
