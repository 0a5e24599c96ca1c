package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/buggy-racer/internal/platform/tui"
	"github.com/vovakirdan/buggy-racer/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu [game]",
	Short: "Start with a difficulty picker",
	Long: `Start in interactive menu mode.

Pick a difficulty with the arrow keys or j/k and press Enter to race.
Quitting a race returns you to the menu; Tab opens the scoreboard.

Examples:
  buggy menu
  buggy menu --fps 30
  buggy menu --config ./my-racer.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom racer config YAML")
}

func runMenu(_ *cobra.Command, args []string) error {
	gameID := gameArg(args)
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'buggy list' to see available games", gameID)
	}
	if err := applyRacerFlags(); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	title := gameID

	for {
		menuResult, err := tui.RunMenu(store, cfg, gameID)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			if g, err := registry.Create(gameID); err == nil {
				title = g.Title()
			}
			goBack, sbErr := tui.RunScoreboard(store, gameID, title, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		game, err := registry.Create(gameID)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}
		if ds, ok := game.(registry.DifficultySetter); ok {
			ds.SetDifficulty(string(menuResult.Preset))
		}

		// Update seed for each race
		cfg.Seed = time.Now().UnixNano()

		if err := tui.Run(game, store, cfg); err != nil {
			logger.Error("race ended with error", "error", err)
		}
	}
}
