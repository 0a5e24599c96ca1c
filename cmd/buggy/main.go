// buggy is a terminal racing game: steer a buggy around a ringed track and
// lap it as often as you can before the clock runs out.
//
// Usage:
//
//	buggy list              - List available games
//	buggy play [game]       - Race (defaults to racer)
//	buggy menu              - Start menu with difficulty picker and scores
//	buggy serve             - Start SSH server for remote play
//	buggy scores [game]     - Show session and lap records
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed
//	--db <path>     - Set database path (default: ~/.buggy/scores.db)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/buggy-racer/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/buggy-racer/internal/games/racer"
)

const defaultGame = "racer"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "buggy"})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "buggy",
	Short: "Buggy Racer - lap a 3D track in your terminal",
	Long: `Buggy Racer renders a small 3D race track with a steerable buggy
directly in your terminal. Complete as many laps as you can before the
session clock runs out.

Available commands:
  list     - Show all available games
  play     - Start racing right away
  menu     - Difficulty picker and scoreboard
  serve    - Start SSH server for remote play
  scores   - View session and lap records

Examples:
  buggy play
  buggy play --difficulty hard
  buggy menu
  buggy serve --ssh :2222
  buggy scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", config.DefaultDBPath(), "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// gameArg returns the game named on the command line, or the default.
func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultGame
}
