// arcade is a collection of small real-time games that share one frame
// loop and run in a terminal, over SSH, or in a desktop window.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//	arcade replay <file>     - Play back a recorded run
//	arcade config init <id>  - Write a game's default config for editing
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set database path (default: ~/.arcade/scores.db)
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log-level <level>    - debug, info, warn or error
//
// Every global flag can also be set as ARCADE_<NAME> in the environment or
// in a .env file in the working directory.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/vovakirdan/loop-arcade/internal/games/bros"
	_ "github.com/vovakirdan/loop-arcade/internal/games/cannon"
	_ "github.com/vovakirdan/loop-arcade/internal/games/climb"
	_ "github.com/vovakirdan/loop-arcade/internal/games/fighter"
	_ "github.com/vovakirdan/loop-arcade/internal/games/flappy"
	_ "github.com/vovakirdan/loop-arcade/internal/games/hopper"
	_ "github.com/vovakirdan/loop-arcade/internal/games/invaders"
	_ "github.com/vovakirdan/loop-arcade/internal/games/office"
	_ "github.com/vovakirdan/loop-arcade/internal/games/racer"
	_ "github.com/vovakirdan/loop-arcade/internal/games/sail"
	_ "github.com/vovakirdan/loop-arcade/internal/games/t2048"
	_ "github.com/vovakirdan/loop-arcade/internal/games/typing"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagDifficulty string
	flagConfig     string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Arcade - real-time mini games for terminals and windows",
	Long: `Arcade is a collection of small real-time games that all run on one
frame loop: sample input, step, render, repeat.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  replay   - Play back a recorded run
  config   - Manage game config files

Examples:
  arcade list
  arcade play flappy
  arcade play racer --platform window
  arcade menu --difficulty hard
  arcade serve --ssh :2222
  arcade scores invaders`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagConfig, "config", "", "Path to a custom game config YAML")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "~/.arcade/arcade.log", "Log file for interactive commands")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}
