package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/loop"
	"github.com/vovakirdan/loop-arcade/internal/platform/keys"
	"github.com/vovakirdan/loop-arcade/internal/platform/tui"
	"github.com/vovakirdan/loop-arcade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Quitting a game returns you to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right      - Change difficulty
  Enter/Space     - Select game
  Tab             - High scores
  Q               - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --difficulty hard --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger := newLogger(false)
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	shots := expandHome("~/.arcade/screenshots")

	return tui.RunSession(store, runtimeConfig(), preset, menuLauncher(store, logger, shots))
}

// menuLauncher starts the games picked in the menu with the global
// --config and a fresh seed each.
func menuLauncher(store *storage.Store, logger *log.Logger, shots string) tui.Launch {
	return func(sel tui.Selection, cfg core.RuntimeConfig) (tui.GameModel, error) {
		g, err := newGame(sel.GameID, flagConfig, sel.Preset)
		if err != nil {
			return tui.GameModel{}, err
		}
		cfg.Seed = seed()

		var scores *loop.ScoreKeeper
		var observers []loop.Observer
		if store != nil {
			scores = loop.NewScoreKeeper(store, logger)
			observers = append(observers, scores)
		}
		d := loop.New(g, core.NewSampler(keys.HoldWindow(cfg.TickRate)), loop.Options{
			Config:    cfg,
			Observers: observers,
			Logger:    logger,
		})
		logger.Info("game started", "game", sel.GameID, "difficulty", sel.Preset, "seed", cfg.Seed)
		return tui.NewGameModel(d, tui.GameOptions{Scores: scores, ShotDir: shots, Embedded: true}), nil
	}
}
