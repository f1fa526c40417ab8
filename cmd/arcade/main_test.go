package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/loop-arcade/internal/config"
	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/platform/tui"
	"github.com/vovakirdan/loop-arcade/internal/registry"
)

func TestAllGamesRegistered(t *testing.T) {
	for _, id := range []string{"bros", "cannon", "climb", "fighter", "flappy", "hopper", "invaders", "office", "racer", "sail", "typing"} {
		if !registry.Exists(id) {
			t.Errorf("%s not registered", id)
		}
	}
}

func TestEnvironmentFillsFlags(t *testing.T) {
	t.Setenv("ARCADE_FPS", "30")
	t.Setenv("ARCADE_DIFFICULTY", "hard")
	t.Setenv("ARCADE_DB", t.TempDir()+"/scores.db")

	rootCmd.SetArgs([]string{"list"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if flagFPS != 30 || preset != config.DifficultyHard {
		t.Errorf("fps %d preset %s, want 30 and hard from the environment", flagFPS, preset)
	}

	rootCmd.SetArgs([]string{"list", "--fps", "90", "--difficulty", "easy"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if flagFPS != 90 || preset != config.DifficultyEasy {
		t.Errorf("fps %d preset %s, want flags to win", flagFPS, preset)
	}
}

func TestBadFlagsRejected(t *testing.T) {
	tests := [][]string{
		{"list", "--fps", "0"},
		{"list", "--fps", "60", "--difficulty", "insane"},
	}
	for _, args := range tests {
		rootCmd.SetArgs(args)
		if err := rootCmd.Execute(); err == nil {
			t.Errorf("%v accepted", args)
		}
	}
}

func TestNewGameUnknown(t *testing.T) {
	if _, err := newGame("nope", "", config.DifficultyNormal); err == nil {
		t.Error("unknown game accepted")
	}
	g, err := newGame("flappy", "", config.DifficultyEasy)
	if err != nil || g.ID() != "flappy" {
		t.Errorf("newGame(flappy) = %v, %v", g, err)
	}
}

func TestMenuLaunchUsesGlobalConfig(t *testing.T) {
	saved := flagConfig
	t.Cleanup(func() { flagConfig = saved })

	launch := menuLauncher(nil, log.New(os.Stderr), t.TempDir())
	sel := tui.Selection{GameID: "flappy", Preset: config.DifficultyNormal}

	flagConfig = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := launch(sel, core.DefaultConfig()); err == nil {
		t.Error("launch ignored a missing --config file")
	}

	flagConfig = filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(flagConfig, []byte("physics:\n  gravity: 0.3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := launch(sel, core.DefaultConfig())
	if err != nil {
		t.Fatalf("launch with --config failed: %v", err)
	}
	if m.Driver().Game().ID() != "flappy" {
		t.Errorf("launched %s", m.Driver().Game().ID())
	}
}
