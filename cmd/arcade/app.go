package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/loop-arcade/internal/config"
	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/registry"
	"github.com/vovakirdan/loop-arcade/internal/storage"
)

// preset is the parsed --difficulty value.
var preset = config.DifficultyNormal

// setup loads .env, lets ARCADE_* variables fill flags the user did not
// pass, and validates the result.
func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}

	flags := cmd.Flags()
	fromEnv := func(name, key string, apply func()) {
		if f := flags.Lookup(name); f != nil && !f.Changed && config.Env(key, "") != "" {
			apply()
		}
	}
	fromEnv("fps", "FPS", func() { flagFPS = config.EnvInt("FPS", flagFPS) })
	fromEnv("seed", "SEED", func() { flagSeed = config.EnvInt64("SEED", flagSeed) })
	fromEnv("db", "DB", func() { flagDBPath = config.Env("DB", flagDBPath) })
	fromEnv("difficulty", "DIFFICULTY", func() { flagDifficulty = config.Env("DIFFICULTY", flagDifficulty) })
	fromEnv("config", "CONFIG", func() { flagConfig = config.Env("CONFIG", flagConfig) })
	fromEnv("log-level", "LOG_LEVEL", func() { flagLogLevel = config.Env("LOG_LEVEL", flagLogLevel) })
	fromEnv("log-file", "LOG_FILE", func() { flagLogFile = config.Env("LOG_FILE", flagLogFile) })
	fromEnv("sound", "SOUND", func() { flagSound = config.EnvBool("SOUND", flagSound) })

	if flagFPS <= 0 || flagFPS > 240 {
		return fmt.Errorf("--fps must be between 1 and 240, got %d", flagFPS)
	}
	p, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	preset = p
	return nil
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// newLogger logs to the log file, since interactive commands own the
// terminal. toStderr logs to stderr instead, for servers.
func newLogger(toStderr bool) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	opts := log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
		Prefix:          "arcade",
	}

	if toStderr || flagLogFile == "" {
		return log.NewWithOptions(os.Stderr, opts)
	}
	path := expandHome(flagLogFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.NewWithOptions(os.Stderr, opts)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log.NewWithOptions(os.Stderr, opts)
	}
	return log.NewWithOptions(f, opts)
}

// openStore opens the score database. A failure is logged and yields nil:
// every game still works without scores.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = seed()
	return cfg
}

func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newGame creates and configures a game.
func newGame(id, configPath string, p config.DifficultyPreset) (registry.Game, error) {
	g, err := registry.Create(id)
	if err != nil {
		return nil, fmt.Errorf("%w\nRun 'arcade list' to see available games", err)
	}
	if c, ok := g.(registry.Configurable); ok {
		if err := c.Configure(configPath, p); err != nil {
			return nil, err
		}
	}
	return g, nil
}
