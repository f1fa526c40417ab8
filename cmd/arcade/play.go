package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/loop-arcade/internal/audio"
	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/loop"
	"github.com/vovakirdan/loop-arcade/internal/platform/keys"
	"github.com/vovakirdan/loop-arcade/internal/platform/term"
	"github.com/vovakirdan/loop-arcade/internal/platform/tui"
	"github.com/vovakirdan/loop-arcade/internal/platform/window"
	"github.com/vovakirdan/loop-arcade/internal/registry"
	"github.com/vovakirdan/loop-arcade/internal/replay"
	"github.com/vovakirdan/loop-arcade/internal/spectate"
	"github.com/vovakirdan/loop-arcade/internal/storage"
)

var (
	flagPlatform string
	flagRecord   string
	flagSpectate string
	flagSound    bool
	flagScale    int
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Common controls:
  Arrows/WASD  - Move
  Space        - Jump / flap / fire
  P            - Pause
  R            - Restart (after game over)
  Q/Esc        - Quit
  Ctrl+S       - Screenshot (tui only)

Each game shows its own keys in the menu.

Platforms:
  tui     - Bubble Tea in the terminal (default)
  term    - tcell in the terminal, with focus tracking
  window  - desktop window

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play flappy
  arcade play bros --difficulty easy
  arcade play sail --platform window
  arcade play invaders --record run.replay
  arcade play racer --spectate :8080
  arcade play flappy --config ./my-flappy.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	f := playCmd.Flags()
	f.StringVar(&flagPlatform, "platform", "tui", "Where to play: tui, term, window")
	f.StringVar(&flagRecord, "record", "", "Save a replay of the run to this file")
	f.StringVar(&flagSpectate, "spectate", "", "Stream the game to websocket viewers on this address")
	f.BoolVar(&flagSound, "sound", false, "Play sound effects")
	f.IntVar(&flagScale, "scale", 2, "Window scale (window platform)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := newLogger(false)
	g, err := newGame(args[0], flagConfig, preset)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	hold := keys.HoldWindow(cfg.TickRate)
	if flagPlatform == "window" {
		cfg.ScreenW, cfg.ScreenH = core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH
		hold = 0
	}

	s, err := newSession(ctx, g, cfg, store, logger)
	if err != nil {
		return err
	}
	defer s.close()
	d := loop.New(g, core.NewSampler(hold), loop.Options{
		Config:    cfg,
		Observers: s.observers,
		Logger:    logger,
	})
	logger.Info("game started", "game", g.ID(), "platform", flagPlatform, "seed", cfg.Seed, "difficulty", preset)

	switch flagPlatform {
	case "tui":
		err = tui.Run(d, tui.GameOptions{Scores: s.scores, ShotDir: expandHome("~/.arcade/screenshots")})
	case "term":
		var t *term.Terminal
		if t, err = term.New(nil, d, nil, logger); err == nil {
			err = t.Run(ctx)
		}
	case "window":
		err = window.Run(d, window.Options{Scale: flagScale}, logger)
	default:
		err = fmt.Errorf("unknown platform %q: want tui, term or window", flagPlatform)
	}
	if err != nil && ctx.Err() == nil {
		return err
	}

	state := d.Last().State
	logger.Info("game ended", "game", g.ID(), "score", state.Score, "frames", d.Tick())
	return s.saveReplay(logger)
}

// session bundles the optional observers of one play command.
type session struct {
	observers []loop.Observer
	scores    *loop.ScoreKeeper
	recorder  *replay.Recorder
	hub       *spectate.Hub
	speaker   audio.Player
}

func newSession(ctx context.Context, g registry.Game, cfg core.RuntimeConfig, store *storage.Store, logger *log.Logger) (*session, error) {
	s := &session{}
	if store != nil {
		s.scores = loop.NewScoreKeeper(store, logger)
		s.observers = append(s.observers, s.scores)
	}
	if flagSound {
		s.speaker = audio.OpenSpeaker(logger)
		s.observers = append(s.observers, audio.NewSink(s.speaker))
	}
	if flagRecord != "" {
		if dir := filepath.Dir(flagRecord); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("cannot create replay directory: %w", err)
			}
		}
		s.recorder = replay.NewRecorder(g.ID(), cfg)
		s.observers = append(s.observers, s.recorder)
	}
	if flagSpectate != "" {
		s.hub = spectate.NewHub(max(cfg.TickRate/15, 1), logger)
		s.observers = append(s.observers, s.hub)
		go func() {
			if err := s.hub.ListenAndServe(ctx, flagSpectate); err != nil {
				logger.Error("spectate server stopped", "err", err)
			}
		}()
	}
	return s, nil
}

func (s *session) saveReplay(logger *log.Logger) error {
	if s.recorder == nil {
		return nil
	}
	r := s.recorder.Replay()
	if err := replay.SaveFile(flagRecord, r); err != nil {
		return err
	}
	logger.Info("replay saved", "path", flagRecord, "frames", len(r.Frames), "score", r.Score)
	fmt.Printf("Replay saved to %s (%d frames, score %d)\n", flagRecord, len(r.Frames), r.Score)
	return nil
}

func (s *session) close() {
	if s.hub != nil {
		s.hub.Close()
	}
	if sp, ok := s.speaker.(*audio.Speaker); ok {
		sp.Close()
	}
}
