package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/loop-arcade/internal/loop"
	"github.com/vovakirdan/loop-arcade/internal/platform/tui"
	"github.com/vovakirdan/loop-arcade/internal/replay"
)

var flagReplayWatch bool

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Play back a recorded run",
	Long: `Re-run a replay saved with 'arcade play --record'. A replay stores the
seed and every input frame, so playing it back reproduces the run exactly,
provided the same --difficulty and --config are used.

Without --watch the run is simulated as fast as possible and the final
score is printed.

Examples:
  arcade replay run.replay
  arcade replay run.replay --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayWatch, "watch", false, "Show the run in the terminal at its original speed")
}

func runReplay(_ *cobra.Command, args []string) error {
	logger := newLogger(false)
	r, err := replay.LoadFile(args[0])
	if err != nil {
		return err
	}
	g, err := newGame(r.GameID, flagConfig, preset)
	if err != nil {
		return err
	}

	opts := replay.Options{Logger: logger}
	palette := tui.NewPalette(nil)
	if flagReplayWatch {
		opts.Pace = true
		opts.Observers = append(opts.Observers, loop.ObserverFunc(func(f loop.Frame) {
			fmt.Print("\x1b[H" + palette.RenderScreen(f.Screen))
		}))
		fmt.Print("\x1b[2J")
	}

	start := time.Now()
	state, err := replay.Play(g, r, opts)
	if err != nil {
		return err
	}
	fmt.Printf("\n%s: score %d over %d frames (%s of play, simulated in %s)\n",
		g.Title(), state.Score, len(r.Frames), r.Duration().Round(time.Second), time.Since(start).Round(time.Millisecond))
	if state.Score != r.Score {
		return fmt.Errorf("replay diverged: recorded score %d, got %d (was it recorded with another --difficulty or --config?)", r.Score, state.Score)
	}
	return nil
}
