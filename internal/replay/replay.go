// Package replay records the input of a run and plays it back.
//
// A run is fully determined by its game, seed, tick rate, screen size and
// the input snapshot of every frame, so that is all a replay stores.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/loop"
	"github.com/vovakirdan/loop-arcade/internal/registry"
)

// Version is bumped whenever the file layout or action numbering changes.
const Version = 1

// ErrGameMismatch is returned when a replay is played against another game.
var ErrGameMismatch = errors.New("replay: game mismatch")

// Input is one recorded frame.
type Input struct {
	Held    core.ActionSet `msgpack:"h"`
	Pressed core.ActionSet `msgpack:"p"`
}

// Replay is a recorded run.
type Replay struct {
	Version  int       `msgpack:"v"`
	GameID   string    `msgpack:"game"`
	Seed     int64     `msgpack:"seed"`
	TickRate int       `msgpack:"rate"`
	ScreenW  int       `msgpack:"w"`
	ScreenH  int       `msgpack:"h"`
	Recorded time.Time `msgpack:"at"`
	Score    int       `msgpack:"score"`
	Frames   []Input   `msgpack:"frames"`
}

// Config returns the runtime configuration the run used.
func (r *Replay) Config() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: r.ScreenW, ScreenH: r.ScreenH, TickRate: r.TickRate, Seed: r.Seed}
}

// Duration is the wall-clock length of the run.
func (r *Replay) Duration() time.Duration {
	if r.TickRate <= 0 {
		return 0
	}
	return time.Duration(len(r.Frames)) * time.Second / time.Duration(r.TickRate)
}

// Recorder is a frame observer that captures the current run. A restart
// discards what was recorded so far; a replay always starts from Reset.
type Recorder struct {
	mu  sync.Mutex
	rep Replay
}

// NewRecorder starts recording gameID under cfg.
func NewRecorder(gameID string, cfg core.RuntimeConfig) *Recorder {
	return &Recorder{rep: Replay{
		Version:  Version,
		GameID:   gameID,
		Seed:     cfg.Seed,
		TickRate: cfg.TickRate,
		ScreenW:  cfg.ScreenW,
		ScreenH:  cfg.ScreenH,
		Recorded: time.Now().UTC(),
	}}
}

func (rec *Recorder) Observe(f loop.Frame) {
	rec.mu.Lock()
	defer rec.mu.Unlock()

	if f.Restarted {
		rec.rep.Frames = rec.rep.Frames[:0]
		rec.rep.Recorded = time.Now().UTC()
		return
	}
	rec.rep.Frames = append(rec.rep.Frames, Input{Held: f.Input.Held, Pressed: f.Input.Pressed})
	rec.rep.Score = f.Result.State.Score
}

// Replay returns a copy of what has been recorded.
func (rec *Recorder) Replay() *Replay {
	rec.mu.Lock()
	defer rec.mu.Unlock()

	r := rec.rep
	r.Frames = append([]Input(nil), rec.rep.Frames...)
	return &r
}

// Save writes r as msgpack.
func Save(w io.Writer, r *Replay) error {
	if err := msgpack.NewEncoder(w).Encode(r); err != nil {
		return fmt.Errorf("replay: cannot encode: %w", err)
	}
	return nil
}

// Load reads a replay written by Save.
func Load(rd io.Reader) (*Replay, error) {
	var r Replay
	if err := msgpack.NewDecoder(rd).Decode(&r); err != nil {
		return nil, fmt.Errorf("replay: cannot decode: %w", err)
	}
	if r.Version != Version {
		return nil, fmt.Errorf("replay: unsupported version %d", r.Version)
	}
	return &r, nil
}

// SaveFile writes r to path.
func SaveFile(path string, r *Replay) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("replay: cannot create %s: %w", path, err)
	}
	if err := Save(f, r); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("replay: cannot close %s: %w", path, err)
	}
	return nil
}

// LoadFile reads a replay from path.
func LoadFile(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Options tune playback.
type Options struct {
	// Observers see every replayed frame, e.g. a renderer.
	Observers []loop.Observer
	// Pace, when set, sleeps one tick between frames.
	Pace   bool
	Logger *log.Logger
}

// Play runs g through the recorded input headless and returns the state
// after the last frame.
func Play(g registry.Game, r *Replay, opts Options) (core.GameState, error) {
	if g.ID() != r.GameID {
		return core.GameState{}, fmt.Errorf("%w: replay is %q, game is %q", ErrGameMismatch, r.GameID, g.ID())
	}

	in := core.NewSampler(0)
	d := loop.New(g, in, loop.Options{
		Config:    r.Config(),
		Policy:    loop.Hold,
		Observers: opts.Observers,
		Logger:    opts.Logger,
	})

	var pace *time.Ticker
	if opts.Pace {
		pace = time.NewTicker(time.Second / time.Duration(d.Config().TickRate))
		defer pace.Stop()
	}
	for _, fr := range r.Frames {
		in.Replay(fr.Held, fr.Pressed)
		if _, ok := d.Frame(); !ok {
			break
		}
		if pace != nil {
			<-pace.C
		}
	}
	return d.Last().State, nil
}
