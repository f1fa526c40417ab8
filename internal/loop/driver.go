// Package loop is the frame driver every platform runs games through.
//
// One Frame is: take one input snapshot, step the game with it, render the
// result, hand the finished frame to observers. Platforms differ only in
// what calls Frame (a bubbletea tick, a tcell ticker, ebiten's Update) and
// in how they show the screen.
package loop

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/registry"
)

// Policy decides what the driver does once the game is over.
type Policy uint8

const (
	// Hold keeps rendering the final state and restarts on ActionRestart.
	Hold Policy = iota
	// Halt stops the driver on the first game-over frame.
	Halt
)

// Frame is one finished frame as seen by observers.
type Frame struct {
	GameID    string
	Tick      uint64
	Input     core.InputFrame
	Result    core.StepResult
	Screen    *core.Screen
	Restarted bool // the game was reset at the start of this frame
}

// Observer receives every frame after it has been rendered. Observers run on
// the driver's goroutine and must not hold on to Screen past the call.
type Observer interface {
	Observe(f Frame)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Frame)

func (fn ObserverFunc) Observe(f Frame) { fn(f) }

// Options configures a Driver.
type Options struct {
	Config    core.RuntimeConfig
	Policy    Policy
	Observers []Observer
	Logger    *log.Logger
}

// Driver owns one game, its input sampler and its screen.
type Driver struct {
	game      registry.Game
	input     *core.Sampler
	screen    *core.Screen
	cfg       core.RuntimeConfig
	policy    Policy
	observers []Observer
	logger    *log.Logger

	tick   uint64
	paused bool
	last   core.StepResult

	stopOnce sync.Once
	done     chan struct{}
}

// New resets g with opts.Config and returns a driver ready to run it.
func New(g registry.Game, input *core.Sampler, opts Options) *Driver {
	cfg := opts.Config
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	if input == nil {
		input = core.NewSampler(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	g.Reset(cfg)
	return &Driver{
		game:      g,
		input:     input,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		cfg:       cfg,
		policy:    opts.Policy,
		observers: opts.Observers,
		logger:    logger.With("game", g.ID()),
		last:      core.StepResult{State: g.State()},
		done:      make(chan struct{}),
	}
}

// Game returns the driven game.
func (d *Driver) Game() registry.Game { return d.game }

// Input returns the sampler platforms feed.
func (d *Driver) Input() *core.Sampler { return d.input }

// Screen returns the frame buffer. Only read it between frames.
func (d *Driver) Screen() *core.Screen { return d.screen }

// Config returns the runtime configuration the game was reset with.
func (d *Driver) Config() core.RuntimeConfig { return d.cfg }

// Tick returns how many frames have run.
func (d *Driver) Tick() uint64 { return d.tick }

// Last returns the result of the most recent frame.
func (d *Driver) Last() core.StepResult { return d.last }

// AddObserver attaches another observer. Call it before the first frame.
func (d *Driver) AddObserver(o Observer) {
	d.observers = append(d.observers, o)
}

// Resize changes the screen size used for subsequent frames.
func (d *Driver) Resize(w, h int) {
	if w > 0 && h > 0 {
		d.screen.Resize(w, h)
	}
}

// Frame runs one frame. It reports false once the driver has stopped, in
// which case nothing was stepped or rendered.
func (d *Driver) Frame() (core.StepResult, bool) {
	if d.Stopped() {
		return d.last, false
	}

	in := d.input.Sample()
	if in.JustPressed(core.ActionQuit) {
		d.Stop()
		return d.last, false
	}

	restarted := false
	var res core.StepResult
	switch {
	case d.game.State().GameOver:
		if in.JustPressed(core.ActionRestart) {
			d.Restart()
			restarted = true
		}
		res = core.StepResult{State: d.game.State()}
	case in.JustPressed(core.ActionPause):
		d.paused = !d.paused
		res = core.StepResult{State: d.game.State()}
	case d.paused:
		res = core.StepResult{State: d.game.State()}
	default:
		res = d.game.Step(in)
	}
	res.State.Paused = d.paused

	d.screen.Clear()
	d.game.Render(d.screen)
	if d.paused {
		d.screen.DrawTextCenteredColor(d.screen.Height()/2, " PAUSED ", core.ColorBrightYellow)
	}

	d.last = res
	f := Frame{
		GameID:    d.game.ID(),
		Tick:      d.tick,
		Input:     in,
		Result:    res,
		Screen:    d.screen,
		Restarted: restarted,
	}
	for _, o := range d.observers {
		o.Observe(f)
	}
	d.tick++

	if res.State.GameOver && d.policy == Halt {
		d.Stop()
	}
	return res, true
}

// Restart resets the game and clears held input.
func (d *Driver) Restart() {
	d.game.Reset(d.cfg)
	d.input.Reset()
	d.paused = false
	d.logger.Debug("game restarted", "tick", d.tick)
}

// Run calls Frame at the configured tick rate until the context is done or
// the driver stops.
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(d.cfg.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.Stop()
			return ctx.Err()
		case <-d.done:
			return nil
		case <-ticker.C:
			d.Frame()
		}
	}
}

// Stop ends the driver. It is safe to call any number of times from any
// goroutine; only the first call has an effect.
func (d *Driver) Stop() {
	d.stopOnce.Do(func() {
		close(d.done)
		d.logger.Debug("driver stopped")
	})
}

// Done is closed when the driver stops.
func (d *Driver) Done() <-chan struct{} {
	return d.done
}

// Stopped reports whether Stop has been called.
func (d *Driver) Stopped() bool {
	select {
	case <-d.done:
		return true
	default:
		return false
	}
}
