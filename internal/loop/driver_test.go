package loop

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/loop-arcade/internal/core"
)

// counterGame scores one point per Fire press and ends at limit.
type counterGame struct {
	limit    int
	score    int
	steps    int
	resets   int
	rendered []int
	lastIn   core.InputFrame
}

func (g *counterGame) ID() string    { return "counter" }
func (g *counterGame) Title() string { return "Counter" }

func (g *counterGame) Reset(core.RuntimeConfig) {
	g.score, g.steps = 0, 0
	g.resets++
}

func (g *counterGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.lastIn = in
	if in.JustPressed(core.ActionFire) {
		g.score++
	}
	return core.StepResult{State: g.State()}
}

func (g *counterGame) Render(dst *core.Screen) {
	g.rendered = append(g.rendered, g.score)
	dst.DrawText(0, 0, fmt.Sprintf("%d", g.score))
}

func (g *counterGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.score >= g.limit}
}

func newDriver(limit int, policy Policy, obs ...Observer) (*Driver, *counterGame, *core.Sampler) {
	g := &counterGame{limit: limit}
	in := core.NewSampler(0)
	d := New(g, in, Options{Config: core.RuntimeConfig{ScreenW: 10, ScreenH: 3, TickRate: 1000}, Policy: policy, Observers: obs})
	return d, g, in
}

func tap(in *core.Sampler, a core.Action) {
	in.Press(a)
	in.Release(a)
}

func TestFrameUpdatesBeforeRender(t *testing.T) {
	d, g, in := newDriver(100, Hold)

	tap(in, core.ActionFire)
	d.Frame()
	if len(g.rendered) != 1 || g.rendered[0] != 1 {
		t.Errorf("render saw %v, expected the post-update score [1]", g.rendered)
	}
	if d.Screen().Get(0, 0) != '1' {
		t.Errorf("screen = %q", d.Screen().Row(0))
	}
}

func TestObserverSeesSameSnapshot(t *testing.T) {
	var got []Frame
	d, g, in := newDriver(100, Hold, ObserverFunc(func(f Frame) { got = append(got, f) }))

	in.Press(core.ActionLeft)
	d.Frame()
	d.Frame()

	if len(got) != 2 {
		t.Fatalf("observer saw %d frames", len(got))
	}
	if got[1].Input != g.lastIn {
		t.Errorf("observer input %+v differs from stepped input %+v", got[1].Input, g.lastIn)
	}
	if got[0].Tick != 0 || got[1].Tick != 1 || got[0].GameID != "counter" {
		t.Errorf("frame metadata wrong: %+v", got)
	}
}

func TestHaltStopsExactlyOnce(t *testing.T) {
	d, g, in := newDriver(1, Halt)

	tap(in, core.ActionFire)
	if _, ok := d.Frame(); !ok {
		t.Fatal("the game-over frame itself should run")
	}
	if !d.Stopped() {
		t.Fatal("Halt policy should stop on game over")
	}
	for i := 0; i < 5; i++ {
		if _, ok := d.Frame(); ok {
			t.Fatal("frames after stop must not run")
		}
	}
	if g.steps != 1 {
		t.Errorf("steps = %d, expected 1", g.steps)
	}
	d.Stop()
	d.Stop()
	select {
	case <-d.Done():
	default:
		t.Error("Done should be closed")
	}
}

func TestStopIsIdempotentAcrossGoroutines(t *testing.T) {
	d, _, _ := newDriver(100, Hold)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Stop()
		}()
	}
	wg.Wait()
	if !d.Stopped() {
		t.Error("driver should be stopped")
	}
}

func TestHoldRestartsOnRestart(t *testing.T) {
	var restarted []bool
	d, g, in := newDriver(1, Hold, ObserverFunc(func(f Frame) { restarted = append(restarted, f.Restarted) }))

	tap(in, core.ActionFire)
	d.Frame()
	d.Frame() // game over, waiting
	if g.steps != 1 {
		t.Errorf("a finished game must not be stepped, steps = %d", g.steps)
	}

	tap(in, core.ActionRestart)
	res, _ := d.Frame()
	if res.State.GameOver || g.resets != 2 {
		t.Errorf("restart failed: state=%+v resets=%d", res.State, g.resets)
	}
	if !restarted[2] || restarted[1] {
		t.Errorf("Restarted flags = %v", restarted)
	}
}

func TestPauseFreezesSteps(t *testing.T) {
	d, g, in := newDriver(100, Hold)

	tap(in, core.ActionPause)
	res, _ := d.Frame()
	if !res.State.Paused {
		t.Fatal("Pause should pause")
	}
	d.Frame()
	if g.steps != 0 {
		t.Errorf("paused game stepped %d times", g.steps)
	}

	tap(in, core.ActionPause)
	d.Frame()
	d.Frame()
	if g.steps != 1 {
		t.Errorf("steps after unpause = %d, expected 1", g.steps)
	}
}

func TestQuitStops(t *testing.T) {
	d, _, in := newDriver(100, Hold)
	tap(in, core.ActionQuit)
	if _, ok := d.Frame(); ok || !d.Stopped() {
		t.Error("Quit should stop the driver")
	}
}

func TestRunUntilCancelled(t *testing.T) {
	d, g, _ := newDriver(100, Hold)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := d.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() error = %v", err)
	}
	if g.steps == 0 {
		t.Error("Run should have stepped the game")
	}
	if !d.Stopped() {
		t.Error("cancelling Run should stop the driver")
	}
}

func TestRunReturnsOnStop(t *testing.T) {
	d, _, _ := newDriver(100, Hold)
	errc := make(chan error, 1)
	go func() { errc <- d.Run(context.Background()) }()

	time.Sleep(5 * time.Millisecond)
	d.Stop()
	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("Run() after Stop = %v, expected nil", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Stop")
	}
}

type memSink struct {
	saved []int
	best  int
	fail  bool
}

func (s *memSink) SaveScore(_ string, score int) error {
	if s.fail {
		return errors.New("disk on fire")
	}
	s.saved = append(s.saved, score)
	return nil
}

func (s *memSink) SubmitHigh(_ string, score int) (bool, error) {
	if s.fail {
		return false, errors.New("disk on fire")
	}
	if score > s.best {
		s.best = score
		return true, nil
	}
	return false, nil
}

func TestScoreKeeperSavesOncePerRun(t *testing.T) {
	sink := &memSink{}
	keeper := NewScoreKeeper(sink, nil)
	d, _, in := newDriver(2, Hold, keeper)

	tap(in, core.ActionFire)
	d.Frame()
	tap(in, core.ActionFire)
	d.Frame()
	d.Frame()
	d.Frame()
	if len(sink.saved) != 1 || sink.saved[0] != 2 || !keeper.NewBest {
		t.Fatalf("saved = %v newBest = %v", sink.saved, keeper.NewBest)
	}

	tap(in, core.ActionRestart)
	d.Frame()
	tap(in, core.ActionFire)
	d.Frame()
	tap(in, core.ActionFire)
	d.Frame()
	if len(sink.saved) != 2 || keeper.NewBest {
		t.Errorf("second run: saved = %v newBest = %v", sink.saved, keeper.NewBest)
	}
}

func TestScoreKeeperSurvivesStorageErrors(t *testing.T) {
	keeper := NewScoreKeeper(&memSink{fail: true}, nil)
	d, _, in := newDriver(1, Hold, keeper)
	tap(in, core.ActionFire)
	if _, ok := d.Frame(); !ok {
		t.Fatal("storage errors must not stop the game")
	}
}
