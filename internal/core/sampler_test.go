package core

import (
	"sync"
	"testing"
	"time"
)

func TestActionSet(t *testing.T) {
	s := SetOf(ActionLeft, ActionJump)
	if !s.Has(ActionLeft) || !s.Has(ActionJump) || s.Has(ActionRight) {
		t.Errorf("SetOf() = %v", s)
	}
	s = s.Without(ActionLeft)
	if s.Has(ActionLeft) {
		t.Error("Without() did not remove Left")
	}
	if SetOf(ActionNone).Has(ActionNone) {
		t.Error("ActionNone must never be a member")
	}
	if got := SetOf(ActionQuit, ActionLeft).String(); got != "{Left,Quit}" {
		t.Errorf("String() = %q", got)
	}
}

func TestInputFrameAxis(t *testing.T) {
	tests := []struct {
		name string
		in   InputFrame
		want float64
	}{
		{"none", InputFrame{}, 0},
		{"left", FrameOf(ActionLeft), -1},
		{"right", FrameOf(ActionRight), 1},
		{"both cancel", FrameOf(ActionLeft, ActionRight), 0},
	}
	for _, tc := range tests {
		if got := tc.in.Axis(ActionLeft, ActionRight); got != tc.want {
			t.Errorf("%s: Axis() = %v, expected %v", tc.name, got, tc.want)
		}
	}
}

func TestSamplerEdgeDetection(t *testing.T) {
	s := NewSampler(0)

	s.Press(ActionJump)
	f := s.Sample()
	if !f.Has(ActionJump) || !f.JustPressed(ActionJump) {
		t.Fatalf("first sample after press = %+v", f)
	}

	f = s.Sample()
	if !f.Has(ActionJump) || f.JustPressed(ActionJump) {
		t.Errorf("held key must not be just-pressed twice: %+v", f)
	}

	s.Release(ActionJump)
	f = s.Sample()
	if f.Has(ActionJump) {
		t.Error("released key still held")
	}

	s.Press(ActionJump)
	if f = s.Sample(); !f.JustPressed(ActionJump) {
		t.Error("re-press should be a new edge")
	}
}

func TestSamplerTicksIncrease(t *testing.T) {
	s := NewSampler(0)
	for i := uint64(0); i < 5; i++ {
		if f := s.Sample(); f.Tick != i {
			t.Errorf("Tick = %d, expected %d", f.Tick, i)
		}
	}
}

func TestSamplerHoldWindow(t *testing.T) {
	s := NewSampler(3)
	s.Press(ActionLeft)

	for i := 0; i < 3; i++ {
		if !s.Sample().Has(ActionLeft) {
			t.Fatalf("sample %d: Left should still be held", i)
		}
	}
	if s.Sample().Has(ActionLeft) {
		t.Error("Left should expire after the hold window")
	}

	// Auto-repeat refreshes the window.
	s.Press(ActionLeft)
	s.Sample()
	s.Sample()
	s.Press(ActionLeft)
	s.Sample()
	s.Sample()
	if !s.Sample().Has(ActionLeft) {
		t.Error("repeat press should extend the hold")
	}
}

func TestSamplerTapShorterThanTick(t *testing.T) {
	s := NewSampler(0)
	s.Press(ActionFire)
	s.Release(ActionFire)

	f := s.Sample()
	if !f.JustPressed(ActionFire) {
		t.Error("a tap between samples must still be seen")
	}
	if s.Sample().Has(ActionFire) {
		t.Error("tap must not persist")
	}
}

func TestSamplerBlurClearsHeld(t *testing.T) {
	s := NewSampler(0)
	s.Press(ActionLeft)
	s.Press(ActionBlock)
	s.Sample()

	s.Blur()
	f := s.Sample()
	if !f.Held.Empty() {
		t.Errorf("held after blur = %v, expected none", f.Held)
	}
}

func TestSamplerSetPolled(t *testing.T) {
	s := NewSampler(0)
	s.Set(SetOf(ActionRight))
	if f := s.Sample(); !f.JustPressed(ActionRight) {
		t.Error("polled press should register an edge")
	}
	s.Set(0)
	if f := s.Sample(); f.Has(ActionRight) {
		t.Error("polled release should clear the action")
	}
}

func TestSamplerConcurrentWriters(t *testing.T) {
	s := NewSampler(2)
	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				s.Press(ActionUp)
				s.Blur()
			}
		}
	}()

	deadline := time.After(20 * time.Millisecond)
loop:
	for {
		select {
		case <-deadline:
			break loop
		default:
			s.Sample()
		}
	}
	close(stop)
	wg.Wait()
}

func TestRuntimeConfigTicks(t *testing.T) {
	cfg := RuntimeConfig{TickRate: 60}
	if got := cfg.Ticks(2 * time.Second); got != 120 {
		t.Errorf("Ticks(2s) = %d, expected 120", got)
	}
	if got := cfg.Ticks(time.Millisecond); got != 1 {
		t.Errorf("Ticks(1ms) = %d, expected at least 1", got)
	}
	if got := (RuntimeConfig{}).Dt(); got != 1.0/60 {
		t.Errorf("zero config Dt() = %v", got)
	}
}

func TestSamplerRepeatedTapsAreEdges(t *testing.T) {
	s := NewSampler(0)
	for i := 0; i < 3; i++ {
		s.Press(ActionFire)
		s.Release(ActionFire)
		if f := s.Sample(); !f.JustPressed(ActionFire) {
			t.Fatalf("tap %d not seen as a press", i)
		}
	}
}

func TestSamplerReplayIsExact(t *testing.T) {
	s := NewSampler(0)
	s.Replay(SetOf(ActionLeft, ActionFire), SetOf(ActionFire))
	f := s.Sample()
	if f.Held != SetOf(ActionLeft, ActionFire) || f.Pressed != SetOf(ActionLeft, ActionFire) {
		t.Errorf("first replayed frame = %+v", f)
	}

	s.Replay(SetOf(ActionLeft, ActionFire), SetOf(ActionFire))
	f = s.Sample()
	if f.Pressed != SetOf(ActionFire) {
		t.Errorf("Pressed = %v, expected {Fire}", f.Pressed)
	}
}
