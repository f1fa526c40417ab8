package keys

import (
	"slices"
	"testing"

	"github.com/vovakirdan/loop-arcade/internal/core"
)

type laned struct{ lanes []rune }

func (l laned) Lanes() []rune { return l.lanes }

type versus bool

func (v versus) TwoPlayer() bool { return bool(v) }

func TestDefaultBindings(t *testing.T) {
	m := Default()
	tests := []struct {
		key  string
		want []core.Action
	}{
		{"left", []core.Action{core.ActionLeft}},
		{"a", []core.Action{core.ActionLeft}},
		{"A", []core.Action{core.ActionLeft}},
		{" ", []core.Action{core.ActionJump}},
		{"f", []core.Action{core.ActionFire, core.ActionPunch}},
		{"e", []core.Action{core.ActionConfirm}},
		{"E", []core.Action{core.ActionConfirm}},
		{"ctrl+c", []core.Action{core.ActionQuit}},
		{"esc", []core.Action{core.ActionQuit}},
		{"z", nil},
		{"ctrl+z", nil},
	}
	for _, tt := range tests {
		if got := m.Actions(tt.key); !slices.Equal(got, tt.want) {
			t.Errorf("Actions(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestTwoPlayerTakesArrows(t *testing.T) {
	m := For(versus(true))
	if got := m.Actions("left"); !slices.Equal(got, []core.Action{core.ActionP2Left}) {
		t.Errorf("left = %v, want player two", got)
	}
	if got := m.Actions("a"); !slices.Equal(got, []core.Action{core.ActionLeft}) {
		t.Errorf("a = %v, want player one", got)
	}
	if got := m.Actions(","); !slices.Equal(got, []core.Action{core.ActionP2Punch}) {
		t.Errorf(", = %v", got)
	}

	solo := For(versus(false))
	if got := solo.Actions("left"); !slices.Equal(got, []core.Action{core.ActionLeft}) {
		t.Errorf("solo left = %v", got)
	}
}

func TestLanesOverrideLetters(t *testing.T) {
	m := For(laned{[]rune("QWERTY")})
	tests := []struct {
		key  string
		want core.Action
	}{
		{"q", core.ActionLane1},
		{"Q", core.ActionLane1},
		{"w", core.ActionLane2},
		{"r", core.ActionLane4},
		{"y", core.ActionLane6},
	}
	for _, tt := range tests {
		if got := m.Actions(tt.key); !slices.Equal(got, []core.Action{tt.want}) {
			t.Errorf("Actions(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
	if got := m.Actions("enter"); !slices.Contains(got, core.ActionRestart) {
		t.Errorf("enter = %v, want it to restart", got)
	}
	if got := m.Actions("ctrl+c"); !slices.Equal(got, []core.Action{core.ActionQuit}) {
		t.Errorf("ctrl+c = %v, want quit", got)
	}
}

func TestPressFeedsSampler(t *testing.T) {
	m := Default()
	in := core.NewSampler(0)
	if !m.Press(in, "f") {
		t.Fatal("f not bound")
	}
	if m.Press(in, "z") {
		t.Error("z reported bound")
	}
	f := in.Sample()
	if !f.JustPressed(core.ActionFire) || !f.JustPressed(core.ActionPunch) {
		t.Errorf("frame = %+v, want fire and punch", f)
	}

	m.Release(in, "f")
	if f := in.Sample(); f.Has(core.ActionFire) {
		t.Error("fire still held after release")
	}
}

func TestHeld(t *testing.T) {
	m := Default()
	got := m.Held([]string{"left", " ", "z"})
	if want := core.SetOf(core.ActionLeft, core.ActionJump); got != want {
		t.Errorf("Held = %v, want %v", got, want)
	}
}

func TestBindUnbinds(t *testing.T) {
	m := Default()
	m.Bind("q")
	if got := m.Actions("q"); got != nil {
		t.Errorf("q = %v after unbinding", got)
	}
}

func TestHoldWindow(t *testing.T) {
	tests := []struct{ rate, want int }{{60, 9}, {30, 4}, {5, 1}}
	for _, tt := range tests {
		if got := HoldWindow(tt.rate); got != tt.want {
			t.Errorf("HoldWindow(%d) = %d, want %d", tt.rate, got, tt.want)
		}
	}
}
