package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/loop-arcade/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz-stub-b", func() Game { return &stubGame{id: "zz-stub-b"} })
	Register("zz-stub-a", func() Game { return &stubGame{id: "zz-stub-a"} })

	if !Exists("zz-stub-a") {
		t.Fatal("Exists() = false after Register")
	}

	g, err := Create("zz-stub-a")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "zz-stub-a" {
		t.Errorf("ID() = %q", g.ID())
	}

	list := List()
	var ia, ib = -1, -1
	for i, info := range list {
		switch info.ID {
		case "zz-stub-a":
			ia = i
			if info.Title != "Stub zz-stub-a" {
				t.Errorf("Title = %q", info.Title)
			}
		case "zz-stub-b":
			ib = i
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() not sorted or incomplete: %v", list)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-game")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, expected ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
}
