package climb

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/loop-arcade/internal/actor"
	"github.com/vovakirdan/loop-arcade/internal/config"
	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/physics"
)

var testCfg = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3}

func newGame() *Game {
	g := New()
	g.Reset(testCfg)
	return g
}

func npcs(g *Game) []*actor.NPC {
	return actor.Of[*actor.NPC](&g.world)
}

func render(g *Game) string {
	s := core.NewScreen(testCfg.ScreenW, testCfg.ScreenH)
	g.Render(s)
	return s.String()
}

func hasCue(res core.StepResult, c core.Cue) bool {
	for _, got := range res.Cues {
		if got == c {
			return true
		}
	}
	return false
}

func TestDeterminism(t *testing.T) {
	run := func() *Game {
		g := newGame()
		for i := 0; i < 400; i++ {
			in := core.InputFrame{Held: core.SetOf(core.ActionUp)}
			if i%45 == 0 {
				in = core.FrameOf(core.ActionUp, core.ActionJump)
			}
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g
	}
	a, b := run(), run()
	if a.player.Body != b.player.Body || a.lives != b.lives || a.score != b.score {
		t.Errorf("runs differ: %+v lives %d vs %+v lives %d", a.player.Body, a.lives, b.player.Body, b.lives)
	}
}

func TestResetIsIdempotent(t *testing.T) {
	fresh := newGame()
	g := newGame()
	for i := 0; i < 120; i++ {
		g.Step(core.InputFrame{Held: core.SetOf(core.ActionUp, core.ActionLeft)})
	}
	g.Reset(testCfg)
	g.Reset(testCfg)

	if render(fresh) != render(g) {
		t.Error("Reset after play should match a fresh game")
	}
	if g.lives != g.cfg.Lives || len(npcs(g)) != 3 || g.goal == nil {
		t.Errorf("lives %d npcs %d goal %v", g.lives, len(npcs(g)), g.goal != nil)
	}
}

func TestCrouchHalvesSpeedAndHeight(t *testing.T) {
	g := newGame()
	g.Step(core.InputFrame{Held: core.SetOf(core.ActionRight, core.ActionBlock)})

	p := g.player
	if want := g.cfg.Speed * g.cfg.CrouchMult; p.Body.Vel.X != want {
		t.Errorf("crouched vel.x = %f, expected %f", p.Body.Vel.X, want)
	}
	if want := playerSize.Y * g.cfg.CrouchHeight; math.Abs(p.Body.Size.Y-want) > 1e-9 {
		t.Errorf("crouched height = %f, expected %f", p.Body.Size.Y, want)
	}

	g.Step(core.InputFrame{Held: core.SetOf(core.ActionRight)})
	if p.Body.Size.Y != playerSize.Y || p.Body.Vel.X != g.cfg.Speed {
		t.Errorf("standing: height %f vel %f", p.Body.Size.Y, p.Body.Vel.X)
	}
}

func TestUpDownMoveAlongDepth(t *testing.T) {
	g := newGame()
	z := g.player.Body.Pos.Z
	g.Step(core.InputFrame{Held: core.SetOf(core.ActionUp)})
	if g.player.Body.Pos.Z >= z {
		t.Errorf("Up should move away from the camera: z %f -> %f", z, g.player.Body.Pos.Z)
	}
}

func TestDoubleJump(t *testing.T) {
	g := newGame()
	jump := core.FrameOf(core.ActionJump)
	grav := g.cfg.Gravity * testCfg.Dt()

	if res := g.Step(jump); !hasCue(res, core.CueJump) {
		t.Fatal("ground jump should emit a cue")
	}
	if res := g.Step(jump); !hasCue(res, core.CueJump) {
		t.Fatal("air jump should emit a cue")
	}
	if want := g.cfg.JumpSpeed*g.cfg.AirJumpMult - grav; math.Abs(g.player.Body.Vel.Y-want) > 1e-9 {
		t.Errorf("air jump vel %f, expected %f", g.player.Body.Vel.Y, want)
	}
	before := g.player.Body.Vel.Y
	if res := g.Step(jump); hasCue(res, core.CueJump) || g.player.Body.Vel.Y >= before {
		t.Errorf("third jump should be ignored: vel %f", g.player.Body.Vel.Y)
	}
}

func TestNPCsStayInPatrolRange(t *testing.T) {
	g := newGame()
	flips := 0
	dirs := make(map[*actor.NPC]float64)
	for i := 0; i < 900; i++ {
		g.Step(core.InputFrame{})
		for _, n := range npcs(g) {
			if d, ok := dirs[n]; ok && d != n.Dir {
				flips++
			}
			dirs[n] = n.Dir
		}
	}
	for _, n := range npcs(g) {
		var pos, origin float64
		switch n.Axis {
		case actor.AxisX:
			pos, origin = n.Body.Pos.X, n.Origin.X
		default:
			pos, origin = n.Body.Pos.Z, n.Origin.Z
		}
		if math.Abs(pos-origin) > n.Range/2+1e-9 {
			t.Errorf("npc at %f strayed from %f±%f", pos, origin, n.Range/2)
		}
	}
	if flips == 0 {
		t.Error("patrollers never turned around")
	}
}

func TestPunchKnocksOutNPC(t *testing.T) {
	g := newGame()
	target := npcs(g)[0]
	g.player.Body.Pos = physics.Vec{X: target.Body.Pos.X - 1.2, Y: 0, Z: target.Body.Pos.Z}
	g.player.Facing = 1
	target.Dir = 1

	res := g.Step(core.FrameOf(core.ActionPunch))
	if target.Alive() {
		t.Fatal("punch should knock the npc out")
	}
	if res.State.Score != g.cfg.PunchValue || !hasCue(res, core.CueHit) {
		t.Errorf("score %d cues %v", res.State.Score, res.Cues)
	}
	if g.lives != g.cfg.Lives {
		t.Error("a punch should not cost a life")
	}
	if len(npcs(g)) != 2 {
		t.Errorf("npcs = %d, expected the knocked out one swept", len(npcs(g)))
	}
}

func TestTouchCostsLifeAndRespawns(t *testing.T) {
	g := newGame()
	target := npcs(g)[0]
	g.player.Body.Pos = target.Body.Pos

	res := g.Step(core.InputFrame{})
	if g.lives != g.cfg.Lives-1 || !hasCue(res, core.CueMiss) {
		t.Errorf("lives %d cues %v", g.lives, res.Cues)
	}
	if g.player.Body.Pos != spawnPoint {
		t.Errorf("player at %+v, expected respawn at %+v", g.player.Body.Pos, spawnPoint)
	}
	if res.State.GameOver {
		t.Error("one life lost should not end the game")
	}
}

func TestFallingOffCourseCostsLife(t *testing.T) {
	g := newGame()
	g.player.Body.Pos = physics.Vec{X: 10, Y: 0, Z: -30}
	g.player.Body.Grounded = false

	for i := 0; i < 180 && g.lives == g.cfg.Lives; i++ {
		g.Step(core.InputFrame{})
	}
	if g.lives != g.cfg.Lives-1 {
		t.Fatalf("lives = %d, expected a fall to cost one", g.lives)
	}
	if g.player.Body.Pos != spawnPoint {
		t.Errorf("player at %+v, expected spawn", g.player.Body.Pos)
	}
}

func TestGroundHoldsInCourtyard(t *testing.T) {
	g := newGame()
	for i := 0; i < 60; i++ {
		g.Step(core.InputFrame{})
	}
	if g.player.Body.Pos.Y != 0 || !g.player.Body.Grounded {
		t.Errorf("player should rest on the ground: %+v", g.player.Body)
	}
}

func TestLastLifeEndsGame(t *testing.T) {
	g := newGame()
	g.lives = 1
	g.player.Body.Pos = npcs(g)[0].Body.Pos

	res := g.Step(core.InputFrame{})
	if !res.State.GameOver || res.State.Won || !hasCue(res, core.CueKO) {
		t.Errorf("state %+v cues %v", res.State, res.Cues)
	}
}

func TestReachingGoalWins(t *testing.T) {
	g := newGame()
	top := g.goal.Box
	g.player.Body.Pos = physics.Vec{X: top.Center().X, Y: top.Max.Y, Z: top.Center().Z}
	g.player.Body.Grounded = true

	res := g.Step(core.InputFrame{})
	if !res.State.Won || !res.State.GameOver || res.State.Score != g.cfg.GoalValue {
		t.Errorf("state = %+v, expected a win", res.State)
	}
}

func TestPlayerClampedToBounds(t *testing.T) {
	g := newGame()
	g.player.Body.Pos.X = -CourtyardHalf + 1
	for i := 0; i < 60; i++ {
		g.Step(core.InputFrame{Held: core.SetOf(core.ActionLeft)})
	}
	if limit := -CourtyardHalf + playerSize.X/2; g.player.Body.Pos.X < limit {
		t.Errorf("x = %f, expected at least %f", g.player.Body.Pos.X, limit)
	}
}

func TestBrokenSpecBecomesPlaceholder(t *testing.T) {
	a, err := actor.Build(actor.Spec{Kind: actor.KindNPC, Size: npcSize})
	if err == nil {
		t.Fatal("npc without speed should fail to build")
	}
	if _, ok := actor.OrPlaceholder(a, err, spawnPoint).(*actor.Placeholder); !ok {
		t.Error("failed build should fall back to a placeholder")
	}
}

func TestRender(t *testing.T) {
	g := newGame()
	out := render(g)
	if !strings.Contains(out, "Lives: 3") || !strings.Contains(out, "@") {
		t.Errorf("render missing HUD or player:\n%s", out)
	}
}

func TestConfigureMissingFile(t *testing.T) {
	g := New()
	if err := g.Configure(filepath.Join(t.TempDir(), "none.yaml"), config.DifficultyNormal); err == nil {
		t.Error("missing custom config should fail")
	}
}
