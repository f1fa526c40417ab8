package fighter

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/loop-arcade/internal/config"
)

// brain drives the CPU fighter. It reconsiders every DecideEvery ticks;
// movement and blocking carry over between decisions, jumps and attacks
// happen only on the decision tick.
type brain struct {
	cfg   config.FighterAI
	rng   *rand.Rand
	timer int
	held  Command
}

func newBrain(cfg config.FighterAI, rng *rand.Rand) *brain {
	return &brain{cfg: cfg, rng: rng}
}

// Decide returns this tick's command for self against foe.
func (b *brain) Decide(self, foe *Fighter) Command {
	b.timer++
	if b.timer < max(1, b.cfg.DecideEvery) {
		return b.held
	}
	b.timer = 0

	cmd := b.think(self, foe)
	b.held = Command{Dir: cmd.Dir, Block: cmd.Block}
	return cmd
}

func (b *brain) think(self, foe *Fighter) Command {
	if b.rng.Float64() < b.cfg.IdleChance {
		return Command{}
	}

	// Gets bolder as the opponent weakens.
	aggr := b.cfg.Aggressiveness * (1 + (1-float64(foe.Health)/float64(foe.MaxHealth))*0.5)
	dist := math.Abs(self.Centre() - foe.Centre())
	toward := 1.0
	if foe.Centre() < self.Centre() {
		toward = -1
	}
	self.FacingRight = toward > 0

	if foe.Attacking() && dist < b.cfg.BlockRange && b.rng.Float64() < b.cfg.BlockChance {
		return Command{Block: true}
	}

	var cmd Command
	if self.Grounded() && b.rng.Float64() < b.cfg.JumpChance {
		cmd.Jump = true
	}

	switch {
	case dist < b.cfg.CloseRange:
		if b.rng.Float64() > aggr && !self.Attacking() {
			cmd.Dir = -toward
			return cmd
		}
		cmd.Attack = b.pick(b.rng.Float64(), 0.4, 0.8)
	case dist > b.cfg.FarRange:
		cmd.Dir = toward
	default:
		if r := b.rng.Float64(); r < b.cfg.WanderChance {
			cmd.Dir = 1
			if r < b.cfg.WanderChance/2 {
				cmd.Dir = -1
			}
			return cmd
		}
		if r := b.rng.Float64(); r < aggr && !self.Attacking() {
			cmd.Attack = b.pick(r, 0.33, 0.66)
		}
	}
	return cmd
}

func (b *brain) pick(r, punch, kick float64) Attack {
	switch {
	case r < punch:
		return AttackPunch
	case r < kick:
		return AttackKick
	default:
		return AttackSpecial
	}
}
