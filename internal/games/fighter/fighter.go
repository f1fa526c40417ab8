package fighter

import (
	"github.com/vovakirdan/loop-arcade/internal/config"
	"github.com/vovakirdan/loop-arcade/internal/physics"
)

// floorY is the arena floor height above the bottom edge.
const floorY = 50.0

// Attack names one of the three moves.
type Attack uint8

const (
	AttackNone Attack = iota
	AttackPunch
	AttackKick
	AttackSpecial
)

func (a Attack) String() string {
	switch a {
	case AttackPunch:
		return "punch"
	case AttackKick:
		return "kick"
	case AttackSpecial:
		return "special"
	default:
		return "none"
	}
}

// Command is one tick of intent for a fighter, from a player or the CPU.
type Command struct {
	Dir    float64 // -1 left, +1 right
	Jump   bool
	Block  bool
	Attack Attack
}

// Fighter is one combatant. Coordinates are arena pixels with y up; X is
// the left edge of the body.
type Fighter struct {
	Spec        config.FighterSpec
	X           float64
	Lift        float64 // height of the feet above the floor
	VX, VY      float64
	FacingRight bool
	Health      int
	MaxHealth   int
	Blocking    bool

	arena     config.FighterArena
	attack    Attack
	frame     int
	frameTick int
	cooldown  int
	specialCD int
}

// NewFighter places a fighter on the floor at x.
func NewFighter(spec config.FighterSpec, arena config.FighterArena, x float64, facingRight bool) *Fighter {
	f := &Fighter{Spec: spec, arena: arena, MaxHealth: arena.MaxHealth}
	if f.MaxHealth <= 0 {
		f.MaxHealth = 100
	}
	f.Reset(x, facingRight)
	return f
}

// Reset restores full health and clears every timer.
func (f *Fighter) Reset(x float64, facingRight bool) {
	f.X = x
	f.Lift, f.VX, f.VY = 0, 0, 0
	f.FacingRight = facingRight
	f.Health = f.MaxHealth
	f.Blocking = false
	f.attack = AttackNone
	f.frame, f.frameTick = 0, 0
	f.cooldown, f.specialCD = 0, 0
}

// Grounded reports whether the fighter stands on the floor.
func (f *Fighter) Grounded() bool { return f.Lift <= 0 && f.VY <= 0 }

// Attacking reports whether an attack animation is running.
func (f *Fighter) Attacking() bool { return f.attack != AttackNone }

// Current returns the running attack.
func (f *Fighter) Current() Attack { return f.attack }

// Centre returns the body's horizontal centre.
func (f *Fighter) Centre() float64 { return f.X + f.Spec.Width/2 }

func (f *Fighter) data(a Attack) config.FighterAttack {
	switch a {
	case AttackPunch:
		return f.Spec.Punch
	case AttackKick:
		return f.Spec.Kick
	default:
		return f.Spec.Special
	}
}

// Apply turns a command into motion and attack starts. Moving, jumping and
// attacking are locked out while attacking or blocking; blocking needs the
// floor.
func (f *Fighter) Apply(cmd Command) {
	f.Blocking = cmd.Block && f.Grounded() && !f.Attacking()
	f.VX = 0
	if f.Attacking() || f.Blocking {
		return
	}
	if cmd.Dir != 0 {
		f.VX = cmd.Dir * f.Spec.Speed
		f.FacingRight = cmd.Dir > 0
	}
	if cmd.Jump && f.Grounded() {
		f.VY = f.Spec.Jump
	}
	if cmd.Attack != AttackNone && f.cooldown == 0 {
		if cmd.Attack == AttackSpecial {
			if f.specialCD > 0 {
				return
			}
			f.specialCD = f.arena.SpecialCD
		}
		f.attack = cmd.Attack
		f.frame, f.frameTick = 0, 0
		f.cooldown = f.data(cmd.Attack).Cooldown
	}
}

// Update advances one tick and reports whether the running attack reached
// its hit frame on this tick.
func (f *Fighter) Update() bool {
	if !f.Grounded() {
		f.VY -= f.arena.Gravity
		f.Lift += f.VY
		if f.Lift <= 0 {
			f.Lift, f.VY = 0, 0
		}
	}
	f.X += f.VX
	f.X = physics.ClampX(f.X+f.Spec.Width/2, f.Spec.Width/2, f.arena.Padding, f.arena.Width-f.arena.Padding) - f.Spec.Width/2

	hit := false
	if f.attack != AttackNone {
		delay := max(1, f.arena.FrameDelay)
		f.frameTick++
		if f.frameTick >= delay {
			f.frameTick = 0
			f.frame++
			a := f.data(f.attack)
			hit = f.frame == a.HitFrame
			if f.frame >= a.Frames {
				f.attack = AttackNone
				f.frame = 0
			}
		}
	}
	if f.cooldown > 0 {
		f.cooldown--
	}
	if f.specialCD > 0 {
		f.specialCD--
	}
	return hit
}

// Body returns the hurtbox.
func (f *Fighter) Body() physics.Box {
	return physics.Rect2(f.X, floorY+f.Lift, f.Spec.Width, f.Spec.Height)
}

// Hitbox returns the running attack's box and damage. Hitbox offsets are
// measured from the top-left corner facing right and mirrored facing left.
func (f *Fighter) Hitbox() (physics.Box, int) {
	a := f.data(f.attack)
	hb := a.Hitbox
	x := f.X + hb.X
	if !f.FacingRight {
		x = f.X + f.Spec.Width - hb.X - hb.W
	}
	top := floorY + f.Lift + f.Spec.Height
	return physics.Rect2(x, top-hb.Y-hb.H, hb.W, hb.H), a.Damage
}

// TakeHit applies damage, cut to a fifth when blocked, and returns the
// damage dealt. A clean hit cancels the running attack.
func (f *Fighter) TakeHit(dmg int, blocked bool) int {
	if blocked {
		dmg /= 5
	} else {
		f.attack = AttackNone
		f.frame, f.frameTick = 0, 0
	}
	dmg = min(dmg, f.Health)
	f.Health -= dmg
	return dmg
}

// Guards reports whether a block holds against an attacker centred at x:
// grounded, blocking and facing that side.
func (f *Fighter) Guards(x float64) bool {
	if !f.Blocking || !f.Grounded() {
		return false
	}
	return f.FacingRight == (x > f.Centre())
}
