// Package actor defines the tagged actor variants used by the platform
// games. Each kind carries only the fields it needs, and every update goes
// through one exhaustive type switch instead of duck-typed records.
package actor

import (
	"fmt"

	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/physics"
)

// Kind tags an actor variant.
type Kind uint8

const (
	KindPlayer Kind = iota + 1
	KindNPC
	KindProjectile
	KindPlatform
	KindPlaceholder
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindNPC:
		return "npc"
	case KindProjectile:
		return "projectile"
	case KindPlatform:
		return "platform"
	case KindPlaceholder:
		return "placeholder"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Actor is the fixed capability set every variant provides. The unexported
// method seals the set to this package's variants.
type Actor interface {
	Kind() Kind
	// Update advances the actor by dt. Dispatch goes through World.Update.
	Update(w *World, in core.InputFrame, dt float64)
	// Draw projects the actor onto the screen; it never reads back.
	Draw(dst *core.Screen, vp core.Viewport)
	// TakeDamage applies n damage and reports whether the actor died.
	TakeDamage(n int) bool
	// Alive reports whether the actor is still in the active set.
	Alive() bool

	sealed()
}

// Spec describes an actor to Build.
type Spec struct {
	Kind   Kind
	Pos    physics.Vec
	Size   physics.Vec
	Health int

	// NPC patrol.
	Axis  Axis
	Range float64
	Speed float64

	// Projectile.
	Vel      physics.Vec
	Lifespan int
	Radius   float64

	Glyph rune
	Color core.Color
}

// Build constructs the variant named by spec.Kind.
func Build(spec Spec) (Actor, error) {
	if spec.Kind != KindProjectile && (spec.Size.X <= 0 || spec.Size.Y <= 0) {
		return nil, fmt.Errorf("actor: %s needs a positive size, got %+v", spec.Kind, spec.Size)
	}
	switch spec.Kind {
	case KindPlayer:
		return NewPlayer(spec.Pos, spec.Size, spec.Health), nil
	case KindNPC:
		if spec.Speed <= 0 || spec.Range <= 0 {
			return nil, fmt.Errorf("actor: npc needs positive speed and range")
		}
		return NewNPC(spec.Pos, spec.Size, spec.Axis, spec.Range, spec.Speed), nil
	case KindProjectile:
		if spec.Lifespan <= 0 {
			return nil, fmt.Errorf("actor: projectile needs a lifespan")
		}
		return &Projectile{Pos: spec.Pos, Vel: spec.Vel, Radius: spec.Radius, Life: spec.Lifespan}, nil
	case KindPlatform:
		return &Platform{Box: physics.BoxAt(spec.Pos, spec.Size), Glyph: spec.Glyph, Color: spec.Color}, nil
	case KindPlaceholder:
		return &Placeholder{Pos: spec.Pos}, nil
	default:
		return nil, fmt.Errorf("actor: unknown kind %s", spec.Kind)
	}
}

// OrPlaceholder returns a when err is nil, otherwise a Placeholder at pos so
// the game keeps running with a visible stand-in.
func OrPlaceholder(a Actor, err error, pos physics.Vec) Actor {
	if err != nil || a == nil {
		return &Placeholder{Pos: pos, Reason: err}
	}
	return a
}
