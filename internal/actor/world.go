package actor

import (
	"fmt"

	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/physics"
)

// World owns the active set of actors for one game instance.
type World struct {
	Physics physics.World
	Actors  []Actor

	// ProjectileHits counts NPCs removed by projectiles during the last Update.
	ProjectileHits int
}

// Add appends actors to the active set.
func (w *World) Add(actors ...Actor) {
	w.Actors = append(w.Actors, actors...)
}

// Update runs one update step over every actor.
//
// Platforms move first and the collision geometry is rebuilt from them, so
// bodies always resolve against where platforms are this frame. Then every
// other actor updates in insertion order.
func (w *World) Update(in core.InputFrame, dt float64) {
	w.ProjectileHits = 0

	w.Physics.Platforms = w.Physics.Platforms[:0]
	for _, a := range w.Actors {
		if p, ok := a.(*Platform); ok {
			p.Update(w, in, dt)
			w.Physics.Platforms = append(w.Physics.Platforms, p.Box)
		}
	}

	for _, a := range w.Actors {
		switch a := a.(type) {
		case *Platform:
			// already updated
		case *Player:
			if a.Alive() {
				a.Update(w, in, dt)
			}
		case *NPC:
			if a.Alive() {
				a.Update(w, in, dt)
			}
		case *Projectile:
			if !a.Alive() {
				continue
			}
			a.Update(w, in, dt)
			w.resolveProjectile(a)
		case *Placeholder:
			a.Update(w, in, dt)
		default:
			panic(fmt.Sprintf("actor: unhandled variant %T", a))
		}
	}
}

func (w *World) resolveProjectile(p *Projectile) {
	for _, a := range w.Actors {
		n, ok := a.(*NPC)
		if !ok || !n.Alive() || p.Owner == KindNPC {
			continue
		}
		c := n.Body.Box().Center()
		r := n.Body.Size.X / 2
		if physics.Hit(p.Pos, c, p.Radius, r) {
			dmg := p.Damage
			if dmg <= 0 {
				dmg = 1
			}
			if n.TakeDamage(dmg) {
				w.ProjectileHits++
			}
			p.TakeDamage(1)
			return
		}
	}
}

// Sweep drops dead and expired actors and returns how many were removed.
func (w *World) Sweep() int {
	kept := w.Actors[:0]
	for _, a := range w.Actors {
		if a.Alive() {
			kept = append(kept, a)
		}
	}
	removed := len(w.Actors) - len(kept)
	for i := len(kept); i < len(w.Actors); i++ {
		w.Actors[i] = nil
	}
	w.Actors = kept
	return removed
}

// Draw renders platforms first so moving actors show on top.
func (w *World) Draw(dst *core.Screen, vp core.Viewport) {
	for _, a := range w.Actors {
		if a.Kind() == KindPlatform {
			a.Draw(dst, vp)
		}
	}
	for _, a := range w.Actors {
		if a.Kind() != KindPlatform && a.Alive() {
			a.Draw(dst, vp)
		}
	}
}

// Player returns the first player in the world, or nil.
func (w *World) Player() *Player {
	for _, a := range w.Actors {
		if p, ok := a.(*Player); ok {
			return p
		}
	}
	return nil
}

// Of returns every live actor of variant T.
func Of[T Actor](w *World) []T {
	var out []T
	for _, a := range w.Actors {
		if t, ok := a.(T); ok && a.Alive() {
			out = append(out, t)
		}
	}
	return out
}

// Touching returns the live NPCs whose boxes overlap the player's.
func (w *World) Touching(p *Player) []*NPC {
	box := p.Body.Box()
	var out []*NPC
	for _, n := range Of[*NPC](w) {
		if physics.Collide(box, n.Body.Box()) {
			out = append(out, n)
		}
	}
	return out
}
