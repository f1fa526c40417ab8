package actor

import (
	"math"

	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/physics"
)

// Axis selects the patrol or oscillation direction.
type Axis uint8

const (
	AxisX Axis = iota
	AxisZ
	AxisY
)

func (a Axis) of(v physics.Vec) float64 {
	switch a {
	case AxisZ:
		return v.Z
	case AxisY:
		return v.Y
	default:
		return v.X
	}
}

func (a Axis) set(v *physics.Vec, x float64) {
	switch a {
	case AxisZ:
		v.Z = x
	case AxisY:
		v.Y = x
	default:
		v.X = x
	}
}

// Moves configures how a Player turns input into motion.
type Moves struct {
	Speed       float64
	JumpSpeed   float64
	AirJumps    int     // extra jumps allowed while airborne
	AirJumpMult float64 // air jump speed as a fraction of JumpSpeed
	CrouchMult  float64 // speed factor while crouching
	CrouchSize  float64 // height factor while crouching, CrouchMult when 0
	PunchTicks  int
	Depth       bool // Up/Down move along Z instead of doing nothing
}

func (m Moves) crouchSize() float64 {
	if m.CrouchSize > 0 {
		return m.CrouchSize
	}
	return m.CrouchMult
}

// Player is the controllable actor.
type Player struct {
	Body      physics.Body
	Health    int
	MaxHealth int
	Facing    float64 // +1 right, -1 left
	Moves     Moves
	Spawn     physics.Vec

	JumpsUsed  int
	Crouching  bool
	PunchLeft  int
	standSizeY float64
	lastHit    physics.Contact
}

// NewPlayer creates a player standing at pos.
func NewPlayer(pos, size physics.Vec, health int) *Player {
	if health <= 0 {
		health = 1
	}
	return &Player{
		Body:       physics.Body{Pos: pos, Size: size},
		Health:     health,
		MaxHealth:  health,
		Facing:     1,
		Spawn:      pos,
		standSizeY: size.Y,
		Moves:      Moves{Speed: 6, JumpSpeed: 8, CrouchMult: 0.5, PunchTicks: 18},
	}
}

func (p *Player) Kind() Kind { return KindPlayer }
func (p *Player) sealed() {}

// Alive reports whether the player has health left.
func (p *Player) Alive() bool { return p.Health > 0 }

// Punching reports whether the punch hit window is open.
func (p *Player) Punching() bool { return p.PunchLeft > 0 }

// Contact returns what the body touched on its last update.
func (p *Player) Contact() physics.Contact { return p.lastHit }

// Update applies input, integrates the body and ticks timers down.
func (p *Player) Update(w *World, in core.InputFrame, dt float64) {
	m := p.Moves

	wantCrouch := in.Has(core.ActionDown) && !m.Depth || in.Has(core.ActionBlock)
	if wantCrouch != p.Crouching {
		p.Crouching = wantCrouch
		if p.Crouching {
			p.Body.Size.Y = p.standSizeY * m.crouchSize()
		} else {
			p.Body.Size.Y = p.standSizeY
		}
	}

	speed := m.Speed
	if p.Crouching {
		speed *= m.CrouchMult
	}
	dx := in.Axis(core.ActionLeft, core.ActionRight)
	p.Body.Vel.X = dx * speed
	if dx != 0 {
		p.Facing = dx
	}
	if m.Depth {
		p.Body.Vel.Z = in.Axis(core.ActionUp, core.ActionDown) * speed
	}

	if in.JustPressed(core.ActionJump) && !p.Crouching {
		switch {
		case p.Body.Grounded:
			p.Body.Vel.Y = m.JumpSpeed
			p.Body.Grounded = false
			p.JumpsUsed = 0
		case p.JumpsUsed < m.AirJumps:
			p.Body.Vel.Y = m.JumpSpeed * m.AirJumpMult
			p.JumpsUsed++
		}
	}

	if in.JustPressed(core.ActionPunch) && p.PunchLeft == 0 {
		p.PunchLeft = m.PunchTicks
	}

	p.lastHit = w.Physics.Step(&p.Body, dt)
	if p.Body.Grounded {
		p.JumpsUsed = 0
	}
	if p.PunchLeft > 0 {
		p.PunchLeft--
	}
}

// TakeDamage removes health and reports death.
func (p *Player) TakeDamage(n int) bool {
	if n <= 0 || p.Health <= 0 {
		return false
	}
	p.Health -= n
	if p.Health < 0 {
		p.Health = 0
	}
	return p.Health == 0
}

// Respawn moves the player back to its spawn point at rest.
func (p *Player) Respawn() {
	p.Body.Pos = p.Spawn
	p.Body.Vel = physics.Vec{}
	p.Body.Grounded = false
	p.Body.Size.Y = p.standSizeY
	p.Crouching = false
	p.JumpsUsed = 0
	p.PunchLeft = 0
}

// Reach returns the box a punch covers in front of the player.
func (p *Player) Reach(length float64) physics.Box {
	b := p.Body.Box()
	if p.Facing >= 0 {
		b.Min.X = b.Max.X
		b.Max.X += length
	} else {
		b.Max.X = b.Min.X
		b.Min.X -= length
	}
	return b
}

func (p *Player) Draw(dst *core.Screen, vp core.Viewport) {
	glyph := '@'
	if p.Crouching {
		glyph = 'o'
	}
	x, y := vp.Cell(p.Body.Pos.X, p.Body.Pos.Y)
	dst.SetColor(x, y, glyph, core.ColorBrightGreen)
	if !p.Crouching && p.Body.Size.Y >= 2*vp.RowScale() {
		dst.SetColor(x, y-1, 'O', core.ColorBrightGreen)
	}
	if p.Punching() {
		dst.SetColor(x+int(p.Facing), y, '-', core.ColorYellow)
	}
}

// NPC is a patrolling enemy.
type NPC struct {
	Body   physics.Body
	Origin physics.Vec
	Axis   Axis
	Range  float64
	Speed  float64
	Dir    float64
	Health int
	Glyph  rune
}

// NewNPC creates an NPC patrolling range units of axis centred on pos.
func NewNPC(pos, size physics.Vec, axis Axis, rng, speed float64) *NPC {
	return &NPC{
		Body:   physics.Body{Pos: pos, Size: size},
		Origin: pos,
		Axis:   axis,
		Range:  rng,
		Speed:  speed,
		Dir:    1,
		Health: 1,
		Glyph:  'E',
	}
}

func (n *NPC) Kind() Kind { return KindNPC }
func (n *NPC) sealed() {}
func (n *NPC) Alive() bool { return n.Health > 0 }

// Update walks along the patrol axis, turning at the range ends and when
// blocked.
func (n *NPC) Update(w *World, _ core.InputFrame, dt float64) {
	n.Body.Vel.X, n.Body.Vel.Z = 0, 0
	if n.Axis == AxisY {
		n.Body.Vel.Y = 0
	}
	n.Axis.set(&n.Body.Vel, n.Dir*n.Speed)

	if n.Axis == AxisY {
		n.Body.Pos = n.Body.Pos.Add(n.Body.Vel.Scale(dt))
	} else {
		c := w.Physics.Step(&n.Body, dt)
		if c.Has(physics.BlockedX) || c.Has(physics.BlockedZ) {
			n.Dir = -n.Dir
		}
	}

	half := n.Range / 2
	pos := n.Axis.of(n.Body.Pos)
	origin := n.Axis.of(n.Origin)
	switch {
	case pos > origin+half:
		n.Axis.set(&n.Body.Pos, origin+half)
		n.Dir = -1
	case pos < origin-half:
		n.Axis.set(&n.Body.Pos, origin-half)
		n.Dir = 1
	}
}

func (n *NPC) TakeDamage(dmg int) bool {
	if dmg <= 0 || n.Health <= 0 {
		return false
	}
	n.Health -= dmg
	return n.Health <= 0
}

func (n *NPC) Draw(dst *core.Screen, vp core.Viewport) {
	x, y := vp.Cell(n.Body.Pos.X, n.Body.Pos.Y)
	dst.SetColor(x, y, n.Glyph, core.ColorBrightRed)
}

// Projectile is a short-lived moving point.
type Projectile struct {
	Pos    physics.Vec
	Vel    physics.Vec
	Radius float64
	Life   int
	Damage int
	Owner  Kind
}

func (p *Projectile) Kind() Kind { return KindProjectile }
func (p *Projectile) sealed() {}
func (p *Projectile) Alive() bool { return p.Life > 0 }

func (p *Projectile) Update(_ *World, _ core.InputFrame, dt float64) {
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	if p.Life > 0 {
		p.Life--
	}
}

// TakeDamage expires the projectile.
func (p *Projectile) TakeDamage(int) bool {
	p.Life = 0
	return true
}

func (p *Projectile) Draw(dst *core.Screen, vp core.Viewport) {
	x, y := vp.Cell(p.Pos.X, p.Pos.Y)
	dst.SetColor(x, y, '*', core.ColorYellow)
}

// Platform is solid geometry, optionally oscillating along an axis.
type Platform struct {
	Box    physics.Box
	Glyph  rune
	Color  core.Color
	Goal   bool
	Axis   Axis
	Amp    float64 // 0 for static platforms
	Period float64 // seconds per full swing
	home   physics.Box
	t      float64
}

func (p *Platform) Kind() Kind { return KindPlatform }
func (p *Platform) sealed() {}
func (p *Platform) Alive() bool { return true }

// Update moves an oscillating platform; static ones stay put.
func (p *Platform) Update(_ *World, _ core.InputFrame, dt float64) {
	if p.Amp == 0 || p.Period <= 0 {
		return
	}
	if p.home == (physics.Box{}) {
		p.home = p.Box
	}
	p.t += dt
	var d physics.Vec
	p.Axis.set(&d, p.Amp*math.Sin(2*math.Pi*p.t/p.Period))
	p.Box = p.home.Translate(d)
}

// TakeDamage has no effect on platforms.
func (p *Platform) TakeDamage(int) bool { return false }

func (p *Platform) Draw(dst *core.Screen, vp core.Viewport) {
	glyph := p.Glyph
	if glyph == 0 {
		glyph = '='
	}
	color := p.Color
	if p.Goal {
		glyph, color = '#', core.ColorBrightYellow
	}
	x0, y1 := vp.Cell(p.Box.Min.X, p.Box.Min.Y)
	x1, y0 := vp.Cell(p.Box.Max.X, p.Box.Max.Y)
	if y1 > y0 {
		y1-- // the bottom edge cell belongs to what is below
	}
	if x1 <= x0 {
		x1 = x0 + 1
	}
	dst.DrawRectColor(core.NewRect(x0, y0, x1-x0, y1-y0+1), glyph, color)
}

// Placeholder stands in for an actor that failed to build. It draws '?' and
// ignores damage.
type Placeholder struct {
	Pos    physics.Vec
	Reason error
}

func (p *Placeholder) Kind() Kind { return KindPlaceholder }
func (p *Placeholder) sealed() {}
func (p *Placeholder) Alive() bool { return true }
func (p *Placeholder) Update(*World, core.InputFrame, float64) {}
func (p *Placeholder) TakeDamage(int) bool { return false }

func (p *Placeholder) Draw(dst *core.Screen, vp core.Viewport) {
	x, y := vp.Cell(p.Pos.X, p.Pos.Y)
	dst.SetColor(x, y, '?', core.ColorMagenta)
}
