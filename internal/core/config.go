package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Dt returns the fixed timestep in seconds.
func (c RuntimeConfig) Dt() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(c.TickRate)
}

// Ticks converts a duration into a whole number of ticks, at least one.
func (c RuntimeConfig) Ticks(d time.Duration) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	n := int(d * time.Duration(rate) / time.Second)
	if n < 1 {
		n = 1
	}
	return n
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int
	GameOver bool
	Won      bool // the run ended (or reached a milestone) in the player's favour
	Paused   bool
}

// Cue is a fire-and-forget sound trigger emitted by a game step.
type Cue uint8

const (
	CueJump Cue = iota + 1
	CueHit
	CueCoin
	CueShoot
	CueExplode
	CueLand
	CueRoundStart
	CueKO
	CueMiss
)

func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueHit:
		return "hit"
	case CueCoin:
		return "coin"
	case CueShoot:
		return "shoot"
	case CueExplode:
		return "explode"
	case CueLand:
		return "land"
	case CueRoundStart:
		return "round-start"
	case CueKO:
		return "ko"
	case CueMiss:
		return "miss"
	default:
		return "none"
	}
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
	Cues  []Cue
}

// Emit appends a sound cue to the result.
func (r *StepResult) Emit(c Cue) {
	r.Cues = append(r.Cues, c)
}
