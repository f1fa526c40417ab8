package config

import "math"

// Minimum values the difficulty ramp may reduce flappy gaps and spacing to.
const (
	MinGap     = 4
	MinSpacing = 15
)

// DifficultyManager turns a difficulty block into a level between 0 and 1
// and scales game parameters by it.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales baseSpeed up to base * (1 + speed_multiplier) at level 1.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, ticks int) float64 {
	return baseSpeed * (1.0 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// Reduce shrinks base by up to reduction at level 1, never below floor.
func (d *DifficultyManager) Reduce(base, reduction, floor int, score int, ticks int) int {
	result := base - int(d.Level(score, ticks)*float64(reduction))
	if result < floor {
		result = floor
	}
	return result
}

// GapSize returns the current pipe gap.
func (d *DifficultyManager) GapSize(baseGap int, score int, ticks int) int {
	return d.Reduce(baseGap, d.cfg.Scaling.GapReduction, MinGap, score, ticks)
}

// Spacing returns the current distance between pipes.
func (d *DifficultyManager) Spacing(baseSpacing int, score int, ticks int) int {
	return d.Reduce(baseSpacing, d.cfg.Scaling.SpacingReduction, MinSpacing, score, ticks)
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
