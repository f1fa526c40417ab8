package flappy

import (
	"math/rand"

	"github.com/vovakirdan/loop-arcade/internal/config"
	"github.com/vovakirdan/loop-arcade/internal/core"
)

// Pipe represents a vertical obstacle with a gap for the player to pass through.
type Pipe struct {
	X         float64 // Horizontal position (left edge), sub-cell precision
	GapY      int     // Y position where gap starts (top of gap)
	GapHeight int     // Height of the passable gap
	Passed    bool    // Whether the player has passed this pipe (for scoring)
}

// Left returns the pipe's left edge in cells.
func (p Pipe) Left() int {
	return int(p.X)
}

// TopRect returns the collision rectangle for the top portion of the pipe.
func (p Pipe) TopRect(pipeWidth int) core.Rect {
	return core.NewRect(p.Left(), 0, pipeWidth, p.GapY)
}

// BottomRect returns the collision rectangle for the bottom portion of the
// pipe, down to groundY.
func (p Pipe) BottomRect(pipeWidth, groundY int) core.Rect {
	bottomY := p.GapY + p.GapHeight
	return core.NewRect(p.Left(), bottomY, pipeWidth, groundY-bottomY)
}

// PipeManager handles spawning, movement, and removal of pipes.
type PipeManager struct {
	pipes      []Pipe
	rng        *rand.Rand
	screenW    int
	groundY    int
	cfg        *config.FlappyConfig
	difficulty *config.DifficultyManager
}

// NewPipeManager creates a pipe manager with the given RNG seed.
func NewPipeManager(seed int64, screenW, groundY int, cfg *config.FlappyConfig, diff *config.DifficultyManager) *PipeManager {
	pm := &PipeManager{
		pipes:      make([]Pipe, 0, 8),
		screenW:    screenW,
		groundY:    groundY,
		cfg:        cfg,
		difficulty: diff,
	}
	pm.Reset(seed)
	return pm
}

// Reset clears all pipes and reseeds the RNG.
func (pm *PipeManager) Reset(seed int64) {
	pm.pipes = pm.pipes[:0]
	pm.rng = rand.New(rand.NewSource(seed))
}

// Update moves pipes left by speed and spawns new ones as needed.
// Returns the number of pipes that were passed this frame (for scoring).
func (pm *PipeManager) Update(playerX int, speed float64, score, ticks int) int {
	passed := 0
	pipeWidth := pm.cfg.Obstacles.PipeWidth

	for i := range pm.pipes {
		pm.pipes[i].X -= speed
		if !pm.pipes[i].Passed && pm.pipes[i].Left()+pipeWidth < playerX {
			pm.pipes[i].Passed = true
			passed++
		}
	}

	// Remove pipes that have moved off the left side
	valid := pm.pipes[:0]
	for _, p := range pm.pipes {
		if p.Left()+pipeWidth > 0 {
			valid = append(valid, p)
		}
	}
	pm.pipes = valid

	spacing := pm.difficulty.Spacing(pm.cfg.Obstacles.PipeSpacing, score, ticks)
	if len(pm.pipes) == 0 || pm.pipes[len(pm.pipes)-1].X < float64(pm.screenW-spacing) {
		pm.spawnPipe(score, ticks)
	}

	return passed
}

// spawnPipe creates a new pipe at the right edge of the screen.
func (pm *PipeManager) spawnPipe(score, ticks int) {
	obs := pm.cfg.Obstacles

	minGap := obs.MinGapSize
	currentGap := pm.difficulty.GapSize(obs.MaxGapSize, score, ticks)
	if currentGap < minGap {
		currentGap = minGap
	}
	gapHeight := minGap
	if r := currentGap - minGap; r > 0 {
		gapHeight = minGap + pm.rng.Intn(r+1)
	}

	minGapY := obs.TopMargin
	maxGapY := pm.groundY - obs.BottomMargin - gapHeight
	if maxGapY < minGapY {
		maxGapY = minGapY // Edge case for very small screens
	}
	gapY := minGapY
	if maxGapY > minGapY {
		gapY = minGapY + pm.rng.Intn(maxGapY-minGapY+1)
	}

	pm.pipes = append(pm.pipes, Pipe{
		X:         float64(pm.screenW),
		GapY:      gapY,
		GapHeight: gapHeight,
	})
}

// Pipes returns the current list of pipes.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// CheckCollision tests if the given rectangle collides with any pipe.
func (pm *PipeManager) CheckCollision(playerRect core.Rect) bool {
	pipeWidth := pm.cfg.Obstacles.PipeWidth
	for _, p := range pm.pipes {
		if playerRect.Intersects(p.TopRect(pipeWidth)) || playerRect.Intersects(p.BottomRect(pipeWidth, pm.groundY)) {
			return true
		}
	}
	return false
}
