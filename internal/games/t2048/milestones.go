// Package t2048 implements the 2048 sliding-tile puzzle.
package t2048

// WinTile is the tile that marks the game as won. Play continues after it.
const WinTile = 2048

// Milestone is a tile value worth announcing when first reached.
type Milestone struct {
	Tile int
	Name string
}

// Milestones are announced in the HUD as the board grows.
var Milestones = []Milestone{
	{Tile: 128, Name: "Warm-up"},
	{Tile: 256, Name: "Getting Started"},
	{Tile: 512, Name: "Building Momentum"},
	{Tile: 1024, Name: "The Climb"},
	{Tile: WinTile, Name: "Classic 2048"},
	{Tile: 4096, Name: "Beyond Limits"},
	{Tile: 8192, Name: "Master Class"},
}

// NextMilestone returns the first milestone above maxTile, or nil when
// every milestone has been passed.
func NextMilestone(maxTile int) *Milestone {
	for i := range Milestones {
		if Milestones[i].Tile > maxTile {
			return &Milestones[i]
		}
	}
	return nil
}

// reachedMilestone returns the highest milestone crossed by going from
// before to after, or nil.
func reachedMilestone(before, after int) *Milestone {
	var hit *Milestone
	for i := range Milestones {
		if Milestones[i].Tile > before && Milestones[i].Tile <= after {
			hit = &Milestones[i]
		}
	}
	return hit
}
