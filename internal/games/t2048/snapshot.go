package t2048

// Phase is the coarse state of a game.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhaseWon      Phase = "won" // reached 2048, still playing
	PhaseGameOver Phase = "game_over"
	PhaseTooSmall Phase = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Score   int
	Board   Board
	MaxTile int
	Phase   Phase
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	phase := PhasePlaying
	switch {
	case g.tooSmall:
		phase = PhaseTooSmall
	case g.gameOver:
		phase = PhaseGameOver
	case g.won:
		phase = PhaseWon
	}
	return Snapshot{
		Tick:    g.tick,
		Score:   g.score,
		Board:   g.board,
		MaxTile: MaxTile(g.board),
		Phase:   phase,
	}
}
