package loop

import (
	"github.com/charmbracelet/log"
)

// ScoreSink persists finished runs.
type ScoreSink interface {
	SaveScore(gameID string, score int) error
	SubmitHigh(gameID string, score int) (bool, error)
}

// ScoreKeeper is an observer that records each run once, on the frame the
// game ends. Storage failures are logged and otherwise ignored; a broken
// database never stops a game.
type ScoreKeeper struct {
	sink   ScoreSink
	logger *log.Logger
	saved  bool

	// NewBest is set when the last finished run beat the stored high score.
	NewBest bool
}

// NewScoreKeeper creates a keeper writing to sink. A nil sink disables it.
func NewScoreKeeper(sink ScoreSink, logger *log.Logger) *ScoreKeeper {
	if logger == nil {
		logger = log.Default()
	}
	return &ScoreKeeper{sink: sink, logger: logger}
}

func (k *ScoreKeeper) Observe(f Frame) {
	if f.Restarted {
		k.saved = false
		k.NewBest = false
	}
	if k.sink == nil || k.saved || !f.Result.State.GameOver {
		return
	}
	k.saved = true

	score := f.Result.State.Score
	if err := k.sink.SaveScore(f.GameID, score); err != nil {
		k.logger.Warn("cannot save score", "game", f.GameID, "score", score, "err", err)
	}
	best, err := k.sink.SubmitHigh(f.GameID, score)
	if err != nil {
		k.logger.Warn("cannot update high score", "game", f.GameID, "err", err)
		return
	}
	k.NewBest = best
	if best {
		k.logger.Info("new high score", "game", f.GameID, "score", score)
	}
}
