package typing

import (
	"math"

	"github.com/vovakirdan/loop-arcade/internal/config"
	"github.com/vovakirdan/loop-arcade/internal/core"
)

// trackLength is where a falling letter should be hit.
const trackLength = 100.0

// Grade is the judgement of one hit.
type Grade uint8

const (
	GradeNone Grade = iota
	GradePerfect
	GradeGood
	GradeOK
	GradeMiss
)

func (g Grade) String() string {
	switch g {
	case GradePerfect:
		return "perfect"
	case GradeGood:
		return "good"
	case GradeOK:
		return "ok"
	case GradeMiss:
		return "miss"
	default:
		return ""
	}
}

// Color is the feedback colour for the grade.
func (g Grade) Color() core.Color {
	switch g {
	case GradePerfect:
		return core.ColorBrightGreen
	case GradeGood:
		return core.ColorBrightYellow
	case GradeOK:
		return core.ColorOrange
	case GradeMiss:
		return core.ColorBrightRed
	default:
		return core.ColorBrightCyan
	}
}

// judge grades a timing error in milliseconds.
func judge(errMillis float64, cfg config.TypingConfig) Grade {
	switch {
	case errMillis <= cfg.PerfectMillis:
		return GradePerfect
	case errMillis <= cfg.GoodMillis:
		return GradeGood
	case errMillis <= cfg.OKMillis:
		return GradeOK
	default:
		return GradeMiss
	}
}

// timingError is how far in time a letter at pos is from the hit line.
func timingError(pos, speed float64) float64 {
	if speed <= 0 {
		return math.Inf(1)
	}
	return math.Abs(trackLength-pos) / speed * 1000
}

// points returns the score for a grade with the combo already counting
// this hit.
func points(g Grade, combo int) int {
	switch g {
	case GradePerfect:
		return int(math.Round(100 * (1 + float64(combo)*0.1)))
	case GradeGood:
		return int(math.Round(50 * (1 + float64(combo)*0.05)))
	case GradeOK:
		return 25
	default:
		return 0
	}
}

// Tally counts judgements.
type Tally struct {
	Perfect, Good, OK, Miss int
}

func (t *Tally) add(g Grade) {
	switch g {
	case GradePerfect:
		t.Perfect++
	case GradeGood:
		t.Good++
	case GradeOK:
		t.OK++
	case GradeMiss:
		t.Miss++
	}
}

// Total returns every judged letter.
func (t Tally) Total() int { return t.Perfect + t.Good + t.OK + t.Miss }

// Accuracy weights perfects fully, goods at 0.6 and oks at 0.3. It is 100
// before anything is judged.
func (t Tally) Accuracy() int {
	total := t.Total()
	if total == 0 {
		return 100
	}
	w := float64(t.Perfect) + 0.6*float64(t.Good) + 0.3*float64(t.OK)
	return int(math.Round(w / float64(total) * 100))
}
