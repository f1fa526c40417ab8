package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/loop"
)

// Player plays one cue without blocking.
type Player interface {
	Play(c core.Cue)
}

// Nop discards every cue.
type Nop struct{}

func (Nop) Play(core.Cue) {}

// Sink is a frame observer that forwards the cues of each frame to a
// Player. Repeats of the same cue within one frame play once.
type Sink struct {
	player Player
}

// NewSink wraps p. A nil p is silent.
func NewSink(p Player) *Sink {
	if p == nil {
		p = Nop{}
	}
	return &Sink{player: p}
}

func (s *Sink) Observe(f loop.Frame) {
	var seen uint32
	for _, c := range f.Result.Cues {
		bit := uint32(1) << (c % 32)
		if seen&bit != 0 {
			continue
		}
		seen |= bit
		s.player.Play(c)
	}
}

var (
	speakerOnce sync.Once
	speakerErr  error
)

// Speaker plays cues on the default audio device through one beep mixer.
type Speaker struct {
	mixer *beep.Mixer
	rate  beep.SampleRate
}

// OpenSpeaker initialises the audio device. When that fails it logs a
// warning and returns Nop, so callers never have to care.
func OpenSpeaker(logger *log.Logger) Player {
	if logger == nil {
		logger = log.Default()
	}
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond))
	})
	if speakerErr != nil {
		logger.Warn("audio disabled", "err", speakerErr)
		return Nop{}
	}

	s := &Speaker{mixer: &beep.Mixer{}, rate: SampleRate}
	speaker.Play(s.mixer)
	return s
}

func (s *Speaker) Play(c core.Cue) {
	st := Render(c, s.rate)
	if st == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close silences everything still playing.
func (s *Speaker) Close() {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
}
