package core

import "sync"

// Sampler tracks which actions are held and hands out one InputFrame per tick.
//
// Platform adapters write to it from their event goroutine (Press, Release,
// Blur) while the frame driver reads it with Sample, so all methods lock.
//
// Terminals never report key-up. For them the sampler is built with a hold
// window: a press keeps the action held for that many samples, and key
// auto-repeat keeps refreshing it. A zero window means an action stays held
// until Release.
type Sampler struct {
	mu   sync.Mutex
	hold int

	// expires[a] is the sample number after which a is released; 0 means
	// not held, -1 means held until Release.
	expires [actionCount]int64
	// latched records presses that happened since the last sample so a tap
	// shorter than one tick is still seen; edges records presses of actions
	// that were up at the time.
	latched ActionSet
	edges   ActionSet
	prev    ActionSet
	n       int64
	tick    uint64
}

// NewSampler creates a sampler. holdSamples is the hold window for platforms
// without key-up events; pass 0 when Release will be called.
func NewSampler(holdSamples int) *Sampler {
	return &Sampler{hold: holdSamples}
}

// Press marks a as held.
func (s *Sampler) Press(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isHeld(a) {
		s.edges = s.edges.With(a)
	}
	if s.hold > 0 {
		s.expires[a] = s.n + int64(s.hold)
	} else {
		s.expires[a] = -1
	}
	s.latched = s.latched.With(a)
}

// Release marks a as no longer held.
func (s *Sampler) Release(a Action) {
	if a >= actionCount {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expires[a] = 0
}

// Set replaces the whole held state, for platforms that poll key state.
func (s *Sampler) Set(held ActionSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for a := ActionNone + 1; a < actionCount; a++ {
		if held.Has(a) {
			s.expires[a] = -1
			s.latched = s.latched.With(a)
		} else {
			s.expires[a] = 0
		}
	}
}

// Replay makes the next sample report exactly held and pressed. Replays use
// it to feed recorded frames back through the same path live input takes.
func (s *Sampler) Replay(held, pressed ActionSet) {
	s.Set(held)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latched = 0
	s.edges = pressed
}

// Blur forcibly clears every held action. Call it when the window or
// terminal loses focus so keys released while unfocused do not stick.
func (s *Sampler) Blur() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expires = [actionCount]int64{}
	s.latched = 0
	s.edges = 0
	s.prev = 0
}

// Held returns the currently held set without advancing the sampler.
func (s *Sampler) Held() ActionSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heldLocked()
}

func (s *Sampler) isHeld(a Action) bool {
	e := s.expires[a]
	return e == -1 || e > s.n
}

func (s *Sampler) heldLocked() ActionSet {
	var held ActionSet
	for a := ActionNone + 1; a < actionCount; a++ {
		if s.isHeld(a) {
			held = held.With(a)
		}
	}
	return held | s.latched
}

// Sample returns the snapshot for the next tick and advances the sampler.
// Pressed is derived by comparing with the previous sample.
func (s *Sampler) Sample() InputFrame {
	s.mu.Lock()
	defer s.mu.Unlock()

	held := s.heldLocked()
	f := InputFrame{
		Tick:    s.tick,
		Held:    held,
		Pressed: held&^s.prev | s.edges,
	}
	s.prev = held
	s.latched = 0
	s.edges = 0
	s.n++
	s.tick++
	return f
}

// Reset clears held state and edge history.
func (s *Sampler) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expires = [actionCount]int64{}
	s.latched = 0
	s.edges = 0
	s.prev = 0
}
