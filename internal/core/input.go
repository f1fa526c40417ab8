package core

import "strings"

// Action is a logical game input, abstracted from physical keys.
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionJump
	ActionFire
	ActionPunch
	ActionKick
	ActionSpecial
	ActionBlock
	ActionBrake
	ActionLane1
	ActionLane2
	ActionLane3
	ActionLane4
	ActionLane5
	ActionLane6
	ActionP2Left
	ActionP2Right
	ActionP2Up
	ActionP2Down
	ActionP2Punch
	ActionP2Kick
	ActionP2Special
	ActionP2Block
	ActionConfirm
	ActionBack
	ActionRestart
	ActionPause
	ActionQuit

	actionCount
)

var actionNames = [actionCount]string{
	"None", "Left", "Right", "Up", "Down", "Jump", "Fire", "Punch", "Kick",
	"Special", "Block", "Brake", "Lane1", "Lane2", "Lane3", "Lane4", "Lane5",
	"Lane6", "P2Left", "P2Right", "P2Up", "P2Down", "P2Punch", "P2Kick",
	"P2Special", "P2Block", "Confirm", "Back", "Restart", "Pause", "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// LaneAction returns the action for typing lane i (0..5).
func LaneAction(i int) Action {
	if i < 0 || i > 5 {
		return ActionNone
	}
	return ActionLane1 + Action(i)
}

// ActionSet is a bitset of actions.
type ActionSet uint64

// SetOf builds a set from the given actions.
func SetOf(actions ...Action) ActionSet {
	var s ActionSet
	for _, a := range actions {
		s = s.With(a)
	}
	return s
}

// Has reports whether a is in the set.
func (s ActionSet) Has(a Action) bool {
	if a == ActionNone {
		return false
	}
	return s&(1<<a) != 0
}

// With returns the set plus a.
func (s ActionSet) With(a Action) ActionSet {
	if a == ActionNone || a >= actionCount {
		return s
	}
	return s | 1<<a
}

// Without returns the set minus a.
func (s ActionSet) Without(a Action) ActionSet {
	return s &^ (1 << a)
}

// Empty reports whether no action is in the set.
func (s ActionSet) Empty() bool {
	return s == 0
}

func (s ActionSet) String() string {
	var names []string
	for a := ActionNone + 1; a < actionCount; a++ {
		if s.Has(a) {
			names = append(names, a.String())
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}

// InputFrame is the input snapshot a game sees for one tick.
// Held lists actions currently down; Pressed lists actions that went down
// since the previous frame.
type InputFrame struct {
	Tick    uint64
	Held    ActionSet
	Pressed ActionSet
}

// FrameOf builds a frame where every given action is both held and just pressed.
// Handy for games that only care about taps, and for tests.
func FrameOf(actions ...Action) InputFrame {
	s := SetOf(actions...)
	return InputFrame{Held: s, Pressed: s}
}

// Has reports whether a is held this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Held.Has(a)
}

// JustPressed reports whether a went down this frame.
func (f InputFrame) JustPressed(a Action) bool {
	return f.Pressed.Has(a)
}

// Axis returns -1, 0 or 1 from a pair of opposing held actions.
func (f InputFrame) Axis(neg, pos Action) float64 {
	v := 0.0
	if f.Has(neg) {
		v--
	}
	if f.Has(pos) {
		v++
	}
	return v
}
