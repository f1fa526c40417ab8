// Package keys holds the key bindings shared by every platform.
//
// Keys are named the way bubbletea names them: "left", "a", " ", "enter",
// "ctrl+c". The tcell and ebiten adapters translate their own key events
// into the same names before looking them up.
package keys

import (
	"strings"
	"unicode"

	"github.com/vovakirdan/loop-arcade/internal/core"
)

// Map binds key names to the actions they press. One key may press several
// actions so that, for example, F both fires and punches.
type Map struct {
	bind map[string][]core.Action
}

// Laned is implemented by games played on letter lanes.
type Laned interface {
	Lanes() []rune
}

// Versus is implemented by games that can seat a second local player.
type Versus interface {
	TwoPlayer() bool
}

func defaults() map[string][]core.Action {
	return map[string][]core.Action{
		"left":      {core.ActionLeft},
		"a":         {core.ActionLeft},
		"right":     {core.ActionRight},
		"d":         {core.ActionRight},
		"up":        {core.ActionUp},
		"w":         {core.ActionUp},
		"down":      {core.ActionDown},
		"s":         {core.ActionDown},
		" ":         {core.ActionJump},
		"f":         {core.ActionFire, core.ActionPunch},
		"x":         {core.ActionFire},
		"g":         {core.ActionPunch},
		"h":         {core.ActionKick},
		"j":         {core.ActionSpecial},
		"c":         {core.ActionBlock},
		"b":         {core.ActionBrake},
		"e":         {core.ActionConfirm},
		"enter":     {core.ActionConfirm},
		"backspace": {core.ActionBack},
		"p":         {core.ActionPause},
		"r":         {core.ActionRestart},
		"q":         {core.ActionQuit},
		"esc":       {core.ActionQuit},
		"ctrl+c":    {core.ActionQuit},
	}
}

// HoldWindow is how many frames a key press stays held on platforms that
// send no key-up. A key counts as held until auto-repeat stops refreshing
// it, roughly 150ms.
func HoldWindow(tickRate int) int {
	return max(tickRate*150/1000, 1)
}

// Default returns the single-player bindings.
func Default() *Map {
	return &Map{bind: defaults()}
}

// For returns the bindings suited to g: a second player on the arrow keys
// for local versus games, and lane letters for laned games.
func For(g any) *Map {
	m := Default()
	if v, ok := g.(Versus); ok && v.TwoPlayer() {
		m.twoPlayer()
	}
	if l, ok := g.(Laned); ok {
		m.lanes(l.Lanes())
	}
	return m
}

// twoPlayer moves the arrows to player two. Player one keeps WASD.
func (m *Map) twoPlayer() {
	m.Bind("left", core.ActionP2Left)
	m.Bind("right", core.ActionP2Right)
	m.Bind("up", core.ActionP2Up)
	m.Bind("down", core.ActionP2Down)
	m.Bind(",", core.ActionP2Punch)
	m.Bind(".", core.ActionP2Kick)
	m.Bind("/", core.ActionP2Special)
	m.Bind("m", core.ActionP2Block)
}

// lanes binds each lane letter to its lane, overriding anything else on
// that key. Enter restarts and Tab pauses in case R or P became lanes.
func (m *Map) lanes(letters []rune) {
	for i, r := range letters {
		a := core.LaneAction(i)
		if a == core.ActionNone {
			break
		}
		m.Bind(string(unicode.ToLower(r)), a)
		m.Bind(string(unicode.ToUpper(r)), a)
	}
	m.Bind("enter", core.ActionConfirm, core.ActionRestart)
	m.Bind("tab", core.ActionPause)
}

// Bind replaces the actions bound to key. Binding nothing unbinds it.
func (m *Map) Bind(key string, actions ...core.Action) {
	if len(actions) == 0 {
		delete(m.bind, key)
		return
	}
	m.bind[key] = actions
}

// Actions returns what key presses. Unknown keys press nothing. Single
// upper-case letters fall back to their lower-case binding so Shift or
// Caps Lock does not disable a key.
func (m *Map) Actions(key string) []core.Action {
	if a, ok := m.bind[key]; ok {
		return a
	}
	if len(key) == 1 && strings.ToLower(key) != key {
		return m.bind[strings.ToLower(key)]
	}
	return nil
}

// Held folds a set of currently down keys into an action set, for
// platforms that poll key state.
func (m *Map) Held(down []string) core.ActionSet {
	var s core.ActionSet
	for _, k := range down {
		for _, a := range m.Actions(k) {
			s = s.With(a)
		}
	}
	return s
}

// Press presses every action key is bound to. It reports whether key was
// bound at all.
func (m *Map) Press(in *core.Sampler, key string) bool {
	actions := m.Actions(key)
	for _, a := range actions {
		in.Press(a)
	}
	return len(actions) > 0
}

// Release releases every action key is bound to.
func (m *Map) Release(in *core.Sampler, key string) {
	for _, a := range m.Actions(key) {
		in.Release(a)
	}
}
