// Package round provides the small state machines that drive rounds and
// games: a transition table with silent no-op guards, and a countdown
// timer that fires exactly once.
package round

// Machine is a finite-state machine over states S and events E.
// Exactly one state is active at a time. Events with no listed transition
// from the current state are ignored.
type Machine[S comparable, E comparable] struct {
	initial S
	current S
	table   map[S]map[E]S

	// OnEnter runs after every successful transition.
	OnEnter func(from, to S, e E)
}

// NewMachine creates a machine in its initial state.
func NewMachine[S comparable, E comparable](initial S) *Machine[S, E] {
	return &Machine[S, E]{
		initial: initial,
		current: initial,
		table:   make(map[S]map[E]S),
	}
}

// Allow registers the transition from --e--> to.
func (m *Machine[S, E]) Allow(from S, e E, to S) *Machine[S, E] {
	row, ok := m.table[from]
	if !ok {
		row = make(map[E]S)
		m.table[from] = row
	}
	row[e] = to
	return m
}

// State returns the active state.
func (m *Machine[S, E]) State() S {
	return m.current
}

// Is reports whether s is the active state.
func (m *Machine[S, E]) Is(s S) bool {
	return m.current == s
}

// Can reports whether e would cause a transition now.
func (m *Machine[S, E]) Can(e E) bool {
	_, ok := m.table[m.current][e]
	return ok
}

// Fire applies e. It returns false, changing nothing, when e is not valid
// in the current state.
func (m *Machine[S, E]) Fire(e E) bool {
	to, ok := m.table[m.current][e]
	if !ok {
		return false
	}
	from := m.current
	m.current = to
	if m.OnEnter != nil {
		m.OnEnter(from, to, e)
	}
	return true
}

// Reset returns to the initial state without running OnEnter.
func (m *Machine[S, E]) Reset() {
	m.current = m.initial
}
