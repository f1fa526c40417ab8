package round

import "testing"

type phase int

const (
	aiming phase = iota
	firing
	landed
	over
)

type event int

const (
	fire event = iota
	land
	next
	finish
)

func cannonMachine() *Machine[phase, event] {
	return NewMachine[phase, event](aiming).
		Allow(aiming, fire, firing).
		Allow(firing, land, landed).
		Allow(landed, next, aiming).
		Allow(landed, finish, over)
}

func TestMachineTransitions(t *testing.T) {
	m := cannonMachine()

	steps := []struct {
		e      event
		ok     bool
		expect phase
	}{
		{land, false, aiming}, // cannot land before firing
		{fire, true, firing},
		{fire, false, firing}, // second shot while flying is ignored
		{land, true, landed},
		{next, true, aiming},
		{fire, true, firing},
		{land, true, landed},
		{finish, true, over},
		{fire, false, over},
	}
	for i, s := range steps {
		if got := m.Fire(s.e); got != s.ok {
			t.Errorf("step %d: Fire(%d) = %v, expected %v", i, s.e, got, s.ok)
		}
		if m.State() != s.expect {
			t.Errorf("step %d: State() = %d, expected %d", i, m.State(), s.expect)
		}
	}
}

func TestMachineOnEnterAndReset(t *testing.T) {
	m := cannonMachine()
	var entered []phase
	m.OnEnter = func(_, to phase, _ event) { entered = append(entered, to) }

	m.Fire(land)
	m.Fire(fire)
	m.Fire(land)
	if len(entered) != 2 || entered[0] != firing || entered[1] != landed {
		t.Errorf("OnEnter saw %v, expected [firing landed]", entered)
	}

	m.Reset()
	m.Reset()
	if !m.Is(aiming) || !m.Can(fire) {
		t.Error("Reset() should return to the initial state")
	}
	if len(entered) != 2 {
		t.Error("Reset() must not run OnEnter")
	}
}

func TestCountdownMonotonicFiresOnce(t *testing.T) {
	c := NewCountdown(0)
	c.Restart(90)

	prev := c.Remaining()
	fired := 0
	for i := 0; i < 200; i++ {
		if c.Tick() {
			fired++
			if c.Remaining() != 0 {
				t.Errorf("expired with %d remaining", c.Remaining())
			}
		}
		if c.Remaining() > prev {
			t.Fatalf("tick %d: remaining rose from %d to %d", i, prev, c.Remaining())
		}
		if c.Running() && c.Remaining() >= prev {
			t.Fatalf("tick %d: running countdown did not decrease", i)
		}
		prev = c.Remaining()
	}
	if fired != 1 {
		t.Errorf("countdown fired %d times, expected 1", fired)
	}
}

func TestCountdownStopPreventsFiring(t *testing.T) {
	c := NewCountdown(3)
	c.Start()
	c.Tick()
	c.Stop()
	for i := 0; i < 10; i++ {
		if c.Tick() {
			t.Fatal("stopped countdown fired")
		}
	}
	if c.Remaining() != 2 {
		t.Errorf("Remaining() = %d, expected 2", c.Remaining())
	}
}

func TestCountdownSeconds(t *testing.T) {
	c := NewCountdown(0)
	c.Restart(61)
	if got := c.Seconds(60); got != 2 {
		t.Errorf("Seconds() = %d, expected 2", got)
	}
	c.Tick()
	if got := c.Seconds(60); got != 1 {
		t.Errorf("Seconds() = %d, expected 1", got)
	}
}
