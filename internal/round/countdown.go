package round

// Countdown is a per-round timer measured in ticks. Remaining strictly
// decreases while running; the tick that reaches zero reports expiry, and
// no later tick does.
type Countdown struct {
	total     int
	remaining int
	running   bool
}

// NewCountdown creates a stopped countdown of n ticks.
func NewCountdown(n int) Countdown {
	return Countdown{total: n, remaining: n}
}

// Restart re-arms the countdown with n ticks and starts it.
func (c *Countdown) Restart(n int) {
	c.total = n
	c.remaining = n
	c.running = n > 0
}

// Start runs the countdown from its current value.
func (c *Countdown) Start() {
	c.running = c.remaining > 0
}

// Stop freezes the countdown; a stopped countdown never expires.
func (c *Countdown) Stop() {
	c.running = false
}

// Tick advances one tick and reports whether this tick expired the timer.
func (c *Countdown) Tick() bool {
	if !c.running {
		return false
	}
	c.remaining--
	if c.remaining > 0 {
		return false
	}
	c.remaining = 0
	c.running = false
	return true
}

// Remaining returns the ticks left.
func (c *Countdown) Remaining() int {
	return c.remaining
}

// Running reports whether the countdown is live.
func (c *Countdown) Running() bool {
	return c.running
}

// Seconds returns the remaining time rounded up to whole seconds.
func (c *Countdown) Seconds(tickRate int) int {
	if tickRate <= 0 {
		return 0
	}
	return (c.remaining + tickRate - 1) / tickRate
}
