package sim

// Clock holds simulated time. It only moves forward while running.
type Clock struct {
	time    float64
	step    float64
	running bool
}

// NewClock creates a running clock at time zero. A non-positive step
// falls back to BaseTimeStep.
func NewClock(step float64) *Clock {
	if step <= 0 {
		step = BaseTimeStep
	}
	return &Clock{step: step, running: true}
}

// Tick advances time by step*speed and reports whether it moved.
// Paused clocks and non-positive speeds leave time unchanged.
func (c *Clock) Tick(speed float64) bool {
	if !c.running || speed <= 0 {
		return false
	}
	c.time += c.step * speed
	return true
}

// Pause stops time without resetting it
func (c *Clock) Pause() { c.running = false }

// Resume restarts time from where it stopped
func (c *Clock) Resume() { c.running = true }

// Toggle flips between running and paused, returns true if now running
func (c *Clock) Toggle() bool {
	c.running = !c.running
	return c.running
}

// Reset zeroes time; the running state is kept
func (c *Clock) Reset() { c.time = 0 }

func (c *Clock) Time() float64 { return c.time }

func (c *Clock) Running() bool { return c.running }

func (c *Clock) Step() float64 { return c.step }
