package core

import "time"

// fpsUpdateInterval is how often the FPS average is recomputed.
const fpsUpdateInterval = time.Second

// Clock measures the wall-clock delta between frames and keeps a rolling FPS
// average. It does not regulate frame rate; the host loop owns pacing.
type Clock struct {
	lastTime time.Time

	frameCount     int
	sinceFPSUpdate time.Duration
	fps            float64
}

// NewClock creates a clock starting now.
func NewClock() *Clock {
	return &Clock{lastTime: time.Now()}
}

// Tick returns the seconds elapsed since the previous Tick. The first call
// returns the time since the clock was created. The result is clamped to be
// strictly positive so downstream dt consumers never divide by zero.
func (c *Clock) Tick() float64 {
	now := time.Now()
	elapsed := now.Sub(c.lastTime)
	c.lastTime = now

	if elapsed <= 0 {
		elapsed = time.Nanosecond
	}

	c.frameCount++
	c.sinceFPSUpdate += elapsed
	if c.sinceFPSUpdate >= fpsUpdateInterval {
		c.fps = float64(c.frameCount) / c.sinceFPSUpdate.Seconds()
		c.frameCount = 0
		c.sinceFPSUpdate = 0
	}

	return elapsed.Seconds()
}

// FPS returns the most recently computed frames-per-second average.
func (c *Clock) FPS() float64 { return c.fps }
