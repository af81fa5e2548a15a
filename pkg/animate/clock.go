package animate

import "time"

// Clock converts host time into chart progress. It never starts goroutines
// or blocks: the host calls Progress on each tick of its own render loop and
// Restart whenever the chart's data changes. A restart always begins again
// from 0 against the new target; there is no cross-fade from the old one.
//
// The zero Clock is stopped at progress 0.
type Clock struct {
	duration time.Duration
	animated bool
	start    time.Time
	started  bool
}

// NewClock returns a clock for a chart animating over duration. When
// animated is false the clock reports progress 1 at all times.
func NewClock(duration time.Duration, animated bool) *Clock {
	return &Clock{duration: duration, animated: animated}
}

// Restart begins the animation again at now.
func (c *Clock) Restart(now time.Time) {
	c.start = now
	c.started = true
}

// Progress returns the chart progress in [0,1] at now.
func (c *Clock) Progress(now time.Time) float64 {
	if !c.animated || c.duration <= 0 {
		return 1
	}
	if !c.started {
		return 0
	}
	return clamp01(float64(now.Sub(c.start)) / float64(c.duration))
}

// Done reports whether the animation has settled at now.
func (c *Clock) Done(now time.Time) bool {
	return c.Progress(now) >= 1
}
