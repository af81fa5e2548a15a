// Package animate samples chart geometry along a staggered entrance
// animation.
//
// A chart is animated by a single progress value in [0,1] owned by the host.
// Every shape carries a [geom.Motion] naming its entrance effect and stagger
// slot; [Frame] turns the target shapes plus the current progress into the
// shapes to draw. Nothing here keeps per-shape state, so sampling the same
// progress twice gives the same frame.
package animate

import (
	"math"
	"time"
)

// Sample returns the displayed value of an item at the given progress:
//
//	target * clamp01((progress*total - index*stagger) / (total - index*stagger))
//
// progress is clamped to [0,1]. An item whose delay leaves no time to animate
// shows 0 until progress reaches 1. Sample(1, ...) always returns target.
func Sample(progress float64, index int, target float64, stagger, total time.Duration) float64 {
	return target * Local(progress, index, stagger, total)
}

// Local returns the fraction of its own animation an item has completed.
func Local(progress float64, index int, stagger, total time.Duration) float64 {
	p := clamp01(progress)
	if p == 1 {
		return 1
	}
	delay := float64(max(index, 0)) * float64(stagger)
	remaining := float64(total) - delay
	if remaining <= 0 {
		return 0
	}
	return clamp01((p*float64(total) - delay) / remaining)
}

// Timing configures how a chart's shapes enter.
type Timing struct {
	// Duration is the time progress takes to go from 0 to 1.
	Duration time.Duration
	// Stagger delays each shape's start by its Motion index times Stagger.
	Stagger time.Duration
	Easing  Easing
}

// Fraction returns the eased local fraction for stagger slot index.
func (t Timing) Fraction(progress float64, index int) float64 {
	return t.Easing.Apply(Local(progress, index, t.Stagger, t.Duration))
}

func clamp01(t float64) float64 {
	if math.IsNaN(t) || t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
