// Package scale maps data values and categories to pixel coordinates.
//
// Scales are not stored objects: every function here is a pure mapping
// computed from a domain and a range that the caller derives fresh on each
// layout pass. Degenerate inputs never divide by zero. A flat domain maps
// every value to the start of the range, which renders as a flat line or a
// bar sitting on the scale's origin.
package scale

import "math"

// DefaultBandPadding is the fraction of each band reserved as gutter.
const DefaultBandPadding = 0.2

// Linear maps value from [domainMin, domainMax] onto [rangeMin, rangeMax].
// Ranges may be inverted (rangeMin > rangeMax), which is how vertical value
// axes put larger values higher on screen. Values outside the domain
// extrapolate. When domainMax == domainMin the result is rangeMin.
// Finite domains wider than the float64 range are mapped without overflow.
func Linear(value, domainMin, domainMax, rangeMin, rangeMax float64) float64 {
	span := domainMax - domainMin
	if span == 0 {
		return rangeMin
	}
	if math.IsInf(span, 0) {
		return rangeMin + (value/2-domainMin/2)/(domainMax/2-domainMin/2)*(rangeMax-rangeMin)
	}
	return rangeMin + (value-domainMin)/span*(rangeMax-rangeMin)
}

// Invert is the inverse of [Linear]. A zero-width range returns domainMin.
func Invert(pixel, domainMin, domainMax, rangeMin, rangeMax float64) float64 {
	span := rangeMax - rangeMin
	if span == 0 {
		return domainMin
	}
	return domainMin + (pixel-rangeMin)/span*(domainMax-domainMin)
}

// Band returns the start and width of item index among count equal bands
// spanning [rangeMin, rangeMax]. Each band keeps paddingRatio of its step
// as gutter, split evenly on both sides of the item. paddingRatio is clamped
// to [0,1]. count <= 0 yields a zero-width band at rangeMin.
func Band(index, count int, rangeMin, rangeMax, paddingRatio float64) (start, width float64) {
	if count <= 0 {
		return rangeMin, 0
	}
	paddingRatio = math.Min(1, math.Max(0, paddingRatio))
	step := (rangeMax - rangeMin) / float64(count)
	width = step * (1 - paddingRatio)
	start = rangeMin + float64(index)*step + step*paddingRatio/2
	return start, width
}

// Step returns the distance between consecutive band starts.
func Step(count int, rangeMin, rangeMax float64) float64 {
	if count <= 0 {
		return 0
	}
	return (rangeMax - rangeMin) / float64(count)
}

// Extent returns the minimum and maximum finite values. ok is false when
// no finite value exists.
func Extent(values []float64) (lo, hi float64, ok bool) {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi, ok
}

// Ticks returns n+1 evenly spaced values from lo to hi inclusive. A flat
// domain yields the single value lo; n <= 0 yields nil.
func Ticks(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if lo == hi {
		return []float64{lo}
	}
	ticks := make([]float64, n+1)
	for i := range ticks {
		f := float64(i) / float64(n)
		if math.IsInf(hi-lo, 0) {
			ticks[i] = lo*(1-f) + hi*f
			continue
		}
		ticks[i] = lo + (hi-lo)*f
	}
	ticks[n] = hi
	return ticks
}
