// Package stack accumulates per-category series values into running sums for
// stacked bar and stacked area charts.
package stack

// Accumulate returns, for each point, the running sum of its first
// seriesCount values: cumulative[i] = values[0] + ... + values[i].
// Points with fewer values than seriesCount are padded with zeros, and values
// beyond seriesCount are ignored. The input is not modified.
func Accumulate(points [][]float64, seriesCount int) [][]float64 {
	if seriesCount < 0 {
		seriesCount = 0
	}
	out := make([][]float64, len(points))
	for p, values := range points {
		cum := make([]float64, seriesCount)
		sum := 0.0
		for i := range cum {
			if i < len(values) {
				sum += values[i]
			}
			cum[i] = sum
		}
		out[p] = cum
	}
	return out
}

// SeriesCount returns the length of the longest values slice.
func SeriesCount(points [][]float64) int {
	n := 0
	for _, v := range points {
		n = max(n, len(v))
	}
	return n
}

// Max returns the largest final cumulative value across all points, which
// is the domain maximum of a stacked axis. Empty input yields 0.
func Max(cumulative [][]float64) float64 {
	found := false
	best := 0.0
	for _, cum := range cumulative {
		if len(cum) == 0 {
			continue
		}
		top := cum[len(cum)-1]
		if !found || top > best {
			best, found = top, true
		}
	}
	return best
}

// Segment returns the data-space span of series i within one cumulative
// array. The first series starts at the baseline 0. An out of range index
// yields an empty span at the nearest valid boundary.
func Segment(cum []float64, i int) (lo, hi float64) {
	if len(cum) == 0 || i < 0 {
		return 0, 0
	}
	if i >= len(cum) {
		top := cum[len(cum)-1]
		return top, top
	}
	if i > 0 {
		lo = cum[i-1]
	}
	return lo, cum[i]
}
