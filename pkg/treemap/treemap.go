// Package treemap packs weighted items into a rectangle with the squarified
// treemap algorithm.
//
// Unlike the textbook algorithm, items are never sorted: rows are built in
// input order, so the same values in a different order give a different
// (equally valid) packing. A row grows while adding the next item strictly
// improves its worst aspect ratio.
package treemap

import (
	"math"

	"github.com/matzehuels/chartgeom/pkg/geom"
)

// Squarify returns one rectangle per value, in input order, tiling bounds
// exactly. Negative and non-finite values count as 0. When every value is
// 0 the region is split as if all values were equal.
func Squarify(values []float64, bounds geom.Bounds) []geom.Bounds {
	n := len(values)
	if n == 0 {
		return nil
	}
	areas := normalize(values, bounds.Area())
	out := make([]geom.Bounds, n)
	rem := bounds

	for i := 0; i < n; {
		// Lay the row along the shorter side: a column on the left when the
		// remaining region is wide, a row along the top when it is tall.
		column := rem.W >= rem.H
		side := rem.W
		if column {
			side = rem.H
		}

		end := i + 1
		best := worst(areas[i:end], side)
		for end < n {
			cand := worst(areas[i:end+1], side)
			if !(cand < best) {
				break
			}
			best = cand
			end++
		}

		row := areas[i:end]
		var thickness float64
		switch {
		case end == n && column:
			thickness = rem.W
		case end == n:
			thickness = rem.H
		case side > 0:
			thickness = sum(row) / side
		}
		place(out[i:end], row, rem, column, side, thickness)

		if column {
			rem.X += thickness
			rem.W = math.Max(0, rem.W-thickness)
		} else {
			rem.Y += thickness
			rem.H = math.Max(0, rem.H-thickness)
		}
		i = end
	}
	return out
}

// place lays out one committed row inside rem. Each item's length along the
// row is proportional to its area; the last item takes whatever length is
// left so the row spans side exactly.
func place(dst []geom.Bounds, row []float64, rem geom.Bounds, column bool, side, thickness float64) {
	total := sum(row)
	offset := 0.0
	for j, a := range row {
		length := side / float64(len(row))
		if total > 0 {
			length = side * a / total
		}
		if j == len(row)-1 {
			length = side - offset
		}
		if column {
			dst[j] = geom.Bounds{X: rem.X, Y: rem.Y + offset, W: thickness, H: length}
		} else {
			dst[j] = geom.Bounds{X: rem.X + offset, Y: rem.Y, W: length, H: thickness}
		}
		offset += length
	}
}

// worst returns the largest aspect ratio among the items of row when laid
// along a side of the given length. Zero-area items make a row infinitely
// bad, which keeps them in rows of their own.
func worst(row []float64, side float64) float64 {
	total := sum(row)
	if total <= 0 || side <= 0 {
		return math.Inf(1)
	}
	thickness := total / side
	ratio := 0.0
	for _, a := range row {
		if a <= 0 {
			return math.Inf(1)
		}
		length := a / thickness
		ratio = math.Max(ratio, math.Max(thickness/length, length/thickness))
	}
	return ratio
}

// normalize converts values into areas summing to area. Values are divided
// by the largest one before summing, so totals beyond the float64 range keep
// their proportions.
func normalize(values []float64, area float64) []float64 {
	clean := make([]float64, len(values))
	largest := 0.0
	for i, v := range values {
		if v > 0 && !math.IsInf(v, 1) {
			clean[i] = v
			largest = math.Max(largest, v)
		}
	}
	if largest == 0 {
		for i := range clean {
			clean[i] = 1
		}
		largest = 1
	}
	total := 0.0
	for i := range clean {
		clean[i] /= largest
		total += clean[i]
	}
	for i := range clean {
		clean[i] = clean[i] / total * area
	}
	return clean
}

func sum(xs []float64) float64 {
	s := 0.0
	for _, x := range xs {
		s += x
	}
	return s
}
