// Package curve builds smoothed line and area paths from ordered points.
//
// Smoothing joins each consecutive pair with a quadratic curve whose control
// point sits at the pair's horizontal midpoint and at the previous point's
// height. The curve passes through every input point and never overshoots,
// at the cost of a tangent break at each point. The control point is
// asymmetric, so reversing the points changes the drawn curve.
package curve

import "github.com/matzehuels/chartgeom/pkg/geom"

// Smooth returns the smoothed path through points. No points yields no
// commands; a single point yields a lone move-to.
func Smooth(points []geom.Point) geom.Commands {
	if len(points) == 0 {
		return nil
	}
	cmds := make(geom.Commands, 0, len(points))
	cmds = append(cmds, geom.MoveTo(points[0].X, points[0].Y))
	return appendSmooth(cmds, points)
}

// appendSmooth appends the quadratic segments from points[0] onward,
// assuming the pen is already at points[0].
func appendSmooth(cmds geom.Commands, points []geom.Point) geom.Commands {
	for i := 1; i < len(points); i++ {
		prev, p := points[i-1], points[i]
		cmds = append(cmds, geom.QuadTo((prev.X+p.X)/2, prev.Y, p.X, p.Y))
	}
	return cmds
}

// BuildPath is [Smooth] rendered as SVG path data.
func BuildPath(points []geom.Point) string {
	return Smooth(points).String()
}

// Area returns the smoothed curve closed down to baselineY: a straight line
// to the last point's x on the baseline, across to the first point's x, and
// back to the start. No points yields no commands; one point yields a lone
// move-to, matching [Smooth].
func Area(points []geom.Point, baselineY float64) geom.Commands {
	if len(points) < 2 {
		return Smooth(points)
	}
	cmds := Smooth(points)
	first, last := points[0], points[len(points)-1]
	return append(cmds,
		geom.LineTo(last.X, baselineY),
		geom.LineTo(first.X, baselineY),
		geom.ClosePath(),
	)
}

// BuildAreaPath is [Area] rendered as SVG path data.
func BuildAreaPath(points []geom.Point, baselineY float64) string {
	return Area(points, baselineY).String()
}

// Band returns the closed region between two curves, as drawn for one layer
// of a stacked area chart. The top curve runs forward, a straight line drops
// to the end of bottom, and bottom is traversed in reverse with the same
// smoothing rule. When bottom is empty Band degrades to the top curve alone.
func Band(top, bottom []geom.Point) geom.Commands {
	if len(top) == 0 {
		return nil
	}
	cmds := Smooth(top)
	if len(bottom) == 0 {
		return cmds
	}
	rev := make([]geom.Point, len(bottom))
	for i, p := range bottom {
		rev[len(bottom)-1-i] = p
	}
	cmds = append(cmds, geom.LineTo(rev[0].X, rev[0].Y))
	cmds = appendSmooth(cmds, rev)
	return append(cmds, geom.ClosePath())
}
