package chart

import (
	"math"

	"github.com/matzehuels/chartgeom/pkg/colorscale"
	"github.com/matzehuels/chartgeom/pkg/curve"
	"github.com/matzehuels/chartgeom/pkg/format"
	"github.com/matzehuels/chartgeom/pkg/geom"
	"github.com/matzehuels/chartgeom/pkg/scale"
	"github.com/matzehuels/chartgeom/pkg/stack"
)

const areaOpacity = 0.85

// stacked is the shared preparation of both stacked kinds. cum and hi are
// in units of unit; unit is 1 unless a running total would overflow.
type stacked struct {
	series int
	cum    [][]float64
	hi     float64
	unit   float64
	colors []geom.Color
}

// prepareStack clamps values at 0, accumulates them and pads the series
// colors. The series count is the longest values slice. When some point's
// total exceeds the float64 range, every value is divided by the largest
// one first so the stacked proportions survive.
func prepareStack(points []StackedPoint, cfg Config) stacked {
	values := make([][]float64, len(points))
	largest := 0.0
	overflow := false
	for i, pt := range points {
		values[i] = make([]float64, len(pt.Values))
		total := 0.0
		for j, v := range pt.Values {
			values[i][j] = nonNegative(v)
			largest = math.Max(largest, values[i][j])
			total += values[i][j]
		}
		overflow = overflow || math.IsInf(total, 1)
	}
	unit := 1.0
	if overflow {
		unit = largest
		for _, row := range values {
			for j := range row {
				row[j] /= unit
			}
		}
	}
	series := stack.SeriesCount(values)
	cum := stack.Accumulate(values, series)
	return stacked{
		series: series,
		cum:    cum,
		hi:     stack.Max(cum),
		unit:   unit,
		colors: colorscale.Pad(cfg.ColorScale, series, colorscale.DefaultPalette),
	}
}

// value converts a stacked coordinate back to data units, saturating at
// the largest float64.
func (st stacked) value(v float64) float64 {
	return math.Min(v*st.unit, math.MaxFloat64)
}

// StackedBar lays out one bar per point, split into a segment per series.
// Segment j of a point spans the running totals of series j-1 and j.
func StackedBar(points []StackedPoint, cfg Config) Layout {
	b := newBuilder(KindStackedBar, cfg)
	n := len(points)
	st := prepareStack(points, b.cfg)
	if n == 0 || st.series == 0 {
		return b.empty()
	}

	horizontal := b.cfg.Orientation == Horizontal
	p := b.plot
	b.scaledGrid(0, st.hi, st.value, horizontal)

	for i, pt := range points {
		cum := st.cum[i]
		total := format.Abbreviate(st.value(cum[len(cum)-1]))

		if horizontal {
			start, width := scale.Band(i, n, p.Y, p.Bottom(), scale.DefaultBandPadding)
			enter := geom.Motion{Effect: geom.EffectGrowX, Index: i, Baseline: p.X}
			for j := range st.series {
				lo, hi := stack.Segment(cum, j)
				x0 := scale.Linear(lo, 0, st.hi, p.X, p.Right())
				x1 := scale.Linear(hi, 0, st.hi, p.X, p.Right())
				b.data = append(b.data, geom.Rect{
					X: x0, Y: start, W: x1 - x0, H: width,
					Fill: st.colors[j], Opacity: 1,
					Role: geom.RoleSegment, Enter: enter,
				})
			}
			end := scale.Linear(cum[len(cum)-1], 0, st.hi, p.X, p.Right())
			b.valueLabel(end+labelGap, start+width/2+labelSize/3, total, geom.AnchorStart, valueColor, enter)
			b.categoryLabel(i, n, start+width/2, pt.Label, true)
			continue
		}

		start, width := scale.Band(i, n, p.X, p.Right(), scale.DefaultBandPadding)
		enter := geom.Motion{Effect: geom.EffectGrowY, Index: i, Baseline: p.Bottom()}
		for j := range st.series {
			lo, hi := stack.Segment(cum, j)
			y0 := scale.Linear(lo, 0, st.hi, p.Bottom(), p.Y)
			y1 := scale.Linear(hi, 0, st.hi, p.Bottom(), p.Y)
			b.data = append(b.data, geom.Rect{
				X: start, Y: y1, W: width, H: y0 - y1,
				Fill: st.colors[j], Opacity: 1,
				Role: geom.RoleSegment, Enter: enter,
			})
		}
		top := scale.Linear(cum[len(cum)-1], 0, st.hi, p.Bottom(), p.Y)
		b.valueLabel(start+width/2, top-labelGap, total, geom.AnchorMiddle, valueColor, enter)
		b.categoryLabel(i, n, start+width/2, pt.Label, false)
	}
	b.legend(st.colors)
	b.title()
	return b.layout()
}

// StackedArea lays out one filled band per series, stacked bottom to top.
// Points are spaced evenly along x in slice order; each band is bounded by
// the smoothed running totals of its series and the one below it, and the
// first band closes on the baseline.
func StackedArea(points []StackedPoint, cfg Config) Layout {
	b := newBuilder(KindStackedArea, cfg)
	n := len(points)
	st := prepareStack(points, b.cfg)
	if n == 0 || st.series == 0 {
		return b.empty()
	}

	p := b.plot
	b.scaledGrid(0, st.hi, st.value, false)

	xs := make([]float64, n)
	for i := range xs {
		xs[i] = scale.Linear(float64(i), 0, float64(n-1), p.X, p.Right())
	}
	level := func(j int) []geom.Point {
		pts := make([]geom.Point, n)
		for i := range pts {
			pts[i] = geom.Point{X: xs[i], Y: scale.Linear(st.cum[i][j], 0, st.hi, p.Bottom(), p.Y)}
		}
		return pts
	}

	var below []geom.Point
	for j := range st.series {
		top := level(j)
		var cmds geom.Commands
		if j == 0 {
			cmds = curve.Area(top, p.Bottom())
		} else {
			cmds = curve.Band(top, below)
		}
		b.data = append(b.data, geom.Path{
			Commands:    cmds,
			Fill:        geom.ColorPtr(st.colors[j]),
			Stroke:      geom.ColorPtr(st.colors[j]),
			StrokeWidth: 1,
			Opacity:     areaOpacity,
			Role:        geom.RoleArea,
			Enter:       geom.Motion{Effect: geom.EffectGrowY, Index: j, Baseline: p.Bottom()},
		})
		below = top
	}
	for i, pt := range points {
		b.categoryLabel(i, n, xs[i], pt.Label, false)
	}
	b.legend(st.colors)
	b.title()
	return b.layout()
}
