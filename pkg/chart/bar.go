package chart

import (
	"slices"

	"github.com/matzehuels/chartgeom/pkg/colorscale"
	"github.com/matzehuels/chartgeom/pkg/format"
	"github.com/matzehuels/chartgeom/pkg/geom"
	"github.com/matzehuels/chartgeom/pkg/scale"
)

// maxBarRadius caps the rounding of bar corners.
const maxBarRadius = 4.0

// Bar lays out one bar per point on a value axis from 0 to the largest
// value. Bars grow out of the axis when animated.
func Bar(points []CategoricalPoint, cfg Config) Layout {
	b := newBuilder(KindBar, cfg)
	n := len(points)
	if n == 0 {
		return b.empty()
	}

	values := make([]float64, n)
	for i, p := range points {
		values[i] = nonNegative(p.Value)
	}
	hi := slices.Max(values)
	horizontal := b.cfg.Orientation == Horizontal
	p := b.plot

	b.valueGrid(0, hi, horizontal)
	for i, pt := range points {
		v := values[i]
		fill := colorscale.Pick(pt.Color, i, b.cfg.ColorScale)
		label := format.Abbreviate(v)

		if horizontal {
			start, width := scale.Band(i, n, p.Y, p.Bottom(), scale.DefaultBandPadding)
			w := scale.Linear(v, 0, hi, p.X, p.Right()) - p.X
			enter := geom.Motion{Effect: geom.EffectGrowX, Index: i, Baseline: p.X}
			b.data = append(b.data, geom.Rect{
				X: p.X, Y: start, W: w, H: width,
				Fill: fill, CornerRadius: barRadius(width), Opacity: 1,
				Role: geom.RoleBar, Enter: enter,
			})
			b.valueLabel(p.X+w+labelGap, start+width/2+labelSize/3, label, geom.AnchorStart, valueColor, enter)
			b.categoryLabel(i, n, start+width/2, pt.Label, true)
			continue
		}

		start, width := scale.Band(i, n, p.X, p.Right(), scale.DefaultBandPadding)
		y := scale.Linear(v, 0, hi, p.Bottom(), p.Y)
		enter := geom.Motion{Effect: geom.EffectGrowY, Index: i, Baseline: p.Bottom()}
		b.data = append(b.data, geom.Rect{
			X: start, Y: y, W: width, H: p.Bottom() - y,
			Fill: fill, CornerRadius: barRadius(width), Opacity: 1,
			Role: geom.RoleBar, Enter: enter,
		})
		b.valueLabel(start+width/2, y-labelGap, label, geom.AnchorMiddle, valueColor, enter)
		b.categoryLabel(i, n, start+width/2, pt.Label, false)
	}
	b.title()
	return b.layout()
}

func barRadius(thickness float64) float64 {
	return min(maxBarRadius, thickness/4)
}
