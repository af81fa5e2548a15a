package chart

import (
	"github.com/matzehuels/chartgeom/pkg/colorscale"
	"github.com/matzehuels/chartgeom/pkg/curve"
	"github.com/matzehuels/chartgeom/pkg/geom"
	"github.com/matzehuels/chartgeom/pkg/scale"
)

const (
	lineWidth    = 2.0
	markerRadius = 3.0
)

// Line lays out a smoothed line through the points, spaced evenly along x in
// slice order, on a y axis spanning the smallest to the largest value. A
// marker sits on every point. Non-finite y values count as 0.
func Line(points []SeriesPoint, cfg Config) Layout {
	b := newBuilder(KindLine, cfg)
	n := len(points)
	if n == 0 {
		return b.empty()
	}

	ys := make([]float64, n)
	for i, pt := range points {
		ys[i] = finite(pt.Y)
	}
	lo, hi, _ := scale.Extent(ys)
	p := b.plot
	color := colorscale.Pick(nil, 0, b.cfg.ColorScale)

	b.valueGrid(lo, hi, false)

	pos := make([]geom.Point, n)
	for i, y := range ys {
		pos[i] = geom.Point{
			X: scale.Linear(float64(i), 0, float64(n-1), p.X, p.Right()),
			Y: scale.Linear(y, lo, hi, p.Bottom(), p.Y),
		}
	}

	b.data = append(b.data, geom.Path{
		Commands:    curve.Smooth(pos),
		Stroke:      geom.ColorPtr(color),
		StrokeWidth: lineWidth,
		Opacity:     1,
		Role:        geom.RoleLine,
		Enter:       geom.Motion{Effect: geom.EffectGrowY, Baseline: p.Bottom()},
	})
	for i, at := range pos {
		b.data = append(b.data, geom.Rect{
			X: at.X - markerRadius, Y: at.Y - markerRadius,
			W: 2 * markerRadius, H: 2 * markerRadius,
			Fill: color, CornerRadius: markerRadius, Opacity: 1,
			Role:  geom.RoleMarker,
			Enter: geom.Motion{Effect: geom.EffectScale, Index: i},
		})
		label := points[i].Label
		if label == "" {
			label = points[i].X.String()
		}
		b.categoryLabel(i, n, at.X, label, false)
	}
	b.title()
	return b.layout()
}
