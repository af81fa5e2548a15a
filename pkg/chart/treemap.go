package chart

import (
	"github.com/matzehuels/chartgeom/pkg/colorscale"
	"github.com/matzehuels/chartgeom/pkg/format"
	"github.com/matzehuels/chartgeom/pkg/geom"
	"github.com/matzehuels/chartgeom/pkg/treemap"
)

const (
	tileGap   = 1.0
	tileInset = 4.0
)

// Treemap packs the top-level nodes into the plot with the squarified
// algorithm, in input order. Tiles fade in one after another and carry
// their label and value when there is room.
func Treemap(nodes []TreeNode, cfg Config) Layout {
	b := newBuilder(KindTreemap, cfg)
	if len(nodes) == 0 {
		return b.empty()
	}

	values := make([]float64, len(nodes))
	for i, n := range nodes {
		values[i] = n.Value
	}
	tiles := treemap.Squarify(values, b.plot)

	for i, n := range nodes {
		box := tiles[i].Inset(tileGap / 2)
		fill := colorscale.Pick(n.Color, i, b.cfg.ColorScale)
		enter := geom.Motion{Effect: geom.EffectFade, Index: i}
		b.data = append(b.data, geom.Rect{
			X: box.X, Y: box.Y, W: box.W, H: box.H,
			Fill: fill, CornerRadius: min(2, box.W/4, box.H/4), Opacity: 1,
			Role: geom.RoleTile, Enter: enter,
		})

		if box.H < labelSize+tileInset {
			continue
		}
		name := format.Truncate(n.Label, box.W-2*tileInset, labelSize)
		b.valueLabel(box.X+tileInset, box.Y+tileInset+labelSize, name, geom.AnchorStart, fill.Contrast(), enter)
		if box.H >= 2*(labelSize+tileInset) {
			value := format.Truncate(format.Abbreviate(nonNegative(n.Value)), box.W-2*tileInset, labelSize)
			b.valueLabel(box.X+tileInset, box.Y+2*(tileInset+labelSize), value, geom.AnchorStart, fill.Contrast(), enter)
		}
	}
	b.title()
	return b.layout()
}
