package chart

import (
	"slices"

	"github.com/matzehuels/chartgeom/pkg/colorscale"
	"github.com/matzehuels/chartgeom/pkg/format"
	"github.com/matzehuels/chartgeom/pkg/geom"
	"github.com/matzehuels/chartgeom/pkg/scale"
)

const cellGap = 1.0

// Heatmap lays out a dense grid with one row per distinct row key and one
// column per distinct column key, both sorted. Cell color interpolates the
// color scale between the smallest and largest values drawn; cells missing
// from the dataset have value 0 and count toward that range. When a cell appears twice the last
// one wins. Cells fade in one after another in row-major order.
func Heatmap(cells []HeatCell, cfg Config) Layout {
	b := newBuilder(KindHeatmap, cfg)
	if len(cells) == 0 {
		return b.empty()
	}

	rows := distinctKeys(cells, func(c HeatCell) Key { return c.Row })
	cols := distinctKeys(cells, func(c HeatCell) Key { return c.Col })

	type pos struct{ r, c int }
	grid := make(map[pos]HeatCell, len(cells))
	values := make([]float64, 0, len(cells))
	for _, c := range cells {
		r, _ := slices.BinarySearchFunc(rows, c.Row, Compare)
		k, _ := slices.BinarySearchFunc(cols, c.Col, Compare)
		c.Value = finite(c.Value)
		grid[pos{r, k}] = c
		values = append(values, c.Value)
	}
	nr, nc := len(rows), len(cols)
	if len(grid) < nr*nc {
		values = append(values, 0)
	}
	lo, hi, _ := scale.Extent(values)

	stops := b.cfg.ColorScale
	if len(stops) == 0 {
		stops = colorscale.DefaultStops
	}

	p := b.plot
	cw, ch := p.W/float64(nc), p.H/float64(nr)

	for r := range nr {
		y := p.Y + float64(r)*ch
		b.categoryLabelAt(p.X-labelGap, y+ch/2+labelSize/3, rows[r].String(), geom.AnchorEnd, r, nr, p.H)
		for c := range nc {
			x := p.X + float64(c)*cw
			cell, ok := grid[pos{r, c}]
			if !ok {
				cell = HeatCell{Row: rows[r], Col: cols[c]}
			}
			fill := colorscale.Interpolate(stops, colorscale.Normalize(cell.Value, lo, hi))
			box := geom.Bounds{X: x, Y: y, W: cw, H: ch}.Inset(cellGap / 2)
			enter := geom.Motion{Effect: geom.EffectFade, Index: r*nc + c}
			b.data = append(b.data, geom.Rect{
				X: box.X, Y: box.Y, W: box.W, H: box.H,
				Fill: fill, CornerRadius: min(2, box.W/4, box.H/4), Opacity: 1,
				Role: geom.RoleCell, Enter: enter,
			})

			text := cell.Label
			if text == "" && ok {
				text = format.Abbreviate(cell.Value)
			}
			if format.TextWidth(text, labelSize) <= box.W-2*labelGap && box.H >= labelSize+2 {
				b.valueLabel(box.CenterX(), box.CenterY()+labelSize/3, text, geom.AnchorMiddle, fill.Contrast(), enter)
			}
		}
	}
	for c := range nc {
		x := p.X + (float64(c)+0.5)*cw
		b.categoryLabelAt(x, p.Y-labelGap, cols[c].String(), geom.AnchorMiddle, c, nc, p.W)
	}
	b.title()
	return b.layout()
}

// distinctKeys returns the sorted distinct keys selected from cells.
func distinctKeys(cells []HeatCell, key func(HeatCell) Key) []Key {
	keys := make([]Key, 0, len(cells))
	for _, c := range cells {
		keys = append(keys, key(c))
	}
	slices.SortFunc(keys, Compare)
	return slices.CompactFunc(keys, func(a, b Key) bool { return Compare(a, b) == 0 })
}
