package chart

import (
	"math"

	"github.com/matzehuels/chartgeom/pkg/format"
	"github.com/matzehuels/chartgeom/pkg/geom"
	"github.com/matzehuels/chartgeom/pkg/scale"
)

var (
	gridColor  = geom.MustParseColor("#e0e0e0")
	axisColor  = geom.MustParseColor("#666666")
	valueColor = geom.MustParseColor("#333333")
)

const (
	labelSize  = 10.0
	titleSize  = 12.0
	gridTicks  = 4
	labelGap   = 4.0
	swatchSize = 8.0
	// minLabelSpacing is the narrowest band, in pixels, that still gets a
	// category label of its own.
	minLabelSpacing = 28.0
)

// valueGrid draws grid lines for the value domain [lo,hi], horizontal lines
// for vertical charts and vertical lines for horizontal ones, with the tick
// values as axis labels.
func (b *builder) valueGrid(lo, hi float64, horizontal bool) {
	b.scaledGrid(lo, hi, nil, horizontal)
}

// scaledGrid is valueGrid for an axis whose coordinates are not data units;
// label converts a tick back before it is formatted. A nil label keeps the
// tick as is.
func (b *builder) scaledGrid(lo, hi float64, label func(float64) float64, horizontal bool) {
	if !b.cfg.ShowGrid {
		return
	}
	p := b.plot
	for _, v := range scale.Ticks(lo, hi, gridTicks) {
		text := v
		if label != nil {
			text = label(v)
		}
		if horizontal {
			x := scale.Linear(v, lo, hi, p.X, p.Right())
			b.grid = append(b.grid, gridLine(x, p.Y, x, p.Bottom()))
			b.axisLabel(x, p.Bottom()+labelSize+2, format.Abbreviate(text), geom.AnchorMiddle)
			continue
		}
		y := scale.Linear(v, lo, hi, p.Bottom(), p.Y)
		b.grid = append(b.grid, gridLine(p.X, y, p.Right(), y))
		b.axisLabel(p.X-labelGap, y+labelSize/3, format.Abbreviate(text), geom.AnchorEnd)
	}
}

func gridLine(x0, y0, x1, y1 float64) geom.Path {
	return geom.Path{
		Commands:    geom.Commands{geom.MoveTo(x0, y0), geom.LineTo(x1, y1)},
		Stroke:      geom.ColorPtr(gridColor),
		StrokeWidth: 1,
		Opacity:     1,
		Role:        geom.RoleGrid,
	}
}

// axisLabel adds a static label when labels are enabled.
func (b *builder) axisLabel(x, y float64, text string, anchor geom.Anchor) {
	if !b.cfg.ShowLabels || text == "" {
		return
	}
	b.overlay = append(b.overlay, geom.Label{
		X: x, Y: y, Text: text, Anchor: anchor,
		Size: labelSize, Color: axisColor, Opacity: 1,
		Role: geom.RoleAxisLabel,
	})
}

// categoryLabel labels band i of n along the category axis, skipping bands
// when they are too narrow to label individually.
func (b *builder) categoryLabel(i, n int, center float64, text string, horizontal bool) {
	if horizontal {
		b.categoryLabelAt(b.plot.X-labelGap, center+labelSize/3, text, geom.AnchorEnd, i, n, b.plot.H)
		return
	}
	b.categoryLabelAt(center, b.plot.Bottom()+labelSize+2, text, geom.AnchorMiddle, i, n, b.plot.W)
}

// categoryLabelAt places the label of item i of n spread over extent.
func (b *builder) categoryLabelAt(x, y float64, text string, anchor geom.Anchor, i, n int, extent float64) {
	if i%labelEvery(n, extent) != 0 {
		return
	}
	b.axisLabel(x, y, text, anchor)
}

// labelEvery returns the stride between labelled categories.
func labelEvery(n int, extent float64) int {
	if n <= 0 || extent <= 0 {
		return 1
	}
	fit := int(extent / minLabelSpacing)
	if fit < 1 {
		fit = 1
	}
	return max(1, int(math.Ceil(float64(n)/float64(fit))))
}

// valueLabel adds a data label that enters with the shape it annotates.
func (b *builder) valueLabel(x, y float64, text string, anchor geom.Anchor, color geom.Color, enter geom.Motion) {
	if !b.cfg.ShowLabels || text == "" {
		return
	}
	b.overlay = append(b.overlay, geom.Label{
		X: x, Y: y, Text: text, Anchor: anchor,
		Size: labelSize, Color: color, Opacity: 1,
		Role: geom.RoleValueLabel, Enter: enter,
	})
}

// legend lays out one swatch and name per series, right-aligned in the
// padding above the plot.
func (b *builder) legend(colors []geom.Color) {
	names := b.cfg.SeriesLabels
	if len(names) == 0 {
		return
	}
	n := min(len(names), len(colors))
	y := b.cfg.Padding / 2
	x := b.plot.Right()
	for i := n - 1; i >= 0; i-- {
		x -= format.TextWidth(names[i], labelSize)
		b.overlay = append(b.overlay, geom.Label{
			X: x, Y: y + labelSize/3, Text: names[i], Anchor: geom.AnchorStart,
			Size: labelSize, Color: axisColor, Opacity: 1,
			Role: geom.RoleLegend,
		})
		x -= swatchSize + labelGap
		b.overlay = append(b.overlay, geom.Rect{
			X: x, Y: y - swatchSize/2, W: swatchSize, H: swatchSize,
			Fill: colors[i], CornerRadius: 2, Opacity: 1,
			Role: geom.RoleLegend,
		})
		x -= 2 * labelGap
	}
}

// title adds the chart title at the top left.
func (b *builder) title() {
	if b.cfg.Title == "" {
		return
	}
	b.overlay = append(b.overlay, geom.Label{
		X: b.plot.X, Y: b.cfg.Padding/2 + titleSize/3, Text: b.cfg.Title,
		Anchor: geom.AnchorStart, Size: titleSize, Color: valueColor, Opacity: 1,
		Role: geom.RoleTitle,
	})
}
