package chart

import (
	"github.com/matzehuels/chartgeom/pkg/animate"
	"github.com/matzehuels/chartgeom/pkg/geom"
)

// Layout is the target geometry of one chart: what is drawn once the
// entrance animation has settled.
type Layout struct {
	Kind   Kind
	Width  float64
	Height float64
	// Plot is the area inside the padding that holds the data shapes.
	Plot   geom.Bounds
	Shapes []geom.Shape

	Animated bool
	Timing   animate.Timing
}

// Frame returns the shapes to draw at progress in [0,1]. A layout that is
// not animated always returns its target shapes.
func (l Layout) Frame(progress float64) []geom.Shape {
	if !l.Animated {
		progress = 1
	}
	return animate.Frame(l.Shapes, progress, l.Timing)
}

// Clock returns a host clock matching the layout's animation settings.
func (l Layout) Clock() *animate.Clock {
	return animate.NewClock(l.Timing.Duration, l.Animated)
}

// Empty reports whether the layout has nothing to draw.
func (l Layout) Empty() bool { return len(l.Shapes) == 0 }

// Count returns how many shapes have the given role.
func (l Layout) Count(role geom.Role) int {
	n := 0
	for _, s := range l.Shapes {
		if RoleOf(s) == role {
			n++
		}
	}
	return n
}

// RoleOf returns the role of any shape.
func RoleOf(s geom.Shape) geom.Role {
	switch v := s.(type) {
	case geom.Rect:
		return v.Role
	case geom.Path:
		return v.Role
	case geom.Label:
		return v.Role
	}
	return ""
}

// builder accumulates shapes in paint order. Grid, data and overlay
// (labels, legend, title) are collected separately and concatenated.
type builder struct {
	kind    Kind
	cfg     Config
	plot    geom.Bounds
	grid    []geom.Shape
	data    []geom.Shape
	overlay []geom.Shape
}

func newBuilder(kind Kind, cfg Config) *builder {
	cfg = cfg.normalize(kind)
	return &builder{kind: kind, cfg: cfg, plot: cfg.plot()}
}

// empty returns a layout with no shapes but the chart's dimensions.
func (b *builder) empty() Layout {
	return Layout{
		Kind:     b.kind,
		Width:    b.cfg.Width,
		Height:   b.cfg.Height,
		Plot:     b.plot,
		Animated: b.cfg.Animated,
		Timing:   b.cfg.timing(),
	}
}

func (b *builder) layout() Layout {
	l := b.empty()
	n := len(b.grid) + len(b.data) + len(b.overlay)
	if b.cfg.Background != nil {
		n++
	}
	l.Shapes = make([]geom.Shape, 0, n)
	if b.cfg.Background != nil {
		l.Shapes = append(l.Shapes, geom.Rect{
			W: b.cfg.Width, H: b.cfg.Height,
			Fill: *b.cfg.Background, Opacity: 1,
			Role: geom.RoleBackground,
		})
	}
	l.Shapes = append(l.Shapes, b.grid...)
	l.Shapes = append(l.Shapes, b.data...)
	l.Shapes = append(l.Shapes, b.overlay...)
	return l
}
