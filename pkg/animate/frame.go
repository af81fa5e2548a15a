package animate

import "github.com/matzehuels/chartgeom/pkg/geom"

// Frame returns the shapes to draw at progress. Shapes without an entrance
// effect pass through unchanged, and at progress 1 every shape equals its
// target. The input slice is not modified.
func Frame(shapes []geom.Shape, progress float64, timing Timing) []geom.Shape {
	out := make([]geom.Shape, len(shapes))
	for i, s := range shapes {
		m := s.Entrance()
		if m.Effect == geom.EffectNone {
			out[i] = s
			continue
		}
		out[i] = Apply(s, timing.Fraction(progress, m.Index))
	}
	return out
}

// Apply returns s as it appears when its entrance is fraction f complete.
func Apply(s geom.Shape, f float64) geom.Shape {
	if f >= 1 {
		return s
	}
	switch v := s.(type) {
	case geom.Rect:
		return applyRect(v, f)
	case geom.Path:
		return applyPath(v, f)
	case geom.Label:
		return applyLabel(v, f)
	}
	return s
}

func toward(base, v, f float64) float64 { return base + (v-base)*f }

func applyRect(r geom.Rect, f float64) geom.Rect {
	m := r.Enter
	switch m.Effect {
	case geom.EffectGrowY:
		r.Y = toward(m.Baseline, r.Y, f)
		r.H *= f
	case geom.EffectGrowX:
		r.X = toward(m.Baseline, r.X, f)
		r.W *= f
	case geom.EffectFade:
		r.Opacity *= f
	case geom.EffectScale:
		cx, cy := r.X+r.W/2, r.Y+r.H/2
		r.W *= f
		r.H *= f
		r.CornerRadius *= f
		r.X, r.Y = cx-r.W/2, cy-r.H/2
	}
	return r
}

func applyPath(p geom.Path, f float64) geom.Path {
	m := p.Enter
	switch m.Effect {
	case geom.EffectFade:
		p.Opacity *= f
		return p
	case geom.EffectGrowY, geom.EffectGrowX, geom.EffectScale:
	default:
		return p
	}

	cx, cy := center(p.Commands)
	cmds := make(geom.Commands, len(p.Commands))
	for i, c := range p.Commands {
		switch m.Effect {
		case geom.EffectGrowY:
			c.Y = toward(m.Baseline, c.Y, f)
			c.CY = toward(m.Baseline, c.CY, f)
		case geom.EffectGrowX:
			c.X = toward(m.Baseline, c.X, f)
			c.CX = toward(m.Baseline, c.CX, f)
		case geom.EffectScale:
			c.X, c.Y = toward(cx, c.X, f), toward(cy, c.Y, f)
			c.CX, c.CY = toward(cx, c.CX, f), toward(cy, c.CY, f)
		}
		if c.Op == geom.OpClose {
			c.X, c.Y, c.CX, c.CY = 0, 0, 0, 0
		}
		cmds[i] = c
	}
	p.Commands = cmds
	return p
}

func applyLabel(l geom.Label, f float64) geom.Label {
	m := l.Enter
	switch m.Effect {
	case geom.EffectGrowY:
		l.Y = toward(m.Baseline, l.Y, f)
	case geom.EffectGrowX:
		l.X = toward(m.Baseline, l.X, f)
	case geom.EffectFade:
		l.Opacity *= f
	case geom.EffectScale:
		l.Size *= f
	}
	return l
}

// center returns the midpoint of the end points' bounding box.
func center(cmds geom.Commands) (float64, float64) {
	first := true
	var minX, minY, maxX, maxY float64
	for _, c := range cmds {
		if c.Op == geom.OpClose {
			continue
		}
		if first {
			minX, maxX, minY, maxY = c.X, c.X, c.Y, c.Y
			first = false
			continue
		}
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}
	return (minX + maxX) / 2, (minY + maxY) / 2
}
