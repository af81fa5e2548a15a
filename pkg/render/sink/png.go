package sink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/matzehuels/chartgeom/pkg/chart"
	"github.com/matzehuels/chartgeom/pkg/fonts"
	"github.com/matzehuels/chartgeom/pkg/geom"
)

// PNGOption configures [RenderPNG].
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale    float64
	progress float64
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGProgress rasterizes the frame at progress instead of the settled
// chart.
func WithPNGProgress(p float64) PNGOption {
	return func(r *pngRenderer) { r.progress = p }
}

// RenderPNG rasterizes the layout with gogpu/gg. Labels use the embedded
// Go Regular face, so output does not depend on installed fonts.
func RenderPNG(l chart.Layout, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0, progress: 1}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 || math.IsNaN(r.scale) || math.IsInf(r.scale, 0) {
		return nil, fmt.Errorf("invalid png scale %v", r.scale)
	}

	w := int(math.Ceil(l.Width * r.scale))
	h := int(math.Ceil(l.Height * r.scale))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid png size %dx%d", w, h)
	}

	dc := gg.NewContext(w, h)
	defer dc.Close()

	p := painter{dc: dc, scale: r.scale}
	for _, s := range l.Frame(r.progress) {
		if err := p.draw(s); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// painter draws shapes in layout coordinates onto a scaled canvas. Scaling
// is applied to coordinates directly because text is drawn in device space.
type painter struct {
	dc    *gg.Context
	scale float64
	size  float64
}

func (p *painter) draw(s geom.Shape) error {
	switch v := s.(type) {
	case geom.Rect:
		return p.rect(v)
	case geom.Path:
		return p.path(v)
	case geom.Label:
		return p.label(v)
	}
	return nil
}

func (p *painter) setColor(c geom.Color, opacity float64) {
	p.dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, clampOpacity(opacity))
}

func (p *painter) rect(r geom.Rect) error {
	if r.W <= 0 || r.H <= 0 || r.Opacity <= 0 {
		return nil
	}
	k := p.scale
	p.setColor(r.Fill, r.Opacity)
	if r.CornerRadius > 0 {
		p.dc.DrawRoundedRectangle(r.X*k, r.Y*k, r.W*k, r.H*k, r.CornerRadius*k)
	} else {
		p.dc.DrawRectangle(r.X*k, r.Y*k, r.W*k, r.H*k)
	}
	if err := p.dc.Fill(); err != nil {
		return fmt.Errorf("fill %s: %w", r.Role, err)
	}
	return nil
}

func (p *painter) path(path geom.Path) error {
	if len(path.Commands) == 0 || path.Opacity <= 0 {
		return nil
	}
	k := p.scale
	trace := func() {
		p.dc.ClearPath()
		for _, c := range path.Commands {
			switch c.Op {
			case geom.OpMove:
				p.dc.MoveTo(c.X*k, c.Y*k)
			case geom.OpLine:
				p.dc.LineTo(c.X*k, c.Y*k)
			case geom.OpQuad:
				p.dc.QuadraticTo(c.CX*k, c.CY*k, c.X*k, c.Y*k)
			case geom.OpClose:
				p.dc.ClosePath()
			}
		}
	}

	if path.Fill != nil {
		trace()
		p.setColor(*path.Fill, path.Opacity)
		if err := p.dc.Fill(); err != nil {
			return fmt.Errorf("fill %s: %w", path.Role, err)
		}
	}
	if path.Stroke != nil && path.StrokeWidth > 0 {
		trace()
		p.setColor(*path.Stroke, path.Opacity)
		p.dc.SetLineWidth(path.StrokeWidth * k)
		p.dc.SetLineCap(gg.LineCapRound)
		p.dc.SetLineJoin(gg.LineJoinRound)
		if err := p.dc.Stroke(); err != nil {
			return fmt.Errorf("stroke %s: %w", path.Role, err)
		}
	}
	return nil
}

func (p *painter) label(l geom.Label) error {
	if l.Text == "" || l.Size <= 0 || l.Opacity <= 0 {
		return nil
	}
	size := l.Size * p.scale
	if size != p.size {
		face, err := fonts.Face(size)
		if err != nil {
			return err
		}
		p.dc.SetFont(face)
		p.size = size
	}
	p.setColor(l.Color, l.Opacity)

	var ax float64
	switch l.Anchor {
	case geom.AnchorMiddle:
		ax = 0.5
	case geom.AnchorEnd:
		ax = 1
	}
	p.dc.DrawStringAnchored(l.Text, l.X*p.scale, l.Y*p.scale, ax, 0)
	return nil
}

func clampOpacity(o float64) float64 {
	return max(0, min(1, o))
}
