package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/matzehuels/chartgeom/pkg/animate"
	"github.com/matzehuels/chartgeom/pkg/chart"
	"github.com/matzehuels/chartgeom/pkg/fonts"
	"github.com/matzehuels/chartgeom/pkg/geom"
)

const animationCSS = `
    @keyframes cg-grow-y { from { transform: scaleY(0); } }
    @keyframes cg-grow-x { from { transform: scaleX(0); } }
    @keyframes cg-slide-y { from { transform: translateY(var(--cg-dy)); } }
    @keyframes cg-slide-x { from { transform: translateX(var(--cg-dx)); } }
    @keyframes cg-fade { from { opacity: 0; } }
    @keyframes cg-scale { from { transform: scale(0); } }`

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	progress  float64
	embedFont bool
	animate   bool
}

// WithProgress renders the frame at progress instead of the settled chart.
func WithProgress(p float64) SVGOption { return func(r *svgRenderer) { r.progress = p } }

// WithEmbeddedFont inlines the label font as a data URL so the SVG renders
// the same without Go Regular installed.
func WithEmbeddedFont() SVGOption { return func(r *svgRenderer) { r.embedFont = true } }

// WithAnimation emits CSS keyframes that replay the entrance animation in a
// browser. It has no effect on layouts that are not animated.
func WithAnimation() SVGOption { return func(r *svgRenderer) { r.animate = true } }

// RenderSVG draws a layout as a standalone SVG document. Shapes are written
// in layout order, so later shapes paint over earlier ones.
func RenderSVG(l chart.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{progress: 1}
	for _, opt := range opts {
		opt(&r)
	}
	animated := r.animate && l.Animated

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%.0f" height="%.0f" class="chart chart-%s">`+"\n",
		num(l.Width), num(l.Height), l.Width, l.Height, l.Kind)

	r.renderStyle(&buf, animated)

	shapes := l.Shapes
	if !animated {
		shapes = l.Frame(r.progress)
	}
	for _, s := range shapes {
		var anim string
		if animated {
			anim = animationStyle(s, l.Timing)
		}
		writeShape(&buf, s, anim)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r svgRenderer) renderStyle(buf *bytes.Buffer, animated bool) {
	buf.WriteString("  <style>")
	if r.embedFont {
		fmt.Fprintf(buf, "\n    @font-face { font-family: '%s'; src: url(data:font/ttf;base64,%s) format('truetype'); }",
			fonts.FontFamily, fonts.RegularTTFBase64())
	}
	fmt.Fprintf(buf, "\n    text { font-family: %s; }", fonts.FallbackFontFamily)
	if animated {
		buf.WriteString(animationCSS)
	}
	buf.WriteString("\n  </style>\n")
}

func writeShape(buf *bytes.Buffer, s geom.Shape, anim string) {
	switch v := s.(type) {
	case geom.Rect:
		fmt.Fprintf(buf, `  <rect class="%s" x="%s" y="%s" width="%s" height="%s"`,
			v.Role, num(v.X), num(v.Y), num(max(v.W, 0)), num(max(v.H, 0)))
		if v.CornerRadius > 0 {
			fmt.Fprintf(buf, ` rx="%s"`, num(v.CornerRadius))
		}
		fmt.Fprintf(buf, ` fill="%s"`, v.Fill.Hex())
		writeOpacity(buf, "opacity", v.Opacity)
	case geom.Path:
		fmt.Fprintf(buf, `  <path class="%s" d="%s"`, v.Role, v.D())
		if v.Fill != nil {
			fmt.Fprintf(buf, ` fill="%s"`, v.Fill.Hex())
		} else {
			buf.WriteString(` fill="none"`)
		}
		if v.Stroke != nil {
			fmt.Fprintf(buf, ` stroke="%s" stroke-width="%s" stroke-linejoin="round" stroke-linecap="round"`,
				v.Stroke.Hex(), num(v.StrokeWidth))
		}
		writeOpacity(buf, "opacity", v.Opacity)
	case geom.Label:
		fmt.Fprintf(buf, `  <text class="%s" x="%s" y="%s" font-size="%s" text-anchor="%s" fill="%s"`,
			v.Role, num(v.X), num(v.Y), num(v.Size), anchorOf(v.Anchor), v.Color.Hex())
		writeOpacity(buf, "opacity", v.Opacity)
		if anim != "" {
			fmt.Fprintf(buf, ` style="%s"`, anim)
		}
		fmt.Fprintf(buf, ">%s</text>\n", escapeXML(v.Text))
		return
	default:
		return
	}
	if anim != "" {
		fmt.Fprintf(buf, ` style="%s"`, anim)
	}
	buf.WriteString("/>\n")
}

func writeOpacity(buf *bytes.Buffer, attr string, o float64) {
	if o < 1 {
		fmt.Fprintf(buf, ` %s="%s"`, attr, num(max(o, 0)))
	}
}

// animationStyle returns the inline CSS that plays s's entrance, or "" for
// shapes that do not move. The delay and duration follow [animate.Local]:
// slot i starts at i*stagger and finishes with the chart.
func animationStyle(s geom.Shape, t animate.Timing) string {
	m := s.Entrance()
	if m.Effect == geom.EffectNone {
		return ""
	}
	delay := time.Duration(max(m.Index, 0)) * t.Stagger
	dur := t.Duration - delay
	if dur <= 0 {
		delay, dur = t.Duration, time.Millisecond
	}
	timing := fmt.Sprintf("%s %s %s both", seconds(dur), easingCSS(t.Easing), seconds(delay))

	_, isLabel := s.(geom.Label)
	switch m.Effect {
	case geom.EffectGrowY:
		if isLabel {
			l := s.(geom.Label)
			return fmt.Sprintf("--cg-dy: %spx; animation: cg-slide-y %s", num(m.Baseline-l.Y), timing)
		}
		return fmt.Sprintf("transform-box: view-box; transform-origin: 0 %spx; animation: cg-grow-y %s", num(m.Baseline), timing)
	case geom.EffectGrowX:
		if isLabel {
			l := s.(geom.Label)
			return fmt.Sprintf("--cg-dx: %spx; animation: cg-slide-x %s", num(m.Baseline-l.X), timing)
		}
		return fmt.Sprintf("transform-box: view-box; transform-origin: %spx 0; animation: cg-grow-x %s", num(m.Baseline), timing)
	case geom.EffectFade:
		return "animation: cg-fade " + timing
	case geom.EffectScale:
		return "transform-box: fill-box; transform-origin: center; animation: cg-scale " + timing
	}
	return ""
}

func easingCSS(e animate.Easing) string {
	if e == animate.EaseOut {
		return "cubic-bezier(0.33, 1, 0.68, 1)"
	}
	return "linear"
}

func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s"
}

func anchorOf(a geom.Anchor) geom.Anchor {
	if a == "" {
		return geom.AnchorStart
	}
	return a
}

// num formats a coordinate with at most two decimals.
func num(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
