package sink

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/matzehuels/chartgeom/pkg/chart"
	"github.com/matzehuels/chartgeom/pkg/geom"
)

// layoutNamespace scopes the name-based UUIDs given to layouts.
var layoutNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/matzehuels/chartgeom/layout"))

// JSONOption configures [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	progress float64
	source   string
}

// WithJSONProgress exports the frame at progress instead of the settled chart.
func WithJSONProgress(p float64) JSONOption { return func(r *jsonRenderer) { r.progress = p } }

// WithJSONSource records the document the layout was built from.
func WithJSONSource(path string) JSONOption { return func(r *jsonRenderer) { r.source = path } }

type jsonOutput struct {
	ID         string      `json:"id"`
	Kind       string      `json:"kind"`
	Source     string      `json:"source,omitempty"`
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	Plot       jsonBounds  `json:"plot"`
	Animated   bool        `json:"animated"`
	DurationMS int64       `json:"duration_ms"`
	StaggerMS  int64       `json:"stagger_ms"`
	Easing     string      `json:"easing"`
	Progress   float64     `json:"progress"`
	Shapes     []jsonShape `json:"shapes"`
}

type jsonBounds struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"width"`
	H float64 `json:"height"`
}

type jsonShape struct {
	Type         string     `json:"type"`
	Role         geom.Role  `json:"role"`
	X            float64    `json:"x"`
	Y            float64    `json:"y"`
	W            float64    `json:"width,omitempty"`
	H            float64    `json:"height,omitempty"`
	D            string     `json:"d,omitempty"`
	Fill         string     `json:"fill,omitempty"`
	Stroke       string     `json:"stroke,omitempty"`
	StrokeWidth  float64    `json:"stroke_width,omitempty"`
	CornerRadius float64    `json:"corner_radius,omitempty"`
	Opacity      float64    `json:"opacity"`
	Text         string     `json:"text,omitempty"`
	Anchor       string     `json:"anchor,omitempty"`
	Size         float64    `json:"size,omitempty"`
	Enter        *jsonEnter `json:"enter,omitempty"`
}

type jsonEnter struct {
	Effect   string  `json:"effect"`
	Index    int     `json:"index"`
	Baseline float64 `json:"baseline,omitempty"`
}

// RenderJSON exports the layout geometry as a pretty-printed JSON document.
// The document id is a SHA-1 name-based UUID over the exported shapes, so
// identical layouts always get the same id.
func RenderJSON(l chart.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{progress: 1}
	for _, opt := range opts {
		opt(&r)
	}

	shapes := buildJSONShapes(l.Frame(r.progress))
	geometry, err := json.Marshal(shapes)
	if err != nil {
		return nil, fmt.Errorf("marshal shapes: %w", err)
	}

	out := jsonOutput{
		ID:         uuid.NewSHA1(layoutNamespace, geometry).String(),
		Kind:       string(l.Kind),
		Source:     r.source,
		Width:      l.Width,
		Height:     l.Height,
		Plot:       jsonBounds{X: l.Plot.X, Y: l.Plot.Y, W: l.Plot.W, H: l.Plot.H},
		Animated:   l.Animated,
		DurationMS: l.Timing.Duration.Milliseconds(),
		StaggerMS:  l.Timing.Stagger.Milliseconds(),
		Easing:     l.Timing.Easing.String(),
		Progress:   r.progress,
		Shapes:     shapes,
	}
	return json.MarshalIndent(out, "", "  ")
}

func buildJSONShapes(shapes []geom.Shape) []jsonShape {
	out := make([]jsonShape, 0, len(shapes))
	for _, s := range shapes {
		var js jsonShape
		switch v := s.(type) {
		case geom.Rect:
			js = jsonShape{
				Role: v.Role, X: v.X, Y: v.Y, W: v.W, H: v.H,
				Fill: v.Fill.Hex(), CornerRadius: v.CornerRadius, Opacity: v.Opacity,
			}
		case geom.Path:
			js = jsonShape{Role: v.Role, D: v.D(), StrokeWidth: v.StrokeWidth, Opacity: v.Opacity}
			if len(v.Commands) > 0 {
				js.X, js.Y = v.Commands[0].X, v.Commands[0].Y
			}
			if v.Fill != nil {
				js.Fill = v.Fill.Hex()
			}
			if v.Stroke != nil {
				js.Stroke = v.Stroke.Hex()
			}
		case geom.Label:
			js = jsonShape{
				Role: v.Role, X: v.X, Y: v.Y, Text: v.Text, Anchor: string(v.Anchor),
				Size: v.Size, Fill: v.Color.Hex(), Opacity: v.Opacity,
			}
		default:
			continue
		}
		js.Type = s.Kind().String()
		if m := s.Entrance(); m.Effect != geom.EffectNone {
			js.Enter = &jsonEnter{Effect: m.Effect.String(), Index: m.Index, Baseline: m.Baseline}
		}
		out = append(out, js)
	}
	return out
}
