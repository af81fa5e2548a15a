// Package colorscale maps normalized scalars to colors and pads series color
// lists from a fixed palette.
//
// Interpolation is channel-wise linear in un-premultiplied, non-gamma-corrected
// sRGB. That is not perceptually accurate blending, but it is what the chart
// components have always drawn, so heatmaps stay reproducible across hosts.
package colorscale

import (
	"math"

	"github.com/matzehuels/chartgeom/pkg/geom"
)

// DefaultPalette is the series palette used when a chart supplies fewer
// colors than it has series. Order matters: padding takes colors from the
// front of the palette.
var DefaultPalette = []geom.Color{
	geom.MustParseColor("#4a90d9"),
	geom.MustParseColor("#e74c3c"),
	geom.MustParseColor("#2ecc71"),
	geom.MustParseColor("#f39c12"),
	geom.MustParseColor("#9b59b6"),
	geom.MustParseColor("#1abc9c"),
	geom.MustParseColor("#34495e"),
	geom.MustParseColor("#e91e63"),
}

// DefaultStops is the two-stop gradient heatmaps use without a color scale.
var DefaultStops = []geom.Color{
	geom.MustParseColor("#e3f2fd"),
	geom.MustParseColor("#1565c0"),
}

// Interpolate returns the color at t along a gradient whose stops are evenly
// spaced over [0,1]. t is clamped to [0,1] (NaN counts as 0). With no stops
// the result is black; a single stop is returned as is.
func Interpolate(stops []geom.Color, t float64) geom.Color {
	switch len(stops) {
	case 0:
		return geom.Black
	case 1:
		return stops[0]
	}

	t = clamp01(t)
	segments := len(stops) - 1
	size := 1 / float64(segments)

	i := int(math.Floor(t / size))
	if i >= segments {
		i = segments - 1
	}
	local := (t - float64(i)*size) / size

	from, to := stops[i].Colorful(), stops[i+1].Colorful()
	return geom.FromColorful(from.BlendRgb(to, local))
}

// Normalize returns (value-lo)/(hi-lo). A flat range (hi == lo) returns 0 so
// that a uniform dataset takes the first stop.
func Normalize(value, lo, hi float64) float64 {
	if hi == lo {
		return 0
	}
	if math.IsInf(hi-lo, 0) {
		return (value/2 - lo/2) / (hi/2 - lo/2)
	}
	return (value - lo) / (hi - lo)
}

// Pad returns exactly n colors: the given colors in order, followed by
// palette colors taken from the front and cycled if needed. Extra colors
// beyond n are dropped. An empty palette falls back to [DefaultPalette].
// Pad never modifies its arguments.
func Pad(colors []geom.Color, n int, palette []geom.Color) []geom.Color {
	if n <= 0 {
		return nil
	}
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	out := make([]geom.Color, n)
	for i := range out {
		if i < len(colors) {
			out[i] = colors[i]
			continue
		}
		out[i] = palette[(i-len(colors))%len(palette)]
	}
	return out
}

// Pick returns the color for item i: its own color when set, otherwise the
// palette entry at i, cycling.
func Pick(own *geom.Color, i int, palette []geom.Color) geom.Color {
	if own != nil {
		return *own
	}
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return palette[i%len(palette)]
}

func clamp01(t float64) float64 {
	if math.IsNaN(t) || t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
