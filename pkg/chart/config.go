package chart

import (
	"time"

	"github.com/matzehuels/chartgeom/pkg/animate"
	"github.com/matzehuels/chartgeom/pkg/geom"
)

const (
	// DefaultWidth is used when the host cannot measure the drawing area.
	DefaultWidth = 300.0
	// DefaultHeight is the drawing area height when none is configured.
	DefaultHeight = 200.0
	// DefaultPadding is the space between the drawing area edge and the plot.
	DefaultPadding = 20.0
)

// Orientation selects the value axis of bar-like charts.
type Orientation string

const (
	// Vertical bars grow upward from the bottom of the plot.
	Vertical Orientation = "vertical"
	// Horizontal bars grow rightward from the left of the plot.
	Horizontal Orientation = "horizontal"
)

// Config controls a chart layout. Start from [DefaultConfig]: the zero
// value turns off grid, labels and animation.
type Config struct {
	Width   float64
	Height  float64
	Padding float64

	ShowGrid   bool
	ShowLabels bool

	Animated bool
	Duration time.Duration
	Stagger  time.Duration
	Easing   animate.Easing

	// ColorScale is the series palette for bar-like charts and the gradient
	// stops for heatmaps. Empty selects the built-in colors.
	ColorScale  []geom.Color
	Orientation Orientation

	// SeriesLabels names the series of stacked charts and enables a legend.
	SeriesLabels []string
	Title        string
	// Background, when set, is painted behind everything else.
	Background *geom.Color
}

// DefaultConfig returns the configuration used for kind when a caller
// specifies nothing.
func DefaultConfig(kind Kind) Config {
	return Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Padding:     DefaultPadding,
		ShowGrid:    true,
		ShowLabels:  true,
		Animated:    true,
		Duration:    kind.DefaultDuration(),
		Stagger:     kind.DefaultStagger(),
		Orientation: Vertical,
	}
}

// normalize replaces unusable values with defaults: a non-positive size or
// duration, a negative padding or stagger, an unknown orientation.
func (c Config) normalize(kind Kind) Config {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Padding < 0 {
		c.Padding = DefaultPadding
	}
	if c.Duration <= 0 {
		c.Duration = kind.DefaultDuration()
	}
	if c.Stagger < 0 {
		c.Stagger = 0
	}
	if c.Orientation != Horizontal || !kind.Orientable() {
		c.Orientation = Vertical
	}
	return c
}

// plot returns the drawing area inset by the padding.
func (c Config) plot() geom.Bounds {
	return geom.Bounds{W: c.Width, H: c.Height}.Inset(c.Padding)
}

func (c Config) timing() animate.Timing {
	return animate.Timing{Duration: c.Duration, Stagger: c.Stagger, Easing: c.Easing}
}
