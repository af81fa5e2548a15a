package pipeline

import (
	"github.com/matzehuels/chartgeom/pkg/chart"
	chartio "github.com/matzehuels/chartgeom/pkg/io"
)

// =============================================================================
// Layout Generation
// =============================================================================

// GenerateLayout applies the option overrides to a loaded chart and builds
// its layout. The chart itself is not modified.
func GenerateLayout(c *chartio.Chart, opts Options) (chart.Layout, error) {
	return chart.Build(c.Kind, c.Data, ApplyOverrides(c.Config, opts))
}

// ApplyOverrides returns cfg with the non-zero layout options applied.
func ApplyOverrides(cfg chart.Config, opts Options) chart.Config {
	if opts.Width > 0 {
		cfg.Width = opts.Width
	}
	if opts.Height > 0 {
		cfg.Height = opts.Height
	}
	if opts.Title != "" {
		cfg.Title = opts.Title
	}
	if opts.Orientation != "" {
		cfg.Orientation = chart.Orientation(opts.Orientation)
	}
	if opts.Static {
		cfg.Animated = false
	}
	return cfg
}
