package pipeline

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartgeom/pkg/chart"
	chartio "github.com/matzehuels/chartgeom/pkg/io"
	"github.com/matzehuels/chartgeom/pkg/observability"
)

// Runner executes pipeline stages and reports them through the logger and
// the registered observability hooks.
//
// The Runner is stateless except for the logger. Multiple goroutines can
// safely use the same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	// Stage 1: Load
	loadStart := time.Now()
	c, err := r.Load(ctx, opts.Path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	loadTime := time.Since(loadStart)

	result, err := r.ExecuteChart(ctx, c, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = loadTime
	return result, nil
}

// ExecuteChart runs the layout and render stages for an already loaded chart.
func (r *Runner) ExecuteChart(ctx context.Context, c *chartio.Chart, opts Options) (*Result, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := opts.ValidateForRender(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		Chart:     c,
		Artifacts: make(map[string][]byte),
	}
	result.Stats.ItemCount = c.Data.Len(c.Kind)

	// Stage 2: Layout
	layoutStart := time.Now()
	l, err := r.Layout(ctx, c, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.ShapeCount = len(l.Shapes)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, l, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	return result, nil
}

// Load reads, validates and converts the chart document at path.
func (r *Runner) Load(ctx context.Context, path string) (*chartio.Chart, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, path)

	start := time.Now()
	c, err := chartio.Load(path)
	dur := time.Since(start)

	var kind string
	var items int
	if c != nil {
		kind, items = string(c.Kind), c.Data.Len(c.Kind)
	}
	hooks.OnLoadComplete(ctx, path, kind, items, dur, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("loaded document",
		"path", path,
		"kind", kind,
		"items", items,
		"duration", dur)
	return c, nil
}

// Layout computes the chart's target geometry.
func (r *Runner) Layout(ctx context.Context, c *chartio.Chart, opts Options) (chart.Layout, error) {
	if err := ctx.Err(); err != nil {
		return chart.Layout{}, err
	}
	if err := opts.ValidateForLayout(); err != nil {
		return chart.Layout{}, err
	}

	hooks := observability.Pipeline()
	items := c.Data.Len(c.Kind)
	hooks.OnLayoutStart(ctx, string(c.Kind), items)

	start := time.Now()
	l, err := GenerateLayout(c, opts)
	dur := time.Since(start)
	hooks.OnLayoutComplete(ctx, string(c.Kind), len(l.Shapes), dur, err)
	if err != nil {
		return chart.Layout{}, err
	}

	if l.Empty() {
		r.Logger.Warn("chart has nothing to draw", "kind", c.Kind)
	}
	r.Logger.Info("computed layout",
		"kind", c.Kind,
		"shapes", len(l.Shapes),
		"duration", dur)
	return l, nil
}

// Render draws the layout in every requested format. Formats are rendered
// in [FormatOrder] and the first failure stops the stage.
func (r *Runner) Render(ctx context.Context, l chart.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	formats := orderedFormats(opts.Formats)
	hooks := observability.Pipeline()
	sinkHooks := observability.Sink()
	hooks.OnRenderStart(ctx, formats)

	start := time.Now()
	artifacts := make(map[string][]byte, len(formats))
	var err error
	for _, format := range formats {
		if err = ctx.Err(); err != nil {
			break
		}
		formatStart := time.Now()
		var data []byte
		data, err = RenderFormat(ctx, l, format, opts)
		if err != nil {
			err = fmt.Errorf("render %s: %w", format, err)
			break
		}
		artifacts[format] = data
		sinkHooks.OnArtifact(ctx, format, len(data), time.Since(formatStart))
		r.Logger.Debug("rendered artifact", "format", format, "bytes", len(data))
	}
	dur := time.Since(start)
	hooks.OnRenderComplete(ctx, formats, dur, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("rendered outputs",
		"formats", formats,
		"duration", dur)
	return artifacts, nil
}

// orderedFormats returns the distinct formats in rendering order.
func orderedFormats(formats []string) []string {
	out := make([]string, 0, len(formats))
	for _, f := range FormatOrder {
		if slices.Contains(formats, f) {
			out = append(out, f)
		}
	}
	return out
}
