package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartgeom/pkg/errors"
	"github.com/matzehuels/chartgeom/pkg/pipeline"
	"github.com/matzehuels/chartgeom/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
// Zero values keep what the document specifies.
type renderOpts struct {
	output      string   // output base path; the format is appended as extension
	formats     []string // output formats: "svg", "png", "pdf", "json", "xlsx"
	width       float64  // canvas width in pixels
	height      float64  // canvas height in pixels
	title       string   // chart title
	orientation string   // bar orientation: "vertical" or "horizontal"
	static      bool     // disable the entrance animation
	progress    float64  // frame to render in [0,1]; negative renders the settled chart
	scale       float64  // PNG resolution multiplier
	embedFont   bool     // embed the label font in SVG output
	animate     bool     // emit CSS keyframes instead of a single SVG frame
}

// renderCommand creates the render command for generating chart outputs.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{progress: -1, scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a chart document to SVG, PNG, PDF, JSON or XLSX",
		Long: `Render a chart document to one or more output formats.

The document (JSON, YAML or TOML, chosen by extension) names a chart kind,
its data and an optional config block. Flags override the document's config.

Each format is written to <output>.<format>. Without -o the input path with
its extension stripped is used.

By default the settled chart is drawn. --progress selects an intermediate
frame of the entrance animation, and --animate embeds the whole animation in
the SVG as CSS keyframes.

PDF output requires rsvg-convert (librsvg) on the PATH.`,
		Example: `  chartgeom render sales.yaml
  chartgeom render sales.yaml -f svg,png -o out/sales
  chartgeom render heat.json --animate --embed-font
  chartgeom render sales.yaml -f png --progress 0.4`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDocuments,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path (default: input without extension)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, xlsx (comma-separated)")
	addChartFlags(cmd, &opts)
	cmd.Flags().Float64Var(&opts.progress, "progress", opts.progress, "render the animation frame at this progress in [0,1]")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG resolution multiplier")
	cmd.Flags().BoolVar(&opts.embedFont, "embed-font", false, "embed the label font in SVG output")
	cmd.Flags().BoolVar(&opts.animate, "animate", false, "embed the entrance animation in SVG output")

	return cmd
}

// addChartFlags registers the flags that override a document's config.
// They are shared by every command that lays a chart out.
func addChartFlags(cmd *cobra.Command, opts *renderOpts) {
	cmd.Flags().Float64Var(&opts.width, "width", 0, "canvas width (default: document or kind default)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "canvas height (default: document or kind default)")
	cmd.Flags().StringVar(&opts.title, "title", "", "chart title")
	cmd.Flags().StringVar(&opts.orientation, "orientation", "", "bar orientation: vertical, horizontal")
	cmd.Flags().BoolVar(&opts.static, "static", false, "disable the entrance animation")
}

// pipelineOptions converts the flags into pipeline options for input.
func (o renderOpts) pipelineOptions(input string) pipeline.Options {
	opts := pipeline.Options{
		Path:        input,
		Width:       o.width,
		Height:      o.height,
		Title:       o.title,
		Orientation: o.orientation,
		Static:      o.static,
		Formats:     o.formats,
		Scale:       o.scale,
		EmbedFont:   o.embedFont,
		AnimateSVG:  o.animate,
	}
	if o.progress >= 0 {
		p := o.progress
		opts.Progress = &p
	}
	return opts
}

// runRender executes the pipeline and writes one file per format.
func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	base := basePath(opts.output, input)
	if err := errors.ValidateOutputPrefix(base); err != nil {
		return err
	}

	if opts.animate && !slices.Contains(opts.formats, pipeline.FormatSVG) {
		printWarning("--animate only applies to svg output")
	}

	prog := newProgress(loggerFromContext(ctx))
	runner := c.newRunner()

	var spin *Spinner
	if slices.Contains(opts.formats, pipeline.FormatPDF) {
		spin = newSpinnerWithContext(ctx, os.Stderr, "Converting to PDF with "+render.ConvertTool)
		spin.Start()
	}
	result, err := runner.Execute(ctx, opts.pipelineOptions(input))
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}

	var written []string
	for _, format := range pipeline.FormatOrder {
		data, ok := result.Artifacts[format]
		if !ok {
			continue
		}
		path := base + "." + format
		if err := writeOutput(path, data); err != nil {
			return err
		}
		written = append(written, path)
	}

	prog.done(fmt.Sprintf("Rendered %d file(s)", len(written)))
	printSuccess("Rendered %s", input)
	printStats(string(result.Chart.Kind), result.Stats.ItemCount, result.Stats.ShapeCount, result.Layout.Animated)
	if opts.progress >= 0 {
		printDetail("frame at progress %s", strconv.FormatFloat(opts.progress, 'f', -1, 64))
	}
	for _, path := range written {
		printFile(path)
	}
	return nil
}

// writeOutput writes data to path, creating parent directories as needed.
func writeOutput(path string, data []byte) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ensureDir creates the parent directory of path.
func ensureDir(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	return nil
}
