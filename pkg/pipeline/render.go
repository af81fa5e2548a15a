package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/chartgeom/pkg/chart"
	"github.com/matzehuels/chartgeom/pkg/render/sink"
)

// RenderFormat draws one frame of l in a single format.
func RenderFormat(ctx context.Context, l chart.Layout, format string, opts Options) ([]byte, error) {
	progress := opts.FrameProgress()

	switch format {
	case FormatSVG:
		return sink.RenderSVG(l, buildSVGOptions(opts)...), nil
	case FormatPNG:
		return sink.RenderPNG(l, sink.WithScale(opts.Scale), sink.WithPNGProgress(progress))
	case FormatPDF:
		return sink.RenderPDF(ctx, l, sink.WithPDFSVGOptions(sink.WithProgress(progress)))
	case FormatJSON:
		return sink.RenderJSON(l, sink.WithJSONProgress(progress), sink.WithJSONSource(opts.Path))
	case FormatXLSX:
		return sink.RenderXLSX(l, sink.WithXLSXProgress(progress))
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}

// buildSVGOptions builds SVG rendering options. CSS animation replays the
// entrance from the settled geometry, so it replaces a fixed frame.
func buildSVGOptions(opts Options) []sink.SVGOption {
	var svgOpts []sink.SVGOption
	if opts.EmbedFont {
		svgOpts = append(svgOpts, sink.WithEmbeddedFont())
	}
	if opts.AnimateSVG {
		svgOpts = append(svgOpts, sink.WithAnimation())
	} else {
		svgOpts = append(svgOpts, sink.WithProgress(opts.FrameProgress()))
	}
	return svgOpts
}
