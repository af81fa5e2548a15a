// Package render holds the format conversion shared by the chart sinks.
//
// Vector and raster output is produced natively by the [sink] subpackage.
// PDF is the exception: [ToPDF] pipes the SVG rendering through the
// external rsvg-convert tool (from librsvg).
//
//	svg := sink.RenderSVG(layout)
//	pdf, err := render.ToPDF(ctx, svg)
//
// [sink]: github.com/matzehuels/chartgeom/pkg/render/sink
package render
