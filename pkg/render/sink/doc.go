// Package sink writes chart layouts in output formats.
//
// # Overview
//
// A "sink" turns a [chart.Layout] into bytes. Every sink draws one frame of
// the layout: the settled chart by default, or the frame at a given
// animation progress.
//
//   - SVG: vector output, optionally replaying the entrance animation with CSS
//   - JSON: the shape geometry for external tools, with a stable id
//   - PNG: raster output drawn with gogpu/gg
//   - PDF: print output (requires rsvg-convert)
//   - XLSX: the shape geometry as a spreadsheet
//
// # SVG Output
//
//	svg := sink.RenderSVG(layout,
//	    sink.WithEmbeddedFont(),
//	    sink.WithAnimation(),
//	)
//
// [WithAnimation] keeps the target geometry in the document and adds CSS
// keyframes whose delays follow the layout's stagger. [WithProgress] instead
// bakes a single frame into the geometry.
//
// # Raster Output
//
// [RenderPNG] draws shapes natively at [WithScale] times the layout size
// (2x by default). Labels use the Go Regular face from [fonts].
//
// [chart.Layout]: github.com/matzehuels/chartgeom/pkg/chart
// [fonts]: github.com/matzehuels/chartgeom/pkg/fonts
package sink
