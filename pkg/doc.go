// Package pkg provides the core libraries for chartgeom chart layout.
//
// # Overview
//
// Chartgeom turns a dataset, a drawing-area size and a configuration into
// geometric primitives ready to be painted: rectangles, paths and labels,
// plus the entrance animation that brings them on screen. The pkg directory
// is organized into three main areas:
//
//  1. Engine - Pure layout and geometry (scales, colors, stacks, paths,
//     treemaps, animation) composed per chart kind in [chart]
//  2. Surfaces - Chart documents ([io]) and output sinks ([render/sink])
//  3. Orchestration - The load → layout → render [pipeline] shared by the
//     CLI and library callers
//
// # Architecture
//
// The typical data flow through chartgeom:
//
//	Chart document (JSON/YAML/TOML)
//	         ↓
//	    [io] package (decode + validate)
//	         ↓
//	    [chart] package (target layout)
//	         ↓
//	    [animate] package (frame at progress p)
//	         ↓
//	SVG/PNG/PDF/JSON/XLSX output
//
// # Quick Start
//
// Lay out a bar chart and render its settled frame:
//
//	import (
//	    "github.com/matzehuels/chartgeom/pkg/chart"
//	    "github.com/matzehuels/chartgeom/pkg/render/sink"
//	)
//
//	data := chart.Data{Categories: []chart.CategoricalPoint{
//	    {Label: "Mon", Value: 10},
//	    {Label: "Tue", Value: 20},
//	}}
//	l, _ := chart.Build(chart.KindBar, data, chart.DefaultConfig(chart.KindBar))
//	svg := sink.RenderSVG(l)
//
// Drive the animation from a host clock:
//
//	clock := l.Clock()
//	clock.Restart(time.Now())
//	for !clock.Done(time.Now()) {
//	    draw(l.Frame(clock.Progress(time.Now())))
//	}
//
// # Main Packages
//
// ## Engine
//
// [geom] - Shapes (Rect, Path, Label), colors, bounds and entrance motions.
//
// [scale] - Linear and band scales mapping data values to pixels.
//
// [colorscale] - Multi-stop color interpolation and palette padding.
//
// [stack] - Cumulative per-category sums for stacked charts.
//
// [curve] - Smoothed line paths and closed area paths through points.
//
// [treemap] - Squarified, input-order treemap packing.
//
// [animate] - Staggered progress sampling, easing and the host clock.
//
// [chart] - The six chart kinds: bar, line, stacked-bar, stacked-area,
// heatmap and treemap.
//
// [format] - Number abbreviation and label fitting.
//
// ## Surfaces
//
// [io] - Chart documents in JSON, YAML or TOML with validation.
//
// [render/sink] - Output formats (SVG, PNG, PDF, JSON, XLSX).
//
// [render] - External conversion (SVG to PDF via rsvg-convert).
//
// [fonts] - The embedded label font.
//
// ## Infrastructure
//
// [pipeline] - Complete pipeline (load → layout → render) used by the CLI.
//
// [observability] - Hooks for tracing pipeline stages and artifacts.
//
// [errors] - Coded errors and input validation.
//
// [buildinfo] - Version information set at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/treemap/...  # Specific package
//	go test -run Example ./... # Examples only
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/geom
// [scale]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/scale
// [colorscale]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/colorscale
// [stack]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/stack
// [curve]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/curve
// [treemap]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/treemap
// [animate]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/animate
// [chart]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/chart
// [format]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/format
// [io]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/render/sink
// [fonts]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/fonts
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/chartgeom/pkg/buildinfo
package pkg
