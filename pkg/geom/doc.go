// Package geom defines the geometric vocabulary shared by the chart engine
// and its output sinks.
//
// Everything a chart layout produces is a [Shape]: a [Rect], a [Path] or a
// [Label]. Shapes are plain values listed in paint order (background and
// grid first, data next, labels and legend last). They own no lifecycle;
// callers paint them and discard them on the next layout pass.
//
// Each shape carries a [Motion] describing how it enters when the chart is
// animated. The motion is data, not behaviour: package animate reads it to
// produce the displayed geometry for a given progress value.
//
// Colors are 8-bit sRGB triples with a "#rrggbb" text form, so they round-trip
// through JSON, YAML and TOML documents unchanged.
package geom
