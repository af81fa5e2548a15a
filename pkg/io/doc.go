// Package io reads and writes chart documents.
//
// # Overview
//
// A chart document bundles a chart kind, an optional title, layout
// configuration and a dataset into one file. The same document shape is
// accepted in three encodings, chosen by file extension:
//
//   - .json: encoding/json
//   - .yaml, .yml: gopkg.in/yaml.v3
//   - .toml: github.com/BurntSushi/toml
//
// # Document Format
//
//	{
//	  "kind": "bar",
//	  "title": "Sales",
//	  "config": {"width": 400, "show_grid": true, "color_scale": ["#4a90d9"]},
//	  "data": [
//	    {"label": "Q1", "value": 10},
//	    {"label": "Q2", "value": 20}
//	  ]
//	}
//
// Every config key is optional; omitted keys take the defaults of
// [chart.DefaultConfig] for the document's kind. Durations are given in
// milliseconds. Unknown keys are ignored.
//
// # Data Items
//
// The fields read from each data item depend on the kind:
//
//   - bar: label, value, color
//   - line: x, y, label
//   - stacked-bar, stacked-area: label, values
//   - heatmap: row, col, value, label
//   - treemap: label, value, color, children
//
// Keys (x, row, col) may be numbers or strings. Numbers sort before strings.
//
// # Validation
//
// Documents are validated with go-playground/validator before conversion.
// Failures are reported as [errors.ErrCodeInvalidDocument] or
// [errors.ErrCodeInvalidConfig]; a missing file is
// [errors.ErrCodeFileNotFound].
//
// [errors.ErrCodeInvalidDocument]: github.com/matzehuels/chartgeom/pkg/errors
// [errors.ErrCodeInvalidConfig]: github.com/matzehuels/chartgeom/pkg/errors
// [errors.ErrCodeFileNotFound]: github.com/matzehuels/chartgeom/pkg/errors
package io
