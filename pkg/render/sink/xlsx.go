package sink

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/chartgeom/pkg/chart"
)

const (
	summarySheet = "Chart"
	shapesSheet  = "Shapes"
)

var shapeColumns = []any{
	"#", "type", "role", "x", "y", "width", "height", "d",
	"fill", "stroke", "opacity", "text", "effect", "stagger index", "baseline",
}

// XLSXOption configures [RenderXLSX].
type XLSXOption func(*xlsxRenderer)

type xlsxRenderer struct {
	progress float64
}

// WithXLSXProgress exports the frame at progress instead of the settled chart.
func WithXLSXProgress(p float64) XLSXOption { return func(r *xlsxRenderer) { r.progress = p } }

// RenderXLSX exports the layout geometry as a workbook: a summary sheet
// with the chart dimensions and timing, and one row per shape in paint
// order. Fill cells are shaded with the shape's color.
func RenderXLSX(l chart.Layout, opts ...XLSXOption) ([]byte, error) {
	r := xlsxRenderer{progress: 1}
	for _, opt := range opts {
		opt(&r)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(shapesSheet); err != nil {
		return nil, fmt.Errorf("add sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	if err := writeSummary(f, l, bold); err != nil {
		return nil, err
	}
	if err := writeShapes(f, buildJSONShapes(l.Frame(r.progress)), bold); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummary(f *excelize.File, l chart.Layout, bold int) error {
	rows := [][]any{
		{"kind", string(l.Kind)},
		{"width", l.Width},
		{"height", l.Height},
		{"plot x", l.Plot.X},
		{"plot y", l.Plot.Y},
		{"plot width", l.Plot.W},
		{"plot height", l.Plot.H},
		{"animated", l.Animated},
		{"duration ms", l.Timing.Duration.Milliseconds()},
		{"stagger ms", l.Timing.Stagger.Milliseconds()},
		{"easing", l.Timing.Easing.String()},
		{"shapes", len(l.Shapes)},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}
	end, _ := excelize.CoordinatesToCellName(1, len(rows))
	if err := f.SetCellStyle(summarySheet, "A1", end, bold); err != nil {
		return fmt.Errorf("style summary: %w", err)
	}
	return f.SetColWidth(summarySheet, "A", "A", 14)
}

func writeShapes(f *excelize.File, shapes []jsonShape, bold int) error {
	if err := f.SetSheetRow(shapesSheet, "A1", &shapeColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(shapeColumns), 1)
	if err := f.SetCellStyle(shapesSheet, "A1", last, bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	fills := map[string]int{}
	for i, s := range shapes {
		var effect, stagger, baseline any
		if s.Enter != nil {
			effect, stagger, baseline = s.Enter.Effect, s.Enter.Index, s.Enter.Baseline
		}
		row := []any{
			i, s.Type, string(s.Role), s.X, s.Y, s.W, s.H, s.D,
			s.Fill, s.Stroke, s.Opacity, s.Text, effect, stagger, baseline,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(shapesSheet, cell, &row); err != nil {
			return fmt.Errorf("write shape %d: %w", i, err)
		}
		if s.Fill == "" {
			continue
		}
		style, ok := fills[s.Fill]
		if !ok {
			style, err = f.NewStyle(&excelize.Style{
				Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{s.Fill}},
			})
			if err != nil {
				return fmt.Errorf("fill style %s: %w", s.Fill, err)
			}
			fills[s.Fill] = style
		}
		fillCell, _ := excelize.CoordinatesToCellName(9, i+2)
		if err := f.SetCellStyle(shapesSheet, fillCell, fillCell, style); err != nil {
			return fmt.Errorf("style shape %d: %w", i, err)
		}
	}
	return f.SetColWidth(shapesSheet, "H", "H", 40)
}
