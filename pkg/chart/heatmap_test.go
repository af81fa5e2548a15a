package chart

import (
	"testing"

	"github.com/matzehuels/chartgeom/pkg/colorscale"
	"github.com/matzehuels/chartgeom/pkg/geom"
)

func TestHeatmapMidGray(t *testing.T) {
	cfg := DefaultConfig(KindHeatmap)
	cfg.ColorScale = []geom.Color{geom.MustParseColor("#000000"), geom.MustParseColor("#ffffff")}
	cells := []HeatCell{
		{Row: Num(0), Col: Num(0), Value: 0},
		{Row: Num(0), Col: Num(1), Value: 5},
		{Row: Num(0), Col: Num(2), Value: 10},
	}
	l := Heatmap(cells, cfg)
	got := rects(l, geom.RoleCell)
	if len(got) != 3 {
		t.Fatalf("got %d cells, want 3", len(got))
	}
	want := []string{"#000000", "#808080", "#ffffff"}
	for i, c := range got {
		if c.Fill.Hex() != want[i] {
			t.Errorf("cell %d fill = %s, want %s", i, c.Fill.Hex(), want[i])
		}
	}
}

func TestHeatmapGridOrderAndMissingCells(t *testing.T) {
	cells := []HeatCell{
		{Row: Str("b"), Col: Str("x"), Value: 4},
		{Row: Num(10), Col: Str("y"), Value: 8},
		{Row: Num(2), Col: Str("x"), Value: 2},
		{Row: Str("a"), Col: Str("y"), Value: 6},
	}
	cfg := DefaultConfig(KindHeatmap)
	l := Heatmap(cells, cfg)

	got := rects(l, geom.RoleCell)
	// rows 2, 10, "a", "b"; columns "x", "y"
	if len(got) != 8 {
		t.Fatalf("got %d cells, want 8", len(got))
	}
	var rowLabels []string
	for _, lb := range labels(l, geom.RoleAxisLabel) {
		if lb.Anchor == geom.AnchorEnd {
			rowLabels = append(rowLabels, lb.Text)
		}
	}
	if want := []string{"2", "10", "a", "b"}; len(rowLabels) != 4 ||
		rowLabels[0] != want[0] || rowLabels[1] != want[1] || rowLabels[2] != want[2] || rowLabels[3] != want[3] {
		t.Errorf("row labels = %v, want %v", rowLabels, want)
	}
	for i, c := range got {
		if c.Enter.Effect != geom.EffectFade || c.Enter.Index != i {
			t.Errorf("cell %d motion = %+v", i, c.Enter)
		}
	}
	// Row 2 has no "y" cell; it is drawn as value 0, the bottom of the range.
	if want := colorscale.Interpolate(colorscale.DefaultStops, 0); got[1].Fill != want {
		t.Errorf("missing cell fill %v, want lowest stop %v", got[1].Fill, want)
	}
	if got[0].Fill == got[1].Fill {
		t.Errorf("cell with value 2 shares the fill of a missing cell: %v", got[0].Fill)
	}
	// Cells tile the plot in a grid.
	if !near(got[1].X-got[0].X, l.Plot.W/2) || !near(got[2].Y-got[0].Y, l.Plot.H/4) {
		t.Errorf("cell spacing wrong: %+v %+v %+v", got[0], got[1], got[2])
	}
}

func TestHeatmapMissingCellsJoinRange(t *testing.T) {
	cfg := DefaultConfig(KindHeatmap)
	cfg.ShowLabels = false
	cfg.ColorScale = []geom.Color{geom.MustParseColor("#000000"), geom.MustParseColor("#ffffff")}
	cells := []HeatCell{
		{Row: Str("a"), Col: Str("x"), Value: -10},
		{Row: Str("a"), Col: Str("y"), Value: -5},
		{Row: Str("b"), Col: Str("x"), Value: -10},
	}
	got := rects(Heatmap(cells, cfg), geom.RoleCell)
	if len(got) != 4 {
		t.Fatalf("got %d cells, want 4", len(got))
	}
	// Range is [-10, 0]: -5 sits halfway and the missing cell at the top.
	want := []string{"#000000", "#808080", "#000000", "#ffffff"}
	for i, c := range got {
		if c.Fill.Hex() != want[i] {
			t.Errorf("cell %d fill = %s, want %s", i, c.Fill.Hex(), want[i])
		}
	}
}

func TestHeatmapFlatAndLabels(t *testing.T) {
	cells := []HeatCell{
		{Row: Num(1), Col: Num(1), Value: 3, Label: "hot"},
		{Row: Num(1), Col: Num(2), Value: 3},
	}
	l := Heatmap(cells, DefaultConfig(KindHeatmap))
	got := rects(l, geom.RoleCell)
	if got[0].Fill != got[1].Fill {
		t.Errorf("flat dataset fills differ: %v %v", got[0].Fill, got[1].Fill)
	}
	vals := labels(l, geom.RoleValueLabel)
	if len(vals) != 2 || vals[0].Text != "hot" || vals[1].Text != "3" {
		t.Fatalf("value labels = %+v", vals)
	}
	if vals[0].Color != got[0].Fill.Contrast() {
		t.Errorf("label color %v does not contrast with %v", vals[0].Color, got[0].Fill)
	}
}
