package chart

import (
	"math"

	"github.com/matzehuels/chartgeom/pkg/geom"
)

// CategoricalPoint is one bar.
type CategoricalPoint struct {
	Label string
	Value float64
	Color *geom.Color
}

// SeriesPoint is one point of a line. Points are drawn in slice order.
type SeriesPoint struct {
	X     Key
	Y     float64
	Label string
}

// StackedPoint is one category of a stacked chart with one value per series.
type StackedPoint struct {
	Label  string
	Values []float64
}

// HeatCell is one cell of a heatmap.
type HeatCell struct {
	Row, Col Key
	Value    float64
	Label    string
}

// TreeNode is one treemap tile. Only the top level is packed; Children are
// carried through for callers that drill down.
type TreeNode struct {
	Label    string
	Value    float64
	Color    *geom.Color
	Children []TreeNode
}

// Data holds a dataset of any kind. Only the field matching the chart kind
// is read.
type Data struct {
	Categories []CategoricalPoint
	Series     []SeriesPoint
	Stacked    []StackedPoint
	Cells      []HeatCell
	Nodes      []TreeNode
}

// Len returns the number of items in the dataset for kind.
func (d Data) Len(kind Kind) int {
	switch kind {
	case KindBar:
		return len(d.Categories)
	case KindLine:
		return len(d.Series)
	case KindStackedBar, KindStackedArea:
		return len(d.Stacked)
	case KindHeatmap:
		return len(d.Cells)
	case KindTreemap:
		return len(d.Nodes)
	}
	return 0
}

// nonNegative returns v, or 0 when v is negative or not finite.
func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// finite returns v, or 0 when v is not finite.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
