// Package chart lays out chart datasets as paintable geometry.
//
// Each chart kind is a pure function from a dataset and a [Config] to a
// [Layout]: the target shapes in paint order (grid first, then data, then
// labels and legend), plus the timing of their entrance animation.
//
//	l := chart.Bar([]chart.CategoricalPoint{
//	    {Label: "A", Value: 10},
//	    {Label: "B", Value: 20},
//	}, chart.DefaultConfig(chart.KindBar))
//
//	for _, s := range l.Frame(progress) {
//	    // paint s
//	}
//
// Layout functions never fail and never mutate their input. Degenerate data
// degrades instead: an empty dataset gives no shapes, a flat value range
// maps to a constant coordinate, negative bar and treemap values count as 0,
// ragged stacked values are padded with zeros and short color lists are
// padded from [colorscale.DefaultPalette].
//
// Layouts are safe to compute concurrently; they share no state.
package chart
