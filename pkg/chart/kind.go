package chart

import (
	"fmt"
	"slices"
	"time"
)

// Kind names a chart type.
type Kind string

const (
	KindBar         Kind = "bar"
	KindLine        Kind = "line"
	KindStackedBar  Kind = "stacked-bar"
	KindStackedArea Kind = "stacked-area"
	KindHeatmap     Kind = "heatmap"
	KindTreemap     Kind = "treemap"
)

// Kinds lists every chart kind in a stable order.
var Kinds = []Kind{KindBar, KindLine, KindStackedBar, KindStackedArea, KindHeatmap, KindTreemap}

// ValidKinds is the set of supported chart kinds.
var ValidKinds = map[string]bool{
	string(KindBar):         true,
	string(KindLine):        true,
	string(KindStackedBar):  true,
	string(KindStackedArea): true,
	string(KindHeatmap):     true,
	string(KindTreemap):     true,
}

// ParseKind validates a chart kind name.
func ParseKind(s string) (Kind, error) {
	if !ValidKinds[s] {
		return "", fmt.Errorf("unknown chart kind %q", s)
	}
	return Kind(s), nil
}

// DefaultDuration returns the entrance duration used by kind when none is
// configured.
func (k Kind) DefaultDuration() time.Duration {
	switch k {
	case KindHeatmap, KindTreemap:
		return 1000 * time.Millisecond
	}
	return 800 * time.Millisecond
}

// DefaultStagger returns the per-item entrance delay used by kind.
func (k Kind) DefaultStagger() time.Duration {
	switch k {
	case KindBar, KindStackedBar, KindStackedArea:
		return 60 * time.Millisecond
	case KindLine:
		return 80 * time.Millisecond
	case KindHeatmap:
		return 8 * time.Millisecond
	case KindTreemap:
		return 40 * time.Millisecond
	}
	return 0
}

// Orientable reports whether kind honors [Config.Orientation].
func (k Kind) Orientable() bool {
	return slices.Contains([]Kind{KindBar, KindStackedBar}, k)
}

// Build lays out data as a chart of the given kind. It fails only for an
// unknown kind.
func Build(kind Kind, data Data, cfg Config) (Layout, error) {
	switch kind {
	case KindBar:
		return Bar(data.Categories, cfg), nil
	case KindLine:
		return Line(data.Series, cfg), nil
	case KindStackedBar:
		return StackedBar(data.Stacked, cfg), nil
	case KindStackedArea:
		return StackedArea(data.Stacked, cfg), nil
	case KindHeatmap:
		return Heatmap(data.Cells, cfg), nil
	case KindTreemap:
		return Treemap(data.Nodes, cfg), nil
	}
	return Layout{}, fmt.Errorf("unknown chart kind %q", kind)
}
