package io

import (
	"fmt"
	"time"

	"github.com/matzehuels/chartgeom/pkg/animate"
	"github.com/matzehuels/chartgeom/pkg/chart"
	"github.com/matzehuels/chartgeom/pkg/geom"
)

// Document is the on-disk form of a chart.
type Document struct {
	Kind   string  `json:"kind" yaml:"kind" toml:"kind" validate:"required,chartkind"`
	Title  string  `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Config Options `json:"config" yaml:"config" toml:"config"`
	Data   []Item  `json:"data" yaml:"data" toml:"data" validate:"dive"`
}

// Options is the config section of a document. Nil fields keep the kind's
// default.
type Options struct {
	Width      *float64 `json:"width,omitempty" yaml:"width,omitempty" toml:"width,omitempty" validate:"omitempty,gte=0,lte=20000"`
	Height     *float64 `json:"height,omitempty" yaml:"height,omitempty" toml:"height,omitempty" validate:"omitempty,gte=0,lte=20000"`
	Padding    *float64 `json:"padding,omitempty" yaml:"padding,omitempty" toml:"padding,omitempty" validate:"omitempty,gte=0"`
	ShowGrid   *bool    `json:"show_grid,omitempty" yaml:"show_grid,omitempty" toml:"show_grid,omitempty"`
	ShowLabels *bool    `json:"show_labels,omitempty" yaml:"show_labels,omitempty" toml:"show_labels,omitempty"`
	Animated   *bool    `json:"animated,omitempty" yaml:"animated,omitempty" toml:"animated,omitempty"`

	// Duration and Stagger are milliseconds.
	Duration *float64 `json:"duration,omitempty" yaml:"duration,omitempty" toml:"duration,omitempty" validate:"omitempty,gte=0"`
	Stagger  *float64 `json:"stagger,omitempty" yaml:"stagger,omitempty" toml:"stagger,omitempty" validate:"omitempty,gte=0"`
	Easing   string   `json:"easing,omitempty" yaml:"easing,omitempty" toml:"easing,omitempty" validate:"omitempty,easing"`

	ColorScale   []string `json:"color_scale,omitempty" yaml:"color_scale,omitempty" toml:"color_scale,omitempty" validate:"omitempty,dive,color"`
	Orientation  string   `json:"orientation,omitempty" yaml:"orientation,omitempty" toml:"orientation,omitempty" validate:"omitempty,orientation"`
	SeriesLabels []string `json:"series_labels,omitempty" yaml:"series_labels,omitempty" toml:"series_labels,omitempty"`
	Background   string   `json:"background,omitempty" yaml:"background,omitempty" toml:"background,omitempty" validate:"omitempty,color"`
}

// Item is one data record. Which fields are read depends on the kind; see
// the package documentation.
type Item struct {
	Label    string    `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	Value    float64   `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
	Values   []float64 `json:"values,omitempty" yaml:"values,omitempty" toml:"values,omitempty"`
	X        any       `json:"x,omitempty" yaml:"x,omitempty" toml:"x,omitempty"`
	Y        float64   `json:"y,omitempty" yaml:"y,omitempty" toml:"y,omitempty"`
	Row      any       `json:"row,omitempty" yaml:"row,omitempty" toml:"row,omitempty"`
	Col      any       `json:"col,omitempty" yaml:"col,omitempty" toml:"col,omitempty"`
	Color    string    `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty" validate:"omitempty,color"`
	Children []Item    `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty" validate:"dive"`
}

// Chart is a decoded, validated document ready for layout.
type Chart struct {
	Kind   chart.Kind
	Data   chart.Data
	Config chart.Config
}

// Chart converts a validated document. Call [Validate] first; Chart only
// reports errors that validation cannot see.
func (d *Document) Chart() (*Chart, error) {
	kind, err := chart.ParseKind(d.Kind)
	if err != nil {
		return nil, err
	}
	cfg, err := d.Config.apply(chart.DefaultConfig(kind))
	if err != nil {
		return nil, err
	}
	cfg.Title = d.Title

	c := &Chart{Kind: kind, Config: cfg}
	switch kind {
	case chart.KindBar:
		c.Data.Categories = make([]chart.CategoricalPoint, len(d.Data))
		for i, it := range d.Data {
			col, err := optionalColor(it.Color)
			if err != nil {
				return nil, fmt.Errorf("data[%d]: %w", i, err)
			}
			c.Data.Categories[i] = chart.CategoricalPoint{Label: it.Label, Value: it.Value, Color: col}
		}
	case chart.KindLine:
		c.Data.Series = make([]chart.SeriesPoint, len(d.Data))
		for i, it := range d.Data {
			c.Data.Series[i] = chart.SeriesPoint{X: keyOf(it.X), Y: it.Y, Label: it.Label}
		}
	case chart.KindStackedBar, chart.KindStackedArea:
		c.Data.Stacked = make([]chart.StackedPoint, len(d.Data))
		for i, it := range d.Data {
			c.Data.Stacked[i] = chart.StackedPoint{Label: it.Label, Values: it.Values}
		}
	case chart.KindHeatmap:
		c.Data.Cells = make([]chart.HeatCell, len(d.Data))
		for i, it := range d.Data {
			c.Data.Cells[i] = chart.HeatCell{Row: keyOf(it.Row), Col: keyOf(it.Col), Value: it.Value, Label: it.Label}
		}
	case chart.KindTreemap:
		nodes, err := treeNodes(d.Data)
		if err != nil {
			return nil, err
		}
		c.Data.Nodes = nodes
	}
	return c, nil
}

func (o Options) apply(cfg chart.Config) (chart.Config, error) {
	if o.Width != nil {
		cfg.Width = *o.Width
	}
	if o.Height != nil {
		cfg.Height = *o.Height
	}
	if o.Padding != nil {
		cfg.Padding = *o.Padding
	}
	if o.ShowGrid != nil {
		cfg.ShowGrid = *o.ShowGrid
	}
	if o.ShowLabels != nil {
		cfg.ShowLabels = *o.ShowLabels
	}
	if o.Animated != nil {
		cfg.Animated = *o.Animated
	}
	if o.Duration != nil {
		cfg.Duration = millis(*o.Duration)
	}
	if o.Stagger != nil {
		cfg.Stagger = millis(*o.Stagger)
	}
	if o.Easing != "" {
		e, err := animate.ParseEasing(o.Easing)
		if err != nil {
			return cfg, err
		}
		cfg.Easing = e
	}
	if len(o.ColorScale) > 0 {
		cfg.ColorScale = make([]geom.Color, len(o.ColorScale))
		for i, s := range o.ColorScale {
			c, err := geom.ParseColor(s)
			if err != nil {
				return cfg, fmt.Errorf("color_scale[%d]: %w", i, err)
			}
			cfg.ColorScale[i] = c
		}
	}
	if o.Orientation != "" {
		cfg.Orientation = chart.Orientation(o.Orientation)
	}
	cfg.SeriesLabels = o.SeriesLabels
	if o.Background != "" {
		c, err := geom.ParseColor(o.Background)
		if err != nil {
			return cfg, fmt.Errorf("background: %w", err)
		}
		cfg.Background = &c
	}
	return cfg, nil
}

func treeNodes(items []Item) ([]chart.TreeNode, error) {
	if len(items) == 0 {
		return nil, nil
	}
	nodes := make([]chart.TreeNode, len(items))
	for i, it := range items {
		col, err := optionalColor(it.Color)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", it.Label, err)
		}
		children, err := treeNodes(it.Children)
		if err != nil {
			return nil, err
		}
		nodes[i] = chart.TreeNode{Label: it.Label, Value: it.Value, Color: col, Children: children}
	}
	return nodes, nil
}

func optionalColor(s string) (*geom.Color, error) {
	if s == "" {
		return nil, nil
	}
	c, err := geom.ParseColor(s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// keyOf converts a decoded key. YAML decodes unquoted dates as time.Time;
// those are kept as ISO date strings.
func keyOf(v any) chart.Key {
	if t, ok := v.(time.Time); ok {
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
			return chart.Str(t.Format(time.DateOnly))
		}
		return chart.Str(t.Format(time.RFC3339))
	}
	return chart.KeyOf(v)
}

func millis(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
