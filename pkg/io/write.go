package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/chartgeom/pkg/chart"
	"github.com/matzehuels/chartgeom/pkg/errors"
	"github.com/matzehuels/chartgeom/pkg/geom"
)

// FromChart builds the document for a chart. Every config value is written
// explicitly so the document does not depend on future defaults.
func FromChart(kind chart.Kind, data chart.Data, cfg chart.Config) *Document {
	doc := &Document{
		Kind:   string(kind),
		Title:  cfg.Title,
		Config: optionsOf(cfg),
	}

	switch kind {
	case chart.KindBar:
		for _, p := range data.Categories {
			doc.Data = append(doc.Data, Item{Label: p.Label, Value: p.Value, Color: hexOf(p.Color)})
		}
	case chart.KindLine:
		for _, p := range data.Series {
			doc.Data = append(doc.Data, Item{X: keyValue(p.X), Y: p.Y, Label: p.Label})
		}
	case chart.KindStackedBar, chart.KindStackedArea:
		for _, p := range data.Stacked {
			doc.Data = append(doc.Data, Item{Label: p.Label, Values: p.Values})
		}
	case chart.KindHeatmap:
		for _, c := range data.Cells {
			doc.Data = append(doc.Data, Item{Row: keyValue(c.Row), Col: keyValue(c.Col), Value: c.Value, Label: c.Label})
		}
	case chart.KindTreemap:
		doc.Data = treeItems(data.Nodes)
	}
	return doc
}

func optionsOf(cfg chart.Config) Options {
	o := Options{
		Width:        &cfg.Width,
		Height:       &cfg.Height,
		Padding:      &cfg.Padding,
		ShowGrid:     &cfg.ShowGrid,
		ShowLabels:   &cfg.ShowLabels,
		Animated:     &cfg.Animated,
		Duration:     ms(cfg.Duration),
		Stagger:      ms(cfg.Stagger),
		Easing:       cfg.Easing.String(),
		Orientation:  string(cfg.Orientation),
		SeriesLabels: cfg.SeriesLabels,
		Background:   hexOf(cfg.Background),
	}
	for _, c := range cfg.ColorScale {
		o.ColorScale = append(o.ColorScale, c.Hex())
	}
	return o
}

func treeItems(nodes []chart.TreeNode) []Item {
	if len(nodes) == 0 {
		return nil
	}
	items := make([]Item, len(nodes))
	for i, n := range nodes {
		items[i] = Item{Label: n.Label, Value: n.Value, Color: hexOf(n.Color), Children: treeItems(n.Children)}
	}
	return items
}

func keyValue(k chart.Key) any {
	if k.IsNumber() {
		return k.Number()
	}
	return k.String()
}

func hexOf(c *geom.Color) string {
	if c == nil {
		return ""
	}
	return c.Hex()
}

func ms(d time.Duration) *float64 {
	v := float64(d) / float64(time.Millisecond)
	return &v
}

// Encode writes doc to w in the given encoding.
func Encode(w io.Writer, doc *Document, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown document format %q", format)
	}
	return nil
}

// Save writes doc to path using the encoding its extension selects.
func Save(path string, doc *Document) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Encode(f, doc, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
