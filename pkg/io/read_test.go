package io

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/chartgeom/pkg/animate"
	"github.com/matzehuels/chartgeom/pkg/chart"
	"github.com/matzehuels/chartgeom/pkg/errors"
	"github.com/matzehuels/chartgeom/pkg/geom"
)

const barJSON = `{
  "kind": "bar",
  "title": "Sales",
  "config": {"width": 400, "show_grid": false, "duration": 500, "easing": "ease-out"},
  "data": [
    {"label": "Q1", "value": 10, "color": "#ff0000"},
    {"label": "Q2", "value": 20}
  ],
  "unknown": true
}`

const barYAML = `
kind: bar
title: Sales
config:
  width: 400
  show_grid: false
  duration: 500
  easing: ease-out
data:
  - label: Q1
    value: 10
    color: "#ff0000"
  - label: Q2
    value: 20
`

const barTOML = `
kind = "bar"
title = "Sales"

[config]
width = 400.0
show_grid = false
duration = 500.0
easing = "ease-out"

[[data]]
label = "Q1"
value = 10.0
color = "#ff0000"

[[data]]
label = "Q2"
value = 20.0
`

func TestReadFormats(t *testing.T) {
	tests := []struct {
		format Format
		input  string
	}{
		{FormatJSON, barJSON},
		{FormatYAML, barYAML},
		{FormatTOML, barTOML},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			c, err := Read(strings.NewReader(tt.input), tt.format)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if c.Kind != chart.KindBar {
				t.Errorf("Kind = %v, want bar", c.Kind)
			}
			cfg := c.Config
			if cfg.Width != 400 || cfg.Height != chart.DefaultHeight {
				t.Errorf("size = %vx%v, want 400x%v", cfg.Width, cfg.Height, chart.DefaultHeight)
			}
			if cfg.ShowGrid {
				t.Error("ShowGrid = true, want false")
			}
			if !cfg.ShowLabels || !cfg.Animated {
				t.Error("unset booleans should keep their defaults")
			}
			if cfg.Duration != 500*time.Millisecond {
				t.Errorf("Duration = %v, want 500ms", cfg.Duration)
			}
			if cfg.Easing != animate.EaseOut {
				t.Errorf("Easing = %v, want ease-out", cfg.Easing)
			}
			if cfg.Title != "Sales" {
				t.Errorf("Title = %q", cfg.Title)
			}

			pts := c.Data.Categories
			if len(pts) != 2 {
				t.Fatalf("got %d categories, want 2", len(pts))
			}
			if pts[0].Label != "Q1" || pts[0].Value != 10 || pts[1].Value != 20 {
				t.Errorf("categories = %+v", pts)
			}
			if pts[0].Color == nil || *pts[0].Color != geom.RGB(255, 0, 0) {
				t.Errorf("color = %v, want #ff0000", pts[0].Color)
			}
			if pts[1].Color != nil {
				t.Errorf("unset color = %v, want nil", pts[1].Color)
			}
		})
	}
}

func TestReadKinds(t *testing.T) {
	t.Run("line keys", func(t *testing.T) {
		c, err := Read(strings.NewReader(`{"kind":"line","data":[{"x":1,"y":5},{"x":"b","y":7,"label":"B"}]}`), FormatJSON)
		if err != nil {
			t.Fatal(err)
		}
		s := c.Data.Series
		if len(s) != 2 || !s[0].X.IsNumber() || s[0].X.Number() != 1 || s[1].X.String() != "b" {
			t.Errorf("series = %+v", s)
		}
	})

	t.Run("yaml dates", func(t *testing.T) {
		c, err := Read(strings.NewReader("kind: line\ndata:\n  - x: 2024-01-01\n    y: 1\n"), FormatYAML)
		if err != nil {
			t.Fatal(err)
		}
		if got := c.Data.Series[0].X.String(); got != "2024-01-01" {
			t.Errorf("x = %q, want 2024-01-01", got)
		}
	})

	t.Run("stacked", func(t *testing.T) {
		c, err := Read(strings.NewReader(`{"kind":"stacked-area","config":{"series_labels":["a","b"]},"data":[{"label":"x","values":[1,2]}]}`), FormatJSON)
		if err != nil {
			t.Fatal(err)
		}
		if len(c.Data.Stacked) != 1 || len(c.Data.Stacked[0].Values) != 2 {
			t.Errorf("stacked = %+v", c.Data.Stacked)
		}
		if len(c.Config.SeriesLabels) != 2 {
			t.Errorf("SeriesLabels = %v", c.Config.SeriesLabels)
		}
	})

	t.Run("heatmap", func(t *testing.T) {
		c, err := Read(strings.NewReader(`{"kind":"heatmap","data":[{"row":"mon","col":9,"value":3}]}`), FormatJSON)
		if err != nil {
			t.Fatal(err)
		}
		cell := c.Data.Cells[0]
		if cell.Row.String() != "mon" || cell.Col.Number() != 9 || cell.Value != 3 {
			t.Errorf("cell = %+v", cell)
		}
		if c.Config.Duration != time.Second {
			t.Errorf("Duration = %v, want heatmap default 1s", c.Config.Duration)
		}
	})

	t.Run("treemap children", func(t *testing.T) {
		c, err := Read(strings.NewReader(`{"kind":"treemap","data":[{"label":"a","value":3,"children":[{"label":"a1","value":1}]}]}`), FormatJSON)
		if err != nil {
			t.Fatal(err)
		}
		n := c.Data.Nodes
		if len(n) != 1 || len(n[0].Children) != 1 || n[0].Children[0].Label != "a1" {
			t.Errorf("nodes = %+v", n)
		}
	})
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{"malformed", `{"kind":`, errors.ErrCodeInvalidDocument},
		{"empty", ``, errors.ErrCodeInvalidDocument},
		{"missing kind", `{"data":[]}`, errors.ErrCodeInvalidDocument},
		{"unknown kind", `{"kind":"pie"}`, errors.ErrCodeInvalidKind},
		{"negative width", `{"kind":"bar","config":{"width":-1}}`, errors.ErrCodeInvalidConfig},
		{"huge height", `{"kind":"bar","config":{"height":1e9}}`, errors.ErrCodeInvalidConfig},
		{"bad orientation", `{"kind":"bar","config":{"orientation":"diagonal"}}`, errors.ErrCodeInvalidConfig},
		{"bad easing", `{"kind":"bar","config":{"easing":"bounce"}}`, errors.ErrCodeInvalidConfig},
		{"bad palette", `{"kind":"bar","config":{"color_scale":["#fff","red"]}}`, errors.ErrCodeInvalidConfig},
		{"bad item color", `{"kind":"bar","data":[{"label":"a","color":"#12"}]}`, errors.ErrCodeInvalidDocument},
		{"bad child color", `{"kind":"treemap","data":[{"children":[{"color":"x"}]}]}`, errors.ErrCodeInvalidDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), FormatJSON)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestValidateFieldNames(t *testing.T) {
	err := Validate(&Document{Kind: "bar", Data: []Item{{Color: "nope"}}})
	if err == nil || !strings.Contains(err.Error(), "data[0].color") {
		t.Errorf("error = %v, want data[0].color in message", err)
	}
	if err := Validate(nil); !errors.Is(err, errors.ErrCodeInvalidDocument) {
		t.Errorf("Validate(nil) = %v", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"a.json", FormatJSON, false},
		{"a.YAML", FormatYAML, false},
		{"dir/a.yml", FormatYAML, false},
		{"a.toml", FormatTOML, false},
		{"a.csv", "", true},
		{"a", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, %v", tt.path, got, err)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(dir, "bar.yaml")
		if err := os.WriteFile(path, []byte(barYAML), 0o644); err != nil {
			t.Fatal(err)
		}
		c, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(c.Data.Categories) != 2 {
			t.Errorf("got %d categories", len(c.Data.Categories))
		}
	})

	t.Run("missing", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.json"))
		if !errors.Is(err, errors.ErrCodeFileNotFound) {
			t.Errorf("error = %v, want FILE_NOT_FOUND", err)
		}
	})

	t.Run("bad extension", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "chart.csv"))
		if !errors.Is(err, errors.ErrCodeInvalidDocument) {
			t.Errorf("error = %v, want INVALID_DOCUMENT", err)
		}
	})

	t.Run("invalid content keeps code", func(t *testing.T) {
		path := filepath.Join(dir, "pie.json")
		if err := os.WriteFile(path, []byte(`{"kind":"pie"}`), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := Load(path)
		if !errors.Is(err, errors.ErrCodeInvalidKind) {
			t.Errorf("error = %v, want INVALID_KIND", err)
		}
	})
}
