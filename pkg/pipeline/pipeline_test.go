package pipeline

import (
	"testing"

	"github.com/matzehuels/chartgeom/pkg/chart"
	"github.com/matzehuels/chartgeom/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"xlsx", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %v", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateProgress(t *testing.T) {
	for _, p := range []float64{0, 0.5, 1} {
		if err := ValidateProgress(p); err != nil {
			t.Errorf("ValidateProgress(%v) = %v", p, err)
		}
	}
	for _, p := range []float64{-0.1, 1.01} {
		if err := ValidateProgress(p); err == nil {
			t.Errorf("ValidateProgress(%v) should fail", p)
		}
	}
}

func TestOptionsValidateForLoad(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateForLoad(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Missing path error = %v", err)
	}

	opts.Path = "chart.csv"
	if err := opts.ValidateForLoad(); err == nil {
		t.Error("Unsupported extension should fail")
	}

	opts.Path = "chart.yaml"
	if err := opts.ValidateForLoad(); err != nil {
		t.Errorf("Valid path should pass: %v", err)
	}
}

func TestOptionsValidateForLayout(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"zero", Options{}, false},
		{"sizes", Options{Width: 640, Height: 480}, false},
		{"horizontal", Options{Orientation: "horizontal"}, false},
		{"negative width", Options{Width: -1}, true},
		{"huge height", Options{Height: errors.MaxDimension * 2}, true},
		{"bad orientation", Options{Orientation: "sideways"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateForLayout()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateForLayout() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSetRenderDefaults(t *testing.T) {
	opts := Options{}
	opts.SetRenderDefaults()

	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats should be [svg], got %v", opts.Formats)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale should be %v, got %v", DefaultScale, opts.Scale)
	}
	if opts.FrameProgress() != 1 {
		t.Errorf("FrameProgress should default to 1, got %v", opts.FrameProgress())
	}
}

func TestOptionsValidateForRender(t *testing.T) {
	half, over := 0.5, 2.0
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"defaults", Options{}, false},
		{"frame", Options{Progress: &half}, false},
		{"all formats", Options{Formats: FormatOrder}, false},
		{"progress out of range", Options{Progress: &over}, true},
		{"negative scale", Options{Scale: -1}, true},
		{"unknown format", Options{Formats: []string{"gif"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateForRender()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateForRender() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Path: "chart.json"}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}
	formats, scale := opts.Formats, opts.Scale

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}
	if len(opts.Formats) != len(formats) || opts.Scale != scale {
		t.Error("defaults changed on second call")
	}
}

func TestApplyOverrides(t *testing.T) {
	base := chart.DefaultConfig(chart.KindBar)
	base.Title = "doc"

	got := ApplyOverrides(base, Options{})
	if got.Width != base.Width || got.Title != "doc" || !got.Animated {
		t.Errorf("zero options changed config: %+v", got)
	}

	got = ApplyOverrides(base, Options{Width: 500, Height: 250, Title: "cli", Orientation: "horizontal", Static: true})
	if got.Width != 500 || got.Height != 250 || got.Title != "cli" || got.Orientation != chart.Horizontal || got.Animated {
		t.Errorf("overrides not applied: %+v", got)
	}
}

func TestOrderedFormats(t *testing.T) {
	got := orderedFormats([]string{"json", "svg", "json", "xlsx"})
	want := []string{"svg", "json", "xlsx"}
	if len(got) != len(want) {
		t.Fatalf("orderedFormats = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("orderedFormats = %v, want %v", got, want)
		}
	}
}
