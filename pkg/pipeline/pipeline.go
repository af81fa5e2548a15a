// Package pipeline provides the load → layout → render pipeline for chartgeom.
//
// This package strings the chart document loader, the layout engine and the
// output sinks together so the CLI and library callers behave the same.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read and validate a chart document (JSON, YAML or TOML)
//  2. Layout: Compute the chart's target geometry with [chart.Build]
//  3. Render: Draw one frame of the layout in each requested format
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Path:    "sales.yaml",
//	    Formats: []string{"svg", "png"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	c, err := runner.Load(ctx, "sales.yaml")
//	l, err := runner.Layout(ctx, c, opts)
//	artifacts, err := runner.Render(ctx, l, opts)
//
// [chart.Build]: github.com/matzehuels/chartgeom/pkg/chart
package pipeline

import (
	"strings"
	"time"

	"github.com/matzehuels/chartgeom/pkg/chart"
	"github.com/matzehuels/chartgeom/pkg/errors"
	chartio "github.com/matzehuels/chartgeom/pkg/io"
)

// =============================================================================
// Default Values
// =============================================================================

// DefaultScale is the PNG resolution multiplier.
const DefaultScale = 2.0

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

// FormatOrder lists the output formats in the order they are rendered.
var FormatOrder = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON, FormatXLSX}

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatXLSX: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline. Zero values keep
// what the document specifies.
type Options struct {
	// Load options
	Path string `json:"path,omitempty"`

	// Layout overrides
	Width       float64 `json:"width,omitempty"`
	Height      float64 `json:"height,omitempty"`
	Title       string  `json:"title,omitempty"`
	Orientation string  `json:"orientation,omitempty"`
	Static      bool    `json:"static,omitempty"` // Disable the entrance animation

	// Render options
	Formats []string `json:"formats,omitempty"`
	// Progress selects the frame to render; nil renders the settled chart.
	Progress   *float64 `json:"progress,omitempty"`
	Scale      float64  `json:"scale,omitempty"`
	EmbedFont  bool     `json:"embed_font,omitempty"`
	AnimateSVG bool     `json:"animate_svg,omitempty"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Chart is the loaded document.
	Chart *chartio.Chart

	// Layout is the target geometry.
	Layout chart.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ItemCount  int
	ShapeCount int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(FormatOrder, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateProgress checks that a frame position is within [0,1].
func ValidateProgress(p float64) error {
	if !(p >= 0 && p <= 1) {
		return errors.New(errors.ErrCodeInvalidConfig, "progress must be between 0 and 1 (got %g)", p)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateForLoad checks that a document path is set and usable.
func (o *Options) ValidateForLoad() error {
	if o.Path == "" {
		return errors.New(errors.ErrCodeInvalidInput, "document path is required")
	}
	return errors.ValidateDocumentPath(o.Path)
}

// ValidateForLayout validates the layout overrides.
func (o *Options) ValidateForLayout() error {
	if err := errors.ValidateDimension("width", o.Width); err != nil {
		return err
	}
	if err := errors.ValidateDimension("height", o.Height); err != nil {
		return err
	}
	switch chart.Orientation(o.Orientation) {
	case "", chart.Vertical, chart.Horizontal:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidConfig, "invalid orientation: %q (must be one of: vertical, horizontal)", o.Orientation)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Progress != nil {
		if err := ValidateProgress(*o.Progress); err != nil {
			return err
		}
	}
	if !(o.Scale > 0 && o.Scale <= 16) {
		return errors.New(errors.ErrCodeInvalidConfig, "scale must be in (0, 16] (got %g)", o.Scale)
	}
	return nil
}

// ValidateAndSetDefaults checks the options for a full pipeline run.
func (o *Options) ValidateAndSetDefaults() error {
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	return o.ValidateForRender()
}

// FrameProgress returns the progress to render at.
func (o *Options) FrameProgress() float64 {
	if o.Progress == nil {
		return 1
	}
	return *o.Progress
}
