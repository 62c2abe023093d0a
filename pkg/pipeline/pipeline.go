// Package pipeline provides the chart rendering pipeline for chartlabel.
//
// This package implements the complete load → layout → render pipeline that
// is shared by the CLI and the HTTP server, so both entry points place labels
// and cache artifacts the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: decode a chart document and select one chart
//  2. Layout: draw the chart on a recording surface and collect the placed
//     labels, gauge rule and doughnut centre annotation
//  3. Render: draw the chart again on the surface of each requested format
//     (SVG, PNG, PDF) or export the layout (JSON)
//
// Layout and render results are cached by content hash.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	doc, _ := io.ImportFile("charts.yaml")
//	c, _ := doc.Chart("revenue")
//	result, err := runner.Execute(ctx, c, pipeline.Options{
//	    Formats: []string{"svg", "json"},
//	    Theme:   "dark",
//	})
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartlabel/pkg/cache"
	"github.com/matzehuels/chartlabel/pkg/chart"
	"github.com/matzehuels/chartlabel/pkg/errors"
	"github.com/matzehuels/chartlabel/pkg/label"
	"github.com/matzehuels/chartlabel/pkg/theme"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultTheme is the palette used when none is named.
	DefaultTheme = "light"

	// DefaultScale is the device pixel ratio of PNG output.
	DefaultScale = 2.0

	// MaxScale bounds PNG output size.
	MaxScale = 4.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats lists the supported output formats.
var ValidFormats = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout options
	Width  float64 `json:"width,omitempty"`  // overrides the chart's width
	Height float64 `json:"height,omitempty"` // overrides the chart's height
	Theme  string  `json:"theme,omitempty"`

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Scale      float64  `json:"scale,omitempty"`
	Background string   `json:"background,omitempty"`
	Refresh    bool     `json:"refresh,omitempty"` // bypass cache reads

	// Runtime options (not serialized)
	Logger  *log.Logger   `json:"-"`
	Palette theme.Table   `json:"-"` // resolved Theme; defaults to the builtin of that name
	Label   label.Options `json:"-"` // placement parameters; zero means defaults

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Chart is the chart that was rendered.
	Chart *chart.Chart

	// ChartHash is the content hash of the chart.
	ChartHash string

	// Layout holds the placed labels.
	Layout Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Datasets   int
	Labels     int
	Displaced  int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	return errors.ValidateFormat(format, ValidFormats)
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

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetLayoutDefaults()
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for label layout.
func (o *Options) SetLayoutDefaults() {
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	if o.Palette == nil {
		o.Palette = theme.Builtin[o.Theme]
	}
	o.Label.ValidateAndSetDefaults()
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for label layout.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if o.Palette == nil {
		return errors.New(errors.ErrCodeInvalidTheme, "unknown theme %q", o.Theme)
	}
	if err := errors.ValidateDimension("width", o.Width); err != nil {
		return err
	}
	return errors.ValidateDimension("height", o.Height)
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
	if !(o.Scale > 0 && o.Scale <= MaxScale) {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be in (0, %g], got %g", MaxScale, o.Scale)
	}
	return ValidateFormats(o.Formats)
}

// Size returns the canvas size for c, honouring the width and height
// overrides.
func (o *Options) Size(c *chart.Chart) (w, h float64) {
	w, h = c.Size()
	if o.Width > 0 {
		w = o.Width
	}
	if o.Height > 0 {
		h = o.Height
	}
	return w, h
}

// LayoutKeyOpts returns cache key options for label layout.
func (o *Options) LayoutKeyOpts(c *chart.Chart) cache.LayoutKeyOpts {
	w, h := o.Size(c)
	// Placed labels carry resolved colors, so the palette is part of the key.
	params, _ := cache.HashJSON(struct {
		Label   label.Options
		Palette theme.Table
	}{o.Label, o.Palette})
	return cache.LayoutKeyOpts{Width: w, Height: h, Options: params}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format, Theme: o.Theme, Background: o.Background}
	if format == FormatPNG {
		k.Scale = o.Scale
	}
	return k
}
