// Package pipeline provides the rendering pipeline for sunburst charts.
//
// This package implements the complete decode → build → layout → render
// pipeline used by the CLI commands and the HTTP server. Defaults live here
// so every entry point renders the same chart for the same input.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Build: decode the keyed count record and construct the tree
//  2. Layout: assign legend colors and compute the radial partition
//  3. Render: generate output in various formats (SVG, HTML, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Input:   data,
//	    Formats: []string{"svg", "html"},
//	    Seed:    7,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	root, err := pipeline.Build(ctx, opts)
//	l, colors, err := pipeline.ComputeLayout(ctx, root, opts)
//	artifacts, err := pipeline.Render(ctx, l, colors, nil, opts)
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sunburst/pkg/cache"
	"github.com/matzehuels/sunburst/pkg/errors"
	"github.com/matzehuels/sunburst/pkg/hierarchy"
	"github.com/matzehuels/sunburst/pkg/interaction"
	"github.com/matzehuels/sunburst/pkg/palette"
	"github.com/matzehuels/sunburst/pkg/partition"
	"github.com/matzehuels/sunburst/pkg/render/sunburst/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default chart width in pixels.
	DefaultWidth = sink.DefaultWidth

	// DefaultHeightRatio derives the chart height from its width.
	DefaultHeightRatio = 0.6

	// DefaultScale is the PNG resolution multiplier.
	DefaultScale = 2.0

	// DefaultTitle is the page title of HTML output.
	DefaultTitle = "Sunburst"

	// DefaultStyle is the default visual style.
	DefaultStyle = StyleSimple
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatHTML = "html"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// Style constants.
const (
	StyleSimple = "simple"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatHTML: true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	StyleSimple: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the rendering pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Build options
	Input       []byte `json:"-"`
	InputFormat string `json:"input_format,omitempty"` // json or yaml
	Source      string `json:"source,omitempty"`       // Display name of the input (file path)

	// Layout options
	Width   float64 `json:"width,omitempty"`
	Height  float64 `json:"height,omitempty"`
	Epsilon float64 `json:"epsilon,omitempty"`
	NoPrune bool    `json:"no_prune,omitempty"` // Keep arcs below the visibility threshold
	Hue     string  `json:"hue,omitempty"`
	Seed    uint64  `json:"seed,omitempty"` // 0 draws a fresh palette on every run

	// Render options
	Formats     []string `json:"formats,omitempty"`
	Style       string   `json:"style,omitempty"`
	Legend      bool     `json:"legend,omitempty"`
	Trail       bool     `json:"trail,omitempty"`
	Interactive bool     `json:"interactive,omitempty"` // Embed hover script in SVG output
	Title       string   `json:"title,omitempty"`
	Scale       float64  `json:"scale,omitempty"`
	Path        []string `json:"path,omitempty"` // Hover this node in the rendered snapshot

	// Runtime options (not serialized)
	NoCache bool        `json:"-"`
	Logger  *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Tree is the hierarchy built from the input record.
	Tree *hierarchy.Node

	// Layout is the radial partition of Tree.
	Layout *partition.Layout

	// Colors maps every record key to its legend color.
	Colors palette.ColorMap

	// State is the hover snapshot painted into the artifacts. It is nil
	// unless Options.Path was set.
	State *interaction.State

	// RecordHash is the content hash of the input.
	RecordHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount    int
	VisibleCount int
	BuildTime    time.Duration
	LayoutTime   time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(formatNames(), ", "))
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

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid style: %q (must be one of: simple)", style)
	}
	return nil
}

func formatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	slices.Sort(names)
	return names
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForBuild(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForBuild checks required fields for decoding.
func (o *Options) ValidateForBuild() error {
	if len(o.Input) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "input is required")
	}
	if o.InputFormat == "" {
		o.InputFormat = hierarchy.FormatForPath(o.Source)
	}
	if o.Source == "" {
		o.Source = "stdin"
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = o.Width * DefaultHeightRatio
	}
	if o.Epsilon == 0 && !o.NoPrune {
		o.Epsilon = partition.DefaultEpsilon
	}
	if o.NoPrune {
		o.Epsilon = 0
	}
	if o.Hue == "" {
		o.Hue = palette.DefaultHue
	}
	o.Hue = strings.ToLower(o.Hue)
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := errors.ValidateDimension("width", o.Width); err != nil {
		return err
	}
	if err := errors.ValidateDimension("height", o.Height); err != nil {
		return err
	}
	if err := errors.ValidateEpsilon(o.Epsilon); err != nil {
		return err
	}
	return palette.ValidateHue(o.Hue)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %g", o.Scale)
	}
	return errors.ValidateNodePath(o.Path)
}

// Cacheable reports whether rendered artifacts may be stored.
// Time-seeded palettes differ on every run and are never cached.
func (o *Options) Cacheable() bool {
	return !o.NoCache && o.Seed != 0
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format:      format,
		Style:       o.Style,
		Width:       o.Width,
		Height:      o.Height,
		Hue:         o.Hue,
		Seed:        o.Seed,
		Epsilon:     o.Epsilon,
		Legend:      o.Legend,
		Trail:       o.Trail,
		Interactive: o.Interactive,
		Path:        strings.Join(o.Path, "/"),
	}
	switch format {
	case FormatHTML:
		k.Title = o.Title
	case FormatPNG:
		k.Scale = o.Scale
	}
	return k
}

// HoverKeyOpts returns cache key options for a hover lookup.
func (o *Options) HoverKeyOpts() cache.HoverKeyOpts {
	return cache.HoverKeyOpts{
		Path:    o.Path,
		Epsilon: o.Epsilon,
	}
}
