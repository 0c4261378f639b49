// Package pipeline provides the load → assemble → render pipeline shared
// by the CLI and the viewer server. Centralizing it keeps caching and
// validation behavior identical across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read and validate a serialized graph (JSON) or DOT source
//  2. Assemble: Build the network with its options and display settings
//  3. Render: Generate output artifacts (HTML, SVG, PNG)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    InputPath: "topology.json",
//	    Formats:   []string{"html"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	html := result.Artifacts["html"]
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vizlab/netvis/pkg/cache"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultHeight is the default canvas height.
	DefaultHeight = "600px"

	// DefaultWidth is the default canvas width.
	DefaultWidth = "100%"

	// DefaultBGColor is the default canvas background color.
	DefaultBGColor = "#ffffff"
)

// Input format constants.
const (
	InputJSON = "json"
	InputDOT  = "dot"
)

// Format constants for output formats.
const (
	FormatHTML = "html"
	FormatSVG  = "svg"
	FormatPNG  = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatHTML: true,
	FormatSVG:  true,
	FormatPNG:  true,
}

// ValidInputs is the set of supported input formats.
var ValidInputs = map[string]bool{
	InputJSON: true,
	InputDOT:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the visualization pipeline.
// This struct supports JSON serialization for server requests.
type Options struct {
	// Load options. Exactly one of InputPath or Input must be set.
	InputPath   string `json:"input_path,omitempty"`
	Input       []byte `json:"input,omitempty"`
	InputFormat string `json:"input_format,omitempty"` // json or dot, inferred from InputPath when empty

	// Assemble options
	Heading       string `json:"heading,omitempty"`
	Height        string `json:"height,omitempty"`
	Width         string `json:"width,omitempty"`
	BGColor       string `json:"bgcolor,omitempty"`
	FontColor     string `json:"font_color,omitempty"`
	Directed      bool   `json:"directed,omitempty"` // force directed regardless of the document flag
	Hierarchical  bool   `json:"hierarchical,omitempty"`
	NoPhysics     bool   `json:"no_physics,omitempty"`
	AutoEndpoints bool   `json:"auto_endpoints,omitempty"`
	RawOptions    string `json:"raw_options,omitempty"` // options JSON override
	ShowButtons   bool   `json:"show_buttons,omitempty"`
	SelectMenu    bool   `json:"select_menu,omitempty"`
	Highlight     bool   `json:"highlight,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Refresh bool     `json:"refresh,omitempty"` // bypass the artifact cache

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// GraphHash is the content hash of the serialized graph.
	GraphHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which artifacts hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount    int
	EdgeCount    int
	LoadTime     time.Duration
	AssembleTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for the render stage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation
// =============================================================================

// ValidateFormat checks that an output format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: html, svg, png)", format)
	}
	return nil
}

// ValidateFormats checks that all output formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateInputFormat checks that an input format is valid.
func ValidateInputFormat(format string) error {
	if !ValidInputs[format] {
		return fmt.Errorf("invalid input format: %q (must be one of: json, dot)", format)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.InputPath == "" && len(o.Input) == 0 {
		return fmt.Errorf("input_path or input is required")
	}
	if o.InputPath != "" && len(o.Input) > 0 {
		return fmt.Errorf("input_path and input are mutually exclusive")
	}

	if o.InputFormat == "" {
		o.InputFormat = inferInputFormat(o.InputPath)
	}
	if err := ValidateInputFormat(o.InputFormat); err != nil {
		return err
	}

	if o.Height == "" {
		o.Height = DefaultHeight
	}
	if o.Width == "" {
		o.Width = DefaultWidth
	}
	if o.BGColor == "" {
		o.BGColor = DefaultBGColor
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatHTML}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// DocumentKeyOpts returns cache key options for the rendered document.
func (o *Options) DocumentKeyOpts() cache.DocumentKeyOpts {
	return cache.DocumentKeyOpts{
		Height:       o.Height,
		Width:        o.Width,
		BGColor:      o.BGColor,
		FontColor:    o.FontColor,
		Heading:      o.Heading,
		Options:      o.RawOptions,
		Directed:     o.Directed,
		Hierarchical: o.Hierarchical,
		NoPhysics:    o.NoPhysics,
		ShowButtons:  o.ShowButtons,
		SelectMenu:   o.SelectMenu,
		Highlight:    o.Highlight,
	}
}
