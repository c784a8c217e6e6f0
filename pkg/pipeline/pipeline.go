// Package pipeline provides the migration chart pipeline.
//
// This package implements the complete load → layout → render pipeline that
// every CLI command builds on. By centralizing this logic, the commands
// share defaults, caching and validation.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read migration records from a CSV file or a MongoDB collection
//  2. Layout: Build the reason → species → continent tree and partition it
//  3. Render: Zoom to a focus and write the chart in one or more formats
//     (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Input:   "bird_migration_data.csv",
//	    Focus:   []string{"Feeding"},
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	ds, err := runner.Load(ctx, opts)
//	lay, err := runner.Layout(ctx, ds, opts)
//	artifacts, err := runner.Render(ctx, lay, opts)
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/cache"
	apperr "github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/errors"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/hierarchy"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/partition"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/record"
	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/zoom"
)

// =============================================================================
// Default Values - Single Source of Truth for every command
// =============================================================================

const (
	// DefaultRootName names the root of the migration hierarchy.
	DefaultRootName = hierarchy.DefaultRootName

	// DefaultPadAngle is the gap between adjacent arcs in radians.
	DefaultPadAngle = partition.DefaultPadAngle

	// DefaultSize is the chart width and height in pixels.
	DefaultSize = 600.0

	// DefaultScale is the PNG resolution multiplier.
	DefaultScale = 2.0

	// DefaultView is the default chart.
	DefaultView = ViewSunburst
)

// View constants for chart types.
const (
	ViewSunburst = "sunburst"
	ViewTree     = "tree"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidViews is the set of supported charts.
var ValidViews = map[string]bool{
	ViewSunburst: true,
	ViewTree:     true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the chart pipeline.
type Options struct {
	// Load options. Exactly one of Input and Mongo is set.
	Input   string              `json:"input,omitempty"` // CSV path
	Mongo   *record.MongoSource `json:"-"`
	Columns record.Columns      `json:"columns,omitempty"`
	Refresh bool                `json:"refresh,omitempty"` // bypass the dataset cache

	// Layout options
	RootName    string  `json:"root_name,omitempty"`
	PadAngle    float64 `json:"pad_angle,omitempty"` // 0 selects DefaultPadAngle, negative disables
	SortByValue bool    `json:"sort_by_value,omitempty"`

	// Navigation options
	Focus []string     `json:"focus,omitempty"` // names from the outermost ring inward
	Zoom  zoom.Options `json:"-"`

	// Render options
	View     string   `json:"view,omitempty"`
	Formats  []string `json:"formats,omitempty"`
	Size     float64  `json:"size,omitempty"`
	NoLabels bool     `json:"no_labels,omitempty"`
	Tooltips bool     `json:"tooltips,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // tree view: counts and shares in node labels
	Scale    float64  `json:"scale,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Dataset is the loaded records.
	Dataset *Dataset

	// Layout is the counted tree and its partition.
	Layout *Layout

	// Frame is the settled view of the requested focus.
	Frame zoom.Frame

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Records    int
	Included   int
	Excluded   int
	NodeCount  int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LoadHit   bool // Whether the records came from cache
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return apperr.New(apperr.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
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

// ValidateView checks that a chart type is valid.
func ValidateView(view string) error {
	if !ValidViews[view] {
		return apperr.New(apperr.ErrCodeInvalidInput, "invalid view: %q (must be one of: sunburst, tree)", view)
	}
	return nil
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
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks that exactly one record source is configured.
func (o *Options) ValidateForLoad() error {
	switch {
	case o.Input == "" && o.Mongo == nil:
		return apperr.New(apperr.ErrCodeInvalidInput, "a CSV file or a MongoDB source is required")
	case o.Input != "" && o.Mongo != nil:
		return apperr.New(apperr.ErrCodeInvalidInput, "use either a CSV file or a MongoDB source, not both")
	case o.Mongo != nil:
		if err := apperr.ValidateURI(o.Mongo.URI, "mongodb", "mongodb+srv"); err != nil {
			return err
		}
		if o.Mongo.Database == "" || o.Mongo.Collection == "" {
			return apperr.New(apperr.ErrCodeInvalidConfig, "MongoDB source needs a database and a collection")
		}
	}
	o.setLoggerDefault()
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.RootName == "" {
		o.RootName = DefaultRootName
	}
	if o.PadAngle == 0 {
		o.PadAngle = DefaultPadAngle
	}
	o.setLoggerDefault()
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.View == "" {
		o.View = DefaultView
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	o.Zoom.SetDefaults()
	o.setLoggerDefault()
}

// ValidateForRender validates and sets defaults for navigation and rendering.
func (o *Options) ValidateForRender() error {
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := ValidateView(o.View); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Size < 0 || o.Scale < 0 {
		return apperr.New(apperr.ErrCodeInvalidInput, "size and scale must be positive")
	}
	return apperr.ValidateFocusPath(o.Focus)
}

func (o *Options) setLoggerDefault() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Source describes the configured record source for logs.
func (o *Options) Source() string {
	if o.Mongo != nil {
		return fmt.Sprintf("mongodb:%s.%s", o.Mongo.Database, o.Mongo.Collection)
	}
	return o.Input
}

// DatasetKeyOpts returns cache key options for loading.
func (o *Options) DatasetKeyOpts() cache.DatasetKeyOpts {
	c := o.Columns.WithDefaults()
	return cache.DatasetKeyOpts{Columns: []string{
		c.Reason, c.Species, c.Continent, c.Habitat, c.WeatherCondition, c.MigrationStatus,
		c.Temperature, c.Humidity, c.Pressure, c.WindSpeed, c.StartMonth, c.EndMonth,
	}}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		RootName:    o.RootName,
		PadAngle:    o.PadAngle,
		SortByValue: o.SortByValue,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:       format,
		View:         o.View,
		Focus:        slices.Clone(o.Focus),
		Size:         o.Size,
		Scale:        o.Scale,
		Labels:       !o.NoLabels,
		Tooltips:     o.Tooltips,
		Detailed:     o.Detailed,
		MinDepth:     o.Zoom.MinVisibleDepth,
		MaxDepth:     o.Zoom.MaxVisibleDepth,
		LabelMinArea: o.Zoom.LabelMinArea,
	}
}

// FocusString renders a focus path for messages.
func FocusString(path []string) string {
	if len(path) == 0 {
		return "(root)"
	}
	return strings.Join(path, " / ")
}
