// Package pipeline runs the complete load → layout → draw → export flow
// for one calibration block drawing. CLI and library callers both go
// through the Runner so validation, logging and artifact naming behave
// identically everywhere.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Load: read and validate the block spec (JSON file or in-memory)
//  2. Layout: partition the canvas into viewports and pick scales
//  3. Draw: paint the five views into an SVG document
//  4. Export: encode the requested output formats from that document
//
// Each stage can be run independently or as part of the complete
// pipeline. A stage only sees validated input from the previous one.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    SpecPath: "block.json",
//	    Formats:  []string{"svg", "pdf"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/scanmaster/blockdraw/pkg/block"
	"github.com/scanmaster/blockdraw/pkg/errors"
	"github.com/scanmaster/blockdraw/pkg/export"
	"github.com/scanmaster/blockdraw/pkg/layout"
)

// Default canvas size in drawing units. Matches the report sheet the
// inspection templates are built around.
const (
	DefaultWidth  = 1400.0
	DefaultHeight = 1000.0
)

// Options configures one pipeline run. This struct supports JSON
// serialization so service callers can pass it through as a request body.
type Options struct {
	// Load options. Spec wins over SpecPath when both are set.
	SpecPath string      `json:"spec_path,omitempty"`
	Spec     *block.Spec `json:"spec,omitempty"`

	// Layout options.
	Width      float64 `json:"width,omitempty"`
	Height     float64 `json:"height,omitempty"`
	ConfigPath string  `json:"config_path,omitempty"`

	// Export options.
	Formats []string `json:"formats,omitempty"`

	// Runtime options (not serialized).
	Logger *log.Logger    `json:"-"`
	Config *layout.Config `json:"-"` // overrides ConfigPath when set

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`

	formats []export.Format
	cfg     layout.Config
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Idempotent; Execute calls it on entry.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Spec == nil && o.SpecPath == "" {
		return errors.New(errors.ErrCodeInvalidSpec, "spec or spec_path is required")
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}

	formats, err := export.ParseFormats(o.Formats)
	if err != nil {
		return err
	}
	o.formats = formats

	switch {
	case o.Config != nil:
		o.cfg = *o.Config
	case o.ConfigPath != "":
		cfg, err := layout.Load(o.ConfigPath)
		if err != nil {
			return err
		}
		o.cfg = cfg
	default:
		o.cfg = layout.DefaultConfig()
	}

	o.validated = true
	return nil
}

// Result contains the outputs of one pipeline run.
type Result struct {
	// JobID identifies this run in logs and artifact metadata.
	JobID string

	// Spec is the validated block specification the drawing was built from.
	Spec *block.Spec

	// Layout is the computed viewport partition.
	Layout *layout.Result

	// Artifacts contains the encoded outputs keyed by format name.
	Artifacts map[string][]byte

	// CacheHit is true when every artifact came from the cache.
	CacheHit bool

	// Stats contains per-stage timings.
	Stats Stats
}

// Stats contains pipeline execution timings.
type Stats struct {
	LoadTime   time.Duration
	LayoutTime time.Duration
	DrawTime   time.Duration
	ExportTime time.Duration
}

// newJobID returns the identifier stamped on one run.
func newJobID() string {
	return uuid.NewString()
}
