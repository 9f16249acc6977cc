package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"github.com/scanmaster/blockdraw/pkg/block"
	"github.com/scanmaster/blockdraw/pkg/cache"
	"github.com/scanmaster/blockdraw/pkg/errors"
	"github.com/scanmaster/blockdraw/pkg/export"
	"github.com/scanmaster/blockdraw/pkg/layout"
	"github.com/scanmaster/blockdraw/pkg/observability"
)

// Runner executes drawing pipelines. It is stateless apart from the
// cache and logger; one Runner can serve concurrent Execute calls, each
// building its own label session and layout.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given artifact cache. A nil cache
// disables caching; a nil logger falls back to log.Default.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the complete load → layout → draw → export pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		JobID:     newJobID(),
		Artifacts: make(map[string][]byte),
	}
	logger := r.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	}
	logger = logger.With("job", result.JobID)

	// Stage 1: Load
	loadStart := time.Now()
	spec, err := r.Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Spec = spec
	result.Stats.LoadTime = time.Since(loadStart)

	logger.Info("loaded spec",
		"part", spec.ID,
		"profile", spec.Profile,
		"features", len(spec.Features),
		"duration", result.Stats.LoadTime)

	// Renders are deterministic, so cached artifacts can short-circuit
	// everything past layout.
	specHash, cached := r.lookupArtifacts(ctx, spec, opts)

	// Stage 2: Layout
	layoutStart := time.Now()
	lay, err := r.ComputeLayout(ctx, spec, opts)
	result.Stats.LayoutTime = time.Since(layoutStart)
	if err != nil {
		return nil, err
	}
	result.Layout = lay

	logger.Info("computed layout",
		"class", lay.Class,
		"views", len(lay.Views),
		"duration", result.Stats.LayoutTime)

	if cached != nil {
		result.Artifacts = cached
		result.CacheHit = true
		logger.Info("reused cached artifacts", "formats", len(cached))
		return result, nil
	}

	// Stage 3+4: Draw and export
	artifacts, stats, err := r.Render(ctx, spec, lay, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.DrawTime = stats.DrawTime
	result.Stats.ExportTime = stats.ExportTime

	r.storeArtifacts(ctx, specHash, artifacts, opts)

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", stats.DrawTime+stats.ExportTime)

	return result, nil
}

// lookupArtifacts returns the spec's content hash and, when every
// requested format is already cached, the cached artifact map.
func (r *Runner) lookupArtifacts(ctx context.Context, spec *block.Spec, opts Options) (string, map[string][]byte) {
	var buf bytes.Buffer
	if err := block.WriteSpec(spec, &buf); err != nil {
		return "", nil
	}
	specHash := cache.Hash(buf.Bytes())

	artifacts := make(map[string][]byte, len(opts.formats))
	for _, f := range opts.formats {
		key := cache.ArtifactKey(specHash, string(f), opts.Width, opts.Height)
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil || !hit {
			return specHash, nil
		}
		artifacts[string(f)] = data
	}
	return specHash, artifacts
}

// storeArtifacts caches freshly rendered artifacts. Cache failures only
// cost the next run a re-render, so they are not surfaced.
func (r *Runner) storeArtifacts(ctx context.Context, specHash string, artifacts map[string][]byte, opts Options) {
	if specHash == "" {
		return
	}
	for format, data := range artifacts {
		key := cache.ArtifactKey(specHash, format, opts.Width, opts.Height)
		_ = r.Cache.Set(ctx, key, data, cache.TTLArtifact)
	}
}

// Load reads and validates the block spec named by opts. An in-memory
// spec passes through untouched; it was validated at construction.
func (r *Runner) Load(ctx context.Context, opts Options) (*block.Spec, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Spec != nil {
		return opts.Spec, nil
	}
	return block.LoadSpec(opts.SpecPath)
}

// ComputeLayout partitions the canvas for the given spec.
func (r *Runner) ComputeLayout(ctx context.Context, spec *block.Spec, opts Options) (*layout.Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hooks := observability.Render()
	hooks.OnLayoutStart(ctx, spec.ID, len(spec.Features))
	start := time.Now()

	lay, err := layout.Compute(spec.Geometry, opts.Width, opts.Height, opts.cfg)

	viewCount := 0
	if lay != nil {
		viewCount = len(lay.Views)
	}
	hooks.OnLayoutComplete(ctx, spec.ID, viewCount, time.Since(start), err)
	return lay, err
}

// Render draws the sheet and encodes every requested format. The SVG is
// painted once; PNG and PDF derive from it.
func (r *Runner) Render(ctx context.Context, spec *block.Spec, lay *layout.Result, opts Options) (map[string][]byte, Stats, error) {
	var stats Stats
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, stats, err
	}
	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}

	hooks := observability.Render()

	hooks.OnDrawStart(ctx, spec.ID)
	drawStart := time.Now()
	svgDoc, err := export.SVG(spec, lay, opts.Width, opts.Height)
	stats.DrawTime = time.Since(drawStart)
	hooks.OnDrawComplete(ctx, spec.ID, stats.DrawTime, err)
	if err != nil {
		return nil, stats, err
	}

	names := lo.Map(opts.formats, func(f export.Format, _ int) string { return string(f) })
	hooks.OnExportStart(ctx, names)
	exportStart := time.Now()

	artifacts := make(map[string][]byte, len(opts.formats))
	var pngDoc []byte
	rasterize := func() ([]byte, error) {
		if pngDoc != nil {
			return pngDoc, nil
		}
		pngDoc, err = export.PNG(svgDoc, int(opts.Width), int(opts.Height))
		return pngDoc, err
	}

	for _, f := range opts.formats {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		switch f {
		case export.FormatSVG:
			artifacts[string(f)] = svgDoc
		case export.FormatPNG:
			raster, err := rasterize()
			if err != nil {
				return nil, stats, err
			}
			artifacts[string(f)] = raster
		case export.FormatPDF:
			raster, err := rasterize()
			if err != nil {
				return nil, stats, err
			}
			doc, err := export.PDF(spec, raster)
			if err != nil {
				return nil, stats, err
			}
			artifacts[string(f)] = doc
		default:
			return nil, stats, errors.New(errors.ErrCodeInvalidFormat, "unsupported output format %q", f)
		}
	}

	stats.ExportTime = time.Since(exportStart)
	hooks.OnExportComplete(ctx, names, stats.ExportTime, nil)
	return artifacts, stats, nil
}
