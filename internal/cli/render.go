package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scanmaster/blockdraw/pkg/errors"
	"github.com/scanmaster/blockdraw/pkg/observability"
	"github.com/scanmaster/blockdraw/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string  // output file path (single format) or base path (multiple)
	formats string  // comma-separated output formats
	width   float64 // canvas width in drawing units
	height  float64 // canvas height in drawing units
	config  string  // optional layout config TOML
	noCache bool    // bypass the artifact cache
}

// renderCommand creates the render command for generating drawings.
//
// Default settings:
//   - format: svg
//   - canvas: 1400x1000 drawing units
//   - layout: compiled-in policy, overridable with --config
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		width:  pipeline.DefaultWidth,
		height: pipeline.DefaultHeight,
	}

	cmd := &cobra.Command{
		Use:   "render [spec.json]",
		Short: "Render a block spec to drawing files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), png, pdf (comma-separated)")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "canvas width")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "canvas height")
	cmd.Flags().StringVar(&opts.config, "config", "", "layout config file (TOML)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "render even when a cached artifact exists")

	return cmd
}

// runRender executes the full pipeline for one spec file and writes every
// artifact next to the input unless --output overrides the location.
func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	ctx := cmd.Context()
	tracker := newProgress(c.Logger)

	// Surface drawing quality degradations as warnings.
	observability.SetQualityHooks(qualityWarnings{})
	defer observability.Reset()

	if opts.output != "" {
		if err := errors.ValidateOutputPath(opts.output); err != nil {
			return err
		}
	}

	result, err := c.newRunner(opts.noCache).Execute(ctx, pipeline.Options{
		SpecPath:   input,
		Width:      opts.width,
		Height:     opts.height,
		ConfigPath: opts.config,
		Formats:    parseFormats(opts.formats),
		Logger:     c.Logger,
	})
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}

	base := basePath(opts.output, input)
	single := len(result.Artifacts) == 1 && opts.output != ""

	printSuccess("Rendered %s (%s, %d features)",
		result.Spec.ID, result.Spec.Profile, len(result.Spec.Features))
	if result.CacheHit {
		printDetail("artifacts reused from cache")
	}
	for _, format := range sortedFormats(result.Artifacts) {
		path := base + "." + format
		if single {
			path = opts.output
		}
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
		}
		printFile(path)
	}
	tracker.done(fmt.Sprintf("Rendered %d format(s)", len(result.Artifacts)))

	return nil
}

// qualityWarnings prints drawing quality degradations so operators can
// adjust the spec or canvas size.
type qualityWarnings struct{}

func (qualityWarnings) OnLabelFallback(_ context.Context, label string, candidates int) {
	printWarning("label %q overlaps its neighbours (%d positions tried)", label, candidates)
}

func (qualityWarnings) OnScaleClamped(_ context.Context, view string, raw, clamped float64) {
	printWarning("view %s scale clamped from %.3f to %.3f", view, raw, clamped)
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input. If output carries
// a known format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	switch ext {
	case "svg", "png", "pdf":
		return strings.TrimSuffix(output, "."+ext)
	}
	return output
}

// sortedFormats returns artifact keys in the svg, png, pdf order.
func sortedFormats(artifacts map[string][]byte) []string {
	var out []string
	for _, f := range []string{"svg", "png", "pdf"} {
		if _, ok := artifacts[f]; ok {
			out = append(out, f)
		}
	}
	return out
}
