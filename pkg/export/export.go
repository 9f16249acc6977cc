// Package export encodes a finished drawing into its output formats.
//
// SVG is the primary artifact: the draw package paints straight into an
// SVG canvas. PNG rasterizes that SVG, and PDF wraps the raster into an
// A4 inspection report with the part metadata and reflector table.
package export

import (
	"bytes"
	"strings"

	"github.com/samber/lo"

	"github.com/scanmaster/blockdraw/pkg/block"
	"github.com/scanmaster/blockdraw/pkg/draw"
	"github.com/scanmaster/blockdraw/pkg/errors"
	"github.com/scanmaster/blockdraw/pkg/label"
	"github.com/scanmaster/blockdraw/pkg/layout"
)

// Format names one supported output encoding.
type Format string

// Supported output formats.
const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

var validFormats = map[Format]bool{
	FormatSVG: true,
	FormatPNG: true,
	FormatPDF: true,
}

// ParseFormat normalizes and validates one format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !validFormats[f] {
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported output format %q", s)
	}
	return f, nil
}

// ParseFormats validates a format list, deduplicating while preserving
// order. An empty list defaults to SVG.
func ParseFormats(names []string) ([]Format, error) {
	if len(names) == 0 {
		return []Format{FormatSVG}, nil
	}
	out := make([]Format, 0, len(names))
	for _, n := range names {
		f, err := ParseFormat(n)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return lo.Uniq(out), nil
}

// Extension returns the file extension for the format, without the dot.
func (f Format) Extension() string { return string(f) }

// SVG renders the complete drawing sheet for spec into an SVG document.
// The layout result must come from the same geometry and canvas size.
func SVG(spec *block.Spec, lay *layout.Result, canvasW, canvasH float64) ([]byte, error) {
	var buf bytes.Buffer
	c := draw.NewSVGCanvas(&buf, canvasW, canvasH)
	if err := draw.Render(c, spec, lay, canvasW, canvasH, label.NewSession()); err != nil {
		return nil, err
	}
	c.Close()
	return buf.Bytes(), nil
}
