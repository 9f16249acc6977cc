// Package draw renders the views of a calibration-block drawing onto a
// 2D canvas.
//
// The package is the consumer of the layout engine: it takes a validated
// [block.Spec], the viewports computed by [layout.Compute] and a shared
// [label.Session], converts domain geometry into drawing-surface points via
// [geom], and issues primitive draw calls. One parameterized drawer covers
// all part profiles; profile differences are data (which arcs close, which
// edges exist), not separate per-shape functions.
//
// Drawers receive the target canvas as an explicit parameter. Nothing in
// this package holds a canvas or session between calls.
package draw

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/scanmaster/blockdraw/pkg/geom"
)

// Style describes stroke and fill for one primitive call.
type Style struct {
	Stroke string  // stroke color, empty for none
	Width  float64 // stroke width in drawing units
	Dash   string  // SVG dash pattern, empty for solid
	Fill   string  // fill color, empty for none
}

// Font describes one text call.
type Font struct {
	Size   float64
	Anchor string // "start", "middle" or "end"
	Color  string
}

// Canvas is the drawing-surface contract the view drawers paint against.
// The production implementation writes SVG; tests substitute a recorder.
// The primitive set deliberately stays within what downstream raster
// tooling can consume, so drawers clip geometry themselves instead of
// leaning on SVG clip paths.
type Canvas interface {
	Line(a, b r2.Vec, st Style)
	Polyline(pts []r2.Vec, st Style)
	Polygon(pts []r2.Vec, st Style)
	Circle(center r2.Vec, radius float64, st Style)
	Arc(center r2.Vec, radius, startDeg, endDeg float64, st Style)
	Text(p r2.Vec, s string, f Font)
}

// SVGCanvas renders primitives as SVG elements via svgo.
type SVGCanvas struct {
	c *svg.SVG
}

// NewSVGCanvas starts an SVG document of the given size on w and returns
// a canvas painting into it. Call Close to emit the closing tag.
func NewSVGCanvas(w io.Writer, width, height float64) *SVGCanvas {
	c := svg.New(w)
	c.Start(round(width), round(height))
	return &SVGCanvas{c: c}
}

// Close ends the SVG document.
func (s *SVGCanvas) Close() {
	s.c.End()
}

// Line implements Canvas.
func (s *SVGCanvas) Line(a, b r2.Vec, st Style) {
	s.c.Line(round(a.X), round(a.Y), round(b.X), round(b.Y), st.attr())
}

// Polyline implements Canvas.
func (s *SVGCanvas) Polyline(pts []r2.Vec, st Style) {
	if len(pts) < 2 {
		return
	}
	xs, ys := coords(pts)
	s.c.Polyline(xs, ys, st.attr())
}

// Polygon implements Canvas.
func (s *SVGCanvas) Polygon(pts []r2.Vec, st Style) {
	if len(pts) < 3 {
		return
	}
	xs, ys := coords(pts)
	s.c.Polygon(xs, ys, st.attr())
}

// Circle implements Canvas.
func (s *SVGCanvas) Circle(center r2.Vec, radius float64, st Style) {
	s.c.Circle(round(center.X), round(center.Y), round(radius), st.attr())
}

// Arc approximates a circular arc with a polyline, one segment per degree
// of span (minimum 30).
func (s *SVGCanvas) Arc(center r2.Vec, radius, startDeg, endDeg float64, st Style) {
	s.Polyline(geom.ArcPoints(center, radius, startDeg, endDeg), st)
}

// Text implements Canvas.
func (s *SVGCanvas) Text(p r2.Vec, text string, f Font) {
	anchor := f.Anchor
	if anchor == "" {
		anchor = "start"
	}
	color := f.Color
	if color == "" {
		color = "black"
	}
	style := fmt.Sprintf("font-family:sans-serif;font-size:%.1fpx;fill:%s;text-anchor:%s",
		f.Size, color, anchor)
	s.c.Text(round(p.X), round(p.Y), text, style)
}

// attr renders the style as an SVG style attribute value.
func (st Style) attr() string {
	var b strings.Builder
	if st.Fill != "" {
		fmt.Fprintf(&b, "fill:%s;", st.Fill)
	} else {
		b.WriteString("fill:none;")
	}
	if st.Stroke != "" {
		fmt.Fprintf(&b, "stroke:%s;stroke-width:%.2f;", st.Stroke, st.Width)
	}
	if st.Dash != "" {
		fmt.Fprintf(&b, "stroke-dasharray:%s;", st.Dash)
	}
	return "style=\"" + strings.TrimSuffix(b.String(), ";") + "\""
}

func round(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

func coords(pts []r2.Vec) ([]int, []int) {
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, p := range pts {
		xs[i] = round(p.X)
		ys[i] = round(p.Y)
	}
	return xs, ys
}
