// Package geom provides the coordinate transforms used by the drawing engine.
//
// All 2D points are gonum [r2.Vec] values in drawing-surface coordinates:
// x grows to the right, y grows downward. 3D points used by the isometric
// projection are [r3.Vec] values in part coordinates.
//
// # Angle Convention
//
// Polar angles are measured in degrees, with 0° pointing straight up on the
// drawing surface (toward −y) and positive angles turning counter-clockwise.
// Every caller in the engine relies on this convention; it matches the way
// section cut-planes and hole positions are dimensioned on the reference
// drawings.
//
// # Degenerate Inputs
//
// The transforms never panic on malformed input. A non-finite radius, angle,
// or coordinate produces a documented sentinel (the arc center, the zero
// vector, or an empty sequence) so a single bad feature cannot abort a whole
// drawing.
package geom

import (
	"iter"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// minArcSegments is the floor on the number of straight segments used to
// approximate an arc. Short arcs still get enough segments to look smooth;
// longer arcs get at least one segment per degree of span.
const minArcSegments = 30

// Pt is shorthand for constructing an r2.Vec.
func Pt(x, y float64) r2.Vec {
	return r2.Vec{X: x, Y: y}
}

// finite reports whether all values are finite numbers.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// PolarToCartesian converts a polar coordinate around center to a point on
// the drawing surface. angleDeg follows the package angle convention: 0° is
// straight up, positive angles turn counter-clockwise. The function is
// periodic in angleDeg with period 360.
//
// Non-finite input returns center unchanged, the degenerate sentinel.
func PolarToCartesian(center r2.Vec, radius, angleDeg float64) r2.Vec {
	if !finite(center.X, center.Y, radius, angleDeg) {
		return center
	}
	rad := angleDeg * math.Pi / 180
	return r2.Vec{
		X: center.X - radius*math.Sin(rad),
		Y: center.Y - radius*math.Cos(rad),
	}
}

// Arc returns a lazy sequence of points approximating the circular arc from
// startDeg to endDeg around center. The sequence is finite, deterministic and
// restartable: ranging over it twice yields identical points. The first point
// lies exactly at PolarToCartesian(center, radius, startDeg) and the last at
// PolarToCartesian(center, radius, endDeg).
//
// The segment count grows with the angular span (at least one segment per
// degree, minimum 30) so the chord error stays visually bounded regardless of
// radius. Non-finite input yields an empty sequence.
func Arc(center r2.Vec, radius, startDeg, endDeg float64) iter.Seq[r2.Vec] {
	return func(yield func(r2.Vec) bool) {
		if !finite(center.X, center.Y, radius, startDeg, endDeg) {
			return
		}
		span := endDeg - startDeg
		n := ArcSegments(span)
		for i := 0; i <= n; i++ {
			angle := startDeg + span*float64(i)/float64(n)
			if i == n {
				angle = endDeg
			}
			if !yield(PolarToCartesian(center, radius, angle)) {
				return
			}
		}
	}
}

// ArcSegments returns the number of straight segments used to approximate an
// arc spanning spanDeg degrees.
func ArcSegments(spanDeg float64) int {
	n := int(math.Ceil(math.Abs(spanDeg)))
	if n < minArcSegments {
		n = minArcSegments
	}
	return n
}

// ArcPoints collects the points of Arc into a slice. It is a convenience for
// callers that hand a complete polyline to the drawing surface.
func ArcPoints(center r2.Vec, radius, startDeg, endDeg float64) []r2.Vec {
	span := endDeg - startDeg
	pts := make([]r2.Vec, 0, ArcSegments(span)+1)
	for p := range Arc(center, radius, startDeg, endDeg) {
		pts = append(pts, p)
	}
	return pts
}

// Isometric projection constants: the two horizontal part axes map onto
// drawing-surface directions at 30° and 150° from the x axis.
var (
	isoCos = math.Cos(30 * math.Pi / 180)
	isoSin = math.Sin(30 * math.Pi / 180)
)

// IsoProject projects a 3D part-space point into the 2D isometric frame
// using the fixed 30°/150° axonometric axes with uniform scale 1. The part z
// axis maps to drawing-surface −y (up). The function is pure: repeated calls
// with the same input always produce the same output.
//
// Non-finite input returns the zero vector.
func IsoProject(p r3.Vec) r2.Vec {
	if !finite(p.X, p.Y, p.Z) {
		return r2.Vec{}
	}
	return r2.Vec{
		X: (p.X - p.Y) * isoCos,
		Y: (p.X+p.Y)*isoSin - p.Z,
	}
}

// IsoProjectAt projects p isometrically, applies a uniform scale and
// translates the result by origin. This is the form the isometric view
// drawer uses: one call per vertex, no accumulated state.
func IsoProjectAt(origin r2.Vec, p r3.Vec, scale float64) r2.Vec {
	if !finite(origin.X, origin.Y, scale) {
		return r2.Vec{}
	}
	q := IsoProject(p)
	return r2.Vec{
		X: origin.X + q.X*scale,
		Y: origin.Y + q.Y*scale,
	}
}
