package draw

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/scanmaster/blockdraw/pkg/block"
	"github.com/scanmaster/blockdraw/pkg/geom"
	"github.com/scanmaster/blockdraw/pkg/layout"
)

// isoRimStepDeg is the rim tessellation step for projected circles.
const isoRimStepDeg = 4.0

// drawIsoView paints the pictorial view: the part extruded along its
// axis under the standard 30 degree isometric projection. Top rim edges
// are visible, the bottom rim is drawn hidden where the body occludes
// it, and silhouette edges connect the two.
func drawIsoView(c Canvas, spec *block.Spec, vp layout.ViewPort) {
	geo := spec.Geometry
	s := vp.Scale
	origin := vp.Rect.Center()
	half := geo.AxialWidth / 2

	start, end := geo.StartAngle(), geo.EndAngle()
	if geo.IsFullCircle() {
		start, end = 0, 360
	}

	// Top face.
	c.Polyline(rimPoints(origin, geo.OuterRadius, half, start, end, s), StyleVisible)
	if !geo.IsSolid() {
		c.Polyline(rimPoints(origin, geo.Inner(), half, start, end, s), StyleVisible)
	}

	// Bottom face, hidden behind the body.
	c.Polyline(rimPoints(origin, geo.OuterRadius, -half, start, end, s), StyleHidden)

	if geo.IsFullCircle() {
		// Silhouette edges sit at the projection extremes of the rim.
		for _, a := range []float64{-45, 135} {
			c.Line(
				rimPoint(origin, geo.OuterRadius, half, a, s),
				rimPoint(origin, geo.OuterRadius, -half, a, s),
				StyleVisible,
			)
		}
	} else {
		drawSegmentEnds(c, geo, origin, half, start, end, s)
	}
}

// drawSegmentEnds closes a partial profile: the axial edges at both cut
// faces, outer and inner, plus the radial face edges on the top rim.
func drawSegmentEnds(c Canvas, geo block.Geometry, origin r2.Vec, half, start, end, s float64) {
	inner := geo.Inner()
	for _, a := range []float64{start, end} {
		outerTop := rimPoint(origin, geo.OuterRadius, half, a, s)
		outerBot := rimPoint(origin, geo.OuterRadius, -half, a, s)
		c.Line(outerTop, outerBot, StyleVisible)

		if geo.IsSolid() {
			axisTop := rimPoint(origin, 0, half, a, s)
			c.Line(axisTop, outerTop, StyleVisible)
			continue
		}
		innerTop := rimPoint(origin, inner, half, a, s)
		innerBot := rimPoint(origin, inner, -half, a, s)
		c.Line(innerTop, innerBot, StyleVisible)
		c.Line(innerTop, outerTop, StyleVisible)
		c.Line(innerBot, outerBot, StyleHidden)
	}
}

// rimPoint projects one point of the rim circle at angle a (degrees,
// same frame as the plan view) and height z onto the viewport.
func rimPoint(origin r2.Vec, radius, z, a, scale float64) r2.Vec {
	rad := a * math.Pi / 180
	p := r3.Vec{X: radius * math.Sin(rad), Y: radius * math.Cos(rad), Z: z}
	return geom.IsoProjectAt(origin, p, scale)
}

// rimPoints tessellates the rim arc from start to end at height z.
func rimPoints(origin r2.Vec, radius, z, start, end, scale float64) []r2.Vec {
	span := end - start
	n := int(math.Ceil(math.Abs(span) / isoRimStepDeg))
	if n < 1 {
		n = 1
	}
	pts := make([]r2.Vec, 0, n+1)
	for i := 0; i <= n; i++ {
		a := start + span*float64(i)/float64(n)
		pts = append(pts, rimPoint(origin, radius, z, a, scale))
	}
	return pts
}
