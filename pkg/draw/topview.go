package draw

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/scanmaster/blockdraw/pkg/block"
	"github.com/scanmaster/blockdraw/pkg/geom"
	"github.com/scanmaster/blockdraw/pkg/label"
	"github.com/scanmaster/blockdraw/pkg/layout"
)

// centerMarkOverhang extends center lines past the outer edge, as a
// fraction of the outer radius.
const centerMarkOverhang = 1.12

// cutPlaneOverhang extends section cut-plane lines past the outer edge.
const cutPlaneOverhang = 1.22

// drawTopView paints the plan view: the part outline seen along the
// cylinder axis, feature marks at their angular positions, the three
// section cut planes and the feature labels.
func drawTopView(c Canvas, spec *block.Spec, vp layout.ViewPort, pol layout.ClassPolicy, sess *label.Session) {
	geo := spec.Geometry
	center := vp.Rect.Center()
	s := vp.Scale
	outer := geo.OuterRadius * s
	inner := geo.Inner() * s

	drawOutline(c, geo, center, outer, inner)
	drawCenterMarks(c, center, outer)

	featR := featureRadius(geo) * s
	if !pol.OmitGuides && len(spec.Features) > 0 {
		c.Arc(center, featR, geo.StartAngle(), geo.EndAngle(), StyleGuide)
	}

	for _, f := range spec.Features {
		abs := geo.StartAngle() + f.Angle
		pos := geom.PolarToCartesian(center, featR, abs)
		drawFeatureMark(c, pos, f, s)

		size := label.Size{W: TextWidth(f.Label, pol.LabelFont), H: LabelHeight(pol.LabelFont)}
		cands := label.RadialCandidates(center, outer+14, abs, 3)
		p := sess.Place(f.Label, size, cands, labelPadX, labelPadY)
		c.Line(pos, p.Anchor, StyleDimension)
		c.Text(p.Anchor, f.Label, Font{Size: pol.LabelFont, Anchor: "middle"})
	}

	angles := spec.SectionAngles()
	for _, cut := range []struct {
		letter string
		angle  float64
	}{{"A", angles.A}, {"B", angles.B}, {"C", angles.C}} {
		drawCutPlane(c, center, outer, cut.angle, cut.letter, pol, sess)
	}
}

// drawOutline paints the part silhouette for any profile. Full-circle
// profiles close into rings; segments get radial end edges.
func drawOutline(c Canvas, geo block.Geometry, center r2.Vec, outer, inner float64) {
	if geo.IsFullCircle() {
		c.Circle(center, outer, StyleVisible)
		if !geo.IsSolid() {
			c.Circle(center, inner, StyleVisible)
		}
		return
	}

	start, end := geo.StartAngle(), geo.EndAngle()
	c.Arc(center, outer, start, end, StyleVisible)
	if geo.IsSolid() {
		inner = 0
	} else {
		c.Arc(center, inner, start, end, StyleVisible)
	}
	for _, a := range []float64{start, end} {
		c.Line(
			geom.PolarToCartesian(center, inner, a),
			geom.PolarToCartesian(center, outer, a),
			StyleVisible,
		)
	}
}

// drawCenterMarks paints the orthogonal center lines through the part axis.
func drawCenterMarks(c Canvas, center r2.Vec, outer float64) {
	ext := outer * centerMarkOverhang
	c.Line(r2.Vec{X: center.X - ext, Y: center.Y}, r2.Vec{X: center.X + ext, Y: center.Y}, StyleCenter)
	c.Line(r2.Vec{X: center.X, Y: center.Y - ext}, r2.Vec{X: center.X, Y: center.Y + ext}, StyleCenter)
}

// drawCutPlane paints one section cut line through the center with its
// letter at the outer end.
func drawCutPlane(c Canvas, center r2.Vec, outer, angleDeg float64, letter string, pol layout.ClassPolicy, sess *label.Session) {
	ext := outer * cutPlaneOverhang
	a := geom.PolarToCartesian(center, ext, angleDeg)
	b := geom.PolarToCartesian(center, ext, angleDeg+180)
	c.Line(a, b, StyleCutPlane)

	nominal := geom.PolarToCartesian(center, ext+10, angleDeg)
	size := label.Size{W: TextWidth(letter, pol.TitleFont), H: LabelHeight(pol.TitleFont)}
	p := sess.Place("cut:"+letter, size, label.StackCandidates(nominal, 2), labelPadX, labelPadY)
	c.Text(p.Anchor, letter, Font{Size: pol.TitleFont, Anchor: "middle"})
}

// drawFeatureMark paints the reflector glyph at its plan position. Flat
// bottom holes read as an open circle with a center dot, side drilled
// holes as a crossed circle.
func drawFeatureMark(c Canvas, pos r2.Vec, f block.Feature, scale float64) {
	r := f.Diameter / 2 * scale
	if r < 2.5 {
		r = 2.5
	}
	c.Circle(pos, r, StyleVisible)
	switch f.Kind {
	case block.SDH:
		d := r * 0.7071
		c.Line(r2.Vec{X: pos.X - d, Y: pos.Y - d}, r2.Vec{X: pos.X + d, Y: pos.Y + d}, StyleDimension)
		c.Line(r2.Vec{X: pos.X - d, Y: pos.Y + d}, r2.Vec{X: pos.X + d, Y: pos.Y - d}, StyleDimension)
	default:
		c.Circle(pos, 0.8, Style{Stroke: "black", Width: 0.8, Fill: "black"})
	}
}

// featureRadius is the radial station reflectors sit at in the plan view:
// mid-wall for hollow profiles, eighty percent of the radius for solid
// bars.
func featureRadius(geo block.Geometry) float64 {
	if geo.IsSolid() {
		return geo.OuterRadius * 0.8
	}
	return (geo.OuterRadius + geo.Inner()) / 2
}
