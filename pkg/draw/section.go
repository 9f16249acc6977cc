package draw

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/scanmaster/blockdraw/pkg/block"
	"github.com/scanmaster/blockdraw/pkg/geom"
	"github.com/scanmaster/blockdraw/pkg/label"
	"github.com/scanmaster/blockdraw/pkg/layout"
)

// sectionMatchTolerance is how close (degrees) a reflector's absolute
// angle must be to a cut plane to appear in that section.
const sectionMatchTolerance = 0.5

// hatchSpacing is the gap between section hatch lines, drawing units.
const hatchSpacing = 7.0

// drawSectionView paints one radial cross-section: the wall rectangle cut
// at angleDeg, hatched, with any reflector lying on the cut plane opened
// up and dimensioned. The horizontal axis runs from the bore (left) to
// the outer surface (right); the vertical axis is the axial width, top
// face up.
func drawSectionView(c Canvas, spec *block.Spec, vp layout.ViewPort, angleDeg float64, pol layout.ClassPolicy, sess *label.Session) {
	geo := spec.Geometry
	s := vp.Scale
	w := geo.Wall() * s
	h := geo.AxialWidth * s
	wall := geom.RectAround(vp.Rect.Center(), w, h)

	holes := cutHoles(spec, angleDeg, wall, s)

	hatchRect(c, wall, hatchSpacing)
	// Knock the hatch out of opened holes before outlining them.
	for _, hr := range holes {
		if hr.round {
			c.Circle(hr.rect.Center(), hr.rect.W/2, Style{Fill: "white"})
		} else {
			c.Polygon(rectCorners(hr.rect), Style{Fill: "white"})
		}
	}
	c.Polygon(rectCorners(wall), StyleVisible)

	for _, hr := range holes {
		drawHole(c, hr, pol, sess)
	}

	drawSectionDimensions(c, geo, wall, pol)
}

// cutHole is one reflector opened by the cut plane, in viewport
// coordinates.
type cutHole struct {
	feature block.Feature
	rect    geom.Rect // opened cavity
	round   bool      // side drilled holes read as circles in section
}

// cutHoles selects the reflectors lying on the cut plane and positions
// their cavities inside the wall rectangle.
func cutHoles(spec *block.Spec, angleDeg float64, wall geom.Rect, scale float64) []cutHole {
	var out []cutHole
	geo := spec.Geometry
	for _, f := range spec.Features {
		abs := geo.StartAngle() + f.Angle
		if math.Abs(abs-angleDeg) > sectionMatchTolerance {
			continue
		}
		cy := wall.Y + f.Axial*scale
		d := f.Diameter * scale
		depth := f.Depth * scale
		if depth > wall.W {
			depth = wall.W
		}
		switch f.Kind {
		case block.SDH:
			// Bored radially from the outer surface; the cut shows the
			// round bore at its depth.
			cx := wall.Right() - depth
			out = append(out, cutHole{
				feature: f,
				rect:    geom.RectAround(r2.Vec{X: cx, Y: cy}, d, d),
				round:   true,
			})
		default:
			// Flat bottom, machined from the outer surface inward.
			out = append(out, cutHole{
				feature: f,
				rect:    geom.Rect{X: wall.Right() - depth, Y: cy - d/2, W: depth, H: d},
			})
		}
	}
	return out
}

// drawHole outlines one opened cavity and attaches its label with a
// leader line.
func drawHole(c Canvas, h cutHole, pol layout.ClassPolicy, sess *label.Session) {
	var tip r2.Vec
	if h.round {
		c.Circle(h.rect.Center(), h.rect.W/2, StyleVisible)
		tip = r2.Vec{X: h.rect.X, Y: h.rect.Center().Y}
	} else {
		// The mouth at the outer surface stays open.
		c.Line(r2.Vec{X: h.rect.X, Y: h.rect.Y}, r2.Vec{X: h.rect.Right(), Y: h.rect.Y}, StyleVisible)
		c.Line(r2.Vec{X: h.rect.X, Y: h.rect.Bottom()}, r2.Vec{X: h.rect.Right(), Y: h.rect.Bottom()}, StyleVisible)
		c.Line(r2.Vec{X: h.rect.X, Y: h.rect.Y}, r2.Vec{X: h.rect.X, Y: h.rect.Bottom()}, StyleVisible)
		tip = r2.Vec{X: h.rect.X, Y: h.rect.Center().Y}
	}

	text := h.feature.Label
	size := label.Size{W: TextWidth(text, pol.LabelFont), H: LabelHeight(pol.LabelFont)}
	nominal := r2.Vec{X: tip.X - size.W/2 - 16, Y: tip.Y}
	p := sess.Place("section:"+text, size, label.StackCandidates(nominal, 3), labelPadX, labelPadY)
	c.Line(tip, r2.Vec{X: p.Anchor.X + size.W/2, Y: p.Anchor.Y}, StyleDimension)
	c.Text(p.Anchor, text, Font{Size: pol.LabelFont, Anchor: "middle"})
}

// drawSectionDimensions paints the wall and axial width dimension lines.
func drawSectionDimensions(c Canvas, geo block.Geometry, wall geom.Rect, pol layout.ClassPolicy) {
	const off = 12.0
	font := Font{Size: pol.LabelFont, Anchor: "middle"}

	// Wall thickness below the rectangle.
	y := wall.Bottom() + off
	c.Line(r2.Vec{X: wall.X, Y: y}, r2.Vec{X: wall.Right(), Y: y}, StyleDimension)
	c.Line(r2.Vec{X: wall.X, Y: wall.Bottom()}, r2.Vec{X: wall.X, Y: y}, StyleDimension)
	c.Line(r2.Vec{X: wall.Right(), Y: wall.Bottom()}, r2.Vec{X: wall.Right(), Y: y}, StyleDimension)
	c.Text(r2.Vec{X: wall.X + wall.W/2, Y: y + pol.LabelFont}, formatDim(geo.Wall()), font)

	// Axial width to the right.
	x := wall.Right() + off
	c.Line(r2.Vec{X: x, Y: wall.Y}, r2.Vec{X: x, Y: wall.Bottom()}, StyleDimension)
	c.Line(r2.Vec{X: wall.Right(), Y: wall.Y}, r2.Vec{X: x, Y: wall.Y}, StyleDimension)
	c.Line(r2.Vec{X: wall.Right(), Y: wall.Bottom()}, r2.Vec{X: x, Y: wall.Bottom()}, StyleDimension)
	c.Text(r2.Vec{X: x + 4, Y: wall.Y + wall.H/2}, formatDim(geo.AxialWidth), Font{Size: pol.LabelFont})
}

// formatDim renders a dimension value, dropping a trailing zero fraction.
func formatDim(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

// hatchRect fills r with 45 degree hatch lines, each trimmed to the
// rectangle so the output needs no clip path.
func hatchRect(c Canvas, r geom.Rect, spacing float64) {
	for d := -r.H; d < r.W; d += spacing {
		// Untrimmed the line runs (r.X+d, bottom) to (r.X+d+r.H, top);
		// t parametrizes it and the x bounds cut t down.
		t0 := math.Max(0, -d/r.H)
		t1 := math.Min(1, (r.W-d)/r.H)
		if t1 <= t0 {
			continue
		}
		c.Line(
			r2.Vec{X: r.X + d + t0*r.H, Y: r.Bottom() - t0*r.H},
			r2.Vec{X: r.X + d + t1*r.H, Y: r.Bottom() - t1*r.H},
			StyleHatch,
		)
	}
}
