package draw

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/scanmaster/blockdraw/pkg/block"
	"github.com/scanmaster/blockdraw/pkg/geom"
	"github.com/scanmaster/blockdraw/pkg/label"
	"github.com/scanmaster/blockdraw/pkg/layout"
)

// labelPad is the gap kept between neighbouring label boxes, drawing units.
const (
	labelPadX = 3.0
	labelPadY = 2.0
)

// Render paints the complete drawing sheet for spec onto c: the sheet
// frame, the five views in their computed viewports, and the title block.
// All labels across all views share sess, so a label accepted in one view
// pushes later labels elsewhere.
func Render(c Canvas, spec *block.Spec, lay *layout.Result, canvasW, canvasH float64, sess *label.Session) error {
	drawFrame(c, lay, canvasW, canvasH)

	top, err := lay.View(layout.ViewTop)
	if err != nil {
		return err
	}
	iso, err := lay.View(layout.ViewIso)
	if err != nil {
		return err
	}

	angles := spec.SectionAngles()
	sections := []struct {
		view  layout.ViewName
		angle float64
	}{
		{layout.ViewSectionA, angles.A},
		{layout.ViewSectionB, angles.B},
		{layout.ViewSectionC, angles.C},
	}

	// Titles go in first so feature labels route around them.
	for _, name := range layout.AllViews {
		vp, err := lay.View(name)
		if err != nil {
			return err
		}
		drawViewTitle(c, vp, lay.Policy, sess)
	}

	drawTopView(c, spec, top, lay.Policy, sess)
	for _, s := range sections {
		vp, err := lay.View(s.view)
		if err != nil {
			return err
		}
		drawSectionView(c, spec, vp, s.angle, lay.Policy, sess)
	}
	drawIsoView(c, spec, iso)

	drawTitleBlock(c, spec, lay, top.Scale, canvasW, canvasH)
	return nil
}

// drawFrame draws the sheet border at the class margin.
func drawFrame(c Canvas, lay *layout.Result, canvasW, canvasH float64) {
	m := lay.Margin
	frame := geom.Rect{X: m, Y: m, W: canvasW - 2*m, H: canvasH - 2*m}
	c.Polygon(rectCorners(frame), StyleFrame)
}

// drawViewTitle paints the viewport caption and records its box so
// labels placed later keep clear of it.
func drawViewTitle(c Canvas, vp layout.ViewPort, pol layout.ClassPolicy, sess *label.Session) {
	anchor := r2.Vec{X: vp.Rect.X + vp.Rect.W/2, Y: vp.Rect.Y + pol.TitleFont}
	size := label.Size{W: TextWidth(vp.Label, pol.TitleFont), H: LabelHeight(pol.TitleFont)}
	p := sess.Place("title:"+vp.Label, size, []r2.Vec{anchor}, labelPadX, labelPadY)
	c.Text(p.Anchor, vp.Label, Font{Size: pol.TitleFont, Anchor: "middle"})
}

// drawTitleBlock paints the identification box in the lower right corner
// of the frame: part number, profile and the top-view scale.
func drawTitleBlock(c Canvas, spec *block.Spec, lay *layout.Result, topScale, canvasW, canvasH float64) {
	const (
		blockW = 260.0
		rowH   = 18.0
	)
	m := lay.Margin
	box := geom.Rect{
		X: canvasW - m - blockW,
		Y: canvasH - m - 3*rowH,
		W: blockW,
		H: 3 * rowH,
	}
	c.Polygon(rectCorners(box), StyleFrame)
	c.Line(r2.Vec{X: box.X, Y: box.Y + rowH}, r2.Vec{X: box.Right(), Y: box.Y + rowH}, StyleDimension)
	c.Line(r2.Vec{X: box.X, Y: box.Y + 2*rowH}, r2.Vec{X: box.Right(), Y: box.Y + 2*rowH}, StyleDimension)

	font := Font{Size: lay.Policy.LabelFont}
	pad := 6.0
	rows := []string{
		fmt.Sprintf("PART %s", spec.ID),
		fmt.Sprintf("%s  %.0f°  Ø%.0f", strings.ToUpper(string(spec.Profile)), spec.Geometry.SegmentAngle, spec.Geometry.OuterDiameter()),
		fmt.Sprintf("SCALE %s", formatScale(topScale)),
	}
	for i, row := range rows {
		c.Text(r2.Vec{X: box.X + pad, Y: box.Y + float64(i)*rowH + rowH - 5}, row, font)
	}
}

// formatScale renders a drawing scale as a ratio, reducing 1:1 scales to
// the conventional form.
func formatScale(s float64) string {
	switch {
	case s >= 0.995 && s <= 1.005:
		return "1:1"
	case s < 1:
		return fmt.Sprintf("1:%.1f", 1/s)
	default:
		return fmt.Sprintf("%.1f:1", s)
	}
}

func rectCorners(r geom.Rect) []r2.Vec {
	return []r2.Vec{
		{X: r.X, Y: r.Y},
		{X: r.Right(), Y: r.Y},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.X, Y: r.Bottom()},
	}
}
