package layout

import (
	"context"
	"math"

	"github.com/scanmaster/blockdraw/pkg/block"
	"github.com/scanmaster/blockdraw/pkg/errors"
	"github.com/scanmaster/blockdraw/pkg/geom"
	"github.com/scanmaster/blockdraw/pkg/observability"
)

// ViewName identifies one region on the drawing page.
type ViewName string

// The five views of a calibration-block drawing.
const (
	ViewTop      ViewName = "top"
	ViewSectionA ViewName = "section-a"
	ViewSectionB ViewName = "section-b"
	ViewSectionC ViewName = "section-c"
	ViewIso      ViewName = "iso"
)

// AllViews lists the view names in drawing order.
var AllViews = []ViewName{ViewTop, ViewSectionA, ViewSectionB, ViewSectionC, ViewIso}

// ViewPort is one named region of the canvas together with the scale its
// content renders at. ViewPorts are created fresh by Compute on every
// render call and never mutated afterwards.
type ViewPort struct {
	Rect  geom.Rect
	Scale float64
	Label string
}

// Result is the output of one layout computation.
type Result struct {
	Views  map[ViewName]ViewPort
	Class  SizeClass
	Margin float64
	Policy ClassPolicy
}

// View returns a viewport by name.
func (r *Result) View(name ViewName) (ViewPort, error) {
	vp, ok := r.Views[name]
	if !ok {
		return ViewPort{}, errors.New(errors.ErrCodeViewNotFound, "no viewport named %q", name)
	}
	return vp, nil
}

// Isometric projection extent factors for a cylinder of radius R and height
// H: the projected width is 2·R·√2·cos30° and the projected height is
// R·√2·sin30°·2 + H. Derived from the 30°/150° axes in pkg/geom.
var (
	isoWidthFactor  = 2 * math.Sqrt2 * math.Cos(30*math.Pi/180)
	isoHeightFactor = math.Sqrt2 // 2·√2·sin30°
)

// Compute partitions a canvas into the five named viewports for the given
// part and returns them with their scales. The rectangles always lie inside
// the canvas minus the size-class margin and never overlap one another;
// both properties hold by construction of the fraction table.
//
// Top and isometric scales fit the part's overall bounding box. Section
// scales fit the cross-section (wall thickness by axial width) instead,
// since a thin-walled large ring would otherwise render its section as a
// hairline.
func Compute(geo block.Geometry, canvasW, canvasH float64, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !isFinitePositive(canvasW) || !isFinitePositive(canvasH) {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"canvas size must be positive, got %vx%v", canvasW, canvasH)
	}

	class := cfg.Classify(geo.OuterDiameter())
	policy := cfg.Policy(class)
	margin := cfg.MarginFor(class)

	usableW := canvasW - 2*margin
	usableH := canvasH - 2*margin
	if usableW <= 0 || usableH <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"canvas %vx%v too small for margin %v", canvasW, canvasH, margin)
	}

	// Column x positions, left to right. Width fractions apply to the full
	// canvas width (the reference standard dimensions them that way); the
	// right column absorbs the margins as the remainder.
	leftW := canvasW * policy.LeftColumn
	topW := canvasW * policy.TopView
	rightW := usableW - leftW - topW
	if rightW <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"canvas %vx%v leaves no room for the right column", canvasW, canvasH)
	}

	leftX := margin
	topX := leftX + leftW
	rightX := topX + topW

	// Left column rows: section A-A above section B-B.
	secAH := usableH * policy.SectionRow
	secBH := usableH - secAH

	// Right column rows: isometric above section C-C.
	isoH := usableH * policy.IsoRow
	secCH := usableH - isoH

	rects := map[ViewName]geom.Rect{
		ViewTop:      {X: topX, Y: margin, W: topW, H: usableH},
		ViewSectionA: {X: leftX, Y: margin, W: leftW, H: secAH},
		ViewSectionB: {X: leftX, Y: margin + secAH, W: leftW, H: secBH},
		ViewIso:      {X: rightX, Y: margin, W: rightW, H: isoH},
		ViewSectionC: {X: rightX, Y: margin + isoH, W: rightW, H: secCH},
	}

	dia := geo.OuterDiameter()
	isoContentW := geo.OuterRadius * isoWidthFactor
	isoContentH := geo.OuterRadius*isoHeightFactor + geo.AxialWidth

	scales := map[ViewName]float64{
		ViewTop:      cfg.Fit(dia, dia, rects[ViewTop].W, rects[ViewTop].H),
		ViewIso:      cfg.Fit(isoContentW, isoContentH, rects[ViewIso].W, rects[ViewIso].H),
		ViewSectionA: sectionScale(geo, rects[ViewSectionA], cfg),
		ViewSectionB: sectionScale(geo, rects[ViewSectionB], cfg),
		ViewSectionC: sectionScale(geo, rects[ViewSectionC], cfg),
	}

	labels := map[ViewName]string{
		ViewTop:      "TOP VIEW",
		ViewSectionA: "SECTION A-A",
		ViewSectionB: "SECTION B-B",
		ViewSectionC: "SECTION C-C",
		ViewIso:      "ISOMETRIC",
	}

	rawScales := map[ViewName]float64{
		ViewTop:      cfg.fitRaw(dia, dia, rects[ViewTop].W, rects[ViewTop].H),
		ViewIso:      cfg.fitRaw(isoContentW, isoContentH, rects[ViewIso].W, rects[ViewIso].H),
		ViewSectionA: cfg.fitRaw(geo.Wall(), geo.AxialWidth, rects[ViewSectionA].W, rects[ViewSectionA].H),
		ViewSectionB: cfg.fitRaw(geo.Wall(), geo.AxialWidth, rects[ViewSectionB].W, rects[ViewSectionB].H),
		ViewSectionC: cfg.fitRaw(geo.Wall(), geo.AxialWidth, rects[ViewSectionC].W, rects[ViewSectionC].H),
	}
	quality := observability.Quality()
	for name, raw := range rawScales {
		if raw != scales[name] {
			quality.OnScaleClamped(context.Background(), string(name), raw, scales[name])
		}
	}

	views := make(map[ViewName]ViewPort, len(rects))
	for name, rect := range rects {
		views[name] = ViewPort{Rect: rect, Scale: scales[name], Label: labels[name]}
	}

	return &Result{Views: views, Class: class, Margin: margin, Policy: policy}, nil
}

// sectionScale fits the part's cross-section into a section viewport. The
// content box is wall thickness by axial width, the actual extent of a
// radial cut, rather than the part's overall bounding box.
func sectionScale(geo block.Geometry, rect geom.Rect, cfg Config) float64 {
	return cfg.Fit(geo.Wall(), geo.AxialWidth, rect.W, rect.H)
}
