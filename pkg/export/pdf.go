package export

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	marotoimages "github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/scanmaster/blockdraw/pkg/block"
	"github.com/scanmaster/blockdraw/pkg/errors"
)

// Report row heights in millimetres.
const (
	pdfTitleHeight   = 12.0
	pdfSubtitle      = 7.0
	pdfDrawingHeight = 150.0
	pdfTableRow      = 6.0
)

// PDF builds the A4 inspection report: a title block, the rasterized
// drawing sheet, and the reflector table. pngBytes must hold the PNG
// produced for the same spec; the aspect ratio of the embedded image is
// preserved by maroto.
func PDF(spec *block.Spec, pngBytes []byte) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithRightMargin(10).
		WithTopMargin(10).
		WithBottomMargin(10).
		Build()
	m := maroto.New(cfg)

	titleProps := props.Text{Style: fontstyle.Bold, Size: 16, Align: align.Left}
	subProps := props.Text{Size: 10, Align: align.Left}
	m.AddRow(pdfTitleHeight, col.New(12).Add(
		text.New(fmt.Sprintf("Calibration Block %s", spec.ID), titleProps),
	))
	m.AddRow(pdfSubtitle, col.New(12).Add(
		text.New(subtitle(spec), subProps),
	))

	m.AddRow(pdfDrawingHeight, col.New(12).Add(
		marotoimages.NewFromBytes(pngBytes, extension.Png),
	))

	addReflectorTable(m, spec)

	doc, err := m.Generate()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncode, err, "generate PDF report")
	}
	return doc.GetBytes(), nil
}

func subtitle(spec *block.Spec) string {
	geo := spec.Geometry
	s := fmt.Sprintf("%s, Ø%s x %s mm, %s° span",
		spec.Profile, formatMM(geo.OuterDiameter()), formatMM(geo.AxialWidth), formatMM(geo.SegmentAngle))
	if !geo.IsSolid() {
		s += fmt.Sprintf(", wall %s mm", formatMM(geo.Wall()))
	}
	return s
}

// addReflectorTable appends the feature table, one row per reflector.
// Parts without reflectors get no table.
func addReflectorTable(m core.Maroto, spec *block.Spec) {
	if len(spec.Features) == 0 {
		return
	}
	headerProps := props.Text{Style: fontstyle.Bold, Size: 9}
	cellProps := props.Text{Size: 9}

	header := []string{"Label", "Kind", "Angle", "Axial", "Depth", "Diameter"}
	cols := make([]core.Col, 0, len(header))
	for _, h := range header {
		cols = append(cols, col.New(2).Add(text.New(h, headerProps)))
	}
	m.AddRow(pdfTableRow, cols...)

	for _, f := range spec.Features {
		cells := []string{
			f.Label,
			string(f.Kind),
			formatMM(f.Angle) + "°",
			formatMM(f.Axial),
			formatMM(f.Depth),
			"Ø" + formatMM(f.Diameter),
		}
		cols = cols[:0]
		for _, cell := range cells {
			cols = append(cols, col.New(2).Add(text.New(cell, cellProps)))
		}
		m.AddRow(pdfTableRow, cols...)
	}
}

func formatMM(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
