package export

import (
	"bytes"
	"image"
	"image/png"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/scanmaster/blockdraw/pkg/errors"
)

// PNG rasterizes an SVG document produced by SVG at a 1:1 pixel scale.
// Width and height are the canvas dimensions the SVG was rendered at.
func PNG(svgBytes []byte, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "raster size %dx%d out of range", width, height)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgBytes), oksvg.StrictErrorMode)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncode, err, "parse SVG for rasterization")
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	// White sheet; the SVG has no background rect of its own.
	for i := range rgba.Pix {
		rgba.Pix[i] = 0xff
	}

	scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncode, err, "encode PNG")
	}
	return buf.Bytes(), nil
}
