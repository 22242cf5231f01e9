package worker

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/jung-kurt/gofpdf"

	"resumeforge/internal/render"
)

// A4 paper metrics in millimeters.
const (
	pageWidthMM  = 210.0
	pageHeightMM = 297.0
)

// paginate slices a full-height raster of the document into A4-page bands
// and embeds each band as one PDF page. The raster must be the output of
// rasterizeHTML: render.PageWidthPx * rasterScale pixels wide, arbitrary
// height. The final band keeps its proportional height, so a trailing
// partial page shows content at the top and white space below, matching the
// on-screen page boundaries.
func paginate(raster []byte) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(raster))
	if err != nil {
		return nil, fmt.Errorf("decode raster: %w", err)
	}

	sub, ok := img.(interface {
		SubImage(image.Rectangle) image.Image
	})
	if !ok {
		return nil, fmt.Errorf("raster image type %T does not support slicing", img)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if wantWidth := render.PageWidthPx * rasterScale; width != wantWidth {
		return nil, fmt.Errorf("raster width %dpx, want %dpx", width, wantWidth)
	}
	if height == 0 {
		return nil, fmt.Errorf("raster has zero height")
	}

	bandHeight := render.PageHeightPx * rasterScale

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	for pageIdx, top := 0, bounds.Min.Y; top < bounds.Max.Y; pageIdx, top = pageIdx+1, top+bandHeight {
		bottom := top + bandHeight
		if bottom > bounds.Max.Y {
			bottom = bounds.Max.Y
		}

		band := sub.SubImage(image.Rect(bounds.Min.X, top, bounds.Max.X, bottom))
		var buf bytes.Buffer
		if err := png.Encode(&buf, band); err != nil {
			return nil, fmt.Errorf("encode page band %d: %w", pageIdx+1, err)
		}

		name := fmt.Sprintf("band-%d", pageIdx)
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(name, opts, &buf)

		// Height in mm proportional to the band's pixel height keeps a
		// trailing partial band from being stretched to a full page.
		bandMM := float64(bottom-top) / float64(bandHeight) * pageHeightMM

		pdf.AddPage()
		pdf.ImageOptions(name, 0, 0, pageWidthMM, bandMM, false, opts, 0, "")
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("assemble pdf: %w", err)
	}
	return out.Bytes(), nil
}

// pageCount reports how many A4 bands a raster of the given pixel height
// needs. Exposed for the enqueue-side size estimate.
func pageCount(rasterHeight int) int {
	bandHeight := render.PageHeightPx * rasterScale
	if rasterHeight <= 0 {
		return 0
	}
	return (rasterHeight + bandHeight - 1) / bandHeight
}
