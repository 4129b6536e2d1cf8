package output

import (
	"image"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

// writePDF writes img as a single-page PDF file, using one PDF point per
// pixel.
func writePDF(fileName string, img *image.Gray) error {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()

	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Black background, so that only the non-black runs need to be drawn.
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(width), float64(height))
	page.Fill()

	// PDF origin is bottom-left, image rows go top to bottom.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})

	for y := range height {
		for _, seg := range rowRuns(img.Pix[y*img.Stride : y*img.Stride+width]) {
			if seg.level == 0 {
				continue
			}
			page.SetFillColor(color.DeviceGray(float64(seg.level) / 255))
			page.Rectangle(float64(seg.x0), float64(y), float64(seg.x1-seg.x0), 1)
			page.Fill()
		}
	}

	return page.Close()
}

// run is a maximal horizontal sequence x0 <= x < x1 of pixels with the
// same gray level.
type run struct {
	x0, x1 int
	level  uint8
}

// rowRuns splits a row of pixels into runs of equal gray level.
func rowRuns(row []byte) []run {
	var runs []run
	for x0 := 0; x0 < len(row); {
		x1 := x0 + 1
		for x1 < len(row) && row[x1] == row[x0] {
			x1++
		}
		runs = append(runs, run{x0: x0, x1: x1, level: row[x0]})
		x0 = x1
	}
	return runs
}
