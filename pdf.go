package cvfolio

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// pdfAssembler abstracts multi-page PDF assembly from page images.
type pdfAssembler interface {
	Assemble(bands []PageBand) ([]byte, error)
}

// Compile-time interface check.
var _ pdfAssembler = (*fpdfAssembler)(nil)

// fpdfAssembler builds an A4 PDF by placing one JPEG band per page at the
// fixed margin offset, scaled to exactly fill the printable width.
type fpdfAssembler struct{}

// Assemble produces the PDF bytes. Every band is placed at (margin, margin)
// with its physical size derived from the band's own pixel dimensions and the
// shared pixels-per-millimeter ratio, so the content fills 180mm with no
// horizontal distortion.
func (fpdfAssembler) Assemble(bands []PageBand) ([]byte, error) {
	if len(bands) == 0 {
		return nil, fmt.Errorf("%w: no pages", ErrPDFAssemble)
	}

	doc := fpdf.New(fpdf.OrientationPortrait, fpdf.UnitMillimeter, fpdf.PageSizeA4, "")
	doc.SetAutoPageBreak(false, 0)

	for i, band := range bands {
		if band.WidthPx <= 0 || band.HeightPx <= 0 {
			return nil, fmt.Errorf("%w: page %d has no pixels", ErrPDFAssemble, i+1)
		}

		ratio := float64(band.WidthPx) / printableWidthMM // px per mm
		heightMM := float64(band.HeightPx) / ratio

		name := fmt.Sprintf("page-%d", i+1)
		opts := fpdf.ImageOptions{ImageType: "JPG"}
		doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(band.JPEG))
		doc.AddPage()
		doc.ImageOptions(name, pageMarginMM, pageMarginMM, printableWidthMM, heightMM, false, opts, 0, "")

		if err := doc.Error(); err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", ErrPDFAssemble, i+1, err)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFAssemble, err)
	}
	return buf.Bytes(), nil
}
