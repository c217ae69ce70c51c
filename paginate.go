package cvfolio

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"math"
)

// Physical page geometry (A4 portrait) and raster constants.
const (
	printableWidthMM  = 180.0 // Content width on paper
	pageHeightMM      = 297.0 // A4 height
	pageMarginMM      = 15.0  // Uniform margin on all sides
	printableHeightMM = pageHeightMM - 2*pageMarginMM // 267mm of content per page

	// CSS reference density: 96 DPI, 25.4mm per inch.
	cssPxPerMM = 96.0 / 25.4

	// superSample is the fixed rasterization scale factor. The bitmap comes
	// back superSample times wider than the printable width in CSS pixels.
	superSample = 2

	// jpegQuality matches the export encoder's ~0.92 compression quality.
	jpegQuality = 92
)

// PrintableWidthPx returns the printable width in CSS pixels (180mm at 96 DPI).
func PrintableWidthPx() int {
	return int(math.Round(printableWidthMM * cssPxPerMM))
}

// PageBand is one page-sized horizontal slice of the rasterized document,
// already JPEG-encoded. The final band may be shorter than a full page.
type PageBand struct {
	JPEG     []byte
	WidthPx  int
	HeightPx int
}

// pageHeightPx computes the per-page pixel height for a bitmap of the given
// width. The pixels-per-millimeter ratio is derived from the actual bitmap
// width rather than an assumed constant, so width and height conversions can
// never desynchronize when the supersampling factor changes.
func pageHeightPx(bitmapWidth int) int {
	ratio := float64(bitmapWidth) / printableWidthMM
	return int(math.Floor(printableHeightMM * ratio))
}

// pageCount returns ceil(bitmapHeight / perPage).
func pageCount(bitmapHeight, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	return (bitmapHeight + perPage - 1) / perPage
}

// paginate slices the rasterized bitmap into page-sized bands. Each band is a
// distinct, non-overlapping vertical slice of the full bitmap width; the last
// band is clipped to the remaining height. Bands are composited over white
// before JPEG encoding since screenshots may carry an alpha channel.
func paginate(bitmap image.Image) ([]PageBand, error) {
	bounds := bitmap.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyBitmap
	}

	perPage := pageHeightPx(width)
	if perPage <= 0 {
		return nil, fmt.Errorf("%w: page height computed as %d", ErrEmptyBitmap, perPage)
	}

	pages := pageCount(height, perPage)
	bands := make([]PageBand, 0, pages)

	for i := 0; i < pages; i++ {
		top := i * perPage
		bandHeight := perPage
		if top+bandHeight > height {
			bandHeight = height - top
		}

		band := image.NewRGBA(image.Rect(0, 0, width, bandHeight))
		draw.Draw(band, band.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
		draw.Draw(band, band.Bounds(), bitmap, image.Pt(bounds.Min.X, bounds.Min.Y+top), draw.Over)

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, band, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, fmt.Errorf("%w: encoding page %d: %v", ErrPDFAssemble, i+1, err)
		}

		bands = append(bands, PageBand{
			JPEG:     buf.Bytes(),
			WidthPx:  width,
			HeightPx: bandHeight,
		})
	}

	return bands, nil
}
