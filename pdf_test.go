package cvfolio

import (
	"bytes"
	"errors"
	"image"
	"testing"
)

// testBands encodes a blank bitmap into page bands for assembly tests.
func testBands(t *testing.T, width, height int) []PageBand {
	t.Helper()
	bands, err := paginate(image.NewRGBA(image.Rect(0, 0, width, height)))
	if err != nil {
		t.Fatalf("paginate() error = %v", err)
	}
	return bands
}

func TestFpdfAssembler_Assemble(t *testing.T) {
	t.Parallel()

	bands := testBands(t, 360, 1602) // exactly 3 pages at this width

	pdf, err := fpdfAssembler{}.Assemble(bands)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Errorf("output does not start with %%PDF- header: %q", pdf[:min(8, len(pdf))])
	}
	// Three pages means three page objects in the document.
	if got := bytes.Count(pdf, []byte("/Type /Page\n")); got < 3 {
		// Layout of the object dictionary varies between versions; fall back
		// to the page-tree count entry.
		if !bytes.Contains(pdf, []byte("/Count 3")) {
			t.Errorf("PDF does not appear to contain 3 pages")
		}
	}
}

func TestFpdfAssembler_SinglePage(t *testing.T) {
	t.Parallel()

	pdf, err := fpdfAssembler{}.Assemble(testBands(t, 360, 200))
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Error("output is not a PDF")
	}
}

func TestFpdfAssembler_NoPages(t *testing.T) {
	t.Parallel()

	_, err := fpdfAssembler{}.Assemble(nil)
	if !errors.Is(err, ErrPDFAssemble) {
		t.Errorf("Assemble(nil) error = %v, want ErrPDFAssemble", err)
	}
}

func TestFpdfAssembler_BadBand(t *testing.T) {
	t.Parallel()

	_, err := fpdfAssembler{}.Assemble([]PageBand{{JPEG: []byte("x"), WidthPx: 0, HeightPx: 10}})
	if !errors.Is(err, ErrPDFAssemble) {
		t.Errorf("Assemble(zero width) error = %v, want ErrPDFAssemble", err)
	}
}
