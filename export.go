package cvfolio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alnah/go-cvfolio/internal/dateutil"
)

// DefaultPDFFilename is the fixed name of the exported artifact.
const DefaultPDFFilename = "cv.pdf"

// Exporter turns a Document into a paginated A4 PDF with a share footer.
// Create with NewExporter, use Export, and Close when done.
//
// An Exporter runs one export at a time: re-entrancy is prevented by a single
// in-progress flag, and a second concurrent call fails with
// ErrExportInProgress instead of queueing.
type Exporter struct {
	cfg        exporterConfig
	renderer   documentRenderer
	qr         qrEncoder
	rasterizer rasterizer
	assembler  pdfAssembler
	now        func() time.Time

	mu         sync.Mutex
	inProgress bool
}

// NewExporter creates an Exporter with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
// Returns an error if the embedded page template fails to parse.
func NewExporter(opts ...Option) (*Exporter, error) {
	e := &Exporter{
		cfg: exporterConfig{timeout: defaultTimeout},
		qr:  pngQREncoder{},
		now: time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.renderer == nil {
		r, err := newPageRenderer()
		if err != nil {
			return nil, err
		}
		e.renderer = r
	}

	if e.assembler == nil {
		e.assembler = fpdfAssembler{}
	}

	// Create rasterizer if not injected (e.g., by tests)
	if e.rasterizer == nil {
		e.rasterizer = newRodRasterizer(e.cfg.timeout)
	}

	return e, nil
}

// Export runs the full pipeline and returns the rendered HTML and PDF bytes.
// The context is used for cancellation and timeout.
// If opts.HTMLOnly is true, rasterization and assembly are skipped.
//
// Every exit path, including caught panics, clears the in-progress flag and
// releases the temporary artifacts created along the way, so a failed export
// leaves the Exporter ready for an immediate retry and produces no partial
// file.
func (e *Exporter) Export(ctx context.Context, doc *Document, opts ExportOptions) (result *ExportResult, err error) {
	if doc == nil {
		return nil, ErrEmptyDocument
	}

	if !e.begin() {
		return nil, ErrExportInProgress
	}
	defer e.end()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	date := opts.Date
	if date == "" {
		date = "auto"
	}
	date, err = dateutil.ResolveDate(date, e.now())
	if err != nil {
		return nil, fmt.Errorf("resolving generation date: %w", err)
	}

	qrURI, err := e.qr.EncodeDataURI(opts.ShareURL)
	if err != nil {
		return nil, err
	}

	footer := buildFooterHTML(opts.ShareURL, opts.Edition, opts.Stamp, date, qrURI)

	htmlContent, err := e.renderer.Render(doc, buildPrintCSS(), footer)
	if err != nil {
		return nil, err
	}

	res := &ExportResult{HTML: []byte(htmlContent)}

	if opts.HTMLOnly {
		return res, nil
	}

	bitmap, err := e.rasterizer.Rasterize(ctx, htmlContent, PrintableWidthPx(), superSample)
	if err != nil {
		return nil, err
	}

	bands, err := paginate(bitmap)
	if err != nil {
		return nil, err
	}

	pdfBytes, err := e.assembler.Assemble(bands)
	if err != nil {
		return nil, err
	}

	res.PDF = pdfBytes
	res.Pages = len(bands)
	return res, nil
}

// RenderPage renders the live (screen) HTML page for a document, without the
// print override or share footer.
func (e *Exporter) RenderPage(doc *Document) (string, error) {
	if doc == nil {
		return "", ErrEmptyDocument
	}
	return e.renderer.Render(doc, "", "")
}

// Close releases resources (headless Chrome browser).
func (e *Exporter) Close() error {
	if e.rasterizer != nil {
		return e.rasterizer.Close()
	}
	return nil
}

// begin sets the in-progress flag. Returns false if an export is running.
func (e *Exporter) begin() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.inProgress {
		return false
	}
	e.inProgress = true
	return true
}

// end clears the in-progress flag.
func (e *Exporter) end() {
	e.mu.Lock()
	e.inProgress = false
	e.mu.Unlock()
}

// exporting reports whether an export is currently running.
func (e *Exporter) exporting() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.inProgress
}
