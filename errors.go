package cvfolio

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyDocument    = errors.New("document cannot be empty")
	ErrDocumentLoad     = errors.New("failed to load document")
	ErrDocumentParse    = errors.New("failed to parse document")
	ErrDocumentInvalid  = errors.New("document failed schema validation")
	ErrResourceStatus   = errors.New("resource returned non-success status")
	ErrHTMLRender       = errors.New("HTML rendering failed")
	ErrBrowserConnect   = errors.New("failed to connect to browser")
	ErrPageCreate       = errors.New("failed to create browser page")
	ErrPageLoad         = errors.New("failed to load page")
	ErrRasterize        = errors.New("rasterization failed")
	ErrPDFAssemble      = errors.New("PDF assembly failed")
	ErrQREncode         = errors.New("QR encoding failed")
	ErrExportInProgress = errors.New("an export is already in progress")

	// Paginator validation errors.
	ErrEmptyBitmap = errors.New("bitmap has no pixels")
)
