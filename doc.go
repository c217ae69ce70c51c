// Package cvfolio renders a data-driven curriculum vitae to HTML and exports
// it as a paginated A4 PDF with a shareable deep link and QR code.
//
// # Quick Start
//
// Resolve a share path against a data source, then export:
//
//	loader := cvfolio.NewLoader(&cvfolio.FileSource{Dir: "data"})
//	res, err := loader.Resolve(ctx, "/e/acme/v/AB12CD")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	exp, err := cvfolio.NewExporter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer exp.Close()
//
//	out, err := exp.Export(ctx, res.Document, cvfolio.ExportOptions{
//	    ShareURL: cvfolio.ShareURL("https://cv.example.com", res.Edition, res.Stamp),
//	    Edition:  res.Edition,
//	    Stamp:    res.Stamp,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(cvfolio.DefaultPDFFilename, out.PDF, 0644)
//
// # Resolution
//
// Share paths address an edition and an expected content version:
//
//	/                      default edition, no version check
//	/e/{edition}           named edition
//	/e/{edition}/v/{stamp} named edition with expected version stamp
//	/v/{stamp}             default edition with expected version stamp
//
// The loader fetches cv-data.json (or cv-data-{edition}.json), falling back
// to the default resource when an edition resource is unavailable. The
// version stamp is a 6-character base-36 fingerprint of the document content;
// a stamp supplied in the path is compared against the freshly computed one
// to detect stale shared links.
//
// # Export Pipeline
//
// The export follows these stages:
//
//  1. HTML rendering from the embedded page template (Markdown in the
//     summary and detail strings via Goldmark)
//  2. Share footer injection (URL text, QR code, edition/version/date line)
//  3. Print style override (shrunk monochrome type, expanded URLs, no
//     interactive controls)
//  4. Full-page rasterization at 2x via headless Chrome (go-rod) at a fixed
//     180mm printable width
//  5. Slicing into page-height bands and assembly into an A4 PDF
//
// # Parallel Processing
//
// For batch exports across editions, use ExporterPool to manage multiple
// browser instances:
//
//	pool := cvfolio.NewExporterPool(4)
//	defer pool.Close()
//
//	exp := pool.Acquire()
//	defer pool.Release(exp)
//	out, err := exp.Export(ctx, doc, opts)
//
// # Browser Requirements
//
// Rasterization requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
// Use ROD_BROWSER_BIN to specify a custom Chrome binary; sandboxing is
// disabled automatically when CI=true or a custom binary is set.
package cvfolio
