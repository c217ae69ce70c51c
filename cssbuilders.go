package cvfolio

import (
	"fmt"
	"html"
	"strings"
)

// defaultFontFamily is the standard font stack for generated print content.
const defaultFontFamily = "sans-serif"

// Print typography constants.
const (
	printBaseFontPt  = 10.0 // Screen base size in points
	printShrinkRatio = 0.8  // Fixed shrink factor applied for print
)

// buildPrintCSS generates the print style override applied before
// rasterization: shrunk type on the 10pt base, tightened spacing and heading
// sizes, monochrome colors, expanded (non-truncated) contact and URL text,
// and removal of interactive controls and decorative icons. The rules are
// scoped to #cv-root so a live page styled by the same sheet is unaffected.
func buildPrintCSS() string {
	return fmt.Sprintf(`
/* Print override */
#cv-root {
  font-size: %.1fpt;
  max-width: none;
  padding: 0;
  background: #fff;
  color: #000;
}
#cv-root .cv-actions,
#cv-root .cv-download,
#cv-root .cv-toast {
  display: none;
}
#cv-root h1 { font-size: 1.5em; }
#cv-root h2 { font-size: 1em; color: #000; border-color: #000; }
#cv-root .cv-section { margin-top: 12px; }
#cv-root .cv-entry { margin-bottom: 8px; }
#cv-root .cv-header { border-color: #000; padding-bottom: 10px; }
#cv-root .cv-title,
#cv-root .cv-period,
#cv-root .cv-entry-sub,
#cv-root .cv-contacts li,
#cv-root .cv-links li {
  color: #333;
}
#cv-root .cv-url {
  color: #000;
  max-width: none;
  overflow: visible;
  text-overflow: clip;
  white-space: normal;
}
#cv-root .cv-contacts li::before,
#cv-root .cv-details li::before {
  background: #000;
  color: #000;
}
#cv-root .cv-contacts li::before { content: none; }
#cv-root .cv-chips li { border-color: #999; }
`, printBaseFontPt*printShrinkRatio)
}

// buildFooterHTML generates the synthetic share footer appended to the
// exported page: the share URL in plain text plus a QR rendering of the same
// payload, a human-readable edition/version/generation-date line, and a short
// instructional caption. All dynamic fields are HTML-escaped.
func buildFooterHTML(shareURL, edition, stamp, date, qrDataURI string) string {
	var meta []string
	if edition != "" {
		meta = append(meta, "Edition: "+html.EscapeString(edition))
	}
	if stamp != "" {
		meta = append(meta, "Version: "+html.EscapeString(stamp))
	}
	if date != "" {
		meta = append(meta, "Generated: "+html.EscapeString(date))
	}

	var b strings.Builder
	b.WriteString(`<footer class="cv-share-footer" style="margin-top:16px;border-top:1px solid #000;padding-top:8px;display:flex;gap:12px;align-items:center;font-family:` + defaultFontFamily + `;">`)
	if qrDataURI != "" {
		fmt.Fprintf(&b, `<img src="%s" alt="QR code" style="width:64px;height:64px;"/>`, qrDataURI)
	}
	b.WriteString(`<div>`)
	if shareURL != "" {
		fmt.Fprintf(&b, `<div class="cv-share-url" style="font-size:0.9em;">%s</div>`, html.EscapeString(shareURL))
	}
	if len(meta) > 0 {
		fmt.Fprintf(&b, `<div class="cv-share-meta" style="font-size:0.8em;color:#333;">%s</div>`, strings.Join(meta, " &middot; "))
	}
	b.WriteString(`<div class="cv-share-caption" style="font-size:0.8em;color:#333;">Scan the code or open the link for the latest version.</div>`)
	b.WriteString(`</div></footer>`)
	return b.String()
}
