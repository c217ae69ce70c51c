package cvfolio

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-cvfolio/internal/assets"
)

// documentRenderer abstracts Document to HTML rendering.
type documentRenderer interface {
	Render(doc *Document, extraCSS, footerHTML string) (string, error)
}

// Compile-time interface check.
var _ documentRenderer = (*pageRenderer)(nil)

// pageRenderer renders a Document into a standalone HTML page using the
// embedded page template. Summary and detail strings may contain Markdown,
// converted with goldmark the same way for every render.
type pageRenderer struct {
	tmpl *template.Template
	md   goldmark.Markdown
}

// newPageRenderer loads the embedded page template and builds the Markdown
// converter with GFM extensions and CSS-class syntax highlighting.
func newPageRenderer() (*pageRenderer, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes keep the HTML small
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat newlines as <br>
			html.WithXHTML(),     // Self-closing tags
		),
	)

	r := &pageRenderer{md: md}

	src, err := assets.Template(assets.PageTemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading page template: %w", err)
	}

	tmpl, err := template.New(assets.PageTemplateName).Funcs(template.FuncMap{
		"markdown": r.markdownBlock,
		"inline":   r.markdownInline,
	}).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing page template: %v", ErrHTMLRender, err)
	}

	r.tmpl = tmpl
	return r, nil
}

// pageData is the template context for a render.
type pageData struct {
	Title  string
	Doc    *Document
	CSS    template.CSS
	Footer template.HTML
}

// Render produces a complete HTML page for a document. extraCSS is appended
// after the base screen style (print overrides go there); footerHTML, if
// non-empty, is placed at the end of the page subtree.
func (r *pageRenderer) Render(doc *Document, extraCSS, footerHTML string) (string, error) {
	if doc == nil {
		return "", ErrEmptyDocument
	}

	baseCSS, err := assets.Style("screen")
	if err != nil {
		return "", fmt.Errorf("loading screen style: %w", err)
	}

	css := baseCSS
	if extraCSS != "" {
		css += "\n" + extraCSS
	}

	title := doc.Profile.Name
	if title == "" {
		title = "Curriculum Vitae"
	}

	var buf bytes.Buffer
	err = r.tmpl.Execute(&buf, pageData{
		Title:  title,
		Doc:    doc,
		CSS:    template.CSS(css),    // #nosec G203 -- embedded + builder-generated CSS
		Footer: template.HTML(footerHTML), // #nosec G203 -- builder-generated, fields escaped at build time
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLRender, err)
	}
	return buf.String(), nil
}

// markdownBlock converts a Markdown string to block-level HTML.
func (r *pageRenderer) markdownBlock(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLRender, err)
	}
	return template.HTML(buf.String()), nil // #nosec G203 -- goldmark escapes raw HTML (no WithUnsafe)
}

// markdownInline converts a one-line Markdown string to HTML with the
// wrapping paragraph stripped, for use inside list items.
func (r *pageRenderer) markdownInline(src string) (template.HTML, error) {
	out, err := r.markdownBlock(src)
	if err != nil {
		return "", err
	}
	s := strings.TrimSpace(string(out))
	s = strings.TrimPrefix(s, "<p>")
	s = strings.TrimSuffix(s, "</p>")
	return template.HTML(s), nil // #nosec G203 -- derived from escaped goldmark output
}
