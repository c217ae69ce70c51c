package cvfolio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/alnah/go-cvfolio/internal/assets"
)

// DefaultDataName is the resource name of the default edition.
const DefaultDataName = "cv-data.json"

// DataFileName returns the resource name for an edition.
// The empty edition maps to the default resource.
func DataFileName(edition string) string {
	if edition == "" {
		return DefaultDataName
	}
	return "cv-data-" + edition + ".json"
}

// Source fetches a named data resource. Implementations must return an error
// for missing resources and non-success HTTP statuses; the loader's fallback
// logic depends on it.
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// Compile-time interface checks.
var (
	_ Source = (*FileSource)(nil)
	_ Source = (*HTTPSource)(nil)
)

// FileSource reads data resources from a local directory.
type FileSource struct {
	Dir string
}

// Fetch reads the named file from the source directory.
func (s *FileSource) Fetch(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, filepath.Base(name))) // #nosec G304 -- name is restricted to its base
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}

// HTTPSource fetches data resources by HTTP GET from a base URL.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

// Fetch GETs the named resource. Any non-2xx status is an error so the loader
// can run its edition fallback.
func (s *HTTPSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	url := strings.TrimRight(s.BaseURL, "/") + "/" + name
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", name, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %d", ErrResourceStatus, name, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}

// Resolution is the outcome of resolving a share path against a data source.
type Resolution struct {
	Document *Document
	Edition  string // "" after a fallback or for the default edition
	Stamp    string
	Provided string // version token from the path, "" if absent
	Status   VersionStatus
	Path     string // canonical visible path, rewritten after a fallback
	FellBack bool   // edition resource was unavailable, default was used
}

// Loader resolves share paths to documents using the two-step resolution
// state machine: try the edition resource, fall back to the default resource
// when an edition was requested, fail otherwise.
type Loader struct {
	src      Source
	validate bool
}

// NewLoader creates a Loader over a data source.
// Schema validation is on by default; use SkipValidation to disable it.
func NewLoader(src Source) *Loader {
	return &Loader{src: src, validate: true}
}

// SkipValidation disables JSON schema validation of loaded documents.
// Malformed JSON is still rejected.
func (l *Loader) SkipValidation() *Loader {
	l.validate = false
	return l
}

// loadState enumerates the resolution state machine.
type loadState int

const (
	stateTryEdition loadState = iota
	stateTryDefault
)

// Resolve parses the share path, loads the matching document, and computes
// its stamp and version status. The resolution is single-shot: a failed
// edition fetch falls back to the default resource exactly once, clearing the
// edition and rewriting the canonical path; any other failure surfaces a load
// error with no retry.
func (l *Loader) Resolve(ctx context.Context, path string) (*Resolution, error) {
	route := ParsePath(path)

	state := stateTryDefault
	if route.Edition != "" {
		state = stateTryEdition
	}

	edition := route.Edition
	fellBack := false

	var data []byte
	for data == nil {
		switch state {
		case stateTryEdition:
			b, err := l.src.Fetch(ctx, DataFileName(edition))
			if err != nil {
				// Edition resource unavailable: fall back to the default
				// resource and drop the edition from the visible path.
				state = stateTryDefault
				edition = ""
				fellBack = true
				continue
			}
			data = b
		case stateTryDefault:
			b, err := l.src.Fetch(ctx, DefaultDataName)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrDocumentLoad, err)
			}
			data = b
		}
	}

	doc, err := l.parseDocument(data)
	if err != nil {
		return nil, err
	}

	stamp, err := Stamp(doc)
	if err != nil {
		return nil, err
	}

	return &Resolution{
		Document: doc,
		Edition:  edition,
		Stamp:    stamp,
		Provided: route.Version,
		Status:   CompareVersion(route.Version, stamp),
		Path:     CanonicalPath(edition, route.Version),
		FellBack: fellBack,
	}, nil
}

// parseDocument validates and decodes a raw data resource.
func (l *Loader) parseDocument(data []byte) (*Document, error) {
	if l.validate {
		if err := validateDocumentBytes(data); err != nil {
			return nil, err
		}
	}
	return decodeDocument(data)
}

// ParseDocument validates a raw CV data file against the embedded schema and
// decodes it.
func ParseDocument(data []byte) (*Document, error) {
	if err := validateDocumentBytes(data); err != nil {
		return nil, err
	}
	return decodeDocument(data)
}

func decodeDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentParse, err)
	}
	return &doc, nil
}

// validateDocumentBytes checks raw JSON against the embedded document schema.
func validateDocumentBytes(data []byte) error {
	schema, err := assets.DocumentSchema()
	if err != nil {
		return fmt.Errorf("loading document schema: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDocumentParse, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrDocumentInvalid, strings.Join(msgs, "; "))
}
