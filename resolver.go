package cvfolio

import (
	"net/url"
	"regexp"
	"strings"
)

// VersionStatus compares a version token supplied in a share path against the
// stamp computed from the freshly loaded document.
type VersionStatus int

// Version status values. Unknown means the path carried no version token; in
// that case no comparison is ever made.
const (
	VersionUnknown VersionStatus = iota
	VersionMatch
	VersionMismatch
)

// String returns the lowercase name of the status.
func (s VersionStatus) String() string {
	switch s {
	case VersionMatch:
		return "match"
	case VersionMismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// Route is the result of parsing a share path.
// Empty strings mean the corresponding segment was absent.
type Route struct {
	Edition string
	Version string
}

// Share path patterns. The version token is 4-10 alphanumerics; anything else
// fails the whole pattern so a malformed path falls through to the default
// route rather than carrying a garbage token.
var (
	editionPathPattern = regexp.MustCompile(`^/e/([^/]+)(?:/v/([A-Za-z0-9]{4,10}))?/?$`)
	versionPathPattern = regexp.MustCompile(`^/v/([A-Za-z0-9]{4,10})/?$`)
)

// ParsePath extracts the edition and version token from a share path.
// Recognized shapes:
//
//	/e/{edition}
//	/e/{edition}/v/{token}
//	/v/{token}
//
// The edition segment is URL-decoded. Paths matching neither shape yield a
// zero Route (default edition, no version check).
func ParsePath(path string) Route {
	if m := editionPathPattern.FindStringSubmatch(path); m != nil {
		edition := m[1]
		if decoded, err := url.PathUnescape(edition); err == nil {
			edition = decoded
		}
		return Route{Edition: edition, Version: m[2]}
	}
	if m := versionPathPattern.FindStringSubmatch(path); m != nil {
		return Route{Version: m[1]}
	}
	return Route{}
}

// CanonicalPath rebuilds the visible path for a route. Used after an edition
// fallback to drop the edition segment while preserving a root-level version
// segment.
func CanonicalPath(edition, version string) string {
	var b strings.Builder
	if edition != "" {
		b.WriteString("/e/")
		b.WriteString(url.PathEscape(edition))
	}
	if version != "" {
		b.WriteString("/v/")
		b.WriteString(version)
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}

// ShareURL builds the canonical shareable URL for a document.
// The base is the configured production origin, never the runtime origin, so
// shared and printed links resolve to the production host even when the page
// is viewed on a mirror.
func ShareURL(base, edition, stamp string) string {
	base = strings.TrimRight(base, "/")
	var b strings.Builder
	b.WriteString(base)
	if edition != "" {
		b.WriteString("/e/")
		b.WriteString(url.PathEscape(edition))
	}
	if stamp != "" {
		b.WriteString("/v/")
		b.WriteString(stamp)
	}
	return b.String()
}

// CompareVersion derives the version status from a provided token and a
// computed stamp. The status is computed once, when both sides are known; a
// missing provided token pins the status to VersionUnknown.
func CompareVersion(provided, computed string) VersionStatus {
	if provided == "" {
		return VersionUnknown
	}
	if provided == computed {
		return VersionMatch
	}
	return VersionMismatch
}
