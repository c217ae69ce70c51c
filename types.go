package cvfolio

import (
	"time"
)

// Document is a complete CV data file. It is immutable once loaded: a reload
// replaces the whole value, never patches individual fields.
type Document struct {
	Profile       Profile        `json:"profile"`
	Summary       string         `json:"summary"`
	Skills        []string       `json:"skills"`
	Experience    []Experience   `json:"experience"`
	Projects      []Project      `json:"projects"`
	Education     []Education    `json:"education"`
	Certificates  []Certificate  `json:"certificates"`
	Organizations []Organization `json:"organizations"`
}

// Profile holds identity, contact channels, and social links.
type Profile struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Location string `json:"location,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Website  string `json:"website,omitempty"`
	Photo    string `json:"photo,omitempty"`
	Links    []Link `json:"links,omitempty"`
}

// Link is a labeled URL (social profile, project page).
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Experience is a single work history entry.
type Experience struct {
	Role     string   `json:"role"`
	Company  string   `json:"company"`
	Location string   `json:"location,omitempty"`
	Period   string   `json:"period,omitempty"`
	Details  []string `json:"details,omitempty"`
}

// Project is a single project entry.
type Project struct {
	Name    string   `json:"name"`
	URL     string   `json:"url,omitempty"`
	Stack   string   `json:"stack,omitempty"`
	Period  string   `json:"period,omitempty"`
	Details []string `json:"details,omitempty"`
}

// Education is a single education entry.
type Education struct {
	Degree  string   `json:"degree"`
	School  string   `json:"school"`
	Period  string   `json:"period,omitempty"`
	Details []string `json:"details,omitempty"`
}

// Certificate is a single certification entry.
type Certificate struct {
	Name    string   `json:"name"`
	Issuer  string   `json:"issuer,omitempty"`
	Date    string   `json:"date,omitempty"`
	URL     string   `json:"url,omitempty"`
	Details []string `json:"details,omitempty"`
}

// Organization is a single affiliation entry.
type Organization struct {
	Name    string   `json:"name"`
	Role    string   `json:"role,omitempty"`
	Period  string   `json:"period,omitempty"`
	Details []string `json:"details,omitempty"`
}

// ExportOptions configures a single PDF export.
type ExportOptions struct {
	ShareURL string // Printed and QR-encoded in the footer
	Edition  string // Human-readable edition label for the footer ("" = default)
	Stamp    string // Version stamp for the footer ("" = omitted)
	Date     string // Generation date; "auto" and "auto:FORMAT" are resolved
	HTMLOnly bool   // Skip rasterization, return only the rendered HTML
}

// ExportResult holds the rendered HTML and, unless HTMLOnly was set, the
// assembled PDF bytes.
type ExportResult struct {
	HTML  []byte
	PDF   []byte
	Pages int
}

// Option configures an Exporter.
type Option func(*Exporter)

// exporterConfig holds internal configuration for Exporter.
type exporterConfig struct {
	timeout time.Duration
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the rasterization timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("cvfolio: WithTimeout duration must be positive")
	}
	return func(e *Exporter) {
		e.cfg.timeout = d
	}
}
