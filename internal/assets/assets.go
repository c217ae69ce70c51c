// Package assets provides embedded templates, styles, and schemas for the
// CV rendering pipeline.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"strings"
)

//go:embed templates/*
var templates embed.FS

//go:embed styles/*
var styles embed.FS

//go:embed schemas/*
var schemas embed.FS

// Sentinel errors for asset loading.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrSchemaNotFound   = errors.New("schema not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
)

// PageTemplateName is the name of the CV page template.
const PageTemplateName = "page"

// DocumentSchemaName is the name of the CV data schema.
const DocumentSchemaName = "cv-data"

// Template loads an HTML template by name (without the .html extension).
func Template(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	content, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return string(content), nil
}

// Style loads a CSS style by name (without the .css extension).
func Style(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return string(content), nil
}

// DocumentSchema loads the embedded JSON schema for CV data files.
func DocumentSchema() ([]byte, error) {
	content, err := schemas.ReadFile("schemas/" + DocumentSchemaName + ".schema.json")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrSchemaNotFound, DocumentSchemaName)
	}
	return content, nil
}

// ValidateAssetName rejects names that could escape the asset directories.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\\x00") || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
