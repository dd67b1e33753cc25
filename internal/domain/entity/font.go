// Package entity contains core domain types.
package entity

import (
	"fmt"
	"strings"
)

// Category is the two-valued classification attached to each font record.
type Category string

const (
	CategoryKhmer   Category = "Khmer"
	CategoryEnglish Category = "English"
)

// ParseCategory parses a category string case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "khmer":
		return CategoryKhmer, nil
	case "english":
		return CategoryEnglish, nil
	default:
		return "", fmt.Errorf("unknown category: %q", s)
	}
}

// Valid reports whether the category is one of the enumerated values.
func (c Category) Valid() bool {
	return c == CategoryKhmer || c == CategoryEnglish
}

// FontRecord is a single catalog entry. Records are created at catalog
// load time and never mutated afterwards.
type FontRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	FileName    string   `json:"fileName"`
	FontFamily  string   `json:"fontFamily"`
	PreviewText string   `json:"previewText"`
	AssetURL    string   `json:"assetUrl"`
}

// Validate checks the structural invariants of a single record.
// Catalog-wide invariants (ID uniqueness) are enforced by the catalog.
func (r *FontRecord) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("font record missing id")
	}
	if r.Name == "" {
		return fmt.Errorf("font record %q missing name", r.ID)
	}
	if !r.Category.Valid() {
		return fmt.Errorf("font record %q has invalid category %q", r.ID, r.Category)
	}
	if r.FontFamily == "" {
		return fmt.Errorf("font record %q missing font family", r.ID)
	}
	if r.AssetURL == "" {
		return fmt.Errorf("font record %q missing asset url", r.ID)
	}
	return nil
}
