// Package catalog holds the immutable font catalog and the pure list
// operations over it: filtering, pagination, and search suggestions.
package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/Onimuxha/font/internal/domain/entity"
	"github.com/Onimuxha/font/internal/domain/preview"
)

// Catalog is the fixed ordered collection of font records. It is built
// once at startup and read-only afterwards.
type Catalog struct {
	records []entity.FontRecord
	byID    map[string]int
}

// New builds a catalog from an ordered record list, enforcing the
// catalog invariants: every record valid, every ID unique.
func New(records []entity.FontRecord) (*Catalog, error) {
	byID := make(map[string]int, len(records))
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return nil, err
		}
		if _, dup := byID[records[i].ID]; dup {
			return nil, fmt.Errorf("duplicate font id %q", records[i].ID)
		}
		byID[records[i].ID] = i
	}
	return &Catalog{records: records, byID: byID}, nil
}

// catalogFile mirrors the embedded catalog.json layout.
type catalogFile struct {
	Fonts   []entity.FontRecord `json:"fonts"`
	Samples struct {
		Khmer   []string `json:"khmer"`
		English []string `json:"english"`
	} `json:"samples"`
}

// Load parses the embedded catalog data and returns the catalog plus
// the per-language sample text pools.
func Load(data []byte) (*Catalog, preview.SamplePool, error) {
	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("parse catalog: %w", err)
	}

	c, err := New(file.Fonts)
	if err != nil {
		return nil, nil, err
	}

	pool := preview.SamplePool{
		preview.LanguageKhmer:   file.Samples.Khmer,
		preview.LanguageEnglish: file.Samples.English,
	}
	if err := pool.Validate(); err != nil {
		return nil, nil, err
	}

	return c, pool, nil
}

// All returns the records in catalog order. The returned slice must not
// be mutated.
func (c *Catalog) All() []entity.FontRecord {
	return c.records
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Get looks up a record by ID.
func (c *Catalog) Get(id string) (entity.FontRecord, bool) {
	i, ok := c.byID[id]
	if !ok {
		return entity.FontRecord{}, false
	}
	return c.records[i], true
}

// CountByCategory returns the number of records in the given category.
func (c *Catalog) CountByCategory(cat entity.Category) int {
	n := 0
	for i := range c.records {
		if c.records[i].Category == cat {
			n++
		}
	}
	return n
}
