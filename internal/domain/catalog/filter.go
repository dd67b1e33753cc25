package catalog

import (
	"strings"

	"github.com/Onimuxha/font/internal/domain/entity"
)

// CategoryFilter selects which categories pass the filter.
type CategoryFilter string

const (
	FilterAll     CategoryFilter = "all"
	FilterKhmer   CategoryFilter = CategoryFilter(entity.CategoryKhmer)
	FilterEnglish CategoryFilter = CategoryFilter(entity.CategoryEnglish)
)

// ParseCategoryFilter parses a filter string case-insensitively.
// Empty input means "all".
func ParseCategoryFilter(s string) (CategoryFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, nil
	}
	cat, err := entity.ParseCategory(s)
	if err != nil {
		return "", err
	}
	return CategoryFilter(cat), nil
}

// Matches reports whether a record category passes the filter.
func (f CategoryFilter) Matches(c entity.Category) bool {
	return f == FilterAll || CategoryFilter(c) == f
}

// Filter returns the records matching both the free-text query and the
// category filter, preserving catalog order. A record matches the query
// when its name or category contains the query case-insensitively; the
// query is trimmed before matching, so whitespace-only input matches
// everything. Safe to call on every keystroke: no I/O, no mutation.
func Filter(records []entity.FontRecord, query string, f CategoryFilter) []entity.FontRecord {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]entity.FontRecord, 0, len(records))
	for i := range records {
		if !f.Matches(records[i].Category) {
			continue
		}
		if query != "" && !matchesQuery(&records[i], query) {
			continue
		}
		out = append(out, records[i])
	}
	return out
}

func matchesQuery(r *entity.FontRecord, query string) bool {
	return strings.Contains(strings.ToLower(r.Name), query) ||
		strings.Contains(strings.ToLower(string(r.Category)), query)
}
