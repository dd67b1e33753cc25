package catalog

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/Onimuxha/font/internal/domain/entity"
)

// DefaultSuggestionLimit caps the suggestion dropdown under the search box.
const DefaultSuggestionLimit = 6

// Suggest returns up to limit font names matching the query, best match
// first. An empty or whitespace-only query yields no suggestions.
func Suggest(records []entity.FontRecord, query string, limit int) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	names := make([]string, len(records))
	for i := range records {
		names[i] = records[i].Name
	}

	matches := fuzzy.Find(query, names)
	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}
