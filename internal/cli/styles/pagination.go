package styles

import (
	"fmt"
	"strings"

	"github.com/Onimuxha/font/internal/domain/catalog"
)

// PaginationView renders a numbered pager line, e.g.
// "‹ 1 … 5 [6] 7 … 20 ›". Ellipsis markers come from
// catalog.PageNumbers.
func (t *Theme) PaginationView(current, total int) string {
	if total <= 1 {
		return ""
	}

	parts := make([]string, 0, 12)
	parts = append(parts, t.Subtle.Render("‹"))
	for _, n := range catalog.PageNumbers(current, total) {
		if n == catalog.Ellipsis {
			parts = append(parts, t.Subtle.Render("…"))
			continue
		}
		if n == current {
			parts = append(parts, t.ActiveTab.Render(fmt.Sprintf("%d", n)))
		} else {
			parts = append(parts, t.Subtle.Render(fmt.Sprintf("%d", n)))
		}
	}
	parts = append(parts, t.Subtle.Render("›"))

	return strings.Join(parts, " ")
}
