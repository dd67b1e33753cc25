package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Tab is one category tab with its font count.
type Tab struct {
	Label string
	Count int
}

// TabBarView renders a horizontal tab bar with the active tab
// highlighted. Counts render next to each label.
func (t *Theme) TabBarView(tabs []Tab, active int) string {
	rendered := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		label := fmt.Sprintf("%s (%d)", tab.Label, tab.Count)
		style := t.InactiveTab
		if i == active {
			style = t.ActiveTab
		}
		rendered = append(rendered, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, rendered...)
}

// CategoryBadge renders a category name as a badge.
func (t *Theme) CategoryBadge(category string) string {
	return t.Badge.Render(category)
}

// StatBadge renders a labeled count, e.g. "24 fonts".
func (t *Theme) StatBadge(count int, singular, plural string) string {
	label := plural
	if count == 1 {
		label = singular
	}
	return t.BadgeMuted.Render(fmt.Sprintf("%d %s", count, label))
}
