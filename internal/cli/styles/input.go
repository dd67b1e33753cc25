package styles

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledInput creates a themed text input.
func NewStyledInput(theme *Theme, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.Prompt = "/ "
	return ti
}

// NewSearchInput creates the catalog search field.
func NewSearchInput(theme *Theme) textinput.Model {
	ti := NewStyledInput(theme, "Search fonts...")
	ti.Prompt = "🔍 "
	ti.CharLimit = 128
	return ti
}

// NewPreviewInput creates the custom preview text field.
func NewPreviewInput(theme *Theme) textinput.Model {
	ti := NewStyledInput(theme, "Type custom preview text...")
	ti.Prompt = "✎ "
	ti.CharLimit = 256
	return ti
}

// InputBox wraps a text input in a styled box.
func (t *Theme) InputBox(input string, focused bool) string {
	style := t.Input
	if focused {
		style = t.InputFocused
	}
	return style.Render(input)
}
