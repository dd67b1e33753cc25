package styles

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func testTheme() *Theme {
	return NewThemeFromPalette(DefaultDarkPalette())
}

func TestConfirm_DefaultsToNo(t *testing.T) {
	m := NewConfirm(testTheme(), "Download Battambang?", "")
	assert.False(t, m.Yes)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Done())
	assert.False(t, m.Result())
}

func TestConfirm_YesThenEnterConfirms(t *testing.T) {
	m := NewConfirm(testTheme(), "Download Battambang?", "")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Result())
}

func TestConfirm_EscCancels(t *testing.T) {
	m := NewConfirm(testTheme(), "Download Battambang?", "")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.Done())
	assert.False(t, m.Result())
}

func TestTabBarView_ShowsCounts(t *testing.T) {
	view := testTheme().TabBarView([]Tab{
		{Label: "All", Count: 24},
		{Label: "Khmer", Count: 12},
	}, 0)
	assert.Contains(t, view, "All (24)")
	assert.Contains(t, view, "Khmer (12)")
}

func TestPaginationView_SinglePageIsEmpty(t *testing.T) {
	assert.Empty(t, testTheme().PaginationView(1, 1))
	assert.NotEmpty(t, testTheme().PaginationView(1, 3))
}
