package styles

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const toastDuration = 3 * time.Second

// ToastLevel selects the toast color.
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastError
)

// ToastModel is a transient one-line notification.
type ToastModel struct {
	text  string
	level ToastLevel
	seq   int
	theme *Theme
}

// toastExpiredMsg clears the toast once its timer fires. The sequence
// number ties the timer to the toast that started it so an older timer
// cannot clear a newer toast.
type toastExpiredMsg struct{ seq int }

// NewToast creates an empty toast holder.
func NewToast(theme *Theme) ToastModel {
	return ToastModel{theme: theme}
}

// Show replaces the current toast and restarts the expiry timer.
func (m ToastModel) Show(text string, level ToastLevel) (ToastModel, tea.Cmd) {
	m.text = text
	m.level = level
	m.seq++
	seq := m.seq
	return m, tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// Update implements tea.Model.
func (m ToastModel) Update(msg tea.Msg) (ToastModel, tea.Cmd) {
	if expired, ok := msg.(toastExpiredMsg); ok && expired.seq == m.seq {
		m.text = ""
	}
	return m, nil
}

// View implements tea.Model.
func (m ToastModel) View() string {
	if m.text == "" {
		return ""
	}
	switch m.level {
	case ToastSuccess:
		return m.theme.SuccessStyle.Render("✓ " + m.text)
	case ToastError:
		return m.theme.ErrorStyle.Render("✗ " + m.text)
	default:
		return m.theme.Subtle.Render(m.text)
	}
}
