package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// toastDuration is how long a status pill stays on screen before it clears
// itself.
const toastDuration = 2 * time.Second

type toastLevel int

const (
	toastInfo toastLevel = iota
	toastWarning
	toastError
)

// showToast replaces the current status pill and schedules its expiry. The
// sequence number ties the timer to this pill so an earlier timer cannot
// clear a later message.
func (m *Model) showToast(level toastLevel, text string) tea.Cmd {
	m.toastSeq++
	m.toastLevel = level
	m.toastText = text
	seq := m.toastSeq
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastClearMsg{seq: seq}
	})
}

func (m *Model) clearToast(seq int) {
	if seq != m.toastSeq {
		return
	}
	m.toastText = ""
}

func toastStyleFor(level toastLevel) lipgloss.Style {
	switch level {
	case toastError:
		return toastErrorStyle
	case toastWarning:
		return toastWarningStyle
	default:
		return toastInfoStyle
	}
}
