package app

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWriteAll is swappable for tests.
var clipboardWriteAll = clipboard.WriteAll

func (m *Model) copyWithStatus(text, success string) tea.Cmd {
	if err := clipboardWriteAll(text); err != nil {
		return m.showToast(toastError, "copy failed: "+err.Error())
	}
	return m.showToast(toastInfo, success)
}
