package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
)

type confirmChoice int

const (
	confirmChoiceNone confirmChoice = iota
	confirmChoiceConfirm
	confirmChoiceCancel
)

const confirmMaxWidth = 60

// ConfirmController is a modal yes/no prompt. While open it captures all key
// input until the user picks a choice or dismisses it.
type ConfirmController struct {
	active       bool
	title        string
	message      string
	confirmLabel string
	cancelLabel  string
	selected     int
}

func NewConfirmController() *ConfirmController {
	return &ConfirmController{}
}

func (c *ConfirmController) IsOpen() bool {
	return c != nil && c.active
}

func (c *ConfirmController) Open(title, message, confirmLabel, cancelLabel string) {
	if c == nil {
		return
	}
	c.active = true
	c.title = strings.TrimSpace(title)
	c.message = strings.TrimSpace(message)
	if confirmLabel == "" {
		confirmLabel = "Confirm"
	}
	if cancelLabel == "" {
		cancelLabel = "Cancel"
	}
	c.confirmLabel = confirmLabel
	c.cancelLabel = cancelLabel
	c.selected = 0
}

func (c *ConfirmController) Close() {
	if c == nil {
		return
	}
	c.active = false
	c.title = ""
	c.message = ""
	c.confirmLabel = ""
	c.cancelLabel = ""
	c.selected = 0
}

// HandleKey consumes a key while the dialog is open. The bool reports whether
// the key was handled; the choice is non-none once the user decided.
func (c *ConfirmController) HandleKey(msg tea.KeyMsg) (bool, confirmChoice) {
	if c == nil || !c.active {
		return false, confirmChoiceNone
	}
	switch msg.String() {
	case "esc", "q":
		return true, confirmChoiceCancel
	case "left", "h":
		c.selected = 0
		return true, confirmChoiceNone
	case "right", "l":
		c.selected = 1
		return true, confirmChoiceNone
	case "tab":
		if c.selected == 0 {
			c.selected = 1
		} else {
			c.selected = 0
		}
		return true, confirmChoiceNone
	case "y":
		return true, confirmChoiceConfirm
	case "n":
		return true, confirmChoiceCancel
	case "enter":
		if c.selected == 0 {
			return true, confirmChoiceConfirm
		}
		return true, confirmChoiceCancel
	}
	return true, confirmChoiceNone
}

func (c *ConfirmController) View(maxWidth int) string {
	if c == nil || !c.active {
		return ""
	}
	width := c.dialogWidth(maxWidth)
	contentWidth := width - 4
	if contentWidth < 1 {
		contentWidth = 1
	}

	title := c.title
	if title == "" {
		title = "Confirm"
	}
	lines := []string{detailTitleStyle.Render(truncateToWidth(title, contentWidth))}

	if c.message != "" {
		wrapped := xansi.Hardwrap(c.message, contentWidth, true)
		for _, line := range strings.Split(wrapped, "\n") {
			lines = append(lines, truncateToWidth(line, contentWidth))
		}
	}
	lines = append(lines, "")

	confirm := "[" + c.confirmLabel + "]"
	cancel := "[" + c.cancelLabel + "]"
	if c.selected == 0 {
		confirm = dialogButtonActiveStyle.Render(confirm)
		cancel = dialogButtonStyle.Render(cancel)
	} else {
		confirm = dialogButtonStyle.Render(confirm)
		cancel = dialogButtonActiveStyle.Render(cancel)
	}
	lines = append(lines, confirm+"  "+cancel)

	return dialogStyle.Render(strings.Join(lines, "\n"))
}

func (c *ConfirmController) dialogWidth(maxWidth int) int {
	width := xansi.StringWidth(c.title)
	if w := xansi.StringWidth(c.message); w > width {
		width = w
	}
	if w := xansi.StringWidth(c.confirmLabel) + xansi.StringWidth(c.cancelLabel) + 6; w > width {
		width = w
	}
	width += 4
	if width > confirmMaxWidth {
		width = confirmMaxWidth
	}
	if maxWidth > 0 && width > maxWidth {
		width = maxWidth
	}
	return width
}
