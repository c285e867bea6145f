package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	minListWidth = 20
	maxListWidth = 36
)

func (m *Model) listWidth() int {
	w := m.width / 3
	if w < minListWidth {
		w = minListWidth
	}
	if w > maxListWidth {
		w = maxListWidth
	}
	return w
}

func (m *Model) detailWidth() int {
	w := m.width - m.listWidth() - 3
	if w < 20 {
		w = 20
	}
	return w
}

func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}

	header := titleBarStyle.Render("notable")
	if m.loading || m.busy {
		header += " " + m.loader.View()
	}

	body := m.renderBody()
	if m.confirm.IsOpen() {
		bodyHeight := m.height - 3
		if bodyHeight < 5 {
			bodyHeight = 5
		}
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center,
			m.confirm.View(m.width-4))
	}

	return header + "\n" + body + "\n" + m.renderStatusLine()
}

func (m *Model) renderBody() string {
	left := m.renderList()
	var right string
	if m.mode == modeView {
		right = m.renderDetail()
	} else {
		right = m.renderForm()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " │ ", right)
}

func (m *Model) renderList() string {
	width := m.listWidth()
	if len(m.notes) == 0 {
		if m.loading {
			return listItemStyle.Render(truncateToWidth("loading...", width))
		}
		return listItemStyle.Render(truncateToWidth("no notes yet — press n", width))
	}
	lines := make([]string, 0, len(m.notes))
	for _, note := range m.notes {
		title := note.Title
		if strings.TrimSpace(title) == "" {
			title = "(untitled)"
		}
		title = truncateToWidth(title, width-2)
		if note.ID == m.selectedID {
			lines = append(lines, listSelectedStyle.Render("▸ "+title))
		} else {
			lines = append(lines, listItemStyle.Render(title))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderDetail() string {
	note, ok := m.selectedNote()
	if !ok {
		return metaStyle.Render("Nothing selected.")
	}
	width := m.detailWidth()

	var b strings.Builder
	title := note.Title
	if strings.TrimSpace(title) == "" {
		title = "(untitled)"
	}
	b.WriteString(detailTitleStyle.Render(truncateToWidth(title, width)))
	b.WriteString("\n")
	if stamp := note.ActivityStamp(); stamp != "" {
		b.WriteString(metaStyle.Render(truncateToWidth("updated "+stamp, width)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if strings.TrimSpace(note.Content) == "" {
		b.WriteString(metaStyle.Render("(empty)"))
	} else {
		b.WriteString(renderMarkdown(note.Content, width))
	}
	return b.String()
}

func (m *Model) renderForm() string {
	var b strings.Builder
	label := "Edit note"
	if m.mode == modeCreate {
		label = "New note"
	}
	b.WriteString(detailTitleStyle.Render(label))
	b.WriteString("\n\n")
	b.WriteString(m.form.View())
	return b.String()
}

func (m *Model) renderStatusLine() string {
	var parts []string
	if m.errText != "" {
		parts = append(parts, errorStyle.Render(truncateToWidth(m.errText, m.width-2)))
	}
	if m.toastText != "" {
		parts = append(parts, toastStyleFor(m.toastLevel).Render(m.toastText))
	}
	if len(parts) == 0 {
		parts = append(parts, helpStyle.Render(m.helpText()))
	}
	return strings.Join(parts, "  ")
}

func (m *Model) helpText() string {
	if m.confirm.IsOpen() {
		return "y/enter confirm · n/esc cancel · tab switch"
	}
	if m.mode != modeView {
		return "ctrl+s save · tab next field · esc cancel"
	}
	return "↑/↓ select · n new · e edit · d delete · c copy · r refresh · q quit"
}

func truncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return xansi.Truncate(s, width, "…")
}
