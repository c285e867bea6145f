package app

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// titleMaxRunes is the validation limit; the input accepts a little more
	// so the user sees what they typed instead of silently losing keystrokes.
	titleMaxRunes    = 80
	titleInputLimit  = 120
	contentMinHeight = 4
	formFocusTitle   = 0
	formFocusContent = 1
)

// NoteForm is the draft buffer for create and edit modes: a one-line title
// input and a multi-line content area.
type NoteForm struct {
	title   textinput.Model
	content textarea.Model
	focus   int

	// titleTouched delays the "title is required" message until the user has
	// actually interacted with the field or tried to save.
	titleTouched  bool
	saveAttempted bool
}

func NewNoteForm() *NoteForm {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = titleInputLimit
	title.Prompt = ""

	content := textarea.New()
	content.Placeholder = "Write something..."
	content.ShowLineNumbers = false
	content.CharLimit = 0
	content.SetHeight(contentMinHeight)

	return &NoteForm{title: title, content: content}
}

// SetNote loads a note into the draft and resets interaction state.
func (f *NoteForm) SetNote(title, content string) {
	f.title.SetValue(title)
	f.content.SetValue(content)
	f.titleTouched = false
	f.saveAttempted = false
}

func (f *NoteForm) Title() string   { return f.title.Value() }
func (f *NoteForm) Content() string { return f.content.Value() }

// Focus puts the cursor in the title field.
func (f *NoteForm) Focus() tea.Cmd {
	f.focus = formFocusTitle
	f.content.Blur()
	return f.title.Focus()
}

func (f *NoteForm) Blur() {
	f.title.Blur()
	f.content.Blur()
}

// CycleFocus moves between title and content.
func (f *NoteForm) CycleFocus() tea.Cmd {
	if f.focus == formFocusTitle {
		f.focus = formFocusContent
		f.title.Blur()
		return f.content.Focus()
	}
	f.focus = formFocusTitle
	f.content.Blur()
	return f.title.Focus()
}

func (f *NoteForm) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && f.focus == formFocusTitle {
		switch key.String() {
		case "tab", "shift+tab", "esc", "ctrl+s":
		default:
			f.titleTouched = true
		}
	}
	var cmd tea.Cmd
	if f.focus == formFocusTitle {
		f.title, cmd = f.title.Update(msg)
	} else {
		f.content, cmd = f.content.Update(msg)
	}
	return cmd
}

// MarkSaveAttempted makes validation errors visible even on untouched fields.
func (f *NoteForm) MarkSaveAttempted() {
	f.saveAttempted = true
}

// Valid reports whether the draft can be submitted.
func (f *NoteForm) Valid() bool {
	return validateTitle(f.title.Value()) == ""
}

// TitleError returns the validation message to display, or "" when the field
// is valid or the user has not interacted with it yet.
func (f *NoteForm) TitleError() string {
	if !f.titleTouched && !f.saveAttempted {
		return ""
	}
	return validateTitle(f.title.Value())
}

func (f *NoteForm) SetSize(width, height int) {
	if width < 10 {
		width = 10
	}
	f.title.Width = width
	f.content.SetWidth(width)
	h := height - 6
	if h < contentMinHeight {
		h = contentMinHeight
	}
	f.content.SetHeight(h)
}

func (f *NoteForm) View() string {
	var b strings.Builder
	b.WriteString(fieldLabelStyle.Render("Title"))
	b.WriteString("\n")
	b.WriteString(f.title.View())
	b.WriteString("\n")
	if msg := f.TitleError(); msg != "" {
		b.WriteString(errorStyle.Render(msg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(fieldLabelStyle.Render("Content"))
	b.WriteString("\n")
	b.WriteString(f.content.View())
	return b.String()
}

// validateTitle checks the trimmed title; leading and trailing whitespace is
// allowed and does not count toward the limit.
func validateTitle(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "title is required"
	}
	if utf8.RuneCountInString(trimmed) > titleMaxRunes {
		return "title too long (max 80 characters)"
	}
	return ""
}
