package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"notable/internal/types"
)

type uiMode int

const (
	modeView uiMode = iota
	modeEdit
	modeCreate
)

// Model holds the entire UI state: the note collection, the current
// selection, the interaction mode, the draft buffer, and the transient
// busy/error/status flags.
type Model struct {
	api NotesAPI

	notes      []types.Note
	selectedID string
	mode       uiMode

	form    *NoteForm
	confirm *ConfirmController

	pendingDeleteID string

	// busy is true while a create/update/delete is in flight; it serializes
	// mutations but never blocks browsing.
	busy bool

	// loading is true while a list fetch is in flight. loadSeq identifies the
	// newest fetch so responses from superseded fetches are dropped.
	loading bool
	loadSeq int

	errText string

	toastText  string
	toastLevel toastLevel
	toastSeq   int

	loader spinner.Model

	width  int
	height int
}

func NewModel(api NotesAPI) Model {
	loader := spinner.New()
	loader.Spinner = spinner.Dot
	loader.Style = metaStyle
	return Model{
		api:     api,
		mode:    modeView,
		form:    NewNoteForm(),
		confirm: NewConfirmController(),
		loader:  loader,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.startLoad(), m.loader.Tick)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.form.SetSize(m.detailWidth(), m.height)
		return m, nil
	case spinner.TickMsg:
		if !m.busy && !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.loader, cmd = m.loader.Update(msg)
		return m, cmd
	case toastClearMsg:
		m.clearToast(msg.seq)
		return m, nil
	case notesLoadedMsg:
		return m.reduceNotesLoaded(msg)
	case noteSavedMsg:
		return m.reduceNoteSaved(msg)
	case noteDeletedMsg:
		return m.reduceNoteDeleted(msg)
	case tea.KeyMsg:
		return m.reduceKey(msg)
	}
	if m.mode != modeView {
		return m, m.form.Update(msg)
	}
	return m, nil
}

// startLoad begins a new list fetch generation.
func (m *Model) startLoad() tea.Cmd {
	m.loadSeq++
	m.loading = true
	return loadNotesCmd(m.api, m.loadSeq)
}

func (m *Model) reduceNotesLoaded(msg notesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.loadSeq {
		return m, nil
	}
	m.loading = false
	if msg.err != nil {
		m.errText = msg.err.Error()
		return m, nil
	}
	m.errText = ""
	m.notes = msg.notes
	types.SortByActivity(m.notes)
	m.reconcileSelection()
	if m.mode == modeView {
		m.syncDraft()
	}
	return m, nil
}

func (m *Model) reduceNoteSaved(msg noteSavedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		// Stay in the editor so the draft is not lost.
		m.errText = msg.err.Error()
		return m, nil
	}
	m.errText = ""
	m.upsertNote(msg.note)
	types.SortByActivity(m.notes)
	m.selectedID = msg.note.ID
	m.mode = modeView
	m.form.Blur()
	m.syncDraft()
	text := "Updated."
	if msg.created {
		text = "Saved."
	}
	return m, m.showToast(toastInfo, text)
}

func (m *Model) reduceNoteDeleted(msg noteDeletedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	m.pendingDeleteID = ""
	if msg.err != nil {
		m.errText = msg.err.Error()
		return m, nil
	}
	m.errText = ""
	m.removeNote(msg.id)
	if m.selectedID == msg.id {
		m.selectedID = ""
		if len(m.notes) > 0 {
			m.selectedID = m.notes[0].ID
		}
	}
	m.mode = modeView
	m.syncDraft()
	return m, m.showToast(toastInfo, "Deleted.")
}

func (m *Model) reduceKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.confirm.IsOpen() {
		return m.reduceConfirmKey(msg)
	}
	if m.mode == modeView {
		return m.reduceViewKey(msg)
	}
	return m.reduceFormKey(msg)
}

func (m *Model) reduceConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	_, choice := m.confirm.HandleKey(msg)
	switch choice {
	case confirmChoiceConfirm:
		m.confirm.Close()
		id := m.pendingDeleteID
		if id == "" {
			return m, nil
		}
		m.busy = true
		return m, tea.Batch(deleteNoteCmd(m.api, id), m.loader.Tick)
	case confirmChoiceCancel:
		m.confirm.Close()
		m.pendingDeleteID = ""
	}
	return m, nil
}

func (m *Model) reduceViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		m.moveSelection(-1)
	case "down", "j":
		m.moveSelection(1)
	case "home", "g":
		if len(m.notes) > 0 {
			m.selectedID = m.notes[0].ID
			m.syncDraft()
		}
	case "end", "G":
		if len(m.notes) > 0 {
			m.selectedID = m.notes[len(m.notes)-1].ID
			m.syncDraft()
		}
	case "r":
		if m.loading {
			return m, nil
		}
		m.errText = ""
		return m, tea.Batch(m.startLoad(), m.loader.Tick)
	case "n":
		if m.busy {
			return m, nil
		}
		m.mode = modeCreate
		m.form.SetNote("", "")
		return m, m.form.Focus()
	case "e", "enter":
		note, ok := m.selectedNote()
		if m.busy || !ok {
			return m, nil
		}
		m.mode = modeEdit
		m.form.SetNote(note.Title, note.Content)
		return m, m.form.Focus()
	case "d":
		note, ok := m.selectedNote()
		if m.busy || !ok {
			return m, nil
		}
		m.pendingDeleteID = note.ID
		title := note.Title
		if title == "" {
			title = "(untitled)"
		}
		m.confirm.Open("Delete note", fmt.Sprintf("Delete %q? This cannot be undone.", title), "Delete", "Cancel")
	case "c":
		note, ok := m.selectedNote()
		if !ok {
			return m, nil
		}
		return m, m.copyWithStatus(note.Content, "Copied.")
	}
	return m, nil
}

// reduceFormKey routes every key except esc/tab/ctrl+s into the draft while
// editing or creating. Selection keys are deliberately unavailable here: the
// single draft buffer mirrors exactly one note, so changing the selection
// requires leaving the editor (esc) first.
func (m *Model) reduceFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeView
		m.errText = ""
		m.form.Blur()
		m.syncDraft()
		return m, nil
	case "tab", "shift+tab":
		return m, m.form.CycleFocus()
	case "ctrl+s":
		return m.submitDraft()
	}
	return m, m.form.Update(msg)
}

func (m *Model) submitDraft() (tea.Model, tea.Cmd) {
	m.form.MarkSaveAttempted()
	if m.busy || !m.form.Valid() {
		return m, nil
	}
	m.busy = true
	m.errText = ""
	title, content := m.form.Title(), m.form.Content()
	var cmd tea.Cmd
	if m.mode == modeCreate {
		cmd = createNoteCmd(m.api, title, content)
	} else {
		cmd = updateNoteCmd(m.api, m.selectedID, title, content)
	}
	return m, tea.Batch(cmd, m.loader.Tick)
}

func (m *Model) selectedNote() (types.Note, bool) {
	for _, note := range m.notes {
		if note.ID == m.selectedID && note.ID != "" {
			return note, true
		}
	}
	return types.Note{}, false
}

func (m *Model) selectedIndex() int {
	for i, note := range m.notes {
		if note.ID == m.selectedID {
			return i
		}
	}
	return -1
}

func (m *Model) moveSelection(delta int) {
	if len(m.notes) == 0 {
		return
	}
	idx := m.selectedIndex()
	if idx < 0 {
		idx = 0
	} else {
		idx += delta
		if idx < 0 {
			idx = 0
		}
		if idx >= len(m.notes) {
			idx = len(m.notes) - 1
		}
	}
	m.selectedID = m.notes[idx].ID
	m.syncDraft()
}

// reconcileSelection keeps the selection valid after the collection changed:
// the selected note survives if it is still present, otherwise the first note
// is selected, and the selection is empty only when the list is.
func (m *Model) reconcileSelection() {
	if _, ok := m.selectedNote(); ok {
		return
	}
	m.selectedID = ""
	if len(m.notes) > 0 {
		m.selectedID = m.notes[0].ID
	}
}

// syncDraft mirrors the selected note into the draft buffer so edit mode
// always starts from the note being viewed.
func (m *Model) syncDraft() {
	if note, ok := m.selectedNote(); ok {
		m.form.SetNote(note.Title, note.Content)
		return
	}
	m.form.SetNote("", "")
}

func (m *Model) upsertNote(note types.Note) {
	for i := range m.notes {
		if m.notes[i].ID == note.ID {
			m.notes[i] = note
			return
		}
	}
	m.notes = append(m.notes, note)
}

func (m *Model) removeNote(id string) {
	for i := range m.notes {
		if m.notes[i].ID == id {
			m.notes = append(m.notes[:i], m.notes[i+1:]...)
			return
		}
	}
}
