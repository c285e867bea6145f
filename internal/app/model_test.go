package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"notable/internal/types"
)

type fakeAPI struct {
	notes     []types.Note
	listErr   error
	saveErr   error
	deleteErr error

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int

	lastID      string
	lastTitle   string
	lastContent string
}

func (f *fakeAPI) ListNotes(ctx context.Context) ([]types.Note, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]types.Note, len(f.notes))
	copy(out, f.notes)
	return out, nil
}

func (f *fakeAPI) CreateNote(ctx context.Context, title, content string) (types.Note, error) {
	f.createCalls++
	f.lastTitle, f.lastContent = title, content
	if f.saveErr != nil {
		return types.Note{}, f.saveErr
	}
	return types.Note{ID: fmt.Sprintf("gen-%d", f.createCalls), Title: title, Content: content}, nil
}

func (f *fakeAPI) UpdateNote(ctx context.Context, id, title, content string) (types.Note, error) {
	f.updateCalls++
	f.lastID, f.lastTitle, f.lastContent = id, title, content
	if f.saveErr != nil {
		return types.Note{}, f.saveErr
	}
	return types.Note{ID: id, Title: title, Content: content}, nil
}

func (f *fakeAPI) DeleteNote(ctx context.Context, id string) error {
	f.deleteCalls++
	f.lastID = id
	return f.deleteErr
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func apply(m *Model, msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

// runCmds executes a command tree synchronously and feeds the domain messages
// it yields back into the model, mirroring what the runtime would do.
func runCmds(m *Model, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			runCmds(m, c)
		}
		return
	}
	switch msg.(type) {
	case notesLoadedMsg, noteSavedMsg, noteDeletedMsg:
		apply(m, msg)
	}
}

func loadedModel(t *testing.T, api *fakeAPI) *Model {
	t.Helper()
	model := NewModel(api)
	m := &model
	m.Init()
	apply(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	apply(m, notesLoadedMsg{seq: m.loadSeq, notes: api.notes})
	return m
}

func sampleNotes() []types.Note {
	return []types.Note{
		{ID: "a", Title: "Alpha", Content: "first", UpdatedAt: "2026-03-03T10:00:00Z"},
		{ID: "b", Title: "Beta", Content: "second", UpdatedAt: "2026-02-02T10:00:00Z"},
		{ID: "c", Title: "Gamma", Content: "third", UpdatedAt: "2026-01-01T10:00:00Z"},
	}
}

func TestInitialLoadSelectsFirstNote(t *testing.T) {
	api := &fakeAPI{notes: sampleNotes()}
	m := loadedModel(t, api)

	if m.selectedID != "a" {
		t.Fatalf("expected first note selected, got %q", m.selectedID)
	}
	if m.mode != modeView {
		t.Fatalf("expected view mode")
	}
	if m.loading {
		t.Fatalf("loading flag not cleared")
	}
}

func TestEmptyCollectionHasNoSelection(t *testing.T) {
	m := loadedModel(t, &fakeAPI{})
	if m.selectedID != "" {
		t.Fatalf("expected empty selection, got %q", m.selectedID)
	}
}

func TestStaleLoadIsDropped(t *testing.T) {
	api := &fakeAPI{notes: sampleNotes()}
	m := loadedModel(t, api)

	// A refresh supersedes the previous generation.
	apply(m, keyRune('r'))
	staleSeq := m.loadSeq - 1
	apply(m, notesLoadedMsg{seq: staleSeq, notes: nil})
	if len(m.notes) != 3 {
		t.Fatalf("stale load replaced collection: %d notes", len(m.notes))
	}
	apply(m, notesLoadedMsg{seq: m.loadSeq, notes: api.notes[:1]})
	if len(m.notes) != 1 {
		t.Fatalf("current load not applied: %d notes", len(m.notes))
	}
}

func TestLoadErrorKeepsCollection(t *testing.T) {
	api := &fakeAPI{notes: sampleNotes()}
	m := loadedModel(t, api)

	apply(m, keyRune('r'))
	apply(m, notesLoadedMsg{seq: m.loadSeq, err: errors.New("connection refused")})
	if len(m.notes) != 3 {
		t.Fatalf("error load clobbered collection")
	}
	if m.errText != "connection refused" {
		t.Fatalf("unexpected error text %q", m.errText)
	}
}

func TestSelectionMovesAndResyncsDraft(t *testing.T) {
	m := loadedModel(t, &fakeAPI{notes: sampleNotes()})

	apply(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.selectedID != "b" {
		t.Fatalf("expected b selected, got %q", m.selectedID)
	}
	if m.form.Title() != "Beta" || m.form.Content() != "second" {
		t.Fatalf("draft not resynced: %q / %q", m.form.Title(), m.form.Content())
	}

	// Clamped at the ends.
	apply(m, tea.KeyMsg{Type: tea.KeyDown})
	apply(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.selectedID != "c" {
		t.Fatalf("expected clamp at last note, got %q", m.selectedID)
	}
}

func TestCreateFlow(t *testing.T) {
	api := &fakeAPI{notes: sampleNotes()}
	m := loadedModel(t, api)

	apply(m, keyRune('n'))
	if m.mode != modeCreate {
		t.Fatalf("expected create mode")
	}
	if m.form.Title() != "" || m.form.Content() != "" {
		t.Fatalf("create draft not empty")
	}

	m.form.SetNote("My note", "body text")
	cmd := apply(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !m.busy {
		t.Fatalf("expected busy while save in flight")
	}
	runCmds(m, cmd)

	if api.createCalls != 1 {
		t.Fatalf("expected one create call, got %d", api.createCalls)
	}
	if m.busy {
		t.Fatalf("busy not cleared")
	}
	if m.mode != modeView {
		t.Fatalf("expected return to view mode")
	}
	if m.selectedID != "gen-1" {
		t.Fatalf("new note not selected, got %q", m.selectedID)
	}
	if m.toastText != "Saved." {
		t.Fatalf("expected Saved. toast, got %q", m.toastText)
	}
}

func TestWhitespaceTitleNeverReachesAdapter(t *testing.T) {
	api := &fakeAPI{}
	m := loadedModel(t, api)

	apply(m, keyRune('n'))
	m.form.SetNote("   ", "content")
	apply(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	if api.createCalls != 0 {
		t.Fatalf("adapter called with invalid title")
	}
	if m.busy {
		t.Fatalf("busy set despite invalid draft")
	}
	if m.form.TitleError() != "title is required" {
		t.Fatalf("expected field error, got %q", m.form.TitleError())
	}
	if m.mode != modeCreate {
		t.Fatalf("mode changed on invalid save")
	}
}

func TestEditFlowUpdatesAndToasts(t *testing.T) {
	api := &fakeAPI{notes: sampleNotes()}
	m := loadedModel(t, api)

	apply(m, keyRune('e'))
	if m.mode != modeEdit {
		t.Fatalf("expected edit mode")
	}
	if m.form.Title() != "Alpha" {
		t.Fatalf("draft not seeded from selection: %q", m.form.Title())
	}

	m.form.SetNote("Alpha 2", "rewritten")
	cmd := apply(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	runCmds(m, cmd)

	if api.updateCalls != 1 || api.lastID != "a" {
		t.Fatalf("unexpected update calls: %d id=%q", api.updateCalls, api.lastID)
	}
	if m.toastText != "Updated." {
		t.Fatalf("expected Updated. toast, got %q", m.toastText)
	}
	note, ok := m.selectedNote()
	if !ok || note.Title != "Alpha 2" {
		t.Fatalf("collection not updated: %+v", note)
	}
}

func TestCancelEditDiscardsDraft(t *testing.T) {
	m := loadedModel(t, &fakeAPI{notes: sampleNotes()})

	apply(m, keyRune('e'))
	m.form.SetNote("scratch", "scratch body")
	apply(m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.mode != modeView {
		t.Fatalf("expected view mode after cancel")
	}
	if m.form.Title() != "Alpha" || m.form.Content() != "first" {
		t.Fatalf("draft not restored from selection: %q / %q", m.form.Title(), m.form.Content())
	}
}

func TestSaveErrorStaysInEditor(t *testing.T) {
	api := &fakeAPI{notes: sampleNotes(), saveErr: errors.New("title too long (max 80 characters)")}
	m := loadedModel(t, api)

	apply(m, keyRune('e'))
	m.form.SetNote("Alpha 2", "body")
	cmd := apply(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	runCmds(m, cmd)

	if m.mode != modeEdit {
		t.Fatalf("expected to remain in edit mode on error")
	}
	if m.busy {
		t.Fatalf("busy not cleared on error")
	}
	if m.errText != "title too long (max 80 characters)" {
		t.Fatalf("unexpected error text %q", m.errText)
	}
	if m.form.Title() != "Alpha 2" {
		t.Fatalf("draft lost on error")
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	api := &fakeAPI{notes: sampleNotes()}
	m := loadedModel(t, api)

	apply(m, keyRune('d'))
	if !m.confirm.IsOpen() {
		t.Fatalf("expected confirm dialog")
	}
	if api.deleteCalls != 0 {
		t.Fatalf("delete issued before confirmation")
	}

	// Declining leaves everything intact.
	apply(m, keyRune('n'))
	if m.confirm.IsOpen() {
		t.Fatalf("dialog not closed on cancel")
	}
	if m.pendingDeleteID != "" {
		t.Fatalf("pending delete not cleared")
	}
	if api.deleteCalls != 0 || len(m.notes) != 3 {
		t.Fatalf("cancel still deleted something")
	}
}

func TestDeleteMovesSelectionToFirst(t *testing.T) {
	api := &fakeAPI{notes: sampleNotes()}
	m := loadedModel(t, api)

	apply(m, keyRune('d'))
	cmd := apply(m, keyRune('y'))
	if !m.busy {
		t.Fatalf("expected busy during delete")
	}
	runCmds(m, cmd)

	if api.deleteCalls != 1 || api.lastID != "a" {
		t.Fatalf("unexpected delete calls: %d id=%q", api.deleteCalls, api.lastID)
	}
	if len(m.notes) != 2 {
		t.Fatalf("note not removed")
	}
	if m.selectedID != "b" {
		t.Fatalf("selection not moved to new first, got %q", m.selectedID)
	}
	if m.toastText != "Deleted." {
		t.Fatalf("expected Deleted. toast, got %q", m.toastText)
	}
}

func TestDeleteLastNoteEmptiesSelection(t *testing.T) {
	api := &fakeAPI{notes: sampleNotes()[:1]}
	m := loadedModel(t, api)

	apply(m, keyRune('d'))
	runCmds(m, apply(m, keyRune('y')))

	if len(m.notes) != 0 {
		t.Fatalf("expected empty collection")
	}
	if m.selectedID != "" {
		t.Fatalf("expected empty selection, got %q", m.selectedID)
	}
	if m.mode != modeView {
		t.Fatalf("expected view mode")
	}
	if m.form.Title() != "" || m.form.Content() != "" {
		t.Fatalf("draft not emptied")
	}
}

func TestBusyBlocksMutationsButNotBrowsing(t *testing.T) {
	m := loadedModel(t, &fakeAPI{notes: sampleNotes()})
	m.busy = true

	apply(m, keyRune('n'))
	if m.mode != modeView {
		t.Fatalf("create started while busy")
	}
	apply(m, keyRune('e'))
	if m.mode != modeView {
		t.Fatalf("edit started while busy")
	}
	apply(m, keyRune('d'))
	if m.confirm.IsOpen() {
		t.Fatalf("delete dialog opened while busy")
	}

	apply(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.selectedID != "b" {
		t.Fatalf("browsing blocked while busy")
	}
}

func TestEditModeKeepsSelectionAndRoutesKeysToDraft(t *testing.T) {
	m := loadedModel(t, &fakeAPI{notes: sampleNotes()})

	apply(m, keyRune('e'))
	apply(m, tea.KeyMsg{Type: tea.KeyDown})
	apply(m, keyRune('j'))

	if m.selectedID != "a" {
		t.Fatalf("selection changed while editing, got %q", m.selectedID)
	}
	if m.form.Title() != "Alphaj" {
		t.Fatalf("key not routed to draft, title %q", m.form.Title())
	}
}

func TestSelectionSurvivesReloadWhenPresent(t *testing.T) {
	api := &fakeAPI{notes: sampleNotes()}
	m := loadedModel(t, api)
	apply(m, tea.KeyMsg{Type: tea.KeyDown})

	apply(m, keyRune('r'))
	apply(m, notesLoadedMsg{seq: m.loadSeq, notes: sampleNotes()})
	if m.selectedID != "b" {
		t.Fatalf("selection lost across reload, got %q", m.selectedID)
	}

	// Gone from the server: fall back to the first note.
	apply(m, keyRune('r'))
	apply(m, notesLoadedMsg{seq: m.loadSeq, notes: sampleNotes()[2:]})
	if m.selectedID != "c" {
		t.Fatalf("expected fallback to first note, got %q", m.selectedID)
	}
}

func TestToastClearIsSequenceGuarded(t *testing.T) {
	m := loadedModel(t, &fakeAPI{})

	m.showToast(toastInfo, "Saved.")
	first := m.toastSeq
	m.showToast(toastInfo, "Updated.")

	apply(m, toastClearMsg{seq: first})
	if m.toastText != "Updated." {
		t.Fatalf("old timer cleared newer toast")
	}
	apply(m, toastClearMsg{seq: m.toastSeq})
	if m.toastText != "" {
		t.Fatalf("toast not cleared by its own timer")
	}
}

func TestSavedNoteResortsCollection(t *testing.T) {
	api := &fakeAPI{notes: sampleNotes()}
	m := loadedModel(t, api)

	apply(m, notesLoadedMsg{seq: m.loadSeq, notes: api.notes})
	apply(m, noteSavedMsg{note: types.Note{ID: "c", Title: "Gamma", Content: "x", UpdatedAt: "2026-04-01T00:00:00Z"}})

	if m.notes[0].ID != "c" {
		t.Fatalf("updated note should sort first, got %q", m.notes[0].ID)
	}
	if m.selectedID != "c" {
		t.Fatalf("saved note not selected")
	}
}
