package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

func loadNotesCmd(api NotesAPI, seq int) tea.Cmd {
	return func() tea.Msg {
		notes, err := api.ListNotes(context.Background())
		return notesLoadedMsg{seq: seq, notes: notes, err: err}
	}
}

func createNoteCmd(api NotesAPI, title, content string) tea.Cmd {
	return func() tea.Msg {
		note, err := api.CreateNote(context.Background(), title, content)
		return noteSavedMsg{note: note, created: true, err: err}
	}
}

func updateNoteCmd(api NotesAPI, id, title, content string) tea.Cmd {
	return func() tea.Msg {
		note, err := api.UpdateNote(context.Background(), id, title, content)
		return noteSavedMsg{note: note, err: err}
	}
}

func deleteNoteCmd(api NotesAPI, id string) tea.Cmd {
	return func() tea.Msg {
		err := api.DeleteNote(context.Background(), id)
		return noteDeletedMsg{id: id, err: err}
	}
}
