package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"notable/internal/types"
)

// NotesAPI is the adapter surface the orchestrator drives. *client.Client
// satisfies it; tests substitute fakes.
type NotesAPI interface {
	ListNotes(ctx context.Context) ([]types.Note, error)
	CreateNote(ctx context.Context, title, content string) (types.Note, error)
	UpdateNote(ctx context.Context, id, title, content string) (types.Note, error)
	DeleteNote(ctx context.Context, id string) error
}

// Run starts the terminal UI against the given adapter.
func Run(api NotesAPI) error {
	model := NewModel(api)
	p := tea.NewProgram(&model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
