package store

import (
	"context"
	"errors"

	"notable/internal/types"
)

var ErrNoteNotFound = errors.New("note not found")

// NoteStore is the persistence boundary for the local notes server. Put is
// an upsert keyed by the note's id; implementations return copies so callers
// cannot mutate stored state.
type NoteStore interface {
	List(ctx context.Context) ([]*types.Note, error)
	Get(ctx context.Context, id string) (*types.Note, bool, error)
	Put(ctx context.Context, note *types.Note) (*types.Note, error)
	Delete(ctx context.Context, id string) error
	Close() error
}

func cloneNote(note *types.Note) *types.Note {
	if note == nil {
		return nil
	}
	copied := *note
	return &copied
}
