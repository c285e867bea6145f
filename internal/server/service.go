package server

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"notable/internal/store"
	"notable/internal/types"
)

const maxTitleLength = 80

type serviceErrorKind int

const (
	serviceErrorInvalid serviceErrorKind = iota
	serviceErrorNotFound
	serviceErrorUnavailable
)

type ServiceError struct {
	Kind    serviceErrorKind
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func invalidError(message string) error {
	return &ServiceError{Kind: serviceErrorInvalid, Message: message}
}

func notFoundError(message string, err error) error {
	return &ServiceError{Kind: serviceErrorNotFound, Message: message, Err: err}
}

func unavailableError(err error) error {
	return &ServiceError{Kind: serviceErrorUnavailable, Message: err.Error(), Err: err}
}

// NoteService owns id assignment, timestamps, and title validation on top of
// the raw store.
type NoteService struct {
	notes store.NoteStore
	now   func() time.Time
}

func NewNoteService(notes store.NoteStore) *NoteService {
	return &NoteService{notes: notes, now: time.Now}
}

func (s *NoteService) List(ctx context.Context) ([]*types.Note, error) {
	notes, err := s.notes.List(ctx)
	if err != nil {
		return nil, unavailableError(err)
	}
	sorted := make([]types.Note, 0, len(notes))
	for _, note := range notes {
		if note == nil {
			continue
		}
		sorted = append(sorted, *note)
	}
	types.SortByActivity(sorted)
	out := make([]*types.Note, len(sorted))
	for i := range sorted {
		out[i] = &sorted[i]
	}
	return out, nil
}

func (s *NoteService) Create(ctx context.Context, title, content string) (*types.Note, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	stamp := s.now().UTC().Format(time.RFC3339)
	note := &types.Note{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		CreatedAt: stamp,
		UpdatedAt: stamp,
	}
	created, err := s.notes.Put(ctx, note)
	if err != nil {
		return nil, unavailableError(err)
	}
	return created, nil
}

// Update replaces title and content only; id and createdAt are immutable.
func (s *NoteService) Update(ctx context.Context, id, title, content string) (*types.Note, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, invalidError("note id is required")
	}
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	existing, ok, err := s.notes.Get(ctx, id)
	if err != nil {
		return nil, unavailableError(err)
	}
	if !ok || existing == nil {
		return nil, notFoundError("note not found", store.ErrNoteNotFound)
	}
	existing.Title = title
	existing.Content = content
	existing.UpdatedAt = s.now().UTC().Format(time.RFC3339)
	updated, err := s.notes.Put(ctx, existing)
	if err != nil {
		return nil, unavailableError(err)
	}
	return updated, nil
}

func (s *NoteService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return invalidError("note id is required")
	}
	if err := s.notes.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			return notFoundError("note not found", err)
		}
		return unavailableError(err)
	}
	return nil
}

func validateTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return invalidError("title is required")
	}
	if utf8.RuneCountInString(trimmed) > maxTitleLength {
		return invalidError("title too long (max 80 characters)")
	}
	return nil
}
