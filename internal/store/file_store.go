package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"notable/internal/types"
)

// FileNoteStore keeps one markdown file per note: YAML front matter for the
// metadata, the body as the note content.
type FileNoteStore struct {
	dir string
	log zerolog.Logger
	mu  sync.Mutex
}

type noteFrontMatter struct {
	ID        string `yaml:"id"`
	Title     string `yaml:"title"`
	CreatedAt string `yaml:"createdAt,omitempty"`
	UpdatedAt string `yaml:"updatedAt,omitempty"`
}

func NewFileNoteStore(dir string, log zerolog.Logger) (*FileNoteStore, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("store directory is required")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileNoteStore{dir: dir, log: log}, nil
}

func (s *FileNoteStore) List(ctx context.Context) ([]*types.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	notes := []*types.Note{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		note, err := readNoteFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			// Files that are not valid notes are skipped, not fatal.
			s.log.Warn().Err(err).Str("file", entry.Name()).Msg("skipping invalid note file")
			continue
		}
		notes = append(notes, note)
	}
	return notes, nil
}

func (s *FileNoteStore) Get(ctx context.Context, id string) (*types.Note, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.notePath(id)
	if err != nil {
		return nil, false, nil
	}
	note, err := readNoteFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return note, true, nil
}

func (s *FileNoteStore) Put(ctx context.Context, note *types.Note) (*types.Note, error) {
	if note == nil {
		return nil, errors.New("note is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.notePath(note.ID)
	if err != nil {
		return nil, err
	}
	if err := writeNoteFile(path, note); err != nil {
		return nil, err
	}
	return cloneNote(note), nil
}

func (s *FileNoteStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.notePath(id)
	if err != nil {
		return ErrNoteNotFound
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNoteNotFound
		}
		return err
	}
	return nil
}

func (s *FileNoteStore) Close() error {
	return nil
}

func (s *FileNoteStore) notePath(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" || id != filepath.Base(id) {
		return "", errors.New("invalid note id")
	}
	return filepath.Join(s.dir, id+".md"), nil
}

func readNoteFile(path string) (*types.Note, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	header, body, err := splitFrontMatter(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	var meta noteFrontMatter
	if err := yaml.Unmarshal(header, &meta); err != nil {
		return nil, fmt.Errorf("parse front matter: %w", err)
	}
	if strings.TrimSpace(meta.ID) == "" {
		return nil, fmt.Errorf("note file %s has no id", filepath.Base(path))
	}
	return &types.Note{
		ID:        meta.ID,
		Title:     meta.Title,
		Content:   string(body),
		CreatedAt: meta.CreatedAt,
		UpdatedAt: meta.UpdatedAt,
	}, nil
}

// splitFrontMatter separates the YAML header from the note body. The closing
// delimiter must sit alone on its own line, so a "---" inside a front-matter
// value (a title, say) never terminates the header early.
func splitFrontMatter(data []byte) (header, body []byte, err error) {
	open := []byte("---\n")
	if !bytes.HasPrefix(data, open) {
		return nil, nil, errors.New("missing front matter")
	}
	rest := data[len(open):]
	if idx := bytes.Index(rest, []byte("\n---\n")); idx >= 0 {
		header = rest[:idx+1]
		body = bytes.TrimPrefix(rest[idx+len("\n---\n"):], []byte("\n"))
		return header, body, nil
	}
	if bytes.HasSuffix(rest, []byte("\n---")) {
		return rest[:len(rest)-len("---")], nil, nil
	}
	return nil, nil, errors.New("unterminated front matter")
}

func writeNoteFile(path string, note *types.Note) error {
	var buf bytes.Buffer
	buf.WriteString("---\n")
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	err := encoder.Encode(noteFrontMatter{
		ID:        note.ID,
		Title:     note.Title,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("encode front matter: %w", err)
	}
	_ = encoder.Close()
	buf.WriteString("---\n\n")
	buf.WriteString(note.Content)
	return os.WriteFile(path, buf.Bytes(), 0o600)
}
