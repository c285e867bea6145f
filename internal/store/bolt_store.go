package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"

	"notable/internal/types"
)

var bucketNotes = []byte("notes")

// BoltNoteStore keeps notes as JSON values in a single bbolt bucket keyed by
// note id.
type BoltNoteStore struct {
	db *bolt.DB
}

func NewBoltNoteStore(path string) (*BoltNoteStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("store db path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketNotes)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &BoltNoteStore{db: db}, nil
}

func (s *BoltNoteStore) List(ctx context.Context) ([]*types.Note, error) {
	var notes []*types.Note
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketNotes)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(_, value []byte) error {
			var note types.Note
			if err := json.Unmarshal(value, &note); err != nil {
				return err
			}
			notes = append(notes, &note)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []*types.Note{}
	}
	return notes, nil
}

func (s *BoltNoteStore) Get(ctx context.Context, id string) (*types.Note, bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, false, nil
	}
	var note *types.Note
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketNotes)
		if bucket == nil {
			return nil
		}
		value := bucket.Get([]byte(id))
		if value == nil {
			return nil
		}
		var decoded types.Note
		if err := json.Unmarshal(value, &decoded); err != nil {
			return err
		}
		note = &decoded
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return note, note != nil, nil
}

func (s *BoltNoteStore) Put(ctx context.Context, note *types.Note) (*types.Note, error) {
	if note == nil {
		return nil, errors.New("note is required")
	}
	if strings.TrimSpace(note.ID) == "" {
		return nil, errors.New("note id is required")
	}
	stored := cloneNote(note)
	value, err := json.Marshal(stored)
	if err != nil {
		return nil, err
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketNotes).Put([]byte(stored.ID), value)
	})
	if err != nil {
		return nil, err
	}
	return cloneNote(stored), nil
}

func (s *BoltNoteStore) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNoteNotFound
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketNotes)
		if bucket == nil || bucket.Get([]byte(id)) == nil {
			return ErrNoteNotFound
		}
		return bucket.Delete([]byte(id))
	})
}

func (s *BoltNoteStore) Close() error {
	return s.db.Close()
}
