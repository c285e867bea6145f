package server

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"notable/internal/store"
)

func testService(t *testing.T) *NoteService {
	t.Helper()
	notes, err := store.NewBoltNoteStore(filepath.Join(t.TempDir(), "notes.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = notes.Close() })
	return NewNoteService(notes)
}

func TestServiceCreateAssignsIdentity(t *testing.T) {
	svc := testService(t)
	note, err := svc.Create(context.Background(), "  padded title  ", "body")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if note.ID == "" {
		t.Fatalf("expected generated id")
	}
	// Titles are stored untrimmed; trimming is a validation concern only.
	if note.Title != "  padded title  " {
		t.Fatalf("expected untrimmed title, got %q", note.Title)
	}
	if _, err := time.Parse(time.RFC3339, note.CreatedAt); err != nil {
		t.Fatalf("createdAt not RFC3339: %q", note.CreatedAt)
	}
}

func TestServiceUpdateBumpsOnlyUpdatedAt(t *testing.T) {
	svc := testService(t)
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	created, err := svc.Create(context.Background(), "T", "c")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	svc.now = func() time.Time { return base.Add(time.Hour) }
	updated, err := svc.Update(context.Background(), created.ID, "T2", "c2")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.CreatedAt != created.CreatedAt {
		t.Fatalf("createdAt changed: %q vs %q", updated.CreatedAt, created.CreatedAt)
	}
	if updated.UpdatedAt == created.UpdatedAt {
		t.Fatalf("updatedAt not bumped")
	}
}

func TestServiceTitleValidation(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "   ", ""); err == nil {
		t.Fatalf("expected error for whitespace title")
	}
	if _, err := svc.Create(ctx, strings.Repeat("x", 81), ""); err == nil {
		t.Fatalf("expected error for 81-char title")
	}
	if _, err := svc.Create(ctx, strings.Repeat("x", 80), ""); err != nil {
		t.Fatalf("80-char title should pass, got %v", err)
	}
	// Surrounding whitespace does not count against the limit.
	if _, err := svc.Create(ctx, "  "+strings.Repeat("y", 80)+"  ", ""); err != nil {
		t.Fatalf("padded 80-char title should pass, got %v", err)
	}
}
