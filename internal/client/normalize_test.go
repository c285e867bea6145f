package client

import (
	"encoding/json"
	"testing"

	"notable/internal/types"
)

func decodeRaw(t *testing.T, raw string) any {
	t.Helper()
	var payload any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	return payload
}

func TestNormalizeNoteCandidateKeys(t *testing.T) {
	payload := decodeRaw(t, `{"_id":42,"name":"  Plans  ","body":" drafted ","modified_at":"2026-03-01T10:00:00Z","created_at":"2026-02-01T10:00:00Z"}`)
	note := normalizeNote(payload)
	if note.ID != "42" {
		t.Fatalf("expected stringified _id, got %q", note.ID)
	}
	if note.Title != "Plans" {
		t.Fatalf("expected trimmed title, got %q", note.Title)
	}
	if note.Content != " drafted " {
		t.Fatalf("expected untrimmed content, got %q", note.Content)
	}
	if note.UpdatedAt != "2026-03-01T10:00:00Z" {
		t.Fatalf("expected modified_at fallback, got %q", note.UpdatedAt)
	}
	if note.CreatedAt != "2026-02-01T10:00:00Z" {
		t.Fatalf("expected created_at fallback, got %q", note.CreatedAt)
	}
}

func TestNormalizeNotePrecedenceOrder(t *testing.T) {
	payload := decodeRaw(t, `{"id":"a","_id":"b","title":"first","name":"second","content":"x","text":"y"}`)
	note := normalizeNote(payload)
	if note.ID != "a" || note.Title != "first" || note.Content != "x" {
		t.Fatalf("expected earlier candidates to win, got %+v", note)
	}
}

func TestNormalizeNoteNonObject(t *testing.T) {
	for _, raw := range []string{`"plain"`, `17`, `null`, `[1,2]`} {
		note := normalizeNote(decodeRaw(t, raw))
		if note.ID != "" || note.Title != "" || note.Content != "" {
			t.Fatalf("expected zero note for %s, got %+v", raw, note)
		}
	}
}

func TestNormalizeNoteIdempotent(t *testing.T) {
	payload := decodeRaw(t, `{"noteId":7,"name":"Groceries","text":"milk","updated_at":"2026-01-02T03:04:05Z"}`)
	once := normalizeNote(payload)

	data, err := json.Marshal(once)
	if err != nil {
		t.Fatalf("marshal normalized note: %v", err)
	}
	twice := normalizeNote(decodeRaw(t, string(data)))
	if once != twice {
		t.Fatalf("normalization not idempotent: %+v vs %+v", once, twice)
	}
}

func TestExtractNoteListShapes(t *testing.T) {
	cases := map[string]int{
		`[{"id":"1"},{"id":"2"}]`:           2,
		`{"data":[{"id":"1"}]}`:             1,
		`{"items":[{"id":"1"},{"id":"2"}]}`: 2,
		`{"notes":[]}`:                      0,
		`{"data":{"items":[{"id":"1"}]}}`:   1,
		`{"unrelated":true}`:                0,
		`"nonsense"`:                        0,
	}
	for raw, want := range cases {
		got := extractNoteList(decodeRaw(t, raw))
		if len(got) != want {
			t.Fatalf("payload %s: expected %d elements, got %d", raw, want, len(got))
		}
	}
}

func TestExtractNoteListPrecedence(t *testing.T) {
	payload := decodeRaw(t, `{"notes":[{"id":"n"}],"data":[{"id":"d"}],"items":[{"id":"i"}]}`)
	list := extractNoteList(payload)
	if len(list) != 1 {
		t.Fatalf("expected one element, got %d", len(list))
	}
	if note := normalizeNote(list[0]); note.ID != "d" {
		t.Fatalf("expected data key to take precedence, got %q", note.ID)
	}
}

func TestWrappedListNormalizesToCanonicalNotes(t *testing.T) {
	payload := decodeRaw(t, `{"data":{"items":[{"_id":"1","name":"A","body":"x"}]}}`)
	raw := extractNoteList(payload)
	if len(raw) != 1 {
		t.Fatalf("expected one raw note, got %d", len(raw))
	}
	note := normalizeNote(raw[0])
	want := types.Note{ID: "1", Title: "A", Content: "x"}
	if note != want {
		t.Fatalf("expected %+v, got %+v", want, note)
	}
}
