package client

import (
	"strconv"
	"strings"

	"notable/internal/types"
)

// Remote note payloads vary wildly between backends. Each canonical field is
// resolved from an ordered list of candidate keys; the first key present in
// the raw object wins.
var (
	idKeys        = []string{"id", "_id", "noteId"}
	titleKeys     = []string{"title", "name"}
	contentKeys   = []string{"content", "body", "text"}
	updatedAtKeys = []string{"updatedAt", "updated_at", "modifiedAt", "modified_at"}
	createdAtKeys = []string{"createdAt", "created_at"}
)

// normalizeNote maps a raw decoded JSON value onto the canonical Note shape.
// Non-object values normalize to a zero Note, which callers that need an
// addressable note filter out by its empty id.
func normalizeNote(raw any) types.Note {
	obj, ok := raw.(map[string]any)
	if !ok {
		return types.Note{}
	}
	note := types.Note{
		ID:      stringify(firstPresent(obj, idKeys)),
		Title:   strings.TrimSpace(stringify(firstPresent(obj, titleKeys))),
		Content: stringify(firstPresent(obj, contentKeys)),
	}
	if value, ok := lookup(obj, updatedAtKeys); ok {
		note.UpdatedAt = stringify(value)
	}
	if value, ok := lookup(obj, createdAtKeys); ok {
		note.CreatedAt = stringify(value)
	}
	return note
}

// extractNoteList unwraps a list payload: a bare array is used as-is, an
// object is unwrapped through its data, items, or notes key (first present,
// recursively, so shapes like {"data":{"items":[...]}} resolve). Anything
// else yields an empty list.
func extractNoteList(payload any) []any {
	return extractList(payload, 0)
}

func extractList(payload any, depth int) []any {
	if depth > 8 {
		return nil
	}
	switch value := payload.(type) {
	case []any:
		return value
	case map[string]any:
		for _, key := range []string{"data", "items", "notes"} {
			if inner, ok := value[key]; ok {
				return extractList(inner, depth+1)
			}
		}
	}
	return nil
}

// extractNoteObject unwraps a single-note payload, tolerating a {"data":...}
// envelope around the raw object.
func extractNoteObject(payload any) any {
	if obj, ok := payload.(map[string]any); ok {
		if inner, ok := obj["data"]; ok {
			if _, isObj := inner.(map[string]any); isObj {
				return inner
			}
		}
	}
	return payload
}

func firstPresent(obj map[string]any, keys []string) any {
	value, _ := lookup(obj, keys)
	return value
}

func lookup(obj map[string]any, keys []string) (any, bool) {
	for _, key := range keys {
		if value, ok := obj[key]; ok {
			return value, true
		}
	}
	return nil, false
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}
