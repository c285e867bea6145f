package types

import (
	"sort"
	"strings"
	"time"
)

// Note is the canonical note shape shared by the client, the UI, and the
// bundled server. Timestamps are kept as the ISO-ish strings remote APIs
// return; absence is tolerated everywhere.
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// ActivityStamp returns the timestamp used for ordering: updatedAt when set,
// otherwise createdAt, otherwise empty.
func (n Note) ActivityStamp() string {
	if strings.TrimSpace(n.UpdatedAt) != "" {
		return strings.TrimSpace(n.UpdatedAt)
	}
	return strings.TrimSpace(n.CreatedAt)
}

// SortByActivity orders notes most-recent-activity-first. Notes without any
// timestamp sort as if their timestamp were the oldest possible value. The
// sort is stable so equal-key notes keep their arrival order.
func SortByActivity(notes []Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		return stampAfter(notes[i].ActivityStamp(), notes[j].ActivityStamp())
	})
}

var stampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseStamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range stampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// stampAfter reports whether a sorts before b under most-recent-first
// ordering. Unparsable non-empty stamps fall back to lexicographic
// comparison; empty stamps lose to everything.
func stampAfter(a, b string) bool {
	if a == "" {
		return false
	}
	if b == "" {
		return true
	}
	ta, okA := parseStamp(a)
	tb, okB := parseStamp(b)
	if okA && okB {
		return ta.After(tb)
	}
	if okA != okB {
		return okA
	}
	return a > b
}
