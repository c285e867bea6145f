package app

import "notable/internal/types"

// notesLoadedMsg carries the result of a list fetch. seq matches the load
// generation it was issued for; stale results are dropped.
type notesLoadedMsg struct {
	seq   int
	notes []types.Note
	err   error
}

// noteSavedMsg carries the result of a create or update.
type noteSavedMsg struct {
	note    types.Note
	created bool
	err     error
}

// noteDeletedMsg carries the result of a delete.
type noteDeletedMsg struct {
	id  string
	err error
}

// toastClearMsg fires when a status pill expires. seq guards against a newer
// pill being cleared by an older timer.
type toastClearMsg struct {
	seq int
}
