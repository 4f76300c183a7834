package store

import "errors"

var (
	// ErrNotFound is returned when a requested row does not exist locally.
	ErrNotFound = errors.New("record not found")
	// ErrLocalSessionNotFound is returned when no sign-in state is stored.
	ErrLocalSessionNotFound = errors.New("local session not found")
	// ErrEntrySuperseded is returned by MarkSynced when the entry's version
	// no longer matches: a newer mutation collapsed into it while the drain
	// was in flight, and the entry must stay pending.
	ErrEntrySuperseded = errors.New("queue entry superseded by a newer change")
)
