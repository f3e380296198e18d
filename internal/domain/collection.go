package domain

import "github.com/google/uuid"

// Identified is implemented by embedded entries addressable by a unique id.
type Identified interface {
	EntryID() uuid.UUID
}

// Prepend inserts entry at the front so collections stay newest-first.
// The input slice is not modified.
func Prepend[T any](entries []T, entry T) []T {
	out := make([]T, 0, len(entries)+1)
	out = append(out, entry)
	return append(out, entries...)
}

// RemoveByID returns entries without the entry whose id matches. A missing
// id is a no-op, not an error; callers decide whether that is user-visible.
func RemoveByID[T Identified](entries []T, id uuid.UUID) []T {
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		if e.EntryID() == id {
			continue
		}
		out = append(out, e)
	}
	return out
}

// ToggleMembership removes userID from the set when present and appends it
// when absent. Applying it twice returns the original membership.
func ToggleMembership(set []uuid.UUID, userID uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(set)+1)
	found := false
	for _, id := range set {
		if id == userID {
			found = true
			continue
		}
		out = append(out, id)
	}
	if !found {
		out = append(out, userID)
	}
	return out
}
