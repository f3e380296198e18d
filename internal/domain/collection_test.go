package domain_test

import (
	"testing"

	"github.com/dom/dev-network/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepend_NewestFirst(t *testing.T) {
	e1 := domain.Experience{ID: uuid.New(), Title: "Junior"}
	e2 := domain.Experience{ID: uuid.New(), Title: "Senior"}

	entries := domain.Prepend(nil, e1)
	entries = domain.Prepend(entries, e2)

	require.Len(t, entries, 2)
	assert.Equal(t, e2.ID, entries[0].ID, "last added entry must come first")
	assert.Equal(t, e1.ID, entries[1].ID)
}

func TestPrepend_DoesNotMutateInput(t *testing.T) {
	e1 := domain.Experience{ID: uuid.New()}
	original := []domain.Experience{e1}

	_ = domain.Prepend(original, domain.Experience{ID: uuid.New()})

	require.Len(t, original, 1)
	assert.Equal(t, e1.ID, original[0].ID)
}

func TestRemoveByID(t *testing.T) {
	e1 := domain.Experience{ID: uuid.New(), Title: "First"}
	e2 := domain.Experience{ID: uuid.New(), Title: "Second"}
	entries := []domain.Experience{e1, e2}

	entries = domain.RemoveByID(entries, e1.ID)

	require.Len(t, entries, 1)
	assert.Equal(t, e2.ID, entries[0].ID)
}

func TestRemoveByID_Idempotent(t *testing.T) {
	e1 := domain.Experience{ID: uuid.New()}
	entries := []domain.Experience{e1}

	entries = domain.RemoveByID(entries, e1.ID)
	require.Empty(t, entries)

	// Second removal of the same id is a no-op, not an error.
	entries = domain.RemoveByID(entries, e1.ID)
	assert.Empty(t, entries)
}

func TestRemoveByID_MissingIDUnchanged(t *testing.T) {
	e1 := domain.Education{ID: uuid.New(), School: "MIT"}
	entries := []domain.Education{e1}

	entries = domain.RemoveByID(entries, uuid.New())

	require.Len(t, entries, 1)
	assert.Equal(t, e1.ID, entries[0].ID)
}

func TestToggleMembership_SelfInverse(t *testing.T) {
	userID := uuid.New()

	set := domain.ToggleMembership(nil, userID)
	require.Len(t, set, 1)
	assert.Equal(t, userID, set[0])

	set = domain.ToggleMembership(set, userID)
	assert.Empty(t, set)

	// A third toggle re-adds the member.
	set = domain.ToggleMembership(set, userID)
	require.Len(t, set, 1)
	assert.Equal(t, userID, set[0])
}

func TestToggleMembership_IndependentMembers(t *testing.T) {
	userA := uuid.New()
	userB := uuid.New()

	set := domain.ToggleMembership(nil, userA)
	set = domain.ToggleMembership(set, userB)
	require.Len(t, set, 2)

	set = domain.ToggleMembership(set, userA)
	require.Len(t, set, 1)
	assert.Equal(t, userB, set[0])
}
