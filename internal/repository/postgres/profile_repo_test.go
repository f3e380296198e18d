package postgres_test

import (
	"context"
	"testing"

	"github.com/dom/dev-network/internal/domain"
	"github.com/dom/dev-network/internal/repository/postgres"
	"github.com/dom/dev-network/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestProfileRepository_CreateIfAbsent(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	first := &domain.Profile{
		ID:      uuid.New(),
		OwnerID: user.ID,
		Status:  "Developer",
		Skills:  datatypes.JSONSlice[string]{"Go"},
	}
	created, err := repos.Profile.CreateIfAbsent(ctx, first)
	require.NoError(t, err)
	assert.True(t, created)

	// A second insert for the same owner is swallowed, not duplicated.
	second := &domain.Profile{
		ID:      uuid.New(),
		OwnerID: user.ID,
		Status:  "Impostor",
	}
	created, err = repos.Profile.CreateIfAbsent(ctx, second)
	require.NoError(t, err)
	assert.False(t, created)

	stored, err := repos.Profile.GetByOwnerID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, "Developer", stored.Status)
}

func TestProfileRepository_UpdateVersioned(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	testutil.NewProfileBuilder(user.ID).WithStatus("Original").Build(t, testDB.DB)

	// Two readers load the same version.
	copyA, err := repos.Profile.GetByOwnerID(ctx, user.ID)
	require.NoError(t, err)
	copyB, err := repos.Profile.GetByOwnerID(ctx, user.ID)
	require.NoError(t, err)

	// First writer wins.
	copyA.Status = "Writer A"
	ok, err := repos.Profile.UpdateVersioned(ctx, copyA)
	require.NoError(t, err)
	assert.True(t, ok)

	// Second writer holds a stale version and loses.
	copyB.Status = "Writer B"
	ok, err = repos.Profile.UpdateVersioned(ctx, copyB)
	require.NoError(t, err)
	assert.False(t, ok, "stale version must not overwrite")

	stored, err := repos.Profile.GetByOwnerID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Writer A", stored.Status)

	// The losing copy retries from a fresh read and succeeds.
	fresh, err := repos.Profile.GetByOwnerID(ctx, user.ID)
	require.NoError(t, err)
	fresh.Status = "Writer B"
	ok, err = repos.Profile.UpdateVersioned(ctx, fresh)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProfileRepository_DeleteByOwnerID(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	testutil.NewProfileBuilder(user.ID).Build(t, testDB.DB)

	require.NoError(t, repos.Profile.DeleteByOwnerID(ctx, user.ID))

	_, err := repos.Profile.GetByOwnerID(ctx, user.ID)
	assert.Error(t, err)
}
