package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dom/dev-network/internal/domain"
	"github.com/dom/dev-network/internal/repository/postgres"
	"github.com/dom/dev-network/internal/service"
	"github.com/dom/dev-network/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestProfileService_Set_CreateThenMerge(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig())
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	// First call creates the profile.
	profile, err := services.Profile.Set(ctx, user.ID, service.SetProfileInput{
		Status:  "Backend Developer",
		Skills:  []string{"Go", "PostgreSQL"},
		Company: strPtr("Acme"),
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.OwnerID)
	assert.Equal(t, "Acme", profile.Company)

	// Second call merges: untouched optional fields survive.
	updated, err := services.Profile.Set(ctx, user.ID, service.SetProfileInput{
		Status:   "Staff Engineer",
		Skills:   []string{"Go"},
		Location: strPtr("Berlin"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", updated.Status)
	assert.Equal(t, "Berlin", updated.Location)
	assert.Equal(t, "Acme", updated.Company, "unspecified field must be left unchanged")

	// Exactly one profile row exists.
	var count int64
	require.NoError(t, testDB.DB.Model(&domain.Profile{}).Where("owner_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestProfileService_Set_ConcurrentFirstTime(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig())
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	// Two first-time submits racing for the same user must produce exactly
	// one profile row.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = services.Profile.Set(ctx, user.ID, service.SetProfileInput{
				Status: "Racer",
				Skills: []string{"Go"},
			})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, testDB.DB.Model(&domain.Profile{}).Where("owner_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestProfileService_Experience(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig())
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	testutil.NewProfileBuilder(user.ID).Build(t, testDB.DB)

	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)

	// E1 then E2: newest entry ends up first.
	profile, err := services.Profile.AddExperience(ctx, user.ID, service.ExperienceInput{
		Title:   "Junior Developer",
		Company: "First Corp",
		From:    from,
		To:      &to,
		Current: false,
	})
	require.NoError(t, err)
	require.Len(t, profile.Experience, 1)

	profile, err = services.Profile.AddExperience(ctx, user.ID, service.ExperienceInput{
		Title:   "Senior Developer",
		Company: "Second Corp",
		From:    to,
	})
	require.NoError(t, err)
	require.Len(t, profile.Experience, 2)
	assert.Equal(t, "Senior Developer", profile.Experience[0].Title)
	assert.Equal(t, "Junior Developer", profile.Experience[1].Title)

	// Entry without an end date is forced current, whatever the caller sent.
	assert.True(t, profile.Experience[0].Current)
	assert.False(t, profile.Experience[1].Current)

	// Removal by id, idempotent on repeat.
	entryID := profile.Experience[0].ID
	profile, err = services.Profile.RemoveExperience(ctx, user.ID, entryID)
	require.NoError(t, err)
	require.Len(t, profile.Experience, 1)
	assert.Equal(t, "Junior Developer", profile.Experience[0].Title)

	profile, err = services.Profile.RemoveExperience(ctx, user.ID, entryID)
	require.NoError(t, err)
	assert.Len(t, profile.Experience, 1, "removing an absent id is a no-op")
}

func TestProfileService_Experience_CurrentForcedWhenOpenEnded(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig())
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	testutil.NewProfileBuilder(user.ID).Build(t, testDB.DB)

	// Caller claims current=false but supplies no end date.
	profile, err := services.Profile.AddExperience(ctx, user.ID, service.ExperienceInput{
		Title:   "Developer",
		Company: "Acme",
		From:    time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		Current: false,
	})
	require.NoError(t, err)
	require.Len(t, profile.Experience, 1)
	assert.True(t, profile.Experience[0].Current, "open-ended entry must be current")
}

func TestProfileService_Education(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig())
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	testutil.NewProfileBuilder(user.ID).Build(t, testDB.DB)

	profile, err := services.Profile.AddEducation(ctx, user.ID, service.EducationInput{
		School:       "State University",
		Degree:       "BSc",
		FieldOfStudy: "Computer Science",
		From:         time.Date(2015, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, profile.Education, 1)
	assert.True(t, profile.Education[0].Current)

	profile, err = services.Profile.RemoveEducation(ctx, user.ID, profile.Education[0].ID)
	require.NoError(t, err)
	assert.Empty(t, profile.Education)
}

func TestProfileService_MutateMissingProfile(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig())
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	_, err := services.Profile.AddExperience(ctx, user.ID, service.ExperienceInput{
		Title:   "Developer",
		Company: "Acme",
		From:    time.Now(),
	})
	assert.ErrorIs(t, err, service.ErrProfileNotFound)
}
