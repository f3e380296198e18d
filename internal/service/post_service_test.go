package service_test

import (
	"context"
	"testing"

	"github.com/dom/dev-network/internal/repository/postgres"
	"github.com/dom/dev-network/internal/service"
	"github.com/dom/dev-network/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_Create_SnapshotsAuthor(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig())
	ctx := context.Background()

	author, _ := testutil.NewUserBuilder().WithName("Ada Lovelace").Build(t, testDB.DB)

	post, err := services.Post.Create(ctx, author.ID, "first post")
	require.NoError(t, err)
	assert.Equal(t, author.ID, post.AuthorID)
	assert.Equal(t, "Ada Lovelace", post.Name)
	assert.Equal(t, author.Avatar, post.Avatar)
	assert.Empty(t, post.Likes)
	assert.Empty(t, post.Comments)
}

func TestPostService_Create_SanitizesBody(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig())
	ctx := context.Background()

	author, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	post, err := services.Post.Create(ctx, author.ID, "<b>hello</b> there")
	require.NoError(t, err)
	assert.Equal(t, "hello there", post.Text)
}

func TestPostService_ToggleLike(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig())
	ctx := context.Background()

	userA, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	userB, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	post := testutil.NewPostBuilder(userA).Build(t, testDB.DB)

	// B likes A's post.
	updated, err := services.Post.ToggleLike(ctx, post.ID, userB.ID)
	require.NoError(t, err)
	require.Len(t, updated.Likes, 1)
	assert.True(t, updated.LikedBy(userB.ID))

	// B likes again: the like is removed.
	updated, err = services.Post.ToggleLike(ctx, post.ID, userB.ID)
	require.NoError(t, err)
	assert.Empty(t, updated.Likes)
}

func TestPostService_Delete(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig())
	ctx := context.Background()

	author, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	stranger, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	post := testutil.NewPostBuilder(author).Build(t, testDB.DB)

	// Someone else cannot delete the post.
	err := services.Post.Delete(ctx, post.ID, stranger.ID)
	assert.ErrorIs(t, err, service.ErrForbidden)

	// The author can.
	err = services.Post.Delete(ctx, post.ID, author.ID)
	require.NoError(t, err)

	_, err = services.Post.GetByID(ctx, post.ID)
	assert.ErrorIs(t, err, service.ErrPostNotFound)
}

func TestPostService_Comments(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig())
	ctx := context.Background()

	author, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	commenter, _ := testutil.NewUserBuilder().WithName("Commenter").Build(t, testDB.DB)
	post := testutil.NewPostBuilder(author).Build(t, testDB.DB)

	updated, err := services.Post.AddComment(ctx, post.ID, commenter.ID, "first!")
	require.NoError(t, err)
	require.Len(t, updated.Comments, 1)
	assert.Equal(t, "first!", updated.Comments[0].Text)
	assert.Equal(t, "Commenter", updated.Comments[0].Name)

	// Second comment lands in front of the first.
	updated, err = services.Post.AddComment(ctx, post.ID, author.ID, "second")
	require.NoError(t, err)
	require.Len(t, updated.Comments, 2)
	assert.Equal(t, "second", updated.Comments[0].Text)
	assert.Equal(t, "first!", updated.Comments[1].Text)
}

func TestPostService_RemoveComment_Authorization(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig())
	ctx := context.Background()

	postAuthor, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	commentAuthor, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	stranger, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	tests := []struct {
		name    string
		caller  uuid.UUID
		wantErr error
	}{
		{
			name:   "post author removes someone else's comment",
			caller: postAuthor.ID,
		},
		{
			name:   "comment author retracts their own comment",
			caller: commentAuthor.ID,
		},
		{
			name:    "unrelated user is denied",
			caller:  stranger.ID,
			wantErr: service.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := testutil.NewPostBuilder(postAuthor).
				WithComment(commentAuthor, "contested comment").
				Build(t, testDB.DB)
			commentID := post.Comments[0].ID

			removed, err := services.Post.RemoveComment(ctx, post.ID, commentID, tt.caller)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				current, err := services.Post.GetByID(ctx, post.ID)
				require.NoError(t, err)
				assert.Len(t, current.Comments, 1, "denied removal must not change the post")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, commentID, removed.ID)
			assert.Equal(t, "contested comment", removed.Text)

			current, err := services.Post.GetByID(ctx, post.ID)
			require.NoError(t, err)
			assert.Empty(t, current.Comments)
		})
	}
}

func TestPostService_RemoveComment_MissingComment(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig())
	ctx := context.Background()

	author, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	post := testutil.NewPostBuilder(author).Build(t, testDB.DB)

	_, err := services.Post.RemoveComment(ctx, post.ID, uuid.New(), author.ID)
	assert.ErrorIs(t, err, service.ErrCommentNotFound)
}
