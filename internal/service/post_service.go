package service

import (
	"context"
	"errors"
	"time"

	"github.com/dom/dev-network/internal/domain"
	"github.com/dom/dev-network/internal/repository"
	"github.com/dom/dev-network/internal/security"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
)

type PostService struct {
	postRepo  repository.PostRepository
	userRepo  repository.UserRepository
	sanitizer *security.Sanitizer
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, sanitizer *security.Sanitizer) *PostService {
	return &PostService{
		postRepo:  postRepo,
		userRepo:  userRepo,
		sanitizer: sanitizer,
	}
}

// Create stores a new post, snapshotting the author's name and avatar onto
// it so listing needs no join.
func (s *PostService) Create(ctx context.Context, authorID uuid.UUID, text string) (*domain.Post, error) {
	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	post := &domain.Post{
		ID:       uuid.New(),
		AuthorID: author.ID,
		Text:     s.sanitizer.Clean(text),
		Name:     author.Name,
		Avatar:   author.Avatar,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) GetAll(ctx context.Context) ([]*domain.Post, error) {
	return s.postRepo.GetAll(ctx)
}

func (s *PostService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, postID, callerID uuid.UUID) error {
	post, err := s.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if !domain.CanDeletePost(post.AuthorID, callerID) {
		return ErrForbidden
	}

	return s.postRepo.Delete(ctx, postID)
}

// ToggleLike likes the post for callerID, or removes the like if one is
// already present. Any authenticated user may toggle.
func (s *PostService) ToggleLike(ctx context.Context, postID, callerID uuid.UUID) (*domain.Post, error) {
	return s.mutate(ctx, postID, func(post *domain.Post) error {
		post.Likes = domain.ToggleMembership(post.Likes, callerID)
		return nil
	})
}

// AddComment prepends a comment from callerID with an author snapshot.
func (s *PostService) AddComment(ctx context.Context, postID, callerID uuid.UUID, text string) (*domain.Post, error) {
	author, err := s.userRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	comment := domain.Comment{
		ID:        uuid.New(),
		AuthorID:  author.ID,
		Text:      s.sanitizer.Clean(text),
		Name:      author.Name,
		Avatar:    author.Avatar,
		CreatedAt: time.Now(),
	}

	return s.mutate(ctx, postID, func(post *domain.Post) error {
		post.Comments = domain.Prepend(post.Comments, comment)
		return nil
	})
}

// RemoveComment deletes a comment when the caller is the post's author or
// the comment's author, and returns the removed comment.
func (s *PostService) RemoveComment(ctx context.Context, postID, commentID, callerID uuid.UUID) (*domain.Comment, error) {
	var removed *domain.Comment

	_, err := s.mutate(ctx, postID, func(post *domain.Post) error {
		var target *domain.Comment
		for i := range post.Comments {
			if post.Comments[i].ID == commentID {
				target = &post.Comments[i]
				break
			}
		}
		if target == nil {
			return ErrCommentNotFound
		}

		if !domain.CanRemoveComment(post.AuthorID, target.AuthorID, callerID) {
			return ErrForbidden
		}

		copied := *target
		removed = &copied
		post.Comments = domain.RemoveByID(post.Comments, commentID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

// mutate runs the read-transform-conditional-write cycle for one post,
// retrying once when the version check loses a race.
func (s *PostService) mutate(ctx context.Context, postID uuid.UUID, apply func(*domain.Post) error) (*domain.Post, error) {
	for attempt := 0; attempt < 2; attempt++ {
		post, err := s.GetByID(ctx, postID)
		if err != nil {
			return nil, err
		}

		if err := apply(post); err != nil {
			return nil, err
		}

		ok, err := s.postRepo.UpdateVersioned(ctx, post)
		if err != nil {
			return nil, err
		}
		if ok {
			return post, nil
		}
	}
	return nil, ErrConflict
}
