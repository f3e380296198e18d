package repository

import (
	"context"

	"github.com/dom/dev-network/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProfileRepository interface {
	// CreateIfAbsent inserts the profile unless one already exists for the
	// owner. Returns false when the owner's profile already existed, making
	// concurrent first-time upserts race-safe.
	CreateIfAbsent(ctx context.Context, profile *domain.Profile) (bool, error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*domain.Profile, error)
	GetAll(ctx context.Context) ([]*domain.Profile, error)
	// UpdateVersioned writes the profile only if the stored version still
	// matches profile.Version, bumping it on success. Returns false on a
	// version conflict.
	UpdateVersioned(ctx context.Context, profile *domain.Profile) (bool, error)
	DeleteByOwnerID(ctx context.Context, ownerID uuid.UUID) error
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	GetAll(ctx context.Context) ([]*domain.Post, error)
	// UpdateVersioned has the same conditional-write contract as
	// ProfileRepository.UpdateVersioned.
	UpdateVersioned(ctx context.Context, post *domain.Post) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Repositories struct {
	User    UserRepository
	Profile ProfileRepository
	Post    PostRepository
}
