package postgres

import (
	"context"

	"github.com/dom/dev-network/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *postRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	var post domain.Post
	err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetAll(ctx context.Context) ([]*domain.Post, error) {
	var posts []*domain.Post
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) UpdateVersioned(ctx context.Context, post *domain.Post) (bool, error) {
	expected := post.Version
	post.Version = expected + 1

	res := r.db.WithContext(ctx).
		Model(&domain.Post{}).
		Where("id = ? AND version = ?", post.ID, expected).
		Select("*").
		Omit("id", "author_id", "created_at").
		Updates(post)
	if res.Error != nil {
		post.Version = expected
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		post.Version = expected
		return false, nil
	}
	return true, nil
}

func (r *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Post{}, "id = ?", id).Error
}
