package postgres

import (
	"context"

	"github.com/dom/dev-network/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *profileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) CreateIfAbsent(ctx context.Context, profile *domain.Profile) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}},
			DoNothing: true,
		}).
		Create(profile)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *profileRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.db.WithContext(ctx).
		Preload("Owner").
		First(&profile, "owner_id = ?", ownerID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetAll(ctx context.Context) ([]*domain.Profile, error) {
	var profiles []*domain.Profile
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Order("created_at DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepository) UpdateVersioned(ctx context.Context, profile *domain.Profile) (bool, error) {
	expected := profile.Version
	profile.Version = expected + 1

	res := r.db.WithContext(ctx).
		Model(&domain.Profile{}).
		Where("id = ? AND version = ?", profile.ID, expected).
		Select("*").
		Omit("id", "owner_id", "created_at", "Owner").
		Updates(profile)
	if res.Error != nil {
		profile.Version = expected
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		profile.Version = expected
		return false, nil
	}
	return true, nil
}

func (r *profileRepository) DeleteByOwnerID(ctx context.Context, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Profile{}, "owner_id = ?", ownerID).Error
}
