package service

import (
	"context"
	"errors"

	"github.com/dom/dev-network/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
}

func NewAccountService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository) *AccountService {
	return &AccountService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// DeleteAccount removes the user and their profile. Posts authored by the
// user are intentionally retained: they carry a denormalized name/avatar
// snapshot and stay readable after the account is gone.
func (s *AccountService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.profileRepo.DeleteByOwnerID(ctx, userID); err != nil {
		return err
	}

	return s.userRepo.Delete(ctx, userID)
}
