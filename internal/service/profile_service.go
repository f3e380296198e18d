package service

import (
	"context"
	"errors"
	"time"

	"github.com/dom/dev-network/internal/domain"
	"github.com/dom/dev-network/internal/repository"
	"github.com/dom/dev-network/internal/security"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileService struct {
	profileRepo repository.ProfileRepository
	sanitizer   *security.Sanitizer
}

func NewProfileService(profileRepo repository.ProfileRepository, sanitizer *security.Sanitizer) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		sanitizer:   sanitizer,
	}
}

// SetProfileInput carries the upsert fields. Status and Skills are required
// on every call; nil pointer fields are left unchanged on update.
type SetProfileInput struct {
	Status         string
	Skills         []string
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	GithubUsername *string
	Social         *domain.SocialLinks
}

type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

func (s *ProfileService) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) GetAll(ctx context.Context) ([]*domain.Profile, error) {
	return s.profileRepo.GetAll(ctx)
}

// Set creates the caller's profile on first call and merges the supplied
// fields afterwards. The create path is an atomic insert-if-absent so two
// concurrent first-time submits cannot produce two rows.
func (s *ProfileService) Set(ctx context.Context, callerID uuid.UUID, input SetProfileInput) (*domain.Profile, error) {
	fresh := &domain.Profile{
		ID:      uuid.New(),
		OwnerID: callerID,
	}
	s.applyFields(fresh, input)

	created, err := s.profileRepo.CreateIfAbsent(ctx, fresh)
	if err != nil {
		return nil, err
	}
	if created {
		return s.profileRepo.GetByOwnerID(ctx, callerID)
	}

	// A profile already exists (possibly created by a racing request a
	// moment ago): merge into it under the version check.
	return s.mutate(ctx, callerID, func(profile *domain.Profile) error {
		s.applyFields(profile, input)
		return nil
	})
}

func (s *ProfileService) applyFields(profile *domain.Profile, input SetProfileInput) {
	profile.Status = input.Status
	profile.Skills = datatypes.JSONSlice[string](input.Skills)
	if input.Company != nil {
		profile.Company = *input.Company
	}
	if input.Website != nil {
		profile.Website = *input.Website
	}
	if input.Location != nil {
		profile.Location = *input.Location
	}
	if input.Bio != nil {
		profile.Bio = s.sanitizer.Clean(*input.Bio)
	}
	if input.GithubUsername != nil {
		profile.GithubUsername = *input.GithubUsername
	}
	if input.Social != nil {
		profile.Social = datatypes.NewJSONType(*input.Social)
	}
}

func (s *ProfileService) AddExperience(ctx context.Context, callerID uuid.UUID, input ExperienceInput) (*domain.Profile, error) {
	entry := domain.Experience{
		ID:          uuid.New(),
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		From:        input.From,
		To:          input.To,
		Current:     input.Current,
		Description: s.sanitizer.Clean(input.Description),
	}
	// An open-ended entry is current regardless of what the caller sent.
	if entry.To == nil {
		entry.Current = true
	}

	return s.mutate(ctx, callerID, func(profile *domain.Profile) error {
		profile.Experience = domain.Prepend(profile.Experience, entry)
		return nil
	})
}

func (s *ProfileService) RemoveExperience(ctx context.Context, callerID uuid.UUID, entryID uuid.UUID) (*domain.Profile, error) {
	return s.mutate(ctx, callerID, func(profile *domain.Profile) error {
		profile.Experience = domain.RemoveByID(profile.Experience, entryID)
		return nil
	})
}

func (s *ProfileService) AddEducation(ctx context.Context, callerID uuid.UUID, input EducationInput) (*domain.Profile, error) {
	entry := domain.Education{
		ID:           uuid.New(),
		School:       input.School,
		Degree:       input.Degree,
		FieldOfStudy: input.FieldOfStudy,
		From:         input.From,
		To:           input.To,
		Current:      input.Current,
		Description:  s.sanitizer.Clean(input.Description),
	}
	if entry.To == nil {
		entry.Current = true
	}

	return s.mutate(ctx, callerID, func(profile *domain.Profile) error {
		profile.Education = domain.Prepend(profile.Education, entry)
		return nil
	})
}

func (s *ProfileService) RemoveEducation(ctx context.Context, callerID uuid.UUID, entryID uuid.UUID) (*domain.Profile, error) {
	return s.mutate(ctx, callerID, func(profile *domain.Profile) error {
		profile.Education = domain.RemoveByID(profile.Education, entryID)
		return nil
	})
}

// mutate runs the read-transform-conditional-write cycle for the caller's
// profile, retrying once when the version check loses a race.
func (s *ProfileService) mutate(ctx context.Context, callerID uuid.UUID, apply func(*domain.Profile) error) (*domain.Profile, error) {
	for attempt := 0; attempt < 2; attempt++ {
		profile, err := s.profileRepo.GetByOwnerID(ctx, callerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProfileNotFound
			}
			return nil, err
		}

		if !domain.CanModifyProfile(profile.OwnerID, callerID) {
			return nil, ErrForbidden
		}

		if err := apply(profile); err != nil {
			return nil, err
		}

		ok, err := s.profileRepo.UpdateVersioned(ctx, profile)
		if err != nil {
			return nil, err
		}
		if ok {
			return profile, nil
		}
	}
	return nil, ErrConflict
}
