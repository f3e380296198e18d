package service

import (
	"errors"

	"github.com/dom/dev-network/internal/auth"
	"github.com/dom/dev-network/internal/config"
	"github.com/dom/dev-network/internal/repository"
	"github.com/dom/dev-network/internal/security"
)

var (
	// ErrConflict is returned when an aggregate write keeps losing the
	// optimistic concurrency check after the bounded retry.
	ErrConflict = errors.New("aggregate was modified concurrently")

	// ErrForbidden is returned when the caller is authenticated but the
	// ownership rule denies the requested action.
	ErrForbidden = errors.New("not authorized for this action")
)

type Services struct {
	Auth    *AuthService
	Account *AccountService
	Profile *ProfileService
	Post    *PostService
	Github  *GithubService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	codec := auth.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)
	sanitizer := security.NewSanitizer()

	authService := NewAuthService(repos.User, codec)
	return &Services{
		Auth:    authService,
		Account: NewAccountService(repos.User, repos.Profile),
		Profile: NewProfileService(repos.Profile, sanitizer),
		Post:    NewPostService(repos.Post, repos.User, sanitizer),
		Github:  NewGithubService(cfg.GithubToken),
	}
}
