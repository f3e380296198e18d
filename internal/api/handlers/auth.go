package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"

	"github.com/dom/dev-network/internal/api/middleware"
	"github.com/dom/dev-network/internal/domain"
	"github.com/dom/dev-network/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var fields []domain.FieldError
	if req.Name == "" {
		fields = append(fields, domain.FieldError{Field: "name", Message: "Name is required"})
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		fields = append(fields, domain.FieldError{Field: "email", Message: "Valid email required"})
	}
	if len(req.Password) < 6 {
		fields = append(fields, domain.FieldError{Field: "password", Message: "Password must be at least 6 characters"})
	}
	if len(fields) > 0 {
		writeFieldErrors(w, domain.NewValidationError(fields...))
		return
	}

	result, err := h.authService.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeFieldErrors(w, domain.NewValidationError(
				domain.FieldError{Field: "email", Message: "User already exists with this email"},
			))
			return
		}
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user":  result.User,
		"token": result.Token,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeFieldErrors(w, domain.NewValidationError(
			domain.FieldError{Field: "email", Message: "Email and password are required"},
		))
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Same message for wrong password and unknown email so the
			// response can't be used to enumerate accounts.
			writeMessage(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{Token: result.Token})
}

// Me returns the authenticated caller's identity, password hash stripped.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Authorization required")
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
