package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dom/dev-network/internal/api/middleware"
	"github.com/dom/dev-network/internal/domain"
	"github.com/dom/dev-network/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	profileService *service.ProfileService
	accountService *service.AccountService
	githubService  *service.GithubService
}

func NewProfileHandler(profileService *service.ProfileService, accountService *service.AccountService, githubService *service.GithubService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		accountService: accountService,
		githubService:  githubService,
	}
}

type SetProfileRequest struct {
	Status         string              `json:"status"`
	Skills         json.RawMessage     `json:"skills"`
	Company        *string             `json:"company"`
	Website        *string             `json:"website"`
	Location       *string             `json:"location"`
	Bio            *string             `json:"bio"`
	GithubUsername *string             `json:"githubUsername"`
	Social         *domain.SocialLinks `json:"social"`
}

type ExperienceRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type EducationRequest struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

func (h *ProfileHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profileService.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

func (h *ProfileHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Authorization required")
		return
	}

	profile, err := h.profileService.GetByOwnerID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) GetByUserID(w http.ResponseWriter, r *http.Request) {
	ownerID, err := uuid.Parse(chi.URLParam(r, "user_id"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Profile not found")
		return
	}

	profile, err := h.profileService.GetByOwnerID(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) Set(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Authorization required")
		return
	}

	var req SetProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	skills, skillsOK := parseSkills(req.Skills)

	var fields []domain.FieldError
	if req.Status == "" {
		fields = append(fields, domain.FieldError{Field: "status", Message: "Status is required"})
	}
	if !skillsOK || len(skills) == 0 {
		fields = append(fields, domain.FieldError{Field: "skills", Message: "Skills are required"})
	}
	if len(fields) > 0 {
		writeFieldErrors(w, domain.NewValidationError(fields...))
		return
	}

	profile, err := h.profileService.Set(r.Context(), userID, service.SetProfileInput{
		Status:         req.Status,
		Skills:         skills,
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Social:         req.Social,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// DeleteAccount removes the caller's user record and profile. Authored
// posts are retained with their name/avatar snapshots.
func (h *ProfileHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Authorization required")
		return
	}

	if err := h.accountService.DeleteAccount(r.Context(), userID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"msg": "User deleted"})
}

func (h *ProfileHandler) AddExperience(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Authorization required")
		return
	}

	var req ExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var fields []domain.FieldError
	if req.Title == "" {
		fields = append(fields, domain.FieldError{Field: "title", Message: "Title is required"})
	}
	if req.Company == "" {
		fields = append(fields, domain.FieldError{Field: "company", Message: "Company is required"})
	}
	from, err := parseDate(req.From)
	if err != nil {
		fields = append(fields, domain.FieldError{Field: "from", Message: "From date is required"})
	}
	to, err := parseOptionalDate(req.To)
	if err != nil {
		fields = append(fields, domain.FieldError{Field: "to", Message: "To date is invalid"})
	}
	if len(fields) > 0 {
		writeFieldErrors(w, domain.NewValidationError(fields...))
		return
	}

	profile, err := h.profileService.AddExperience(r.Context(), userID, service.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        from,
		To:          to,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) RemoveExperience(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Authorization required")
		return
	}

	entryID, err := uuid.Parse(chi.URLParam(r, "exp_id"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Experience entry not found")
		return
	}

	profile, err := h.profileService.RemoveExperience(r.Context(), userID, entryID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) AddEducation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Authorization required")
		return
	}

	var req EducationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var fields []domain.FieldError
	if req.School == "" {
		fields = append(fields, domain.FieldError{Field: "school", Message: "School is required"})
	}
	if req.Degree == "" {
		fields = append(fields, domain.FieldError{Field: "degree", Message: "Degree is required"})
	}
	if req.FieldOfStudy == "" {
		fields = append(fields, domain.FieldError{Field: "fieldOfStudy", Message: "Field of study is required"})
	}
	from, err := parseDate(req.From)
	if err != nil {
		fields = append(fields, domain.FieldError{Field: "from", Message: "From date is required"})
	}
	to, err := parseOptionalDate(req.To)
	if err != nil {
		fields = append(fields, domain.FieldError{Field: "to", Message: "To date is invalid"})
	}
	if len(fields) > 0 {
		writeFieldErrors(w, domain.NewValidationError(fields...))
		return
	}

	profile, err := h.profileService.AddEducation(r.Context(), userID, service.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         from,
		To:           to,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) RemoveEducation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Authorization required")
		return
	}

	entryID, err := uuid.Parse(chi.URLParam(r, "edu_id"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Education entry not found")
		return
	}

	profile, err := h.profileService.RemoveEducation(r.Context(), userID, entryID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) GithubRepos(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	repos, err := h.githubService.ListRepos(r.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrGithubUserNotFound) {
			writeMessage(w, http.StatusNotFound, "No GitHub profile found")
			return
		}
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, repos)
}

// parseSkills accepts either a JSON array of strings or a single
// comma-separated string, trimming each entry.
func parseSkills(raw json.RawMessage) ([]string, bool) {
	if len(raw) == 0 {
		return nil, false
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		var joined string
		if err := json.Unmarshal(raw, &joined); err != nil {
			return nil, false
		}
		list = strings.Split(joined, ",")
	}

	skills := make([]string, 0, len(list))
	for _, s := range list {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills, true
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
