package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dom/dev-network/internal/service"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	UserIDKey contextKey = "userID"
)

// Auth is the sole path by which handlers learn who is calling. It extracts
// the session token, verifies it, resolves the subject to a live user and
// stores the user id in the request context. All verification failures get
// the same client-facing message; the distinct cause is only logged.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				http.Error(w, "Authorization required", http.StatusUnauthorized)
				return
			}

			userID, err := authService.ValidateToken(token)
			if err != nil {
				logrus.WithError(err).Warn("token validation failed")
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			// The subject must still exist; a deleted account's unexpired
			// tokens are no longer accepted.
			if _, err := authService.GetUserByID(r.Context(), userID); err != nil {
				logrus.WithError(err).WithField("user_id", userID).Warn("token subject not resolvable")
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken reads the x-auth-token header, falling back to a Bearer
// Authorization header.
func extractToken(r *http.Request) string {
	if token := r.Header.Get("x-auth-token"); token != "" {
		return token
	}
	authHeader := r.Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}
