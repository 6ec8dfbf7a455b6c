package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"shopprr-backend/models"
	"shopprr-backend/services"
)

// Key type for context
type contextKey string

const UserContextKey = contextKey("user")

// Sessions resolves the session cookie on each request and attaches the
// authenticated user, when any, to the request context.
type Sessions struct {
	gate *services.SessionService
}

func NewSessions(gate *services.SessionService) *Sessions {
	return &Sessions{gate: gate}
}

// WithUser resolves the user_session cookie. Missing or invalid tokens
// pass through as anonymous; handlers decide whether that is allowed.
func (m *Sessions) WithUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if cookie, err := r.Cookie(m.gate.Policy.CookieName); err == nil {
			token = cookie.Value
		}

		user, err := m.gate.Authenticate(r.Context(), token)
		if err != nil {
			writeEnvelope(w, http.StatusInternalServerError, "Error resolving session: "+err.Error())
			return
		}
		if user != nil {
			ctx := context.WithValue(r.Context(), UserContextKey, user)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth rejects anonymous requests.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserFrom(r.Context()) == nil {
			writeEnvelope(w, http.StatusUnauthorized, "Please login to continue")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRoles rejects requests whose user is missing or whose role is
// outside the allowed set.
func RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			err := services.Authorize(UserFrom(r.Context()), roles...)
			switch {
			case errors.Is(err, services.ErrUnauthenticated):
				writeEnvelope(w, http.StatusUnauthorized, "Please login to continue")
			case errors.Is(err, services.ErrForbidden):
				writeEnvelope(w, http.StatusForbidden, "Access denied. Admin or staff role required.")
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

// UserFrom returns the authenticated user attached to the context, or
// nil for anonymous requests.
func UserFrom(ctx context.Context) *models.User {
	user, _ := ctx.Value(UserContextKey).(*models.User)
	return user
}

func writeEnvelope(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}
