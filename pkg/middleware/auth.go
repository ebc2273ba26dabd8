package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"strings"

	"github.com/skavtech/ict-platform/pkg/auth"
	"github.com/skavtech/ict-platform/pkg/logger"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UsernameKey contextKey = "username"
	RoleKey     contextKey = "role"
)

// Auth validates the bearer token and stores the caller in the request
// context.
func Auth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			logger.Warn(r.Context()).Msg("Missing authorization header")
			respondError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			logger.Warn(r.Context()).Msg("Invalid authorization header format")
			respondError(w, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			logger.Warn(r.Context()).Err(err).Msg("Invalid token")
			respondError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	}
}

// OptionalAuth attaches the caller's claims when a valid bearer token is
// present and otherwise lets the request through anonymously.
func OptionalAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok && token != "" {
			if claims, err := auth.ValidateToken(token); err == nil {
				r = r.WithContext(WithClaims(r.Context(), claims))
			}
		}
		next.ServeHTTP(w, r)
	}
}

// RequireRole allows the request through Auth only for the listed roles.
func RequireRole(roles ...string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return Auth(func(w http.ResponseWriter, r *http.Request) {
			role := Role(r.Context())
			if !slices.Contains(roles, role) {
				logger.Warn(r.Context()).
					Str("role", role).
					Strs("allowed", roles).
					Msg("Access denied")
				respondError(w, http.StatusForbidden, "Insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Admin is RequireRole("admin").
func Admin(next http.HandlerFunc) http.HandlerFunc {
	return RequireRole("admin")(next)
}

func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
	ctx = context.WithValue(ctx, UsernameKey, claims.Username)
	return context.WithValue(ctx, RoleKey, claims.Role)
}

// UserID returns the authenticated user id, or 0.
func UserID(ctx context.Context) uint {
	id, _ := ctx.Value(UserIDKey).(uint)
	return id
}

// Role returns the authenticated role, or "".
func Role(ctx context.Context) string {
	role, _ := ctx.Value(RoleKey).(string)
	return role
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message})
}
