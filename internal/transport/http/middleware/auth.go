package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/amitb25/habit-backend-sub001/pkg/jwt"
)

type contextKey string

const profileIDKey contextKey = "profileID"

// AuthMiddleware validates bearer tokens locally
type AuthMiddleware struct {
	tokens *jwt.TokenManager
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(tokens *jwt.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Auth validates the JWT token from the Authorization header and stores the
// authenticated profile id in the request context.
func (m *AuthMiddleware) Auth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Missing authorization header", http.StatusUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			http.Error(w, "Invalid authorization header format", http.StatusUnauthorized)
			return
		}

		claims, err := m.tokens.ValidateToken(parts[1])
		if err != nil {
			http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), profileIDKey, claims.ProfileID)
		next(w, r.WithContext(ctx))
	}
}

// GetProfileID returns the authenticated profile id from the request context.
func GetProfileID(r *http.Request) uuid.UUID {
	if id, ok := r.Context().Value(profileIDKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}
