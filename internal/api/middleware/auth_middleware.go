package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/storefront-api/internal/auth"
	appErrors "github.com/aaravmahajanofficial/storefront-api/internal/errors"
	"github.com/aaravmahajanofficial/storefront-api/internal/models"
	"github.com/aaravmahajanofficial/storefront-api/internal/utils/response"
	"github.com/google/uuid"
)

type contextKey uuid.UUID

var UserContextKey = contextKey(uuid.New())

// Authenticator verifies a bearer token; *auth.Gate satisfies it.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.Claims, error)
}

type AuthMiddleware struct {
	gate Authenticator
}

func NewAuthMiddleware(gate Authenticator) *AuthMiddleware {

	return &AuthMiddleware{gate: gate}

}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		// Get token from Authorization header
		authHeader := r.Header.Get("Authorization")

		if authHeader == "" {
			logger.Warn("Missing authorization header")
			response.Error(w, appErrors.UnauthorizedError("Not authorized, no token"))
			return
		}

		// Token is of format : "Bearer <token>"
		scheme, tokenString, ok := strings.Cut(authHeader, " ")

		if !ok || scheme != "Bearer" || strings.TrimSpace(tokenString) == "" {
			logger.Warn("Invalid authorization header format")
			response.Error(w, appErrors.UnauthorizedError("Not authorized, no token"))
			return
		}

		claims, err := m.gate.Authenticate(r.Context(), strings.TrimSpace(tokenString))

		switch {
		case err == nil:
		case errors.Is(err, auth.ErrExpiredToken):
			logger.Warn("Expired token")
			response.Error(w, appErrors.UnauthorizedError("Not authorized, token expired"))
			return
		case errors.Is(err, auth.ErrRevokedToken):
			logger.Warn("Revoked token used")
			response.Error(w, appErrors.UnauthorizedError("Not authorized, token revoked"))
			return
		case errors.Is(err, auth.ErrInvalidToken):
			logger.Warn("JWT validation failed", slog.String("error", err.Error()))
			response.Error(w, appErrors.UnauthorizedError("Not authorized, token failed"))
			return
		default:
			logger.Error("Token verification unavailable", slog.Any("error", err))
			response.Error(w, appErrors.InternalError("Failed to verify token").WithError(err))
			return
		}

		requestScopedLogger := logger.With(slog.String("userId", claims.UserID.String()))
		ctx := ContextWithLogger(ContextWithClaims(r.Context(), claims), requestScopedLogger)

		requestScopedLogger.Debug("User authenticated")

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// RequireAdmin must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Not authorized, no token"))
			return
		}

		if claims.Role != models.RoleAdmin {
			LoggerFromContext(r.Context()).Warn("Admin route denied", slog.String("role", string(claims.Role)))
			response.Error(w, appErrors.ForbiddenError("Not authorized as an admin"))
			return
		}

		next.ServeHTTP(w, r)
	}
}

// Admin chains Authenticate and RequireAdmin.
func (m *AuthMiddleware) Admin(next http.Handler) http.HandlerFunc {
	return m.Authenticate(m.RequireAdmin(next))
}

func ContextWithClaims(ctx context.Context, claims *models.Claims) context.Context {
	return context.WithValue(ctx, UserContextKey, claims)
}

func ClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*models.Claims)
	return claims, ok && claims != nil
}
