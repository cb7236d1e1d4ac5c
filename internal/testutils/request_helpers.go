package testutils

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/aaravmahajanofficial/storefront-api/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront-api/internal/models"
	"github.com/google/uuid"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// NewRequest builds a request with a silent logger and the given path values set.
func NewRequest(method, target, body string, pathParams map[string]string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	return req.WithContext(middleware.ContextWithLogger(req.Context(), discardLogger))
}

// NewAuthenticatedRequest is NewRequest as seen after the auth middleware accepted a token for role.
func NewAuthenticatedRequest(method, target, body string, userID uuid.UUID, role models.Role, pathParams map[string]string) *http.Request {
	req := NewRequest(method, target, body, pathParams)

	claims := &models.Claims{UserID: userID, Email: "test@example.com", Role: role}

	return req.WithContext(middleware.ContextWithClaims(req.Context(), claims))
}
