package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront-api/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRevocations struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
	err     error
}

func newMemoryRevocations() *memoryRevocations {
	return &memoryRevocations{revoked: map[string]time.Duration{}}
}

func (m *memoryRevocations) RevokeToken(_ context.Context, jti string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}

	m.revoked[jti] = ttl

	return nil
}

func (m *memoryRevocations) IsTokenRevoked(_ context.Context, jti string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return false, m.err
	}

	_, ok := m.revoked[jti]

	return ok, nil
}

var testKey = []byte("test-secret")

func testUser(role models.Role) *models.User {
	return &models.User{ID: uuid.New(), Email: "jane@example.com", Name: "Jane", Role: role}
}

func TestIssueAndAuthenticate(t *testing.T) {
	gate := NewGate(testKey, time.Hour, newMemoryRevocations())
	user := testUser(models.RoleAdmin)

	token, issued, err := gate.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.NotEmpty(t, issued.ID)
	require.NotNil(t, issued.ExpiresAt)
	require.NotNil(t, issued.IssuedAt)

	claims, err := gate.Authenticate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, issued.ID, claims.ID)
}

func TestAuthenticateRejects(t *testing.T) {
	ctx := context.Background()

	t.Run("Wrong key", func(t *testing.T) {
		token, _, err := NewGate([]byte("other"), time.Hour, newMemoryRevocations()).Issue(testUser(models.RoleUser))
		require.NoError(t, err)

		_, err = NewGate(testKey, time.Hour, newMemoryRevocations()).Authenticate(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := NewGate(testKey, time.Hour, newMemoryRevocations()).Authenticate(ctx, "not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		gate := NewGate(testKey, time.Hour, newMemoryRevocations())
		token, _, err := gate.Issue(testUser(models.RoleUser))
		require.NoError(t, err)

		gate.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

		_, err = gate.Authenticate(ctx, token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Missing exp", func(t *testing.T) {
		claims := &models.Claims{
			UserID:           uuid.New(),
			Role:             models.RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{ID: uuid.NewString()},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testKey)
		require.NoError(t, err)

		_, err = NewGate(testKey, time.Hour, newMemoryRevocations()).Authenticate(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Missing jti", func(t *testing.T) {
		claims := &models.Claims{
			UserID: uuid.New(),
			Role:   models.RoleUser,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testKey)
		require.NoError(t, err)

		_, err = NewGate(testKey, time.Hour, newMemoryRevocations()).Authenticate(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Unknown role", func(t *testing.T) {
		claims := &models.Claims{
			UserID: uuid.New(),
			Role:   "superuser",
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        uuid.NewString(),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testKey)
		require.NoError(t, err)

		_, err = NewGate(testKey, time.Hour, newMemoryRevocations()).Authenticate(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("None algorithm", func(t *testing.T) {
		claims := &models.Claims{
			UserID: uuid.New(),
			Role:   models.RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        uuid.NewString(),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = NewGate(testKey, time.Hour, newMemoryRevocations()).Authenticate(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestRevoke(t *testing.T) {
	ctx := context.Background()
	store := newMemoryRevocations()
	gate := NewGate(testKey, time.Hour, store)

	token, claims, err := gate.Issue(testUser(models.RoleUser))
	require.NoError(t, err)

	require.NoError(t, gate.Revoke(ctx, claims))

	ttl, ok := store.revoked[claims.ID]
	require.True(t, ok)
	assert.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 5)

	_, err = gate.Authenticate(ctx, token)
	assert.ErrorIs(t, err, ErrRevokedToken)

	t.Run("Other tokens still valid", func(t *testing.T) {
		other, _, err := gate.Issue(testUser(models.RoleUser))
		require.NoError(t, err)

		_, err = gate.Authenticate(ctx, other)
		assert.NoError(t, err)
	})

	t.Run("Nil claims", func(t *testing.T) {
		assert.ErrorIs(t, gate.Revoke(ctx, nil), ErrInvalidToken)
	})
}

func TestRevocationStoreFailure(t *testing.T) {
	ctx := context.Background()
	store := newMemoryRevocations()
	gate := NewGate(testKey, time.Hour, store)

	token, claims, err := gate.Issue(testUser(models.RoleUser))
	require.NoError(t, err)

	store.err = errors.New("redis down")

	_, err = gate.Authenticate(ctx, token)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidToken)

	err = gate.Revoke(ctx, claims)
	assert.ErrorIs(t, err, store.err)
}
