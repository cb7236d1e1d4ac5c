package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/storefront-api/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrRevokedToken = errors.New("token revoked")
)

// RevocationStore remembers revoked token ids until the token would have expired anyway.
type RevocationStore interface {
	RevokeToken(ctx context.Context, jti string, ttl time.Duration) error
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

type Gate struct {
	key         []byte
	expiry      time.Duration
	revocations RevocationStore
	now         func() time.Time
}

func NewGate(key []byte, expiry time.Duration, revocations RevocationStore) *Gate {
	return &Gate{
		key:         key,
		expiry:      expiry,
		revocations: revocations,
		now:         time.Now,
	}
}

func (g *Gate) Expiry() time.Duration {
	return g.expiry
}

// Issue signs an HS256 token carrying the user's id, email and role.
func (g *Gate) Issue(user *models.User) (string, *models.Claims, error) {
	now := g.now()

	claims := &models.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(g.key)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, claims, nil
}

// Authenticate verifies signature, expiry and revocation and returns the embedded claims.
func (g *Gate) Authenticate(ctx context.Context, tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return g.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(g.now),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid || claims.ID == "" || claims.UserID == uuid.Nil {
		return nil, ErrInvalidToken
	}

	if claims.Role != models.RoleUser && claims.Role != models.RoleAdmin {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}

	revoked, err := g.revocations.IsTokenRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}

	if revoked {
		return nil, ErrRevokedToken
	}

	return claims, nil
}

// Revoke blacklists the token for the rest of its lifetime. Already expired tokens are a no-op.
func (g *Gate) Revoke(ctx context.Context, claims *models.Claims) error {
	if claims == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return ErrInvalidToken
	}

	ttl := claims.ExpiresAt.Sub(g.now())
	if ttl <= 0 {
		return nil
	}

	if err := g.revocations.RevokeToken(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}
