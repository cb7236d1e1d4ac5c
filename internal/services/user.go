package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/storefront-api/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/storefront-api/internal/errors"
	"github.com/aaravmahajanofficial/storefront-api/internal/metrics"
	"github.com/aaravmahajanofficial/storefront-api/internal/models"
	repository "github.com/aaravmahajanofficial/storefront-api/internal/repositories"
	"github.com/aaravmahajanofficial/storefront-api/pkg/sendgrid"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer is the part of the auth gate the user service needs.
type TokenIssuer interface {
	Issue(user *models.User) (string, *models.Claims, error)
	Revoke(ctx context.Context, claims *models.Claims) error
	Expiry() time.Duration
}

type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Logout(ctx context.Context, claims *models.Claims) error
}

type userService struct {
	repo            repository.UserRepository
	rateLimiter     repository.RateLimitRepository
	tokens          TokenIssuer
	mailer          sendgrid.Mailer
	bootstrapAdmins []string
}

func NewUserService(repo repository.UserRepository, rateLimiter repository.RateLimitRepository, tokens TokenIssuer, mailer sendgrid.Mailer, bootstrapAdmins []string) UserService {

	admins := make([]string, 0, len(bootstrapAdmins))
	for _, email := range bootstrapAdmins {
		if email = normalizeEmail(email); email != "" {
			admins = append(admins, email)
		}
	}

	return &userService{
		repo:            repo,
		rateLimiter:     rateLimiter,
		tokens:          tokens,
		mailer:          mailer,
		bootstrapAdmins: admins,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {

	logger := middleware.LoggerFromContext(ctx)
	email := normalizeEmail(req.Email)

	existingUser, err := s.repo.GetUserByEmail(ctx, email)
	if err == nil && existingUser != nil {
		return nil, appErrors.DuplicateEntryError("User already exists")
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, appErrors.DatabaseError("Failed to check existing user").WithError(err)
	}

	// Hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.InternalError("Failed to secure password").WithError(err)
	}

	user := &models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: string(hashedPassword),
		Role:     models.RoleUser,
	}

	if slices.Contains(s.bootstrapAdmins, email) {
		user.Role = models.RoleAdmin
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, storeError(err, "User not found", "User already exists", "Failed to create user")
	}

	logger.Info("User registered", slog.String("userID", user.ID.String()), slog.String("role", string(user.Role)))

	// a failed welcome mail never fails the registration
	if err := s.mailer.Send(ctx, welcomeMessage(user)); err != nil {
		logger.Warn("Failed to send welcome email", slog.String("userID", user.ID.String()), slog.Any("error", err))
	}

	return s.authResponse(user)
}

func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {

	logger := middleware.LoggerFromContext(ctx)
	email := normalizeEmail(req.Email)

	// check rate limit
	allowed, remaining, retryAfter, err := s.rateLimiter.CheckLoginRateLimit(ctx, email)
	if err != nil {
		return nil, appErrors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		metrics.RecordLogin(metrics.LoginRateLimited)
		return nil, appErrors.TooManyRequestsError("Too many login attempts. Please try again later.").WithRetryAfter(retryAfter)
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		logger.Info("Login failed", slog.String("reason", "unknown email"), slog.Int("remainingTries", remaining))
		metrics.RecordLogin(metrics.LoginFailed)
		return nil, appErrors.UnauthorizedError("Invalid email or password")
	}
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch user").WithError(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		logger.Info("Login failed", slog.String("reason", "wrong password"), slog.Int("remainingTries", remaining))
		metrics.RecordLogin(metrics.LoginFailed)
		return nil, appErrors.UnauthorizedError("Invalid email or password")
	}

	metrics.RecordLogin(metrics.LoginSuccess)

	if err := s.rateLimiter.ResetLoginRateLimit(ctx, email); err != nil {
		logger.Warn("Failed to reset login attempts", slog.Any("error", err))
	}

	return s.authResponse(user)
}

func (s *userService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {

	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "User not found", "", "Failed to fetch user")
	}

	return user, nil
}

func (s *userService) Logout(ctx context.Context, claims *models.Claims) error {

	if err := s.tokens.Revoke(ctx, claims); err != nil {
		return appErrors.InternalError("Failed to revoke token").WithError(err)
	}

	return nil
}

func (s *userService) authResponse(user *models.User) (*models.AuthResponse, error) {

	token, _, err := s.tokens.Issue(user)
	if err != nil {
		return nil, appErrors.InternalError("Failed to generate authentication token").WithError(err)
	}

	return &models.AuthResponse{
		User:      user,
		Token:     token,
		ExpiresIn: int(s.tokens.Expiry().Seconds()),
	}, nil
}

func welcomeMessage(user *models.User) *sendgrid.Message {
	return &sendgrid.Message{
		To:      user.Email,
		ToName:  user.Name,
		Subject: "Welcome to the shop",
		Text:    fmt.Sprintf("Hi %s,\n\nYour account is ready. Happy shopping!", user.Name),
	}
}
