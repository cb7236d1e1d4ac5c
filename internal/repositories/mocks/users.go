package mocks

import (
	"context"
	"time"

	"github.com/aaravmahajanofficial/storefront-api/internal/models"
	repository "github.com/aaravmahajanofficial/storefront-api/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func NewUserRepository(t testingT) *UserRepository {
	m := &UserRepository{}
	register(&m.Mock, t)
	return m
}

func (m *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	return get[*models.User](args, 0), args.Error(1)
}

func (m *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	return get[*models.User](args, 0), args.Error(1)
}

func (m *UserRepository) CountUsers(ctx context.Context, role models.Role) (int64, error) {
	args := m.Called(ctx, role)
	return get[int64](args, 0), args.Error(1)
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	register(&m.Mock, t)
	return m
}

func (m *OrderRepository) ListOrders(ctx context.Context) ([]*models.Order, error) {
	args := m.Called(ctx)
	return get[[]*models.Order](args, 0), args.Error(1)
}

func (m *OrderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, id)
	return get[*models.Order](args, 0), args.Error(1)
}

func (m *OrderRepository) UpdateOrderStatus(ctx context.Context, order *models.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *OrderRepository) OrderStats(ctx context.Context) (*repository.OrderStats, error) {
	args := m.Called(ctx)
	return get[*repository.OrderStats](args, 0), args.Error(1)
}

type RateLimitRepository struct {
	mock.Mock
}

func NewRateLimitRepository(t testingT) *RateLimitRepository {
	m := &RateLimitRepository{}
	register(&m.Mock, t)
	return m
}

func (m *RateLimitRepository) CheckLoginRateLimit(ctx context.Context, email string) (bool, int, int, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Int(1), args.Int(2), args.Error(3)
}

func (m *RateLimitRepository) ResetLoginRateLimit(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

type SessionRepository struct {
	mock.Mock
}

func NewSessionRepository(t testingT) *SessionRepository {
	m := &SessionRepository{}
	register(&m.Mock, t)
	return m
}

func (m *SessionRepository) RevokeToken(ctx context.Context, jti string, ttl time.Duration) error {
	return m.Called(ctx, jti, ttl).Error(0)
}

func (m *SessionRepository) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	args := m.Called(ctx, jti)
	return args.Bool(0), args.Error(1)
}

type Cache struct {
	mock.Mock
}

func NewCache(t testingT) *Cache {
	m := &Cache{}
	register(&m.Mock, t)
	return m
}

// Hits fill dest through .Run on the expectation.
func (m *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *Cache) Delete(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}

func (m *Cache) DeletePrefix(ctx context.Context, prefix string) error {
	return m.Called(ctx, prefix).Error(0)
}
