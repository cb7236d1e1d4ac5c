// Package mocks holds testify mocks for the service interfaces used by the HTTP handlers.
package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront-api/internal/catalog"
	"github.com/aaravmahajanofficial/storefront-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func register(m *mock.Mock, t testingT) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

func get[T any](args mock.Arguments, i int) T {
	var zero T
	if v, ok := args.Get(i).(T); ok {
		return v
	}

	return zero
}

type ProductService struct {
	mock.Mock
}

func NewProductService(t testingT) *ProductService {
	m := &ProductService{}
	register(&m.Mock, t)
	return m
}

func (m *ProductService) ListProducts(ctx context.Context, params catalog.ListParams) (*models.ProductListResponse, error) {
	args := m.Called(ctx, params)
	return get[*models.ProductListResponse](args, 0), args.Error(1)
}

func (m *ProductService) ListAllProducts(ctx context.Context, params catalog.ListParams) (*models.ProductListResponse, error) {
	args := m.Called(ctx, params)
	return get[*models.ProductListResponse](args, 0), args.Error(1)
}

func (m *ProductService) FeaturedProducts(ctx context.Context) ([]*models.Product, error) {
	args := m.Called(ctx)
	return get[[]*models.Product](args, 0), args.Error(1)
}

func (m *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, id)
	return get[*models.Product](args, 0), args.Error(1)
}

func (m *ProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, req)
	return get[*models.Product](args, 0), args.Error(1)
}

func (m *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, id, req)
	return get[*models.Product](args, 0), args.Error(1)
}

func (m *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type CategoryService struct {
	mock.Mock
}

func NewCategoryService(t testingT) *CategoryService {
	m := &CategoryService{}
	register(&m.Mock, t)
	return m
}

func (m *CategoryService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	args := m.Called(ctx)
	return get[[]*models.Category](args, 0), args.Error(1)
}

func (m *CategoryService) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	args := m.Called(ctx, slug)
	return get[*models.Category](args, 0), args.Error(1)
}

func (m *CategoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, req)
	return get[*models.Category](args, 0), args.Error(1)
}

func (m *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req *models.UpdateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, id, req)
	return get[*models.Category](args, 0), args.Error(1)
}

func (m *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type BrandService struct {
	mock.Mock
}

func NewBrandService(t testingT) *BrandService {
	m := &BrandService{}
	register(&m.Mock, t)
	return m
}

func (m *BrandService) ListBrands(ctx context.Context) ([]*models.Brand, error) {
	args := m.Called(ctx)
	return get[[]*models.Brand](args, 0), args.Error(1)
}

func (m *BrandService) GetBrandBySlug(ctx context.Context, slug string) (*models.Brand, error) {
	args := m.Called(ctx, slug)
	return get[*models.Brand](args, 0), args.Error(1)
}

func (m *BrandService) CreateBrand(ctx context.Context, req *models.CreateBrandRequest) (*models.Brand, error) {
	args := m.Called(ctx, req)
	return get[*models.Brand](args, 0), args.Error(1)
}

func (m *BrandService) UpdateBrand(ctx context.Context, id uuid.UUID, req *models.UpdateBrandRequest) (*models.Brand, error) {
	args := m.Called(ctx, id, req)
	return get[*models.Brand](args, 0), args.Error(1)
}

func (m *BrandService) DeleteBrand(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type UserService struct {
	mock.Mock
}

func NewUserService(t testingT) *UserService {
	m := &UserService{}
	register(&m.Mock, t)
	return m
}

func (m *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	args := m.Called(ctx, req)
	return get[*models.AuthResponse](args, 0), args.Error(1)
}

func (m *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	args := m.Called(ctx, req)
	return get[*models.AuthResponse](args, 0), args.Error(1)
}

func (m *UserService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	return get[*models.User](args, 0), args.Error(1)
}

func (m *UserService) Logout(ctx context.Context, claims *models.Claims) error {
	return m.Called(ctx, claims).Error(0)
}

type CartService struct {
	mock.Mock
}

func NewCartService(t testingT) *CartService {
	m := &CartService{}
	register(&m.Mock, t)
	return m
}

func (m *CartService) Quote(ctx context.Context, req *models.CartQuoteRequest) (*models.CartQuote, error) {
	args := m.Called(ctx, req)
	return get[*models.CartQuote](args, 0), args.Error(1)
}

type AdminService struct {
	mock.Mock
}

func NewAdminService(t testingT) *AdminService {
	m := &AdminService{}
	register(&m.Mock, t)
	return m
}

func (m *AdminService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	args := m.Called(ctx)
	return get[*models.DashboardStats](args, 0), args.Error(1)
}

func (m *AdminService) ListOrders(ctx context.Context) ([]*models.Order, error) {
	args := m.Called(ctx)
	return get[[]*models.Order](args, 0), args.Error(1)
}

func (m *AdminService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, req *models.UpdateOrderStatusRequest) (*models.Order, error) {
	args := m.Called(ctx, id, req)
	return get[*models.Order](args, 0), args.Error(1)
}
