package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront-api/internal/catalog"
	"github.com/aaravmahajanofficial/storefront-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ProductRepository struct {
	mock.Mock
}

func NewProductRepository(t testingT) *ProductRepository {
	m := &ProductRepository{}
	register(&m.Mock, t)
	return m
}

func (m *ProductRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *ProductRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, id)
	return get[*models.Product](args, 0), args.Error(1)
}

func (m *ProductRepository) GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Product, error) {
	args := m.Called(ctx, ids)
	return get[[]*models.Product](args, 0), args.Error(1)
}

func (m *ProductRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *ProductRepository) ListProducts(ctx context.Context, query catalog.Query) ([]*models.Product, int64, error) {
	args := m.Called(ctx, query)
	return get[[]*models.Product](args, 0), get[int64](args, 1), args.Error(2)
}

func (m *ProductRepository) CountProducts(ctx context.Context, activeOnly bool) (int64, error) {
	args := m.Called(ctx, activeOnly)
	return get[int64](args, 0), args.Error(1)
}

type CategoryRepository struct {
	mock.Mock
}

func NewCategoryRepository(t testingT) *CategoryRepository {
	m := &CategoryRepository{}
	register(&m.Mock, t)
	return m
}

func (m *CategoryRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *CategoryRepository) GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	args := m.Called(ctx, id)
	return get[*models.Category](args, 0), args.Error(1)
}

func (m *CategoryRepository) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	args := m.Called(ctx, slug)
	return get[*models.Category](args, 0), args.Error(1)
}

func (m *CategoryRepository) UpdateCategory(ctx context.Context, category *models.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *CategoryRepository) ListCategories(ctx context.Context, includeInactive bool) ([]*models.Category, error) {
	args := m.Called(ctx, includeInactive)
	return get[[]*models.Category](args, 0), args.Error(1)
}

type BrandRepository struct {
	mock.Mock
}

func NewBrandRepository(t testingT) *BrandRepository {
	m := &BrandRepository{}
	register(&m.Mock, t)
	return m
}

func (m *BrandRepository) CreateBrand(ctx context.Context, brand *models.Brand) error {
	return m.Called(ctx, brand).Error(0)
}

func (m *BrandRepository) GetBrandByID(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	args := m.Called(ctx, id)
	return get[*models.Brand](args, 0), args.Error(1)
}

func (m *BrandRepository) GetBrandBySlug(ctx context.Context, slug string) (*models.Brand, error) {
	args := m.Called(ctx, slug)
	return get[*models.Brand](args, 0), args.Error(1)
}

func (m *BrandRepository) UpdateBrand(ctx context.Context, brand *models.Brand) error {
	return m.Called(ctx, brand).Error(0)
}

func (m *BrandRepository) ListBrands(ctx context.Context, includeInactive bool) ([]*models.Brand, error) {
	args := m.Called(ctx, includeInactive)
	return get[[]*models.Brand](args, 0), args.Error(1)
}
