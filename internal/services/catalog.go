package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/storefront-api/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront-api/internal/cache"
	"github.com/aaravmahajanofficial/storefront-api/internal/catalog"
	appErrors "github.com/aaravmahajanofficial/storefront-api/internal/errors"
	"github.com/aaravmahajanofficial/storefront-api/internal/metrics"
	"github.com/aaravmahajanofficial/storefront-api/internal/models"
	repository "github.com/aaravmahajanofficial/storefront-api/internal/repositories"
	"github.com/google/uuid"
)

type CategoryService interface {
	ListCategories(ctx context.Context) ([]*models.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req *models.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type BrandService interface {
	ListBrands(ctx context.Context) ([]*models.Brand, error)
	GetBrandBySlug(ctx context.Context, slug string) (*models.Brand, error)
	CreateBrand(ctx context.Context, req *models.CreateBrandRequest) (*models.Brand, error)
	UpdateBrand(ctx context.Context, id uuid.UUID, req *models.UpdateBrandRequest) (*models.Brand, error)
	DeleteBrand(ctx context.Context, id uuid.UUID) error
}

// deriveSlug cleans the display name and computes its slug. Both must be non-empty.
func deriveSlug(name string) (string, string, error) {
	name = catalog.Clean(name)
	if name == "" {
		return "", "", appErrors.AddValidationError("name", "must contain text")
	}

	slug := catalog.Slugify(name)
	if slug == "" {
		return "", "", appErrors.AddValidationError("name", "must contain letters or digits")
	}

	return name, slug, nil
}

type categoryService struct {
	repo     repository.CategoryRepository
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewCategoryService(repo repository.CategoryRepository, cache cache.Cache, cacheTTL time.Duration) CategoryService {
	return &categoryService{repo: repo, cache: cache, cacheTTL: cacheTTL}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]*models.Category, error) {

	var cached []*models.Category
	found, err := s.cache.Get(ctx, cache.ActiveCategoriesKey, &cached)
	logCacheError(ctx, "read", cache.ActiveCategoriesKey, err)
	metrics.RecordCacheLookup(cache.CategoryKeyPrefix, found && cached != nil)

	if found && cached != nil {
		return cached, nil
	}

	categories, err := s.repo.ListCategories(ctx, false)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch categories").WithError(err)
	}

	logCacheError(ctx, "write", cache.ActiveCategoriesKey, s.cache.Set(ctx, cache.ActiveCategoriesKey, categories, s.cacheTTL))

	return categories, nil
}

func (s *categoryService) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {

	category, err := s.repo.GetCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, storeError(err, "Category not found", "", "Failed to fetch category")
	}

	if !category.IsActive {
		return nil, appErrors.NotFoundError("Category not found")
	}

	return category, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {

	name, slug, err := deriveSlug(req.Name)
	if err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:        name,
		Slug:        slug,
		Description: catalog.Clean(req.Description),
		Image:       req.Image,
		IsActive:    true,
	}

	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, storeError(err, "Category not found", "Category with this name already exists", "Failed to create category")
	}

	s.invalidate(ctx, false)

	middleware.LoggerFromContext(ctx).Info("Category created", slog.String("categoryID", category.ID.String()), slog.String("slug", slug))

	return category, nil
}

// UpdateCategory recomputes the slug from the (possibly unchanged) name on every save.
func (s *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req *models.UpdateCategoryRequest) (*models.Category, error) {

	category, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Category not found", "", "Failed to fetch category")
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = catalog.Clean(*req.Description)
	}
	if req.Image != nil {
		category.Image = *req.Image
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	category.Name, category.Slug, err = deriveSlug(category.Name)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		return nil, storeError(err, "Category not found", "Category with this name already exists", "Failed to update category")
	}

	s.invalidate(ctx, true)

	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {

	category, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return storeError(err, "Category not found", "", "Failed to fetch category")
	}

	category.IsActive = false

	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		return storeError(err, "Category not found", "", "Failed to delete category")
	}

	s.invalidate(ctx, true)

	return nil
}

// invalidate drops the active list. Cached products embed the category ref, so an
// update or delete also drops them.
func (s *categoryService) invalidate(ctx context.Context, refsChanged bool) {
	logCacheError(ctx, "delete", cache.ActiveCategoriesKey, s.cache.Delete(ctx, cache.ActiveCategoriesKey))

	if refsChanged {
		invalidateProducts(ctx, s.cache)
	}
}

type brandService struct {
	repo     repository.BrandRepository
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewBrandService(repo repository.BrandRepository, cache cache.Cache, cacheTTL time.Duration) BrandService {
	return &brandService{repo: repo, cache: cache, cacheTTL: cacheTTL}
}

func (s *brandService) ListBrands(ctx context.Context) ([]*models.Brand, error) {

	var cached []*models.Brand
	found, err := s.cache.Get(ctx, cache.ActiveBrandsKey, &cached)
	logCacheError(ctx, "read", cache.ActiveBrandsKey, err)
	metrics.RecordCacheLookup(cache.BrandKeyPrefix, found && cached != nil)

	if found && cached != nil {
		return cached, nil
	}

	brands, err := s.repo.ListBrands(ctx, false)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch brands").WithError(err)
	}

	logCacheError(ctx, "write", cache.ActiveBrandsKey, s.cache.Set(ctx, cache.ActiveBrandsKey, brands, s.cacheTTL))

	return brands, nil
}

func (s *brandService) GetBrandBySlug(ctx context.Context, slug string) (*models.Brand, error) {

	brand, err := s.repo.GetBrandBySlug(ctx, slug)
	if err != nil {
		return nil, storeError(err, "Brand not found", "", "Failed to fetch brand")
	}

	if !brand.IsActive {
		return nil, appErrors.NotFoundError("Brand not found")
	}

	return brand, nil
}

func (s *brandService) CreateBrand(ctx context.Context, req *models.CreateBrandRequest) (*models.Brand, error) {

	name, slug, err := deriveSlug(req.Name)
	if err != nil {
		return nil, err
	}

	brand := &models.Brand{
		Name:        name,
		Slug:        slug,
		Description: catalog.Clean(req.Description),
		Logo:        req.Logo,
		Website:     req.Website,
		IsActive:    true,
	}

	if err := s.repo.CreateBrand(ctx, brand); err != nil {
		return nil, storeError(err, "Brand not found", "Brand with this name already exists", "Failed to create brand")
	}

	s.invalidate(ctx, false)

	middleware.LoggerFromContext(ctx).Info("Brand created", slog.String("brandID", brand.ID.String()), slog.String("slug", slug))

	return brand, nil
}

func (s *brandService) UpdateBrand(ctx context.Context, id uuid.UUID, req *models.UpdateBrandRequest) (*models.Brand, error) {

	brand, err := s.repo.GetBrandByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Brand not found", "", "Failed to fetch brand")
	}

	if req.Name != nil {
		brand.Name = *req.Name
	}
	if req.Description != nil {
		brand.Description = catalog.Clean(*req.Description)
	}
	if req.Logo != nil {
		brand.Logo = *req.Logo
	}
	if req.Website != nil {
		brand.Website = *req.Website
	}
	if req.IsActive != nil {
		brand.IsActive = *req.IsActive
	}

	brand.Name, brand.Slug, err = deriveSlug(brand.Name)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateBrand(ctx, brand); err != nil {
		return nil, storeError(err, "Brand not found", "Brand with this name already exists", "Failed to update brand")
	}

	s.invalidate(ctx, true)

	return brand, nil
}

func (s *brandService) DeleteBrand(ctx context.Context, id uuid.UUID) error {

	brand, err := s.repo.GetBrandByID(ctx, id)
	if err != nil {
		return storeError(err, "Brand not found", "", "Failed to fetch brand")
	}

	brand.IsActive = false

	if err := s.repo.UpdateBrand(ctx, brand); err != nil {
		return storeError(err, "Brand not found", "", "Failed to delete brand")
	}

	s.invalidate(ctx, true)

	return nil
}

func (s *brandService) invalidate(ctx context.Context, refsChanged bool) {
	logCacheError(ctx, "delete", cache.ActiveBrandsKey, s.cache.Delete(ctx, cache.ActiveBrandsKey))

	if refsChanged {
		invalidateProducts(ctx, s.cache)
	}
}

func invalidateProducts(ctx context.Context, c cache.Cache) {
	logCacheError(ctx, "delete", cache.ProductKeyPrefix+":*", c.DeletePrefix(ctx, cache.ProductKeyPrefix))
}
