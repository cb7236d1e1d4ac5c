package service

import (
	"context"
	"errors"
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

type ProductService interface {
	ListProducts(ctx context.Context, params catalog.ListParams) (*models.ProductListResponse, error)
	ListAllProducts(ctx context.Context, params catalog.ListParams) (*models.ProductListResponse, error)
	FeaturedProducts(ctx context.Context) ([]*models.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
	brands     repository.BrandRepository
	cache      cache.Cache
	cacheTTL   time.Duration
}

func NewProductService(repo repository.ProductRepository, categories repository.CategoryRepository, brands repository.BrandRepository, cache cache.Cache, cacheTTL time.Duration) ProductService {
	return &productService{repo: repo, categories: categories, brands: brands, cache: cache, cacheTTL: cacheTTL}
}

func (s *productService) ListProducts(ctx context.Context, params catalog.ListParams) (*models.ProductListResponse, error) {
	return s.list(ctx, params, false)
}

func (s *productService) ListAllProducts(ctx context.Context, params catalog.ListParams) (*models.ProductListResponse, error) {
	return s.list(ctx, params, true)
}

func (s *productService) list(ctx context.Context, params catalog.ListParams, includeInactive bool) (*models.ProductListResponse, error) {

	categoryID, err := s.resolveCategory(ctx, params.CategorySlug)
	if err != nil {
		return nil, err
	}

	brandID, err := s.resolveBrand(ctx, params.BrandSlug)
	if err != nil {
		return nil, err
	}

	query := params.Query(categoryID, brandID)
	query.IncludeInactive = includeInactive

	products, total, err := s.repo.ListProducts(ctx, query)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch products").WithError(err)
	}

	// a store never hands back more than the page can hold
	if n := catalog.PageLength(total, params.Page, params.Limit); len(products) > n {
		products = products[:n]
	}

	return &models.ProductListResponse{
		Products:      products,
		CurrentPage:   params.Page,
		TotalPages:    catalog.TotalPages(total, params.Limit),
		TotalProducts: total,
	}, nil
}

// resolveCategory turns a slug into an id. Unknown slugs drop the filter instead of emptying the result.
func (s *productService) resolveCategory(ctx context.Context, slug string) (*uuid.UUID, error) {
	if slug == "" {
		return nil, nil
	}

	category, err := s.categories.GetCategoryBySlug(ctx, slug)
	if errors.Is(err, repository.ErrNotFound) {
		middleware.LoggerFromContext(ctx).Debug("Ignoring unknown category filter", slog.String("slug", slug))
		return nil, nil
	}
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to resolve category").WithError(err)
	}

	return &category.ID, nil
}

func (s *productService) resolveBrand(ctx context.Context, slug string) (*uuid.UUID, error) {
	if slug == "" {
		return nil, nil
	}

	brand, err := s.brands.GetBrandBySlug(ctx, slug)
	if errors.Is(err, repository.ErrNotFound) {
		middleware.LoggerFromContext(ctx).Debug("Ignoring unknown brand filter", slog.String("slug", slug))
		return nil, nil
	}
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to resolve brand").WithError(err)
	}

	return &brand.ID, nil
}

func (s *productService) FeaturedProducts(ctx context.Context) ([]*models.Product, error) {

	products, _, err := s.repo.ListProducts(ctx, catalog.Query{
		FeaturedOnly: true,
		Sort:         catalog.SortNewest,
		Limit:        catalog.FeaturedLimit,
	})
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch featured products").WithError(err)
	}

	return products, nil
}

// GetProduct serves active products only; inactive ones are indistinguishable from missing.
func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {

	key := cache.Key(cache.ProductKeyPrefix, id.String())

	var cached models.Product
	found, err := s.cache.Get(ctx, key, &cached)
	logCacheError(ctx, "read", key, err)
	metrics.RecordCacheLookup(cache.ProductKeyPrefix, found && cached.IsActive)

	if found && cached.IsActive {
		return &cached, nil
	}

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Product not found", "", "Failed to fetch product")
	}

	if !product.IsActive {
		return nil, appErrors.NotFoundError("Product not found")
	}

	logCacheError(ctx, "write", key, s.cache.Set(ctx, key, product, s.cacheTTL))

	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	product := &models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		CategoryID:    req.Category,
		BrandID:       req.Brand,
		Images:        req.Images,
		Sizes:         req.Sizes,
		Colors:        req.Colors,
		Features:      req.Features,
		Stock:         req.Stock,
		Rating:        req.Rating,
		NumReviews:    req.NumReviews,
		Badge:         req.Badge,
		IsFeatured:    req.IsFeatured,
		IsActive:      true,
	}

	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := sanitizeProduct(product); err != nil {
		return nil, err
	}

	if err := s.attachRefs(ctx, product); err != nil {
		return nil, err
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, storeError(err, "Product not found", "Product with this name already exists", "Failed to create product")
	}

	middleware.LoggerFromContext(ctx).Info("Product created", slog.String("productID", product.ID.String()))

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Product not found", "", "Failed to fetch product")
	}

	refsChanged := false

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.OriginalPrice != nil {
		product.OriginalPrice = req.OriginalPrice
	}
	if req.Category != nil && *req.Category != product.CategoryID {
		product.CategoryID = *req.Category
		refsChanged = true
	}
	if req.Brand != nil && *req.Brand != product.BrandID {
		product.BrandID = *req.Brand
		refsChanged = true
	}
	if req.Images != nil {
		product.Images = *req.Images
	}
	if req.Sizes != nil {
		product.Sizes = *req.Sizes
	}
	if req.Colors != nil {
		product.Colors = *req.Colors
	}
	if req.Features != nil {
		product.Features = *req.Features
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Rating != nil {
		product.Rating = *req.Rating
	}
	if req.NumReviews != nil {
		product.NumReviews = *req.NumReviews
	}
	if req.Badge != nil {
		product.Badge = *req.Badge
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := sanitizeProduct(product); err != nil {
		return nil, err
	}

	if refsChanged {
		if err := s.attachRefs(ctx, product); err != nil {
			return nil, err
		}
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, storeError(err, "Product not found", "Product with this name already exists", "Failed to update product")
	}

	s.invalidate(ctx, id)

	return product, nil
}

// DeleteProduct is a soft delete; the row stays for order history.
func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return storeError(err, "Product not found", "", "Failed to fetch product")
	}

	product.IsActive = false

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return storeError(err, "Product not found", "", "Failed to delete product")
	}

	s.invalidate(ctx, id)

	middleware.LoggerFromContext(ctx).Info("Product deactivated", slog.String("productID", id.String()))

	return nil
}

func (s *productService) invalidate(ctx context.Context, id uuid.UUID) {
	key := cache.Key(cache.ProductKeyPrefix, id.String())
	logCacheError(ctx, "delete", key, s.cache.Delete(ctx, key))
}

// attachRefs checks that the category and brand exist and fills the expanded refs.
func (s *productService) attachRefs(ctx context.Context, product *models.Product) error {

	category, err := s.categories.GetCategoryByID(ctx, product.CategoryID)
	if errors.Is(err, repository.ErrNotFound) {
		return appErrors.BadRequestError("Category not found").WithError(err)
	}
	if err != nil {
		return appErrors.DatabaseError("Failed to fetch category").WithError(err)
	}

	brand, err := s.brands.GetBrandByID(ctx, product.BrandID)
	if errors.Is(err, repository.ErrNotFound) {
		return appErrors.BadRequestError("Brand not found").WithError(err)
	}
	if err != nil {
		return appErrors.DatabaseError("Failed to fetch brand").WithError(err)
	}

	product.Category = &models.CatalogRef{ID: category.ID, Name: category.Name, Slug: category.Slug}
	product.Brand = &models.CatalogRef{ID: brand.ID, Name: brand.Name, Slug: brand.Slug}

	return nil
}

// sanitizeProduct strips markup from free text and normalises the list fields.
func sanitizeProduct(p *models.Product) error {
	p.Name = catalog.Clean(p.Name)
	p.Description = catalog.Clean(p.Description)
	p.Badge = catalog.Clean(p.Badge)
	p.Images = catalog.CleanAll(p.Images)
	p.Features = catalog.CleanAll(p.Features)
	p.Sizes = catalog.Dedupe(catalog.CleanAll(p.Sizes))

	colors := make([]models.Color, 0, len(p.Colors))
	for _, c := range p.Colors {
		c.Name = catalog.Clean(c.Name)
		c.ColorValue = catalog.Clean(c.ColorValue)
		if c.Name != "" {
			colors = append(colors, c)
		}
	}
	p.Colors = colors

	if p.Name == "" {
		return appErrors.AddValidationError("name", "must contain text")
	}

	if !catalog.ValidPrice(p.Price) {
		return appErrors.AddValidationError("price", "must be between 0 and 9999999999.99 with at most two decimals")
	}

	if p.OriginalPrice != nil && !catalog.ValidPrice(*p.OriginalPrice) {
		return appErrors.AddValidationError("originalPrice", "must be between 0 and 9999999999.99 with at most two decimals")
	}

	return nil
}
