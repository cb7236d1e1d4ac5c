package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aaravmahajanofficial/storefront-api/internal/catalog"
	"github.com/aaravmahajanofficial/storefront-api/internal/models"
	"github.com/aaravmahajanofficial/storefront-api/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	ListProducts(ctx context.Context, query catalog.Query) ([]*models.Product, int64, error)
	CountProducts(ctx context.Context, activeOnly bool) (int64, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productSelect = `
	SELECT p.id, p.name, p.description, p.price, p.original_price, p.category_id, p.brand_id,
	       p.images, p.sizes, p.colors, p.features, p.stock, p.rating, p.num_reviews, p.badge,
	       p.is_featured, p.is_active, p.created_at, p.updated_at,
	       c.name, c.slug, b.name, b.slug
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id
	LEFT JOIN brands b ON b.id = p.brand_id`

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	colors, err := json.Marshal(nonNilColors(product.Colors))
	if err != nil {
		return fmt.Errorf("encoding colors: %w", err)
	}

	query := `
		INSERT INTO products (name, description, price, original_price, category_id, brand_id, images, sizes, colors, features, stock, rating, num_reviews, badge, is_featured, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, created_at, updated_at`

	err = r.DB.QueryRowContext(dbCtx, query,
		product.Name, product.Description, product.Price, nullFloat(product.OriginalPrice), product.CategoryID, product.BrandID,
		pq.Array(nonNil(product.Images)), pq.Array(nonNil(product.Sizes)), colors, pq.Array(nonNil(product.Features)),
		product.Stock, product.Rating, product.NumReviews, product.Badge, product.IsFeatured, product.IsActive,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)

	return translateError("inserting product", err)
}

func (r *productRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	row := r.DB.QueryRowContext(dbCtx, productSelect+` WHERE p.id = $1`, id)

	product, err := scanProduct(row)
	if err != nil {
		return nil, translateError("querying product", err)
	}

	return product, nil
}

func (r *productRepository) GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Product, error) {
	if len(ids) == 0 {
		return []*models.Product{}, nil
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}

	rows, err := r.DB.QueryContext(dbCtx, productSelect+` WHERE p.id = ANY($1::uuid[])`, pq.Array(keys))
	if err != nil {
		return nil, translateError("querying products by id", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

// UpdateProduct saves every mutable column; concurrent writers are last-write-wins.
func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	colors, err := json.Marshal(nonNilColors(product.Colors))
	if err != nil {
		return fmt.Errorf("encoding colors: %w", err)
	}

	query := `
		UPDATE products SET name = $1, description = $2, price = $3, original_price = $4, category_id = $5, brand_id = $6,
			images = $7, sizes = $8, colors = $9, features = $10, stock = $11, rating = $12, num_reviews = $13, badge = $14,
			is_featured = $15, is_active = $16, updated_at = NOW()
		WHERE id = $17
		RETURNING updated_at`

	err = r.DB.QueryRowContext(dbCtx, query,
		product.Name, product.Description, product.Price, nullFloat(product.OriginalPrice), product.CategoryID, product.BrandID,
		pq.Array(nonNil(product.Images)), pq.Array(nonNil(product.Sizes)), colors, pq.Array(nonNil(product.Features)),
		product.Stock, product.Rating, product.NumReviews, product.Badge, product.IsFeatured, product.IsActive,
		product.ID,
	).Scan(&product.UpdatedAt)

	return translateError("updating product", err)
}

func (r *productRepository) ListProducts(ctx context.Context, q catalog.Query) ([]*models.Product, int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	where, args := buildProductFilter(q)

	var total int64

	err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM products p`+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, translateError("counting products", err)
	}

	products := []*models.Product{}
	if total == 0 || int64(q.Offset) >= total {
		return products, total, nil
	}

	args = append(args, q.Limit, q.Offset)
	query := fmt.Sprintf("%s%s ORDER BY %s LIMIT $%d OFFSET $%d", productSelect, where, productOrderBy(q.Sort), len(args)-1, len(args))

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, 0, translateError("listing products", err)
	}
	defer rows.Close()

	products, err = collectProducts(rows)
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *productRepository) CountProducts(ctx context.Context, activeOnly bool) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT COUNT(*) FROM products`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}

	var total int64
	if err := r.DB.QueryRowContext(dbCtx, query).Scan(&total); err != nil {
		return 0, translateError("counting products", err)
	}

	return total, nil
}

// buildProductFilter returns the WHERE clause (with a leading space) and its positional args.
func buildProductFilter(q catalog.Query) (string, []any) {
	var conds []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if !q.IncludeInactive {
		conds = append(conds, "p.is_active = TRUE")
	}

	if q.FeaturedOnly {
		conds = append(conds, "p.is_featured = TRUE")
	}

	if q.CategoryID != nil {
		conds = append(conds, "p.category_id = "+arg(*q.CategoryID))
	}

	if q.BrandID != nil {
		conds = append(conds, "p.brand_id = "+arg(*q.BrandID))
	}

	if q.MinPrice != nil {
		conds = append(conds, "p.price >= "+arg(*q.MinPrice))
	}

	if q.MaxPrice != nil {
		conds = append(conds, "p.price <= "+arg(*q.MaxPrice))
	}

	// literal substring, no LIKE wildcards
	if q.Search != "" {
		n := arg(q.Search)
		conds = append(conds, fmt.Sprintf("(strpos(lower(p.name), lower(%s)) > 0 OR strpos(lower(p.description), lower(%s)) > 0)", n, n))
	}

	if len(conds) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

func productOrderBy(sort catalog.SortKey) string {
	switch sort {
	case catalog.SortPriceLow:
		return "p.price ASC"
	case catalog.SortPriceHigh:
		return "p.price DESC"
	case catalog.SortRating:
		return "p.rating DESC"
	case catalog.SortNewest:
		return "p.created_at DESC"
	default:
		return "p.is_featured DESC, p.created_at DESC"
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	product := &models.Product{}

	var originalPrice sql.NullFloat64
	var colors []byte
	var categoryName, categorySlug, brandName, brandSlug sql.NullString

	err := row.Scan(
		&product.ID, &product.Name, &product.Description, &product.Price, &originalPrice, &product.CategoryID, &product.BrandID,
		pq.Array(&product.Images), pq.Array(&product.Sizes), &colors, pq.Array(&product.Features),
		&product.Stock, &product.Rating, &product.NumReviews, &product.Badge,
		&product.IsFeatured, &product.IsActive, &product.CreatedAt, &product.UpdatedAt,
		&categoryName, &categorySlug, &brandName, &brandSlug,
	)
	if err != nil {
		return nil, err
	}

	if originalPrice.Valid {
		product.OriginalPrice = &originalPrice.Float64
	}

	if len(colors) > 0 {
		if err := json.Unmarshal(colors, &product.Colors); err != nil {
			return nil, fmt.Errorf("decoding colors: %w", err)
		}
	}

	product.Images = nonNil(product.Images)
	product.Sizes = nonNil(product.Sizes)
	product.Features = nonNil(product.Features)
	product.Colors = nonNilColors(product.Colors)
	product.Category = &models.CatalogRef{ID: product.CategoryID, Name: categoryName.String, Slug: categorySlug.String}
	product.Brand = &models.CatalogRef{ID: product.BrandID, Name: brandName.String, Slug: brandSlug.String}

	return product, nil
}

func collectProducts(rows *sql.Rows) ([]*models.Product, error) {
	products := []*models.Product{}

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}

	return products, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}

func nonNilColors(values []models.Color) []models.Color {
	if values == nil {
		return []models.Color{}
	}

	return values
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}

	return sql.NullFloat64{Float64: *v, Valid: true}
}
