package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/storefront-api/internal/models"
	"github.com/aaravmahajanofficial/storefront-api/internal/utils"
	"github.com/google/uuid"
)

type BrandRepository interface {
	CreateBrand(ctx context.Context, brand *models.Brand) error
	GetBrandByID(ctx context.Context, id uuid.UUID) (*models.Brand, error)
	GetBrandBySlug(ctx context.Context, slug string) (*models.Brand, error)
	UpdateBrand(ctx context.Context, brand *models.Brand) error
	ListBrands(ctx context.Context, includeInactive bool) ([]*models.Brand, error)
}

type brandRepository struct {
	DB *sql.DB
}

func NewBrandRepo(db *sql.DB) BrandRepository {
	return &brandRepository{DB: db}
}

const brandSelect = `SELECT id, name, slug, description, logo, website, is_active, created_at, updated_at FROM brands`

func (r *brandRepository) CreateBrand(ctx context.Context, brand *models.Brand) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO brands (name, slug, description, logo, website, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, brand.Name, brand.Slug, brand.Description, brand.Logo, brand.Website, brand.IsActive).
		Scan(&brand.ID, &brand.CreatedAt, &brand.UpdatedAt)

	return translateError("inserting brand", err)
}

func (r *brandRepository) GetBrandByID(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	brand, err := scanBrand(r.DB.QueryRowContext(dbCtx, brandSelect+` WHERE id = $1`, id))
	if err != nil {
		return nil, translateError("querying brand", err)
	}

	return brand, nil
}

func (r *brandRepository) GetBrandBySlug(ctx context.Context, slug string) (*models.Brand, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	brand, err := scanBrand(r.DB.QueryRowContext(dbCtx, brandSelect+` WHERE slug = $1`, slug))
	if err != nil {
		return nil, translateError("querying brand by slug", err)
	}

	return brand, nil
}

func (r *brandRepository) UpdateBrand(ctx context.Context, brand *models.Brand) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE brands SET name = $1, slug = $2, description = $3, logo = $4, website = $5, is_active = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, brand.Name, brand.Slug, brand.Description, brand.Logo, brand.Website, brand.IsActive, brand.ID).
		Scan(&brand.UpdatedAt)

	return translateError("updating brand", err)
}

func (r *brandRepository) ListBrands(ctx context.Context, includeInactive bool) ([]*models.Brand, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := brandSelect
	if !includeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, translateError("listing brands", err)
	}
	defer rows.Close()

	brands := []*models.Brand{}

	for rows.Next() {
		brand, err := scanBrand(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning brand: %w", err)
		}

		brands = append(brands, brand)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating brands: %w", err)
	}

	return brands, nil
}

func scanBrand(row rowScanner) (*models.Brand, error) {
	b := &models.Brand{}

	err := row.Scan(&b.ID, &b.Name, &b.Slug, &b.Description, &b.Logo, &b.Website, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return b, nil
}
