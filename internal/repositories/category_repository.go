package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/storefront-api/internal/models"
	"github.com/aaravmahajanofficial/storefront-api/internal/utils"
	"github.com/google/uuid"
)

type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	UpdateCategory(ctx context.Context, category *models.Category) error
	ListCategories(ctx context.Context, includeInactive bool) ([]*models.Category, error)
}

type categoryRepository struct {
	DB *sql.DB
}

func NewCategoryRepo(db *sql.DB) CategoryRepository {
	return &categoryRepository{DB: db}
}

const categorySelect = `SELECT id, name, slug, description, image, is_active, created_at, updated_at FROM categories`

func (r *categoryRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO categories (name, slug, description, image, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, category.Name, category.Slug, category.Description, category.Image, category.IsActive).
		Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)

	return translateError("inserting category", err)
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	category, err := scanCategory(r.DB.QueryRowContext(dbCtx, categorySelect+` WHERE id = $1`, id))
	if err != nil {
		return nil, translateError("querying category", err)
	}

	return category, nil
}

// GetCategoryBySlug ignores isActive; callers decide whether inactive categories are visible.
func (r *categoryRepository) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	category, err := scanCategory(r.DB.QueryRowContext(dbCtx, categorySelect+` WHERE slug = $1`, slug))
	if err != nil {
		return nil, translateError("querying category by slug", err)
	}

	return category, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category *models.Category) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE categories SET name = $1, slug = $2, description = $3, image = $4, is_active = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, category.Name, category.Slug, category.Description, category.Image, category.IsActive, category.ID).
		Scan(&category.UpdatedAt)

	return translateError("updating category", err)
}

func (r *categoryRepository) ListCategories(ctx context.Context, includeInactive bool) ([]*models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := categorySelect
	if !includeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, translateError("listing categories", err)
	}
	defer rows.Close()

	categories := []*models.Category{}

	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}

	return categories, nil
}

func scanCategory(row rowScanner) (*models.Category, error) {
	c := &models.Category{}

	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Image, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return c, nil
}
