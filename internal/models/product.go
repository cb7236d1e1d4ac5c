package models

import (
	"time"

	"github.com/google/uuid"
)

// Expanded category/brand reference embedded in product responses.
type CatalogRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

type Color struct {
	Name       string `json:"name" validate:"required,max=50"`
	ColorValue string `json:"colorValue" validate:"required,max=50"`
}

type Product struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Price         float64     `json:"price"`
	OriginalPrice *float64    `json:"originalPrice,omitempty"`
	CategoryID    uuid.UUID   `json:"-"`
	BrandID       uuid.UUID   `json:"-"`
	Category      *CatalogRef `json:"category"`
	Brand         *CatalogRef `json:"brand"`
	Images        []string    `json:"images"`
	Sizes         []string    `json:"sizes"`
	Colors        []Color     `json:"colors"`
	Features      []string    `json:"features"`
	Stock         int         `json:"stock"`
	Rating        float64     `json:"rating"`
	NumReviews    int         `json:"numReviews"`
	Badge         string      `json:"badge"`
	IsFeatured    bool        `json:"isFeatured"`
	IsActive      bool        `json:"isActive"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

type CreateProductRequest struct {
	Name          string    `json:"name" validate:"required,min=2,max=200"`
	Description   string    `json:"description" validate:"required,max=5000"`
	Price         float64   `json:"price" validate:"gte=0,lte=9999999999.99"`
	OriginalPrice *float64  `json:"originalPrice,omitempty" validate:"omitempty,gte=0,lte=9999999999.99"`
	Category      uuid.UUID `json:"category" validate:"required"`
	Brand         uuid.UUID `json:"brand" validate:"required"`
	Images        []string  `json:"images" validate:"omitempty,dive,required"`
	Sizes         []string  `json:"sizes" validate:"omitempty,dive,required,max=20"`
	Colors        []Color   `json:"colors" validate:"omitempty,dive"`
	Features      []string  `json:"features" validate:"omitempty,dive,required"`
	Stock         int       `json:"stock" validate:"gte=0"`
	Rating        float64   `json:"rating" validate:"gte=0,lte=5"`
	NumReviews    int       `json:"numReviews" validate:"gte=0"`
	Badge         string    `json:"badge" validate:"max=50"`
	IsFeatured    bool      `json:"isFeatured"`
	IsActive      *bool     `json:"isActive,omitempty"`
}

// Only the fields present in the body are applied; unknown keys are rejected at decode time.
type UpdateProductRequest struct {
	Name          *string    `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Description   *string    `json:"description,omitempty" validate:"omitempty,max=5000"`
	Price         *float64   `json:"price,omitempty" validate:"omitempty,gte=0,lte=9999999999.99"`
	OriginalPrice *float64   `json:"originalPrice,omitempty" validate:"omitempty,gte=0,lte=9999999999.99"`
	Category      *uuid.UUID `json:"category,omitempty"`
	Brand         *uuid.UUID `json:"brand,omitempty"`
	Images        *[]string  `json:"images,omitempty" validate:"omitempty,dive,required"`
	Sizes         *[]string  `json:"sizes,omitempty" validate:"omitempty,dive,required,max=20"`
	Colors        *[]Color   `json:"colors,omitempty" validate:"omitempty,dive"`
	Features      *[]string  `json:"features,omitempty" validate:"omitempty,dive,required"`
	Stock         *int       `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Rating        *float64   `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	NumReviews    *int       `json:"numReviews,omitempty" validate:"omitempty,gte=0"`
	Badge         *string    `json:"badge,omitempty" validate:"omitempty,max=50"`
	IsFeatured    *bool      `json:"isFeatured,omitempty"`
	IsActive      *bool      `json:"isActive,omitempty"`
}

type ProductListResponse struct {
	Products      []*Product `json:"products"`
	CurrentPage   int        `json:"currentPage"`
	TotalPages    int        `json:"totalPages"`
	TotalProducts int64      `json:"totalProducts"`
}
