package cache

import (
	"context"
	"time"
)

// Cache stores JSON-encoded values. A miss is reported as found=false with a nil error.
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// DeletePrefix drops every key under prefix, e.g. all cached products.
	DeletePrefix(ctx context.Context, prefix string) error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const (
	ProductKeyPrefix  = "product"
	CategoryKeyPrefix = "category"
	BrandKeyPrefix    = "brand"
)

// Public (active-only) lists served by the category and brand endpoints.
var (
	ActiveCategoriesKey = Key(CategoryKeyPrefix, "list:active")
	ActiveBrandsKey     = Key(BrandKeyPrefix, "list:active")
)
