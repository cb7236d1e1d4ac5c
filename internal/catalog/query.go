package catalog

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

type SortKey string

const (
	SortDefault   SortKey = ""
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

const (
	DefaultPage  = 1
	DefaultLimit = 12
	MaxLimit     = 100

	// upper bound on the featured strip
	FeaturedLimit = 8
)

type Limits struct {
	Default int
	Max     int
}

func DefaultLimits() Limits {
	return Limits{Default: DefaultLimit, Max: MaxLimit}
}

// ListParams is the caller-facing listing request before slug resolution.
type ListParams struct {
	Page         int
	Limit        int
	CategorySlug string
	BrandSlug    string
	MinPrice     *float64
	MaxPrice     *float64
	Search       string
	Sort         SortKey
}

// Query is what a product store executes. Nil filters are not applied.
type Query struct {
	CategoryID      *uuid.UUID
	BrandID         *uuid.UUID
	MinPrice        *float64
	MaxPrice        *float64
	Search          string
	Sort            SortKey
	IncludeInactive bool
	FeaturedOnly    bool
	Offset          int
	Limit           int
}

func ParseSort(raw string) SortKey {
	switch k := SortKey(strings.TrimSpace(raw)); k {
	case SortPriceLow, SortPriceHigh, SortRating, SortNewest:
		return k
	default:
		return SortDefault
	}
}

// ParseListParams never fails: malformed values fall back to defaults or are ignored.
func ParseListParams(values url.Values, limits Limits) ListParams {
	if limits.Default < 1 {
		limits.Default = DefaultLimit
	}

	params := ListParams{
		Page:         positiveInt(values.Get("page"), DefaultPage),
		Limit:        positiveInt(values.Get("limit"), limits.Default),
		CategorySlug: strings.ToLower(strings.TrimSpace(values.Get("category"))),
		BrandSlug:    strings.ToLower(strings.TrimSpace(values.Get("brand"))),
		MinPrice:     optionalFloat(values.Get("minPrice")),
		MaxPrice:     optionalFloat(values.Get("maxPrice")),
		Search:       strings.TrimSpace(values.Get("search")),
		Sort:         ParseSort(values.Get("sort")),
	}

	if limits.Max > 0 && params.Limit > limits.Max {
		params.Limit = limits.Max
	}

	// pages past the last reachable offset are empty anyway
	if params.Page-1 > math.MaxInt/params.Limit {
		params.Page = math.MaxInt/params.Limit + 1
	}

	return params
}

// Offset saturates at math.MaxInt instead of wrapping.
func (p ListParams) Offset() int {
	if p.Page < 1 || p.Limit < 1 {
		return 0
	}

	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}

	return (p.Page - 1) * p.Limit
}

// Query builds the store query; resolved ids come from slug lookups done by the caller.
func (p ListParams) Query(categoryID, brandID *uuid.UUID) Query {
	return Query{
		CategoryID: categoryID,
		BrandID:    brandID,
		MinPrice:   p.MinPrice,
		MaxPrice:   p.MaxPrice,
		Search:     p.Search,
		Sort:       p.Sort,
		Offset:     p.Offset(),
		Limit:      p.Limit,
	}
}

func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}

	return int((total + int64(limit) - 1) / int64(limit))
}

// PageLength is the number of items the given page holds out of total.
func PageLength(total int64, page, limit int) int {
	if total <= 0 || page < 1 || limit < 1 {
		return 0
	}

	if int64(page-1) > (total-1)/int64(limit) {
		return 0
	}

	remaining := total - int64(page-1)*int64(limit)

	return int(min(remaining, int64(limit)))
}

func positiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}

	return n
}

func optionalFloat(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != f { // NaN
		return nil
	}

	return &f
}
