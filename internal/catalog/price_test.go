package catalog_test

import (
	"testing"

	"github.com/aaravmahajanofficial/storefront-api/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func TestValidPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  bool
	}{
		{0, true},
		{29.99, true},
		{29.9, true},
		{30, true},
		{catalog.MaxPrice, true},
		{29.999, false},
		{0.001, false},
		{-0.01, false},
		{10000000000, false},
		{9999999999.999, false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, catalog.ValidPrice(tc.price), "price=%v", tc.price)
	}
}
