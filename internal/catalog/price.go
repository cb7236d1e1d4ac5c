package catalog

import (
	"strconv"
	"strings"
)

// MaxPrice is the largest amount a NUMERIC(12,2) price column holds.
const MaxPrice = 9999999999.99

// ValidPrice reports whether v is within 0..MaxPrice with at most two decimals.
// Decimals are counted on the shortest decimal form of v.
func ValidPrice(v float64) bool {
	if v < 0 || v > MaxPrice {
		return false
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s)-i-1 <= 2
	}

	return true
}
