package catalog

import (
	"html"
	"slices"
	"strings"

	"github.com/gosimple/slug"
	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// Slugify derives the lowercase, URL-safe lookup key for a category or brand name.
func Slugify(name string) string {
	return slug.Make(name)
}

// Clean strips markup from admin-supplied text before it is stored.
// Entities are unescaped again since responses are JSON, not HTML.
func Clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

func CleanAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if c := Clean(v); c != "" {
			out = append(out, c)
		}
	}

	return out
}

// Dedupe keeps the first occurrence of each value.
func Dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}

	return out
}
