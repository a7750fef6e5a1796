package storefront

import (
	"strings"

	"github.com/shopfront/backend/internal/domain/catalog"
)

// CategoryAll is the sentinel category meaning "no category filter"
const CategoryAll = "all"

// FilterCatalog returns the visible products matching the free-text
// query and the selected category. The query matches case-insensitively
// against title and description; CategoryAll (or empty) disables the
// category filter. The input slice is never mutated and the same inputs
// always produce the same output. An empty result is valid.
func FilterCatalog(products []catalog.Product, query, category string) []catalog.Product {
	query = strings.ToLower(strings.TrimSpace(query))

	matched := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if !p.Visible {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Title), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		if category != "" && category != CategoryAll && p.Category != category {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

// Categories returns the distinct category labels of the visible
// products, in first-seen order, for the storefront filter chips.
// Products without a category are skipped.
func Categories(products []catalog.Product) []string {
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, p := range products {
		if !p.Visible || p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}
