package api

import "strings"

// FilterByTitle returns the products whose title contains term,
// case-insensitively. An empty term returns the input unchanged.
func FilterByTitle(products []Product, term string) []Product {
	if term == "" {
		return products
	}
	needle := strings.ToLower(term)
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// RelatedByCategory returns the products sharing the given category name,
// excluding the product identified by excludeID. Used by the product detail
// view to suggest similar items.
func RelatedByCategory(products []Product, categoryName, excludeID string) []Product {
	related := make([]Product, 0)
	for _, p := range products {
		if p.ID == excludeID {
			continue
		}
		if p.Category.Name == categoryName {
			related = append(related, p)
		}
	}
	return related
}
