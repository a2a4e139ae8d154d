package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/organilive/storefront/domain"
)

// SortKey selects the ordering of a catalog view.
type SortKey string

const (
	SortName      SortKey = "name"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortStock     SortKey = "stock"

	// CategoryAll disables category filtering.
	CategoryAll = "all"
)

// ParseSortKey maps a query value onto a SortKey, defaulting to name.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceAsc, SortPriceDesc, SortStock:
		return SortKey(s)
	default:
		return SortName
	}
}

// ApplyView derives a filtered, ordered view of products. The input is
// never mutated. Search matches name, description and category,
// case-insensitively; category filters exactly unless it is "all"; the
// sort is stable so equal keys keep their feed order.
func ApplyView(products []domain.Product, search, category string, key SortKey) []domain.Product {
	result := make([]domain.Product, len(products))
	copy(result, products)

	if term := strings.ToLower(strings.TrimSpace(search)); term != "" {
		filtered := result[:0]
		for _, p := range result {
			if strings.Contains(strings.ToLower(p.Name), term) ||
				strings.Contains(strings.ToLower(p.Description), term) ||
				(p.Category != "" && strings.Contains(strings.ToLower(p.Category), term)) {
				filtered = append(filtered, p)
			}
		}
		result = filtered
	}

	if category != "" && category != CategoryAll {
		filtered := result[:0]
		for _, p := range result {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		result = filtered
	}

	switch key {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	case SortStock:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Stock > result[j].Stock })
	default:
		c := collate.New(language.Spanish)
		sort.SliceStable(result, func(i, j int) bool {
			return c.CompareString(result[i].Name, result[j].Name) < 0
		})
	}

	return result
}

// Stats recomputes the stock summary over the given catalog. Pure and
// uncached: callers run it per request.
func Stats(products []domain.Product) domain.CatalogStats {
	stats := domain.CatalogStats{Total: len(products)}
	for i := range products {
		switch {
		case products[i].Stock > domain.LowStockMax:
			stats.Available++
		case products[i].Stock > 0:
			stats.LowStock++
		default:
			stats.OutOfStock++
		}
	}
	return stats
}

// Categories lists the distinct categories in feed order, "all" first.
func Categories(products []domain.Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := []string{CategoryAll}
	for i := range products {
		cat := products[i].Category
		if cat == "" {
			continue
		}
		if _, ok := seen[cat]; ok {
			continue
		}
		seen[cat] = struct{}{}
		out = append(out, cat)
	}
	return out
}
