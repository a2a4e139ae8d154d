package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/organilive/storefront/domain"
)

func sampleProducts() []domain.Product {
	return []domain.Product{
		{ID: "p1", Name: "Cafe Organico", Description: "Grano tostado", Category: "bebidas", Price: 25000, Stock: 12},
		{ID: "p2", Name: "Miel de Abeja", Description: "Pura de bosque", Category: "despensa", Price: 18000, Stock: 3},
		{ID: "p3", Name: "Arepa de Maiz", Description: "Paquete x5", Category: "despensa", Price: 8000, Stock: 0},
		{ID: "p4", Name: "Te Verde", Description: "Hojas sueltas", Category: "bebidas", Price: 15000, Stock: 8},
	}
}

func ids(products []domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestApplyViewDefaultsToNameOrder(t *testing.T) {
	view := ApplyView(sampleProducts(), "", CategoryAll, SortName)
	assert.Equal(t, []string{"p3", "p1", "p2", "p4"}, ids(view))
}

func TestApplyViewDoesNotMutateInput(t *testing.T) {
	products := sampleProducts()
	ApplyView(products, "miel", "despensa", SortPriceDesc)
	assert.Equal(t, sampleProducts(), products)
}

func TestApplyViewPriceOrdersAreReverses(t *testing.T) {
	products := sampleProducts() // all prices distinct

	asc := ApplyView(products, "", CategoryAll, SortPriceAsc)
	desc := ApplyView(products, "", CategoryAll, SortPriceDesc)

	require.Len(t, asc, len(desc))
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
	assert.Equal(t, []string{"p3", "p4", "p2", "p1"}, ids(asc))
}

func TestApplyViewStockDescending(t *testing.T) {
	view := ApplyView(sampleProducts(), "", CategoryAll, SortStock)
	assert.Equal(t, []string{"p1", "p4", "p2", "p3"}, ids(view))
}

func TestApplyViewSearchMatchesAllTextFields(t *testing.T) {
	products := sampleProducts()

	byName := ApplyView(products, "MIEL", "", SortName)
	assert.Equal(t, []string{"p2"}, ids(byName))

	byDescription := ApplyView(products, "hojas", "", SortName)
	assert.Equal(t, []string{"p4"}, ids(byDescription))

	byCategory := ApplyView(products, "bebidas", "", SortName)
	assert.ElementsMatch(t, []string{"p1", "p4"}, ids(byCategory))
}

func TestApplyViewCategoryFiltersExactly(t *testing.T) {
	products := sampleProducts()

	despensa := ApplyView(products, "", "despensa", SortPriceAsc)
	assert.Equal(t, []string{"p3", "p2"}, ids(despensa))

	// "all" and empty both disable the filter.
	assert.Len(t, ApplyView(products, "", CategoryAll, SortName), len(products))
	assert.Len(t, ApplyView(products, "", "", SortName), len(products))

	// Filters compose with search.
	both := ApplyView(products, "grano", "despensa", SortName)
	assert.Empty(t, both)
}

func TestParseSortKeyDefaultsToName(t *testing.T) {
	assert.Equal(t, SortName, ParseSortKey(""))
	assert.Equal(t, SortName, ParseSortKey("garbage"))
	assert.Equal(t, SortPriceAsc, ParseSortKey("price-asc"))
	assert.Equal(t, SortPriceDesc, ParseSortKey("price-desc"))
	assert.Equal(t, SortStock, ParseSortKey("stock"))
}

func TestStatsPartitionsByStockThresholds(t *testing.T) {
	products := []domain.Product{
		{ID: "a", Stock: 6},  // above the low-stock cutoff
		{ID: "b", Stock: 5},  // at the cutoff, still low
		{ID: "c", Stock: 1},
		{ID: "d", Stock: 0},
	}

	stats := Stats(products)
	assert.Equal(t, domain.CatalogStats{Total: 4, Available: 1, LowStock: 2, OutOfStock: 1}, stats)

	counted := stats.Available + stats.LowStock + stats.OutOfStock
	assert.Equal(t, stats.Total, counted)
}

func TestCategoriesKeepFeedOrderWithAllFirst(t *testing.T) {
	products := sampleProducts()
	products = append(products, domain.Product{ID: "p5", Name: "Sin categoria"})

	assert.Equal(t, []string{"all", "bebidas", "despensa"}, Categories(products))
}
