package storefront

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopfront/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildCatalog(t *testing.T) []catalog.Product {
	t.Helper()
	storeID := uuid.New()

	make := func(title, description, category string, visible bool) catalog.Product {
		p, err := catalog.NewProduct(storeID, title, decimal.NewFromInt(10))
		require.NoError(t, err)
		require.NoError(t, p.Update(title, description))
		require.NoError(t, p.SetCategory(category))
		if !visible {
			p.Hide()
		}
		return *p
	}

	return []catalog.Product{
		make("Ceramic Mug", "Hand-made coffee mug", "kitchen", true),
		make("Travel Mug", "Insulated steel mug", "kitchen", true),
		make("T-Shirt", "Cotton shirt with MUG print", "apparel", true),
		make("Hidden Mug", "Not for sale yet", "kitchen", false),
		make("Poster", "Wall art", "", true),
	}
}

func TestFilterCatalog(t *testing.T) {
	products := buildCatalog(t)

	t.Run("empty query and all category returns every visible product", func(t *testing.T) {
		got := FilterCatalog(products, "", CategoryAll)
		assert.Len(t, got, 4)
	})

	t.Run("never returns hidden products", func(t *testing.T) {
		queries := []string{"", "mug", "hidden", "not for sale"}
		categories := []string{CategoryAll, "kitchen", "apparel", ""}
		for _, q := range queries {
			for _, c := range categories {
				for _, p := range FilterCatalog(products, q, c) {
					assert.True(t, p.Visible, "query=%q category=%q returned hidden product %q", q, c, p.Title)
				}
			}
		}
	})

	t.Run("query matches title case-insensitively", func(t *testing.T) {
		got := FilterCatalog(products, "CERAMIC", CategoryAll)
		require.Len(t, got, 1)
		assert.Equal(t, "Ceramic Mug", got[0].Title)
	})

	t.Run("query matches description too", func(t *testing.T) {
		got := FilterCatalog(products, "insulated", CategoryAll)
		require.Len(t, got, 1)
		assert.Equal(t, "Travel Mug", got[0].Title)
	})

	t.Run("query and category combine with AND", func(t *testing.T) {
		// "mug" matches both kitchen mugs and the shirt's description
		assert.Len(t, FilterCatalog(products, "mug", CategoryAll), 3)
		assert.Len(t, FilterCatalog(products, "mug", "kitchen"), 2)
		assert.Len(t, FilterCatalog(products, "mug", "apparel"), 1)
	})

	t.Run("zero matches is a valid empty result", func(t *testing.T) {
		got := FilterCatalog(products, "nonexistent", CategoryAll)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("does not mutate input and is referentially stable", func(t *testing.T) {
		before := make([]catalog.Product, len(products))
		copy(before, products)

		first := FilterCatalog(products, "mug", "kitchen")
		second := FilterCatalog(products, "mug", "kitchen")

		assert.Equal(t, before, products)
		assert.Equal(t, first, second)
	})
}

func TestCategories(t *testing.T) {
	products := buildCatalog(t)

	t.Run("distinct categories of visible products in first-seen order", func(t *testing.T) {
		got := Categories(products)
		assert.Equal(t, []string{"kitchen", "apparel"}, got)
	})

	t.Run("empty catalog yields no categories", func(t *testing.T) {
		assert.Empty(t, Categories(nil))
	})
}
