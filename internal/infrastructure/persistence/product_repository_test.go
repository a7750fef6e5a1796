package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopfront/backend/internal/domain/catalog"
	"github.com/shopfront/backend/internal/domain/shared"
	"github.com/shopfront/backend/internal/domain/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory SQLite database with the schema migrated
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&store.Store{}, &catalog.Product{}))
	return db
}

func seedProduct(t *testing.T, repo *GormProductRepository, storeID uuid.UUID, title, category string, price float64, visible bool) *catalog.Product {
	t.Helper()

	p, err := catalog.NewProduct(storeID, title, decimal.NewFromFloat(price))
	require.NoError(t, err)
	if category != "" {
		require.NoError(t, p.SetCategory(category))
	}
	if !visible {
		p.Hide()
	}
	require.NoError(t, repo.Save(context.Background(), p))
	return p
}

func TestGormProductRepositoryFindByIDForStore(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	storeID := uuid.New()

	product := seedProduct(t, repo, storeID, "Mug", "kitchen", 10, true)

	t.Run("finds product in its store", func(t *testing.T) {
		found, err := repo.FindByIDForStore(context.Background(), storeID, product.ID)
		require.NoError(t, err)
		assert.Equal(t, "Mug", found.Title)
		assert.True(t, found.Price.Equal(decimal.NewFromInt(10)))
	})

	t.Run("does not cross store boundaries", func(t *testing.T) {
		_, err := repo.FindByIDForStore(context.Background(), uuid.New(), product.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := repo.FindByIDForStore(context.Background(), storeID, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormProductRepositoryFindAllForStore(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	storeID := uuid.New()
	otherStoreID := uuid.New()

	seedProduct(t, repo, storeID, "Ceramic Mug", "kitchen", 12.50, true)
	seedProduct(t, repo, storeID, "Canvas Tote", "bags", 8, true)
	seedProduct(t, repo, storeID, "Old Mug", "kitchen", 5, false)
	seedProduct(t, repo, otherStoreID, "Foreign Mug", "kitchen", 9, true)

	t.Run("scopes to the store", func(t *testing.T) {
		products, err := repo.FindAllForStore(context.Background(), storeID, shared.Filter{})
		require.NoError(t, err)
		assert.Len(t, products, 3)
	})

	t.Run("searches title and description case-insensitively", func(t *testing.T) {
		products, err := repo.FindAllForStore(context.Background(), storeID, shared.Filter{Search: "MUG"})
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("filters by category and visibility", func(t *testing.T) {
		products, err := repo.FindAllForStore(context.Background(), storeID, shared.Filter{
			Filters: map[string]interface{}{
				catalog.FilterCategory: "kitchen",
				catalog.FilterVisible:  true,
			},
		})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Ceramic Mug", products[0].Title)
	})

	t.Run("orders by whitelisted column", func(t *testing.T) {
		products, err := repo.FindAllForStore(context.Background(), storeID, shared.Filter{
			OrderBy:  "price",
			OrderDir: "asc",
		})
		require.NoError(t, err)
		require.Len(t, products, 3)
		assert.Equal(t, "Old Mug", products[0].Title)
	})

	t.Run("ignores non-whitelisted order column", func(t *testing.T) {
		_, err := repo.FindAllForStore(context.Background(), storeID, shared.Filter{
			OrderBy: "price; DROP TABLE products",
		})
		require.NoError(t, err)
	})

	t.Run("paginates when page size is set", func(t *testing.T) {
		products, err := repo.FindAllForStore(context.Background(), storeID, shared.Filter{
			Page:     2,
			PageSize: 2,
			OrderBy:  "title",
			OrderDir: "asc",
		})
		require.NoError(t, err)
		assert.Len(t, products, 1)
	})

	t.Run("returns everything when page size is zero", func(t *testing.T) {
		products, err := repo.FindAllForStore(context.Background(), storeID, shared.Filter{Page: 1})
		require.NoError(t, err)
		assert.Len(t, products, 3)
	})
}

func TestGormProductRepositoryCountForStore(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	storeID := uuid.New()

	seedProduct(t, repo, storeID, "Ceramic Mug", "kitchen", 12.50, true)
	seedProduct(t, repo, storeID, "Canvas Tote", "bags", 8, true)

	count, err := repo.CountForStore(context.Background(), storeID, shared.Filter{
		Filters: map[string]interface{}{catalog.FilterCategory: "bags"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGormProductRepositorySaveUpdatesInPlace(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	storeID := uuid.New()

	product := seedProduct(t, repo, storeID, "Mug", "", 10, true)

	require.NoError(t, product.SetPrice(decimal.NewFromFloat(15.99)))
	require.NoError(t, repo.Save(context.Background(), product))

	found, err := repo.FindByIDForStore(context.Background(), storeID, product.ID)
	require.NoError(t, err)
	assert.True(t, found.Price.Equal(decimal.NewFromFloat(15.99)))

	count, err := repo.CountForStore(context.Background(), storeID, shared.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGormProductRepositoryDeleteForStore(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	storeID := uuid.New()

	product := seedProduct(t, repo, storeID, "Mug", "", 10, true)

	t.Run("refuses foreign store", func(t *testing.T) {
		err := repo.DeleteForStore(context.Background(), uuid.New(), product.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("deletes within the store", func(t *testing.T) {
		require.NoError(t, repo.DeleteForStore(context.Background(), storeID, product.ID))

		_, err := repo.FindByIDForStore(context.Background(), storeID, product.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("deleting again is not found", func(t *testing.T) {
		err := repo.DeleteForStore(context.Background(), storeID, product.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
