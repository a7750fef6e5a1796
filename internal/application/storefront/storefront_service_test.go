package storefront

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopfront/backend/internal/domain/catalog"
	"github.com/shopfront/backend/internal/domain/shared"
	"github.com/shopfront/backend/internal/domain/store"
)

func TestStorefrontServiceView(t *testing.T) {
	st := newConfiguredStore(t)

	mug := newCatalogProduct(t, st.ID, "Ceramic Mug", 12.50)
	require.NoError(t, mug.SetCategory("kitchen"))
	tote := newCatalogProduct(t, st.ID, "Canvas Tote", 8)
	require.NoError(t, tote.SetCategory("bags"))
	hidden := newCatalogProduct(t, st.ID, "Old Mug", 5)
	require.NoError(t, hidden.SetCategory("kitchen"))
	hidden.Hide()

	products := []catalog.Product{*mug, *tote, *hidden}

	newService := func(t *testing.T) *StorefrontService {
		storeRepo := new(MockStoreRepository)
		storeRepo.On("FindBySlug", mock.Anything, st.Slug).Return(st, nil)
		productRepo := new(MockProductRepository)
		productRepo.On("FindAllForStore", mock.Anything, st.ID, mock.Anything).Return(products, nil)
		return NewStorefrontService(storeRepo, productRepo)
	}

	t.Run("returns profile and visible products", func(t *testing.T) {
		resp, err := newService(t).View(context.Background(), st.Slug, "", "all")
		require.NoError(t, err)

		assert.Equal(t, "cocoa-crafts", resp.Store.Slug)
		assert.True(t, resp.Store.CanCheckout)
		require.Len(t, resp.Products, 2)
		assert.Equal(t, []string{"kitchen", "bags"}, resp.Categories)
	})

	t.Run("formats card prices in store currency", func(t *testing.T) {
		resp, err := newService(t).View(context.Background(), st.Slug, "", "all")
		require.NoError(t, err)

		require.Len(t, resp.Products, 2)
		assert.Equal(t, "$12.50", resp.Products[0].PriceFormatted)
	})

	t.Run("narrows by query and category", func(t *testing.T) {
		resp, err := newService(t).View(context.Background(), st.Slug, "mug", "kitchen")
		require.NoError(t, err)

		require.Len(t, resp.Products, 1)
		assert.Equal(t, "Ceramic Mug", resp.Products[0].Title)
		// chips come from the whole visible catalog, not the filtered view
		assert.Equal(t, []string{"kitchen", "bags"}, resp.Categories)
	})

	t.Run("no matches is a valid empty result", func(t *testing.T) {
		resp, err := newService(t).View(context.Background(), st.Slug, "sofa", "all")
		require.NoError(t, err)
		assert.Empty(t, resp.Products)
	})

	t.Run("unknown slug is not found", func(t *testing.T) {
		storeRepo := new(MockStoreRepository)
		storeRepo.On("FindBySlug", mock.Anything, "nope").Return(nil, shared.ErrNotFound)
		service := NewStorefrontService(storeRepo, new(MockProductRepository))

		_, err := service.View(context.Background(), "nope", "", "all")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestStorefrontServiceViewUnconfiguredStore(t *testing.T) {
	st, err := store.NewStore("new-shop", "New Shop")
	require.NoError(t, err)

	storeRepo := new(MockStoreRepository)
	storeRepo.On("FindBySlug", mock.Anything, st.Slug).Return(st, nil)
	productRepo := new(MockProductRepository)
	productRepo.On("FindAllForStore", mock.Anything, st.ID, mock.Anything).Return([]catalog.Product{}, nil)
	service := NewStorefrontService(storeRepo, productRepo)

	resp, err := service.View(context.Background(), st.Slug, "", "all")
	require.NoError(t, err)

	assert.False(t, resp.Store.CanCheckout)
	assert.Empty(t, resp.Products)
	assert.Empty(t, resp.Categories)
}
