package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopfront/backend/internal/domain/catalog"
	"github.com/shopfront/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, storeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, storeID, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) CountForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, storeID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteForStore(ctx context.Context, storeID, id uuid.UUID) error {
	args := m.Called(ctx, storeID, id)
	return args.Error(0)
}

func TestProductServiceCreate(t *testing.T) {
	storeID := uuid.New()

	t.Run("creates product with all fields", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)
		service := NewProductService(repo)

		hidden := false
		resp, err := service.Create(context.Background(), storeID, CreateProductRequest{
			Title:       "Ceramic Mug",
			Description: "Hand-made",
			Price:       decimal.NewFromFloat(12.50),
			ImageURL:    "https://cdn.example.com/mug.jpg",
			Category:    "kitchen",
			Visible:     &hidden,
		})
		require.NoError(t, err)
		require.NotNil(t, resp)

		assert.Equal(t, storeID, resp.StoreID)
		assert.Equal(t, "Ceramic Mug", resp.Title)
		assert.Equal(t, "kitchen", resp.Category)
		assert.False(t, resp.Visible)
		repo.AssertExpectations(t)
	})

	t.Run("rejects invalid product without saving", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		_, err := service.Create(context.Background(), storeID, CreateProductRequest{
			Title: "Mug",
			Price: decimal.NewFromInt(-1),
		})
		require.Error(t, err)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestProductServiceList(t *testing.T) {
	storeID := uuid.New()

	t.Run("applies defaults and maps filters", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		product, err := catalog.NewProduct(storeID, "Mug", decimal.NewFromInt(10))
		require.NoError(t, err)

		visible := true
		expectedFilter := shared.Filter{
			Page:     1,
			PageSize: 20,
			OrderBy:  "created_at",
			OrderDir: "desc",
			Search:   "mug",
			Filters: map[string]interface{}{
				catalog.FilterCategory: "kitchen",
				catalog.FilterVisible:  true,
			},
		}
		repo.On("FindAllForStore", mock.Anything, storeID, expectedFilter).Return([]catalog.Product{*product}, nil)
		repo.On("CountForStore", mock.Anything, storeID, expectedFilter).Return(int64(1), nil)

		items, total, err := service.List(context.Background(), storeID, ProductListFilter{
			Search:   "mug",
			Category: "kitchen",
			Visible:  &visible,
		})
		require.NoError(t, err)

		assert.Equal(t, int64(1), total)
		require.Len(t, items, 1)
		assert.Equal(t, "Mug", items[0].Title)
		repo.AssertExpectations(t)
	})
}

func TestProductServiceUpdate(t *testing.T) {
	storeID := uuid.New()

	t.Run("applies partial update", func(t *testing.T) {
		product, err := catalog.NewProduct(storeID, "Mug", decimal.NewFromInt(10))
		require.NoError(t, err)

		repo := new(MockProductRepository)
		repo.On("FindByIDForStore", mock.Anything, storeID, product.ID).Return(product, nil)
		repo.On("Save", mock.Anything, product).Return(nil)
		service := NewProductService(repo)

		newPrice := decimal.NewFromFloat(15.99)
		hidden := false
		resp, err := service.Update(context.Background(), storeID, product.ID, UpdateProductRequest{
			Price:   &newPrice,
			Visible: &hidden,
		})
		require.NoError(t, err)

		assert.Equal(t, "Mug", resp.Title)
		assert.True(t, resp.Price.Equal(newPrice))
		assert.False(t, resp.Visible)
		repo.AssertExpectations(t)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("FindByIDForStore", mock.Anything, storeID, mock.Anything).Return(nil, shared.ErrNotFound)
		service := NewProductService(repo)

		_, err := service.Update(context.Background(), storeID, uuid.New(), UpdateProductRequest{})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestProductServiceSetVisibility(t *testing.T) {
	storeID := uuid.New()

	product, err := catalog.NewProduct(storeID, "Mug", decimal.NewFromInt(10))
	require.NoError(t, err)

	repo := new(MockProductRepository)
	repo.On("FindByIDForStore", mock.Anything, storeID, product.ID).Return(product, nil)
	repo.On("Save", mock.Anything, product).Return(nil)
	service := NewProductService(repo)

	resp, err := service.SetVisibility(context.Background(), storeID, product.ID, false)
	require.NoError(t, err)
	assert.False(t, resp.Visible)
}

func TestProductServiceDelete(t *testing.T) {
	storeID := uuid.New()

	t.Run("deletes existing product", func(t *testing.T) {
		product, err := catalog.NewProduct(storeID, "Mug", decimal.NewFromInt(10))
		require.NoError(t, err)

		repo := new(MockProductRepository)
		repo.On("FindByIDForStore", mock.Anything, storeID, product.ID).Return(product, nil)
		repo.On("DeleteForStore", mock.Anything, storeID, product.ID).Return(nil)
		service := NewProductService(repo)

		require.NoError(t, service.Delete(context.Background(), storeID, product.ID))
		repo.AssertExpectations(t)
	})

	t.Run("does not delete when lookup fails", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("FindByIDForStore", mock.Anything, storeID, mock.Anything).Return(nil, shared.ErrNotFound)
		service := NewProductService(repo)

		err := service.Delete(context.Background(), storeID, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
		repo.AssertNotCalled(t, "DeleteForStore")
	})
}
