package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopfront/backend/internal/domain/shared"
	"github.com/shopfront/backend/internal/domain/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStoreRepository is a mock implementation of store.Repository
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*store.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Store), args.Error(1)
}

func (m *MockStoreRepository) FindBySlug(ctx context.Context, slug string) (*store.Store, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Store), args.Error(1)
}

func (m *MockStoreRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockStoreRepository) Save(ctx context.Context, s *store.Store) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStoreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestStoreServiceCreate(t *testing.T) {
	t.Run("creates store with optional settings", func(t *testing.T) {
		repo := new(MockStoreRepository)
		repo.On("ExistsBySlug", mock.Anything, "cocoa-crafts").Return(false, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*store.Store")).Return(nil)
		service := NewStoreService(repo)

		resp, err := service.Create(context.Background(), CreateStoreRequest{
			Slug:           "cocoa-crafts",
			BusinessName:   "Cocoa Crafts",
			WhatsAppNumber: "+234 801 234 5678",
			Currency:       "ngn",
		})
		require.NoError(t, err)

		assert.Equal(t, "cocoa-crafts", resp.Slug)
		assert.Equal(t, "Cocoa Crafts", resp.BusinessName)
		assert.Equal(t, "NGN", resp.Currency)
		assert.True(t, resp.CanCheckout)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate slug", func(t *testing.T) {
		repo := new(MockStoreRepository)
		repo.On("ExistsBySlug", mock.Anything, "cocoa-crafts").Return(true, nil)
		service := NewStoreService(repo)

		_, err := service.Create(context.Background(), CreateStoreRequest{
			Slug:         "cocoa-crafts",
			BusinessName: "Cocoa Crafts",
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("rejects invalid currency without saving", func(t *testing.T) {
		repo := new(MockStoreRepository)
		repo.On("ExistsBySlug", mock.Anything, "cocoa-crafts").Return(false, nil)
		service := NewStoreService(repo)

		_, err := service.Create(context.Background(), CreateStoreRequest{
			Slug:         "cocoa-crafts",
			BusinessName: "Cocoa Crafts",
			Currency:     "dollars",
		})
		require.Error(t, err)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestStoreServiceUpdate(t *testing.T) {
	t.Run("applies partial update", func(t *testing.T) {
		st, err := store.NewStore("cocoa-crafts", "Cocoa Crafts")
		require.NoError(t, err)

		repo := new(MockStoreRepository)
		repo.On("FindByID", mock.Anything, st.ID).Return(st, nil)
		repo.On("Save", mock.Anything, st).Return(nil)
		service := NewStoreService(repo)

		number := "+1 (555) 010-2030"
		resp, err := service.Update(context.Background(), st.ID, UpdateStoreRequest{
			WhatsAppNumber: &number,
		})
		require.NoError(t, err)

		assert.Equal(t, "Cocoa Crafts", resp.BusinessName)
		assert.Equal(t, number, resp.WhatsAppNumber)
		assert.True(t, resp.CanCheckout)
		repo.AssertExpectations(t)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(MockStoreRepository)
		repo.On("FindByID", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)
		service := NewStoreService(repo)

		_, err := service.Update(context.Background(), uuid.New(), UpdateStoreRequest{})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestStoreServiceGetBySlug(t *testing.T) {
	st, err := store.NewStore("cocoa-crafts", "Cocoa Crafts")
	require.NoError(t, err)

	repo := new(MockStoreRepository)
	repo.On("FindBySlug", mock.Anything, "cocoa-crafts").Return(st, nil)
	service := NewStoreService(repo)

	resp, err := service.GetBySlug(context.Background(), "cocoa-crafts")
	require.NoError(t, err)
	assert.Equal(t, st.ID, resp.ID)
	assert.False(t, resp.CanCheckout)
}
