package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopfront/backend/internal/domain/shared"
	"github.com/shopfront/backend/internal/domain/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedStore(t *testing.T, repo *GormStoreRepository, slug, name string) *store.Store {
	t.Helper()

	st, err := store.NewStore(slug, name)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), st))
	return st
}

func TestGormStoreRepositoryFindBySlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStoreRepository(db)

	st := seedStore(t, repo, "cocoa-crafts", "Cocoa Crafts")

	t.Run("finds by slug", func(t *testing.T) {
		found, err := repo.FindBySlug(context.Background(), "cocoa-crafts")
		require.NoError(t, err)
		assert.Equal(t, st.ID, found.ID)
		assert.Equal(t, "Cocoa Crafts", found.BusinessName)
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		found, err := repo.FindBySlug(context.Background(), "Cocoa-Crafts")
		require.NoError(t, err)
		assert.Equal(t, st.ID, found.ID)
	})

	t.Run("unknown slug is not found", func(t *testing.T) {
		_, err := repo.FindBySlug(context.Background(), "no-such-store")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormStoreRepositoryExistsBySlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStoreRepository(db)

	seedStore(t, repo, "cocoa-crafts", "Cocoa Crafts")

	exists, err := repo.ExistsBySlug(context.Background(), "cocoa-crafts")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsBySlug(context.Background(), "other-store")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormStoreRepositorySaveUpdatesSettings(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStoreRepository(db)

	st := seedStore(t, repo, "cocoa-crafts", "Cocoa Crafts")

	require.NoError(t, st.SetWhatsAppNumber("+2348012345678"))
	require.NoError(t, st.SetCurrency("NGN"))
	require.NoError(t, repo.Save(context.Background(), st))

	found, err := repo.FindByID(context.Background(), st.ID)
	require.NoError(t, err)
	assert.Equal(t, "+2348012345678", found.WhatsAppNumber)
	assert.Equal(t, "NGN", found.Currency)
	assert.True(t, found.CanCheckout())
}

func TestGormStoreRepositoryDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStoreRepository(db)

	st := seedStore(t, repo, "cocoa-crafts", "Cocoa Crafts")

	require.NoError(t, repo.Delete(context.Background(), st.ID))

	_, err := repo.FindByID(context.Background(), st.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(context.Background(), uuid.New()), shared.ErrNotFound)
}
