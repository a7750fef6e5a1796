package store

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for store persistence
type Repository interface {
	// FindByID finds a store by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Store, error)

	// FindBySlug finds a store by its public slug
	FindBySlug(ctx context.Context, slug string) (*Store, error)

	// ExistsBySlug checks if a store with the given slug exists
	ExistsBySlug(ctx context.Context, slug string) (bool, error)

	// Save creates or updates a store
	Save(ctx context.Context, store *Store) error

	// Delete deletes a store
	Delete(ctx context.Context, id uuid.UUID) error
}
