package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopfront/backend/internal/domain/shared"
)

// Filter keys understood by ProductRepository list operations
const (
	FilterCategory = "category"
	FilterVisible  = "visible"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByIDForStore finds a product by ID within a store
	FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*Product, error)

	// FindAllForStore finds all products of a store matching the filter
	FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]Product, error)

	// CountForStore counts products of a store matching the filter
	CountForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (int64, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// DeleteForStore deletes a product within a store
	DeleteForStore(ctx context.Context, storeID, id uuid.UUID) error
}
