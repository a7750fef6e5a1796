package storefront

import (
	"context"

	"github.com/shopfront/backend/internal/domain/catalog"
	"github.com/shopfront/backend/internal/domain/shared"
	"github.com/shopfront/backend/internal/domain/store"
	"github.com/shopfront/backend/internal/domain/storefront"
)

// StorefrontService serves the public browsing surface of a store
type StorefrontService struct {
	storeRepo   store.Repository
	productRepo catalog.ProductRepository
}

// NewStorefrontService creates a new StorefrontService
func NewStorefrontService(storeRepo store.Repository, productRepo catalog.ProductRepository) *StorefrontService {
	return &StorefrontService{
		storeRepo:   storeRepo,
		productRepo: productRepo,
	}
}

// View resolves a storefront by slug and returns its public profile
// together with the visible products matching the free-text query and
// category filter. Category chips are derived from the full visible
// catalog, not the filtered subset, so they stay stable while the
// shopper narrows the view. An empty product list is a valid result.
func (s *StorefrontService) View(ctx context.Context, slug, query, category string) (*StorefrontResponse, error) {
	st, err := s.storeRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	// Unpaginated on purpose: the catalog query contract is in-memory
	// filtering over the full collection.
	products, err := s.productRepo.FindAllForStore(ctx, st.ID, shared.Filter{
		OrderBy:  "created_at",
		OrderDir: "desc",
	})
	if err != nil {
		return nil, err
	}

	filtered := storefront.FilterCatalog(products, query, category)

	cards := make([]StorefrontProductResponse, 0, len(filtered))
	for i := range filtered {
		cards = append(cards, ToStorefrontProductResponse(&filtered[i], st.Currency))
	}

	return &StorefrontResponse{
		Store:      ToStoreProfileResponse(st),
		Products:   cards,
		Categories: storefront.Categories(products),
	}, nil
}
