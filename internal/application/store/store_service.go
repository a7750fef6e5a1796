package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopfront/backend/internal/domain/shared"
	"github.com/shopfront/backend/internal/domain/store"
)

// StoreService handles store profile operations
type StoreService struct {
	storeRepo store.Repository
}

// NewStoreService creates a new StoreService
func NewStoreService(storeRepo store.Repository) *StoreService {
	return &StoreService{storeRepo: storeRepo}
}

// Create opens a new store under a unique slug
func (s *StoreService) Create(ctx context.Context, req CreateStoreRequest) (*StoreResponse, error) {
	exists, err := s.storeRepo.ExistsBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A store with this slug already exists")
	}

	st, err := store.NewStore(req.Slug, req.BusinessName)
	if err != nil {
		return nil, err
	}

	if req.WhatsAppNumber != "" {
		if err := st.SetWhatsAppNumber(req.WhatsAppNumber); err != nil {
			return nil, err
		}
	}
	if req.Currency != "" {
		if err := st.SetCurrency(req.Currency); err != nil {
			return nil, err
		}
	}
	if req.LogoURL != "" {
		if err := st.SetLogoURL(req.LogoURL); err != nil {
			return nil, err
		}
	}
	if req.Email != "" {
		if err := st.SetEmail(req.Email); err != nil {
			return nil, err
		}
	}

	if err := s.storeRepo.Save(ctx, st); err != nil {
		return nil, err
	}

	response := ToStoreResponse(st)
	return &response, nil
}

// Get retrieves a store's settings by ID
func (s *StoreService) Get(ctx context.Context, storeID uuid.UUID) (*StoreResponse, error) {
	st, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	response := ToStoreResponse(st)
	return &response, nil
}

// GetBySlug retrieves a store's settings by public slug
func (s *StoreService) GetBySlug(ctx context.Context, slug string) (*StoreResponse, error) {
	st, err := s.storeRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	response := ToStoreResponse(st)
	return &response, nil
}

// Update applies a partial settings update
func (s *StoreService) Update(ctx context.Context, storeID uuid.UUID, req UpdateStoreRequest) (*StoreResponse, error) {
	st, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	if req.BusinessName != nil {
		if err := st.Rename(*req.BusinessName); err != nil {
			return nil, err
		}
	}
	if req.WhatsAppNumber != nil {
		if err := st.SetWhatsAppNumber(*req.WhatsAppNumber); err != nil {
			return nil, err
		}
	}
	if req.Currency != nil {
		if err := st.SetCurrency(*req.Currency); err != nil {
			return nil, err
		}
	}
	if req.LogoURL != nil {
		if err := st.SetLogoURL(*req.LogoURL); err != nil {
			return nil, err
		}
	}
	if req.Email != nil {
		if err := st.SetEmail(*req.Email); err != nil {
			return nil, err
		}
	}

	if err := s.storeRepo.Save(ctx, st); err != nil {
		return nil, err
	}

	response := ToStoreResponse(st)
	return &response, nil
}
