package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopfront/backend/internal/domain/store"
)

// CreateStoreRequest represents a request to open a new store
type CreateStoreRequest struct {
	Slug           string `json:"slug" binding:"required,storeslug"`
	BusinessName   string `json:"business_name" binding:"required,min=1,max=200"`
	WhatsAppNumber string `json:"whatsapp_number" binding:"max=30"`
	Currency       string `json:"currency" binding:"omitempty,len=3"`
	LogoURL        string `json:"logo_url" binding:"max=500"`
	Email          string `json:"email" binding:"omitempty,email"`
}

// UpdateStoreRequest represents a partial update to store settings
type UpdateStoreRequest struct {
	BusinessName   *string `json:"business_name" binding:"omitempty,min=1,max=200"`
	WhatsAppNumber *string `json:"whatsapp_number" binding:"omitempty,max=30"`
	Currency       *string `json:"currency" binding:"omitempty,len=3"`
	LogoURL        *string `json:"logo_url" binding:"omitempty,max=500"`
	Email          *string `json:"email" binding:"omitempty,email"`
}

// StoreResponse represents store settings in API responses
type StoreResponse struct {
	ID             uuid.UUID `json:"id"`
	Slug           string    `json:"slug"`
	BusinessName   string    `json:"business_name"`
	WhatsAppNumber string    `json:"whatsapp_number,omitempty"`
	Currency       string    `json:"currency"`
	LogoURL        string    `json:"logo_url,omitempty"`
	Email          string    `json:"email,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Version        int       `json:"version"`
}

// ToStoreResponse converts a domain Store to StoreResponse
func ToStoreResponse(s *store.Store) StoreResponse {
	return StoreResponse{
		ID:             s.ID,
		Slug:           s.Slug,
		BusinessName:   s.BusinessName,
		WhatsAppNumber: s.WhatsAppNumber,
		Currency:       s.Currency,
		LogoURL:        s.LogoURL,
		Email:          s.Email,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
		Version:        s.Version,
	}
}
