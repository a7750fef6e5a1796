package storefront

import (
	"github.com/google/uuid"
	"github.com/shopfront/backend/internal/domain/catalog"
	"github.com/shopfront/backend/internal/domain/store"
	"github.com/shopfront/backend/internal/domain/storefront"
	"github.com/shopspring/decimal"
)

// StoreProfileResponse is the public slice of a store's settings
type StoreProfileResponse struct {
	Slug         string `json:"slug"`
	BusinessName string `json:"business_name"`
	LogoURL      string `json:"logo_url,omitempty"`
	Currency     string `json:"currency"`
	CanCheckout  bool   `json:"can_checkout"`
}

// StorefrontProductResponse is one product card on the storefront
type StorefrontProductResponse struct {
	ID             uuid.UUID       `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	Price          decimal.Decimal `json:"price"`
	PriceFormatted string          `json:"price_formatted"`
	ImageURL       string          `json:"image_url,omitempty"`
	Category       string          `json:"category,omitempty"`
}

// StorefrontResponse is the public storefront view: profile, filtered
// product cards, and the category filter chips
type StorefrontResponse struct {
	Store      StoreProfileResponse        `json:"store"`
	Products   []StorefrontProductResponse `json:"products"`
	Categories []string                    `json:"categories"`
}

// CartLineResponse is one cart line with display formatting applied
type CartLineResponse struct {
	ProductID          uuid.UUID       `json:"product_id"`
	Title              string          `json:"title"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	UnitPriceFormatted string          `json:"unit_price_formatted"`
	ImageURL           string          `json:"image_url,omitempty"`
	Quantity           int             `json:"quantity"`
	LineTotal          decimal.Decimal `json:"line_total"`
	LineTotalFormatted string          `json:"line_total_formatted"`
}

// CartResponse is the cart state returned after every cart operation
type CartResponse struct {
	SessionID      string             `json:"session_id"`
	Lines          []CartLineResponse `json:"lines"`
	ItemCount      int                `json:"item_count"`
	Total          decimal.Decimal    `json:"total"`
	TotalFormatted string             `json:"total_formatted"`
}

// CheckoutResponse carries the checkout artifact: the deep link the
// shopper opens, plus the plain message for display
type CheckoutResponse struct {
	WhatsAppURL string `json:"whatsapp_url"`
	Message     string `json:"message"`
}

// ToStoreProfileResponse maps a store to its public profile
func ToStoreProfileResponse(s *store.Store) StoreProfileResponse {
	return StoreProfileResponse{
		Slug:         s.Slug,
		BusinessName: s.BusinessName,
		LogoURL:      s.LogoURL,
		Currency:     s.Currency,
		CanCheckout:  s.CanCheckout(),
	}
}

// ToStorefrontProductResponse maps a product to its storefront card
func ToStorefrontProductResponse(p *catalog.Product, currency string) StorefrontProductResponse {
	return StorefrontProductResponse{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		Price:          p.Price,
		PriceFormatted: storefront.FormatAmount(p.Price, currency),
		ImageURL:       p.ImageURL,
		Category:       p.Category,
	}
}

// ToCartResponse maps a cart to its response form, formatting amounts
// in the store currency
func ToCartResponse(sessionID string, cart *storefront.Cart, currency string) CartResponse {
	lines := make([]CartLineResponse, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		lines = append(lines, CartLineResponse{
			ProductID:          l.ProductID,
			Title:              l.Title,
			UnitPrice:          l.UnitPrice,
			UnitPriceFormatted: storefront.FormatAmount(l.UnitPrice, currency),
			ImageURL:           l.ImageURL,
			Quantity:           l.Quantity,
			LineTotal:          l.LineTotal(),
			LineTotalFormatted: storefront.FormatAmount(l.LineTotal(), currency),
		})
	}

	total := cart.Total()
	return CartResponse{
		SessionID:      sessionID,
		Lines:          lines,
		ItemCount:      cart.ItemCount(),
		Total:          total,
		TotalFormatted: storefront.FormatAmount(total, currency),
	}
}
