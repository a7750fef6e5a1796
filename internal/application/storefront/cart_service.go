package storefront

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopfront/backend/internal/domain/catalog"
	"github.com/shopfront/backend/internal/domain/shared"
	"github.com/shopfront/backend/internal/domain/store"
	"github.com/shopfront/backend/internal/domain/storefront"
)

// DefaultSessionTTL is how long an untouched cart survives. Every cart
// mutation refreshes it; an HTTP backend has no page-unload signal, so
// expiry stands in for the end of the browsing session.
const DefaultSessionTTL = 12 * time.Hour

// Guard errors surfaced to the shopper before a checkout link is built
var (
	ErrCartEmpty = shared.NewDomainError("CART_EMPTY",
		"Cart is empty. Add some items to your cart before checkout.")
	ErrStoreNotConfigured = shared.NewDomainError("STORE_NOT_CONFIGURED",
		"WhatsApp number is not set up for this store.")
)

// CartService handles the shopper's cart and checkout use cases.
// Each cart is owned by one anonymous session and scoped to one store.
type CartService struct {
	storeRepo   store.Repository
	productRepo catalog.ProductRepository
	carts       storefront.CartStore
	sessionTTL  time.Duration
}

// NewCartService creates a new CartService
func NewCartService(
	storeRepo store.Repository,
	productRepo catalog.ProductRepository,
	carts storefront.CartStore,
	sessionTTL time.Duration,
) *CartService {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &CartService{
		storeRepo:   storeRepo,
		productRepo: productRepo,
		carts:       carts,
		sessionTTL:  sessionTTL,
	}
}

// Get returns the session's cart for the storefront; a session without
// a cart gets an empty one
func (s *CartService) Get(ctx context.Context, slug, sessionID string) (*CartResponse, error) {
	st, err := s.storeRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	cart, err := s.loadCart(ctx, st.ID, sessionID)
	if err != nil {
		return nil, err
	}

	response := ToCartResponse(sessionID, cart, st.Currency)
	return &response, nil
}

// AddItem adds one unit of a product to the session's cart, issuing a
// new session ID if the shopper does not have one yet. The cart line
// snapshots the product's title, price, and image at this moment.
// Hidden or foreign products are reported as not found.
func (s *CartService) AddItem(ctx context.Context, slug, sessionID string, productID uuid.UUID) (*CartResponse, error) {
	st, err := s.storeRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByIDForStore(ctx, st.ID, productID)
	if err != nil {
		return nil, err
	}
	if !product.Visible {
		return nil, shared.ErrNotFound
	}

	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	cart, err := s.loadCart(ctx, st.ID, sessionID)
	if err != nil {
		return nil, err
	}

	cart.AddItem(product)

	if err := s.carts.Put(ctx, cartKey(st.ID, sessionID), cart, s.sessionTTL); err != nil {
		return nil, err
	}

	response := ToCartResponse(sessionID, cart, st.Currency)
	return &response, nil
}

// SetQuantity sets the absolute quantity of a cart line. A quantity of
// zero or less removes the line; adjusting a line that does not exist
// is a no-op.
func (s *CartService) SetQuantity(ctx context.Context, slug, sessionID string, productID uuid.UUID, quantity int) (*CartResponse, error) {
	st, err := s.storeRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	cart, err := s.loadCart(ctx, st.ID, sessionID)
	if err != nil {
		return nil, err
	}

	cart.SetQuantity(productID, quantity)

	if sessionID != "" {
		if err := s.carts.Put(ctx, cartKey(st.ID, sessionID), cart, s.sessionTTL); err != nil {
			return nil, err
		}
	}

	response := ToCartResponse(sessionID, cart, st.Currency)
	return &response, nil
}

// Checkout turns the session's cart into a WhatsApp deep link. It
// enforces the two guards the message builder assumes: the cart must
// not be empty and the store must have a checkout contact configured.
// The cart is left untouched; the navigation is fire-and-forget.
func (s *CartService) Checkout(ctx context.Context, slug, sessionID string) (*CheckoutResponse, error) {
	st, err := s.storeRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	cart, err := s.loadCart(ctx, st.ID, sessionID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrCartEmpty
	}
	if !st.CanCheckout() {
		return nil, ErrStoreNotConfigured
	}

	message := storefront.BuildOrderMessage(cart, st.Currency, st.BusinessName)
	return &CheckoutResponse{
		WhatsAppURL: storefront.CheckoutLink(message, st.WhatsAppNumber),
		Message:     message,
	}, nil
}

// loadCart returns the stored cart for the session, or a fresh empty
// cart when the session is new or expired
func (s *CartService) loadCart(ctx context.Context, storeID uuid.UUID, sessionID string) (*storefront.Cart, error) {
	if sessionID == "" {
		return storefront.NewCart(), nil
	}

	cart, err := s.carts.Get(ctx, cartKey(storeID, sessionID))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return storefront.NewCart(), nil
		}
		return nil, err
	}
	return cart, nil
}

// cartKey scopes a session's cart to one store, so the same browser
// session gets an independent cart on every storefront
func cartKey(storeID uuid.UUID, sessionID string) string {
	return storeID.String() + ":" + sessionID
}
