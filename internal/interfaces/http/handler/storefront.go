package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	storefrontapp "github.com/shopfront/backend/internal/application/storefront"
)

// StorefrontHandler handles the public storefront API endpoints.
// These routes are unauthenticated; the store is addressed by slug and
// the shopper's cart by the X-Cart-Session header.
type StorefrontHandler struct {
	BaseHandler
	storefrontService *storefrontapp.StorefrontService
	cartService       *storefrontapp.CartService
}

// NewStorefrontHandler creates a new StorefrontHandler
func NewStorefrontHandler(
	storefrontService *storefrontapp.StorefrontService,
	cartService *storefrontapp.CartService,
) *StorefrontHandler {
	return &StorefrontHandler{
		storefrontService: storefrontService,
		cartService:       cartService,
	}
}

// AddCartItemRequest represents a request to add a product to the cart
type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

// SetCartQuantityRequest represents a request to set a cart line quantity
type SetCartQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// View returns the public storefront: profile, filtered products, and
// category chips. Query params: q (free text), category.
func (h *StorefrontHandler) View(c *gin.Context) {
	slug := c.Param("slug")
	query := c.Query("q")
	category := c.DefaultQuery("category", "all")

	resp, err := h.storefrontService.View(c.Request.Context(), slug, query, category)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// GetCart returns the shopper's cart for this storefront
func (h *StorefrontHandler) GetCart(c *gin.Context) {
	slug := c.Param("slug")
	sessionID := getCartSession(c)

	resp, err := h.cartService.Get(c.Request.Context(), slug, sessionID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.setCartSession(c, resp.SessionID)
	h.Success(c, resp)
}

// AddCartItem adds one unit of a product to the shopper's cart
func (h *StorefrontHandler) AddCartItem(c *gin.Context) {
	slug := c.Param("slug")
	sessionID := getCartSession(c)

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.cartService.AddItem(c.Request.Context(), slug, sessionID, req.ProductID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.setCartSession(c, resp.SessionID)
	h.Success(c, resp)
}

// SetCartQuantity sets the absolute quantity of a cart line; zero or
// less removes the line
func (h *StorefrontHandler) SetCartQuantity(c *gin.Context) {
	slug := c.Param("slug")
	sessionID := getCartSession(c)

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req SetCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.cartService.SetQuantity(c.Request.Context(), slug, sessionID, productID, *req.Quantity)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.setCartSession(c, resp.SessionID)
	h.Success(c, resp)
}

// Checkout builds the WhatsApp deep link for the shopper's cart
func (h *StorefrontHandler) Checkout(c *gin.Context) {
	slug := c.Param("slug")
	sessionID := getCartSession(c)

	resp, err := h.cartService.Checkout(c.Request.Context(), slug, sessionID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.setCartSession(c, sessionID)
	h.Success(c, resp)
}

// setCartSession echoes the session ID so the client can persist it
func (h *StorefrontHandler) setCartSession(c *gin.Context, sessionID string) {
	if sessionID != "" {
		c.Writer.Header().Set(CartSessionHeader, sessionID)
	}
}
