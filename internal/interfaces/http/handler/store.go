package handler

import (
	"github.com/gin-gonic/gin"
	storeapp "github.com/shopfront/backend/internal/application/store"
)

// StoreHandler handles store settings API endpoints
type StoreHandler struct {
	BaseHandler
	storeService *storeapp.StoreService
}

// NewStoreHandler creates a new StoreHandler
func NewStoreHandler(storeService *storeapp.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// Create opens a new store
func (h *StoreHandler) Create(c *gin.Context) {
	var req storeapp.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.storeService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get returns the acting store's settings
func (h *StoreHandler) Get(c *gin.Context) {
	storeID, err := getStoreID(c)
	if err != nil {
		h.BadRequest(c, "Invalid store ID")
		return
	}

	resp, err := h.storeService.Get(c.Request.Context(), storeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update applies a partial settings update to the acting store
func (h *StoreHandler) Update(c *gin.Context) {
	storeID, err := getStoreID(c)
	if err != nil {
		h.BadRequest(c, "Invalid store ID")
		return
	}

	var req storeapp.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.storeService.Update(c.Request.Context(), storeID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}
