package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	commerceapp "github.com/ponsiv/backend/internal/application/commerce"
)

// CartHandler handles cart, checkout and order history endpoints
type CartHandler struct {
	BaseHandler
	commerceService *commerceapp.Service
	requireSession  gin.HandlerFunc
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(commerceService *commerceapp.Service, requireSession gin.HandlerFunc) *CartHandler {
	return &CartHandler{commerceService: commerceService, requireSession: requireSession}
}

// RegisterRoutes mounts commerce routes on the given group
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart", h.requireSession)
	cart.GET("", h.GetCart)
	cart.POST("/items", h.AddItem)
	cart.PATCH("/items/:id", h.UpdateItem)
	cart.DELETE("/items/:id", h.RemoveItem)
	cart.POST("/checkout", h.Checkout)

	rg.GET("/orders", h.requireSession, h.ListOrders)
}

// GetCart returns the authenticated user's cart
func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.commerceService.GetCart(c.Request.Context(), getUserID(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, cart)
}

// AddItem puts a product into the cart, merging with an existing line
// for the same product and size
func (h *CartHandler) AddItem(c *gin.Context) {
	var req commerceapp.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	cart, err := h.commerceService.AddItem(c.Request.Context(), getUserID(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, cart)
}

// UpdateItem replaces one cart line's quantity
func (h *CartHandler) UpdateItem(c *gin.Context) {
	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid cart item ID format")
		return
	}

	var req commerceapp.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	cart, err := h.commerceService.UpdateItemQuantity(c.Request.Context(), getUserID(c), lineID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, cart)
}

// RemoveItem deletes one cart line
func (h *CartHandler) RemoveItem(c *gin.Context) {
	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid cart item ID format")
		return
	}

	cart, err := h.commerceService.RemoveItem(c.Request.Context(), getUserID(c), lineID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, cart)
}

// Checkout converts the cart into orders and clears it
func (h *CartHandler) Checkout(c *gin.Context) {
	result, err := h.commerceService.Checkout(c.Request.Context(), getUserID(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, result)
}

// ListOrders returns the authenticated user's order history
func (h *CartHandler) ListOrders(c *gin.Context) {
	orders, err := h.commerceService.ListOrders(c.Request.Context(), getUserID(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, orders)
}
