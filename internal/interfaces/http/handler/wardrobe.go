package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	closetapp "github.com/ponsiv/backend/internal/application/closet"
)

// WardrobeHandler handles the user's wardrobe endpoints
type WardrobeHandler struct {
	BaseHandler
	closetService  *closetapp.Service
	requireSession gin.HandlerFunc
}

// NewWardrobeHandler creates a new WardrobeHandler
func NewWardrobeHandler(closetService *closetapp.Service, requireSession gin.HandlerFunc) *WardrobeHandler {
	return &WardrobeHandler{closetService: closetService, requireSession: requireSession}
}

// RegisterRoutes mounts wardrobe routes on the given group
func (h *WardrobeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	wardrobe := rg.Group("/wardrobe", h.requireSession)
	wardrobe.GET("", h.List)
	wardrobe.POST("", h.Add)
	wardrobe.DELETE("/:id", h.Remove)
}

// List returns all items in the authenticated user's wardrobe
func (h *WardrobeHandler) List(c *gin.Context) {
	items, err := h.closetService.List(c.Request.Context(), getUserID(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, items)
}

// Add creates a wardrobe item, linked to a catalog product or fully custom
func (h *WardrobeHandler) Add(c *gin.Context) {
	var req closetapp.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.closetService.Add(c.Request.Context(), getUserID(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, item)
}

// Remove deletes a wardrobe item owned by the authenticated user
func (h *WardrobeHandler) Remove(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID format")
		return
	}

	if err := h.closetService.Remove(c.Request.Context(), getUserID(c), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
