package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	outfitapp "github.com/ponsiv/backend/internal/application/outfit"
	"github.com/ponsiv/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// OutfitHandler handles outfit creation, listing and likes
type OutfitHandler struct {
	BaseHandler
	outfitService   *outfitapp.Service
	requireSession  gin.HandlerFunc
	optionalSession gin.HandlerFunc
}

// NewOutfitHandler creates a new OutfitHandler
func NewOutfitHandler(outfitService *outfitapp.Service, requireSession, optionalSession gin.HandlerFunc) *OutfitHandler {
	return &OutfitHandler{
		outfitService:   outfitService,
		requireSession:  requireSession,
		optionalSession: optionalSession,
	}
}

// RegisterRoutes mounts outfit routes on the given group. Listing runs
// behind the optional session so public=true works anonymously; everything
// else needs a session.
func (h *OutfitHandler) RegisterRoutes(rg *gin.RouterGroup) {
	outfits := rg.Group("/outfits")
	outfits.GET("", h.optionalSession, h.List)
	outfits.POST("", h.requireSession, h.Create)
	outfits.POST("/:id/like", h.requireSession, h.ToggleLike)
}

// List returns outfits. With public=true it lists all public outfits with
// like counts and never requires a session; otherwise it lists the caller's
// own outfits and fails without one.
func (h *OutfitHandler) List(c *gin.Context) {
	if c.Query("public") == "true" {
		outfits, err := h.outfitService.ListPublic(c.Request.Context())
		if err != nil {
			// Public listing degrades to empty rather than failing the page
			logger.GetGinLogger(c).Warn("Public outfit listing failed", zap.Error(err))
			h.Success(c, []outfitapp.OutfitResponse{})
			return
		}
		h.Success(c, outfits)
		return
	}

	userID := getUserID(c)
	if userID == "" {
		h.Unauthorized(c, "Authentication required")
		return
	}

	outfits, err := h.outfitService.ListMine(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, outfits)
}

// Create assembles a new outfit from the user's wardrobe items
func (h *OutfitHandler) Create(c *gin.Context) {
	var req outfitapp.CreateOutfitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	created, err := h.outfitService.Create(c.Request.Context(), getUserID(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, created)
}

// ToggleLike flips the authenticated user's like on an outfit
func (h *OutfitHandler) ToggleLike(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid outfit ID format")
		return
	}

	result, err := h.outfitService.ToggleLike(c.Request.Context(), getUserID(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}
