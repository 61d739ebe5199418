package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/ponsiv/backend/internal/application/catalog"
)

// LookHandler serves curated looks
type LookHandler struct {
	BaseHandler
	lookService *catalogapp.LookService
}

// NewLookHandler creates a new LookHandler
func NewLookHandler(lookService *catalogapp.LookService) *LookHandler {
	return &LookHandler{lookService: lookService}
}

// RegisterRoutes mounts look routes on the given group
func (h *LookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	looks := rg.Group("/looks")
	looks.GET("", h.List)
	looks.GET("/:id", h.GetByID)
}

// List returns all curated looks
func (h *LookHandler) List(c *gin.Context) {
	looks, err := h.lookService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, looks)
}

// GetByID returns a look with its full product details
func (h *LookHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid look ID format")
		return
	}

	look, err := h.lookService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, look)
}
