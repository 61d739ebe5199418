package handler

import (
	"github.com/gin-gonic/gin"
	engagementapp "github.com/ponsiv/backend/internal/application/engagement"
)

// InteractionHandler records product engagement events
type InteractionHandler struct {
	BaseHandler
	engagementService *engagementapp.Service
	requireSession    gin.HandlerFunc
}

// NewInteractionHandler creates a new InteractionHandler
func NewInteractionHandler(engagementService *engagementapp.Service, requireSession gin.HandlerFunc) *InteractionHandler {
	return &InteractionHandler{engagementService: engagementService, requireSession: requireSession}
}

// RegisterRoutes mounts interaction routes on the given group
func (h *InteractionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/interactions", h.requireSession, h.Record)
}

// Record appends an interaction to the user's engagement log
func (h *InteractionHandler) Record(c *gin.Context) {
	var req engagementapp.RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	interaction, err := h.engagementService.Record(c.Request.Context(), getUserID(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, interaction)
}
