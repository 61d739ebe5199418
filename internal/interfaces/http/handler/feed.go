package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/ponsiv/backend/internal/application/catalog"
)

// FeedHandler serves the randomized product feed
type FeedHandler struct {
	BaseHandler
	feedService *catalogapp.FeedService
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(feedService *catalogapp.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// RegisterRoutes mounts feed routes on the given group
func (h *FeedHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/feed", h.GetFeed)
}

// GetFeed returns one page of the randomized feed
func (h *FeedHandler) GetFeed(c *gin.Context) {
	var req catalogapp.FeedRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.feedService.GetPage(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, page)
}
