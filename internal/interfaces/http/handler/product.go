package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/ponsiv/backend/internal/application/catalog"
)

// ProductHandler handles product browsing endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// RegisterRoutes mounts product routes on the given group
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	products.GET("", h.Explore)
	products.GET("/:id", h.GetByID)
	rg.GET("/brands", h.Brands)
	rg.GET("/categories", h.Categories)
}

// Explore returns a filtered, paginated product listing
func (h *ProductHandler) Explore(c *gin.Context) {
	var req catalogapp.ExploreRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.productService.Explore(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

// GetByID returns a single product with brand and category details
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, product)
}

// Brands returns all brands for explore filters
func (h *ProductHandler) Brands(c *gin.Context) {
	brands, err := h.productService.Brands(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, brands)
}

// Categories returns all categories for explore filters
func (h *ProductHandler) Categories(c *gin.Context) {
	categories, err := h.productService.Categories(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, categories)
}
