package closet

import (
	"time"

	"github.com/google/uuid"
	"github.com/ponsiv/backend/internal/domain/closet"
)

// AddItemRequest adds an item to the wardrobe. Exactly one of ProductID or
// the custom fields must be set.
type AddItemRequest struct {
	ProductID *uuid.UUID `json:"product_id"`
	Name      string     `json:"name" binding:"max=200"`
	ImageURL  string     `json:"image_url" binding:"omitempty,max=500"`
	Category  string     `json:"category" binding:"max=100"`
	Color     string     `json:"color" binding:"max=50"`
	Brand     string     `json:"brand" binding:"max=100"`
	Tags      []string   `json:"tags" binding:"omitempty,max=50,dive,max=50"`
}

// ItemResponse represents a wardrobe item in API responses
type ItemResponse struct {
	ID        uuid.UUID  `json:"id"`
	ProductID *uuid.UUID `json:"product_id"`
	IsCustom  bool       `json:"is_custom"`
	Name      string     `json:"name"`
	ImageURL  string     `json:"image_url"`
	Category  string     `json:"category"`
	Color     string     `json:"color"`
	Brand     string     `json:"brand"`
	Price     string     `json:"price,omitempty"`
	Tags      []string   `json:"tags"`
	CreatedAt time.Time  `json:"created_at"`
}

func toItemResponse(item closet.EnrichedItem) ItemResponse {
	resp := ItemResponse{
		ID:        item.ID,
		ProductID: item.ProductID,
		IsCustom:  item.IsCustom,
		Name:      item.CustomName,
		ImageURL:  item.CustomImageURL,
		Category:  item.CustomCategory,
		Color:     item.CustomColor,
		Brand:     item.CustomBrand,
		Tags:      item.TagList(),
		CreatedAt: item.CreatedAt,
	}
	// Linked items display the catalog product's details
	if item.IsLinked() {
		resp.Name = item.ProductName
		resp.ImageURL = item.ProductImageURL
		resp.Brand = item.ProductBrand
		resp.Price = item.ProductPrice
	}
	return resp
}
