package commerce

import (
	"time"

	"github.com/google/uuid"
	"github.com/ponsiv/backend/internal/domain/commerce"
)

// AddCartItemRequest puts one unit of a product into the cart
type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Size      string    `json:"size" binding:"max=50"`
}

// UpdateCartItemRequest replaces one line's quantity
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// CartItemResponse represents one cart line in API responses
type CartItemResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Title     string    `json:"title"`
	Brand     string    `json:"brand"`
	ImageURL  string    `json:"image_url"`
	Size      string    `json:"size"`
	Quantity  int       `json:"quantity"`
	UnitPrice string    `json:"unit_price"`
	LineTotal string    `json:"line_total"`
	Currency  string    `json:"currency"`
}

// CartResponse is the full cart with its running total
type CartResponse struct {
	Items    []CartItemResponse `json:"items"`
	Total    string             `json:"total"`
	Currency string             `json:"currency"`
}

// OrderResponse represents an order line in API responses
type OrderResponse struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber int       `json:"order_number"`
	ProductID   uuid.UUID `json:"product_id"`
	Title       string    `json:"title"`
	Brand       string    `json:"brand"`
	ImageURL    string    `json:"image_url"`
	Size        string    `json:"size"`
	Quantity    int       `json:"quantity"`
	UnitPrice   string    `json:"unit_price"`
	Total       string    `json:"total"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	PlacedAt    time.Time `json:"placed_at"`
}

// CheckoutResponse lists the orders created from the cart
type CheckoutResponse struct {
	Orders []OrderResponse `json:"orders"`
}

func toOrderResponse(o commerce.Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		ProductID:   o.ProductID,
		Title:       o.Title,
		Brand:       o.BrandName,
		ImageURL:    o.ImageURL,
		Size:        o.Size,
		Quantity:    o.Quantity,
		UnitPrice:   o.UnitPrice.StringFixed(2),
		Total:       o.Total().StringFixed(2),
		Currency:    o.Currency,
		Status:      string(o.Status),
		PlacedAt:    o.PlacedAt,
	}
}

func toOrderResponses(orders []commerce.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out
}
