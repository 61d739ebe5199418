package commerce

import (
	"context"

	"github.com/google/uuid"
)

// CartRepository persists a user's cart lines
type CartRepository interface {
	FindByUser(ctx context.Context, userID string) ([]CartItem, error)
	FindLine(ctx context.Context, userID string, productID uuid.UUID, size string) (*CartItem, error)
	FindLineByID(ctx context.Context, userID string, lineID uuid.UUID) (*CartItem, error)
	Save(ctx context.Context, item *CartItem) error
	Delete(ctx context.Context, userID string, lineID uuid.UUID) error
}

// OrderRepository persists order lines. Checkout atomically converts a
// user's cart into orders and clears the cart.
type OrderRepository interface {
	FindByUser(ctx context.Context, userID string) ([]Order, error)
	Checkout(ctx context.Context, userID string, build func(items []CartItem, nextOrderNumber int) ([]*Order, error)) ([]Order, error)
}
