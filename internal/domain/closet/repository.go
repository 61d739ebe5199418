package closet

import (
	"context"

	"github.com/google/uuid"
)

// EnrichedItem is a wardrobe item read model joined to its linked product's
// summary fields. Product fields are empty for custom items.
type EnrichedItem struct {
	WardrobeItem
	ProductName     string
	ProductImageURL string
	ProductPrice    string
	ProductBrand    string
}

// Repository defines the interface for wardrobe persistence
type Repository interface {
	// FindByID finds a wardrobe item by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*WardrobeItem, error)

	// FindByUser returns all items owned by a user, newest first, each
	// enriched with its linked product summary when present
	FindByUser(ctx context.Context, userID string) ([]EnrichedItem, error)

	// FindByIDsForUser finds the subset of ids owned by userID
	FindByIDsForUser(ctx context.Context, userID string, ids []uuid.UUID) ([]WardrobeItem, error)

	// ExistsLink reports whether the user already has a wardrobe item
	// linked to the given product
	ExistsLink(ctx context.Context, userID string, productID uuid.UUID) (bool, error)

	// Save creates or updates a wardrobe item
	Save(ctx context.Context, item *WardrobeItem) error

	// Delete removes a wardrobe item owned by userID
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}
