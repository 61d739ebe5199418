package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/ponsiv/backend/internal/domain/shared"
)

// FeedProduct is a product read model enriched with its brand and category,
// as produced by the feed join. Brand/category fields are empty when the
// reference is missing.
type FeedProduct struct {
	Product
	BrandName        string
	BrandLogoURL     string
	CategoryName     string
	CategoryIconName string
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByIDs finds multiple products by their IDs, joined to brand and
	// category. Missing IDs are silently skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]FeedProduct, error)

	// FindEnrichedByID finds a product joined to its brand and category
	FindEnrichedByID(ctx context.Context, id uuid.UUID) (*FeedProduct, error)

	// FindFeedPage returns one randomized page of active products joined to
	// active brands. The page's HasMore flag is derived from a limit+1 probe;
	// ordering is unseeded random with no stability guarantee across pages.
	FindFeedPage(ctx context.Context, page, pageSize int) (shared.Page[FeedProduct], error)

	// FindAll finds products matching the filter (explore listing)
	FindAll(ctx context.Context, filter shared.Filter) ([]FeedProduct, int64, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error
}

// BrandRepository defines the interface for brand persistence
type BrandRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Brand, error)
	FindAll(ctx context.Context) ([]Brand, error)
	Save(ctx context.Context, brand *Brand) error
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindAll(ctx context.Context) ([]Category, error)
	Save(ctx context.Context, category *Category) error
}

// LookRepository defines the interface for look persistence
type LookRepository interface {
	// FindByID finds a look by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Look, error)

	// FindAll finds all looks, newest first
	FindAll(ctx context.Context) ([]Look, error)

	// FindProductIDs returns the member product IDs of a look
	FindProductIDs(ctx context.Context, lookID uuid.UUID) ([]uuid.UUID, error)

	// Save creates or updates a look together with its membership rows
	Save(ctx context.Context, look *Look, productIDs []uuid.UUID) error
}
