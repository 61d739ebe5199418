package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ponsiv/backend/internal/domain/catalog"
	"github.com/ponsiv/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// feedSelect projects products joined to their brand and category into the
// FeedProduct read model. Brands must be active for a product to surface.
const feedSelect = "products.*, " +
	"brands.name AS brand_name, brands.logo_url AS brand_logo_url, " +
	"categories.name AS category_name, categories.icon_name AS category_icon_name"

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindByIDs finds products by their IDs, joined to brand and category
func (r *GormProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.FeedProduct, error) {
	if len(ids) == 0 {
		return []catalog.FeedProduct{}, nil
	}
	var products []catalog.FeedProduct
	if err := r.enrichedQuery(ctx).
		Where("products.id IN ?", ids).
		Scan(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindEnrichedByID finds a product joined to its brand and category
func (r *GormProductRepository) FindEnrichedByID(ctx context.Context, id uuid.UUID) (*catalog.FeedProduct, error) {
	var product catalog.FeedProduct
	result := r.enrichedQuery(ctx).
		Where("products.id = ?", id).
		Limit(1).
		Scan(&product)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, shared.ErrNotFound
	}
	return &product, nil
}

// FindFeedPage returns one randomized page of active products. One extra row
// is fetched to decide HasMore without a count query; the randomized order
// means pages are not stable across requests.
func (r *GormProductRepository) FindFeedPage(ctx context.Context, page, pageSize int) (shared.Page[catalog.FeedProduct], error) {
	var products []catalog.FeedProduct
	offset := (page - 1) * pageSize
	if err := r.enrichedQuery(ctx).
		Where("products.active = ? AND brands.active = ?", true, true).
		Order("RANDOM()").
		Offset(offset).
		Limit(pageSize + 1).
		Scan(&products).Error; err != nil {
		return shared.Page[catalog.FeedProduct]{}, err
	}

	hasMore := len(products) > pageSize
	if hasMore {
		products = products[:pageSize]
	}
	return shared.Page[catalog.FeedProduct]{Items: products, HasMore: hasMore}, nil
}

// FindAll finds products matching the filter for the explore listing
func (r *GormProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.FeedProduct, int64, error) {
	base := r.db.WithContext(ctx).Model(&catalog.Product{}).
		Joins("JOIN brands ON brands.id = products.brand_id").
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Where("products.active = ? AND brands.active = ?", true, true)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		base = base.Where("products.title ILIKE ? OR products.description ILIKE ? OR brands.name ILIKE ?",
			pattern, pattern, pattern)
	}
	if category, ok := filter.Filters["category"].(string); ok && category != "" {
		base = base.Where("categories.name = ?", category)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []catalog.FeedProduct
	if err := base.Select(feedSelect).
		Order("products.created_at DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Scan(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *GormProductRepository) enrichedQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&catalog.Product{}).
		Select(feedSelect).
		Joins("JOIN brands ON brands.id = products.brand_id").
		Joins("LEFT JOIN categories ON categories.id = products.category_id")
}
