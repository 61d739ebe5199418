package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ponsiv/backend/internal/domain/closet"
	"github.com/ponsiv/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormClosetRepository implements closet.Repository using GORM
type GormClosetRepository struct {
	db *gorm.DB
}

// NewGormClosetRepository creates a new GormClosetRepository
func NewGormClosetRepository(db *gorm.DB) *GormClosetRepository {
	return &GormClosetRepository{db: db}
}

// FindByID finds a wardrobe item by its ID
func (r *GormClosetRepository) FindByID(ctx context.Context, id uuid.UUID) (*closet.WardrobeItem, error) {
	var item closet.WardrobeItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByUser returns a user's wardrobe, newest first, with linked product
// summaries joined in
func (r *GormClosetRepository) FindByUser(ctx context.Context, userID string) ([]closet.EnrichedItem, error) {
	var items []closet.EnrichedItem
	if err := r.db.WithContext(ctx).
		Model(&closet.WardrobeItem{}).
		Select("user_wardrobes.*, "+
			"products.title AS product_name, products.images AS product_image_url, "+
			"products.price AS product_price, brands.name AS product_brand").
		Joins("LEFT JOIN products ON products.id = user_wardrobes.product_id").
		Joins("LEFT JOIN brands ON brands.id = products.brand_id").
		Where("user_wardrobes.user_id = ?", userID).
		Order("user_wardrobes.created_at DESC").
		Scan(&items).Error; err != nil {
		return nil, err
	}
	for i := range items {
		items[i].ProductImageURL = firstImage(items[i].ProductImageURL)
	}
	return items, nil
}

// FindByIDsForUser finds the subset of ids owned by userID
func (r *GormClosetRepository) FindByIDsForUser(ctx context.Context, userID string, ids []uuid.UUID) ([]closet.WardrobeItem, error) {
	if len(ids) == 0 {
		return []closet.WardrobeItem{}, nil
	}
	var items []closet.WardrobeItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ExistsLink reports whether the user already has an item linked to the product
func (r *GormClosetRepository) ExistsLink(ctx context.Context, userID string, productID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&closet.WardrobeItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a wardrobe item
func (r *GormClosetRepository) Save(ctx context.Context, item *closet.WardrobeItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes a wardrobe item owned by userID
func (r *GormClosetRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&closet.WardrobeItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
