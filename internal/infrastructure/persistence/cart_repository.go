package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ponsiv/backend/internal/domain/commerce"
	"github.com/ponsiv/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCartRepository implements commerce.CartRepository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// FindByUser returns all cart lines of a user, oldest first
func (r *GormCartRepository) FindByUser(ctx context.Context, userID string) ([]commerce.CartItem, error) {
	var items []commerce.CartItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindLine finds the cart line for (user, product, size)
func (r *GormCartRepository) FindLine(ctx context.Context, userID string, productID uuid.UUID, size string) (*commerce.CartItem, error) {
	var item commerce.CartItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ? AND size = ?", userID, productID, size).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindLineByID finds a cart line by ID, scoped to its owner
func (r *GormCartRepository) FindLineByID(ctx context.Context, userID string, lineID uuid.UUID) (*commerce.CartItem, error) {
	var item commerce.CartItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, lineID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Save creates or updates a cart line
func (r *GormCartRepository) Save(ctx context.Context, item *commerce.CartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes a cart line owned by userID
func (r *GormCartRepository) Delete(ctx context.Context, userID string, lineID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, lineID).
		Delete(&commerce.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
