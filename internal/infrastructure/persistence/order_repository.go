package persistence

import (
	"context"

	"github.com/ponsiv/backend/internal/domain/commerce"
	"gorm.io/gorm"
)

// GormOrderRepository implements commerce.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByUser returns a user's orders, newest first
func (r *GormOrderRepository) FindByUser(ctx context.Context, userID string) ([]commerce.Order, error) {
	var orders []commerce.Order
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("placed_at DESC, order_number DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Checkout converts the user's cart into orders inside one transaction. It
// loads the cart lines, asks build to turn them into orders using the next
// sequential per-user order number, inserts the orders and clears the cart.
// Any error rolls everything back and leaves the cart untouched.
func (r *GormOrderRepository) Checkout(ctx context.Context, userID string, build func(items []commerce.CartItem, nextOrderNumber int) ([]*commerce.Order, error)) ([]commerce.Order, error) {
	var created []commerce.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var items []commerce.CartItem
		if err := tx.Where("user_id = ?", userID).
			Order("created_at ASC").
			Find(&items).Error; err != nil {
			return err
		}

		var maxNumber int
		if err := tx.Model(&commerce.Order{}).
			Where("user_id = ?", userID).
			Select("COALESCE(MAX(order_number), 0)").
			Scan(&maxNumber).Error; err != nil {
			return err
		}

		orders, err := build(items, maxNumber+1)
		if err != nil {
			return err
		}

		for _, order := range orders {
			if err := tx.Create(order).Error; err != nil {
				return err
			}
			created = append(created, *order)
		}

		return tx.Where("user_id = ?", userID).Delete(&commerce.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
