package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/ponsiv/backend/internal/domain/engagement"
	"gorm.io/gorm"
)

// GormInteractionRepository implements engagement.Repository using GORM.
// The log is append-only; this repository never updates or deletes rows.
type GormInteractionRepository struct {
	db *gorm.DB
}

// NewGormInteractionRepository creates a new GormInteractionRepository
func NewGormInteractionRepository(db *gorm.DB) *GormInteractionRepository {
	return &GormInteractionRepository{db: db}
}

// Append inserts one interaction
func (r *GormInteractionRepository) Append(ctx context.Context, interaction *engagement.Interaction) error {
	return r.db.WithContext(ctx).Create(interaction).Error
}

// FindByUser returns a user's most recent interactions
func (r *GormInteractionRepository) FindByUser(ctx context.Context, userID string, limit int) ([]engagement.Interaction, error) {
	var interactions []engagement.Interaction
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&interactions).Error; err != nil {
		return nil, err
	}
	return interactions, nil
}

// CountByProduct counts interactions of one kind for a product
func (r *GormInteractionRepository) CountByProduct(ctx context.Context, productID uuid.UUID, kind engagement.Kind) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&engagement.Interaction{}).
		Where("product_id = ? AND kind = ?", productID, kind).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
