package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ponsiv/backend/internal/domain/outfit"
	"github.com/ponsiv/backend/internal/domain/shared"
	"gorm.io/gorm"
)

const outfitLikesSelect = "outfits.*, " +
	"(SELECT COUNT(*) FROM outfit_likes WHERE outfit_likes.outfit_id = outfits.id) AS likes_count"

// GormOutfitRepository implements outfit.Repository using GORM
type GormOutfitRepository struct {
	db *gorm.DB
}

// NewGormOutfitRepository creates a new GormOutfitRepository
func NewGormOutfitRepository(db *gorm.DB) *GormOutfitRepository {
	return &GormOutfitRepository{db: db}
}

// FindByID finds an outfit by its ID
func (r *GormOutfitRepository) FindByID(ctx context.Context, id uuid.UUID) (*outfit.Outfit, error) {
	var o outfit.Outfit
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// FindByUser returns a user's outfits, newest first, with like counts
func (r *GormOutfitRepository) FindByUser(ctx context.Context, userID string) ([]outfit.OutfitWithLikes, error) {
	var outfits []outfit.OutfitWithLikes
	if err := r.db.WithContext(ctx).
		Model(&outfit.Outfit{}).
		Select(outfitLikesSelect).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Scan(&outfits).Error; err != nil {
		return nil, err
	}
	return outfits, nil
}

// FindPublic returns all public outfits, newest first, with like counts
func (r *GormOutfitRepository) FindPublic(ctx context.Context) ([]outfit.OutfitWithLikes, error) {
	var outfits []outfit.OutfitWithLikes
	if err := r.db.WithContext(ctx).
		Model(&outfit.Outfit{}).
		Select(outfitLikesSelect).
		Where("is_public = ?", true).
		Order("created_at DESC").
		Scan(&outfits).Error; err != nil {
		return nil, err
	}
	return outfits, nil
}

// FindItemIDs returns the wardrobe item IDs that make up an outfit
func (r *GormOutfitRepository) FindItemIDs(ctx context.Context, outfitID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&outfit.OutfitItem{}).
		Where("outfit_id = ?", outfitID).
		Order("created_at ASC").
		Pluck("wardrobe_item_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Create persists an outfit and its membership rows in one transaction
func (r *GormOutfitRepository) Create(ctx context.Context, o *outfit.Outfit, items []outfit.OutfitItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		for i := range items {
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Save updates an existing outfit
func (r *GormOutfitRepository) Save(ctx context.Context, o *outfit.Outfit) error {
	return r.db.WithContext(ctx).Save(o).Error
}

// ToggleLike adds or removes the user's like row and reports the new state
func (r *GormOutfitRepository) ToggleLike(ctx context.Context, outfitID uuid.UUID, userID string) (bool, error) {
	liked := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("outfit_id = ? AND user_id = ?", outfitID, userID).
			Delete(&outfit.OutfitLike{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}
		like := outfit.NewOutfitLike(outfitID, userID)
		if err := tx.Create(&like).Error; err != nil {
			return err
		}
		liked = true
		return nil
	})
	return liked, err
}

// CountLikes counts like rows for an outfit
func (r *GormOutfitRepository) CountLikes(ctx context.Context, outfitID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&outfit.OutfitLike{}).
		Where("outfit_id = ?", outfitID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
