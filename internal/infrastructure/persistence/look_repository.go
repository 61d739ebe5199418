package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ponsiv/backend/internal/domain/catalog"
	"github.com/ponsiv/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormLookRepository implements LookRepository using GORM
type GormLookRepository struct {
	db *gorm.DB
}

// NewGormLookRepository creates a new GormLookRepository
func NewGormLookRepository(db *gorm.DB) *GormLookRepository {
	return &GormLookRepository{db: db}
}

// FindByID finds a look by its ID
func (r *GormLookRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Look, error) {
	var look catalog.Look
	if err := r.db.WithContext(ctx).First(&look, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &look, nil
}

// FindAll finds all looks, newest first
func (r *GormLookRepository) FindAll(ctx context.Context) ([]catalog.Look, error) {
	var looks []catalog.Look
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&looks).Error; err != nil {
		return nil, err
	}
	return looks, nil
}

// FindProductIDs returns the member product IDs of a look
func (r *GormLookRepository) FindProductIDs(ctx context.Context, lookID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&catalog.LookProduct{}).
		Where("look_id = ?", lookID).
		Order("position ASC").
		Pluck("product_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Save creates or updates a look and replaces its membership rows atomically
func (r *GormLookRepository) Save(ctx context.Context, look *catalog.Look, productIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(look).Error; err != nil {
			return err
		}
		if err := tx.Where("look_id = ?", look.ID).Delete(&catalog.LookProduct{}).Error; err != nil {
			return err
		}
		for i, productID := range productIDs {
			member := catalog.NewLookProduct(look.ID, productID, i)
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
