package outfit

import (
	"time"

	"github.com/google/uuid"
	"github.com/ponsiv/backend/internal/domain/shared"
)

// Outfit is a named, shareable grouping of wardrobe items. Membership lives
// in outfit_items rows and likes in outfit_likes rows; the like count is
// derived at query time, never stored.
type Outfit struct {
	shared.OwnedAggregateRoot
	Name        string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text"`
	CoverImage  string `gorm:"type:varchar(500)"`
	IsPublic    bool   `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (Outfit) TableName() string {
	return "outfits"
}

// OutfitItem links an outfit to one wardrobe item
type OutfitItem struct {
	shared.BaseEntity
	OutfitID       uuid.UUID `gorm:"type:uuid;not null;index"`
	WardrobeItemID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (OutfitItem) TableName() string {
	return "outfit_items"
}

// OutfitLike records one user liking one outfit
type OutfitLike struct {
	shared.BaseEntity
	OutfitID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_outfit_like,priority:1"`
	UserID   string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_outfit_like,priority:2"`
}

// TableName returns the table name for GORM
func (OutfitLike) TableName() string {
	return "outfit_likes"
}

// NewOutfit creates a new outfit owned by userID
func NewOutfit(userID, name, description string, isPublic bool) (*Outfit, error) {
	if userID == "" {
		return nil, shared.ErrUnauthorized
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Outfit name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Outfit name cannot exceed 200 characters")
	}
	return &Outfit{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		Name:               name,
		Description:        description,
		IsPublic:           isPublic,
	}, nil
}

// Rename changes the outfit's name
func (o *Outfit) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Outfit name cannot be empty")
	}
	o.Name = name
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
	return nil
}

// Publish makes the outfit visible in the public feed
func (o *Outfit) Publish() {
	o.IsPublic = true
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}

// Unpublish hides the outfit from the public feed
func (o *Outfit) Unpublish() {
	o.IsPublic = false
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}

// NewOutfitItem creates a membership row
func NewOutfitItem(outfitID, wardrobeItemID uuid.UUID) OutfitItem {
	return OutfitItem{
		BaseEntity:     shared.NewBaseEntity(),
		OutfitID:       outfitID,
		WardrobeItemID: wardrobeItemID,
	}
}

// NewOutfitLike creates a like row
func NewOutfitLike(outfitID uuid.UUID, userID string) OutfitLike {
	return OutfitLike{
		BaseEntity: shared.NewBaseEntity(),
		OutfitID:   outfitID,
		UserID:     userID,
	}
}
