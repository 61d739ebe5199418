package outfit

import (
	"time"

	"github.com/google/uuid"
	"github.com/ponsiv/backend/internal/domain/outfit"
)

// CreateOutfitRequest creates an outfit from wardrobe items owned by the caller
type CreateOutfitRequest struct {
	Name            string      `json:"name" binding:"required,min=1,max=200"`
	Description     string      `json:"description" binding:"max=2000"`
	CoverImage      string      `json:"cover_image" binding:"omitempty,max=500"`
	IsPublic        bool        `json:"is_public"`
	WardrobeItemIDs []uuid.UUID `json:"wardrobe_item_ids" binding:"required,min=1"`
}

// OutfitResponse represents an outfit in API responses
type OutfitResponse struct {
	ID          uuid.UUID   `json:"id"`
	UserID      string      `json:"user_id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	CoverImage  string      `json:"cover_image"`
	IsPublic    bool        `json:"is_public"`
	LikesCount  int64       `json:"likes_count"`
	ItemIDs     []uuid.UUID `json:"item_ids"`
	CreatedAt   time.Time   `json:"created_at"`
}

// LikeResponse reports the like state after a toggle
type LikeResponse struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}

func toOutfitResponse(o outfit.OutfitWithLikes, itemIDs []uuid.UUID) OutfitResponse {
	if itemIDs == nil {
		itemIDs = []uuid.UUID{}
	}
	return OutfitResponse{
		ID:          o.ID,
		UserID:      o.UserID,
		Name:        o.Name,
		Description: o.Description,
		CoverImage:  o.CoverImage,
		IsPublic:    o.IsPublic,
		LikesCount:  o.LikesCount,
		ItemIDs:     itemIDs,
		CreatedAt:   o.CreatedAt,
	}
}
