package outfit

import (
	"context"

	"github.com/google/uuid"
)

// OutfitWithLikes is an outfit read model annotated with its live like count
type OutfitWithLikes struct {
	Outfit
	LikesCount int64
}

// Repository defines the interface for outfit persistence
type Repository interface {
	// FindByID finds an outfit by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Outfit, error)

	// FindByUser returns outfits owned by userID, newest first, with like counts
	FindByUser(ctx context.Context, userID string) ([]OutfitWithLikes, error)

	// FindPublic returns all public outfits regardless of owner, newest
	// first, with like counts
	FindPublic(ctx context.Context) ([]OutfitWithLikes, error)

	// FindItemIDs returns the wardrobe item IDs that make up an outfit
	FindItemIDs(ctx context.Context, outfitID uuid.UUID) ([]uuid.UUID, error)

	// Create persists an outfit and its membership rows atomically:
	// either the outfit and every item row commit, or nothing does
	Create(ctx context.Context, o *Outfit, items []OutfitItem) error

	// Save updates an existing outfit
	Save(ctx context.Context, o *Outfit) error

	// ToggleLike adds a like row for (outfitID, userID), or removes it if
	// one already exists. Returns true when the outfit is liked afterwards.
	ToggleLike(ctx context.Context, outfitID uuid.UUID, userID string) (bool, error)

	// CountLikes counts like rows for an outfit
	CountLikes(ctx context.Context, outfitID uuid.UUID) (int64, error)
}
