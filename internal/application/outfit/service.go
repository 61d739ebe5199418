package outfit

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ponsiv/backend/internal/domain/closet"
	"github.com/ponsiv/backend/internal/domain/outfit"
	"github.com/ponsiv/backend/internal/domain/shared"
)

// Service handles outfit operations
type Service struct {
	repo       outfit.Repository
	closetRepo closet.Repository
}

// NewService creates a new outfit Service
func NewService(repo outfit.Repository, closetRepo closet.Repository) *Service {
	return &Service{repo: repo, closetRepo: closetRepo}
}

// Create builds an outfit from wardrobe items. Every referenced item must
// exist and belong to the caller; the outfit and its membership rows are
// persisted in one transaction.
func (s *Service) Create(ctx context.Context, userID string, req CreateOutfitRequest) (*OutfitResponse, error) {
	owned, err := s.closetRepo.FindByIDsForUser(ctx, userID, req.WardrobeItemIDs)
	if err != nil {
		return nil, err
	}
	if len(owned) != len(dedupeIDs(req.WardrobeItemIDs)) {
		return nil, shared.NewDomainError("INVALID_ITEMS", "One or more wardrobe items do not exist or are not yours")
	}

	o, err := outfit.NewOutfit(userID, req.Name, req.Description, req.IsPublic)
	if err != nil {
		return nil, err
	}
	o.CoverImage = req.CoverImage

	items := make([]outfit.OutfitItem, 0, len(owned))
	itemIDs := make([]uuid.UUID, 0, len(owned))
	for _, w := range owned {
		items = append(items, outfit.NewOutfitItem(o.ID, w.ID))
		itemIDs = append(itemIDs, w.ID)
	}

	if err := s.repo.Create(ctx, o, items); err != nil {
		return nil, err
	}

	resp := toOutfitResponse(outfit.OutfitWithLikes{Outfit: *o}, itemIDs)
	return &resp, nil
}

// ListMine returns the caller's outfits, newest first
func (s *Service) ListMine(ctx context.Context, userID string) ([]OutfitResponse, error) {
	outfits, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.withItemIDs(ctx, outfits)
}

// ListPublic returns all public outfits. Repository failures degrade to an
// empty listing so the public surface never errors on reads.
func (s *Service) ListPublic(ctx context.Context) ([]OutfitResponse, error) {
	outfits, err := s.repo.FindPublic(ctx)
	if err != nil {
		return []OutfitResponse{}, nil
	}
	return s.withItemIDs(ctx, outfits)
}

// ToggleLike flips the caller's like on an outfit and returns the new state
func (s *Service) ToggleLike(ctx context.Context, userID string, outfitID uuid.UUID) (*LikeResponse, error) {
	if _, err := s.repo.FindByID(ctx, outfitID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Outfit not found")
		}
		return nil, err
	}

	liked, err := s.repo.ToggleLike(ctx, outfitID, userID)
	if err != nil {
		return nil, err
	}
	count, err := s.repo.CountLikes(ctx, outfitID)
	if err != nil {
		return nil, err
	}
	return &LikeResponse{Liked: liked, LikesCount: count}, nil
}

func (s *Service) withItemIDs(ctx context.Context, outfits []outfit.OutfitWithLikes) ([]OutfitResponse, error) {
	out := make([]OutfitResponse, 0, len(outfits))
	for _, o := range outfits {
		itemIDs, err := s.repo.FindItemIDs(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, toOutfitResponse(o, itemIDs))
	}
	return out, nil
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
