package closet

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ponsiv/backend/internal/domain/catalog"
	"github.com/ponsiv/backend/internal/domain/closet"
	"github.com/ponsiv/backend/internal/domain/shared"
)

// Service handles wardrobe operations
type Service struct {
	repo        closet.Repository
	productRepo catalog.ProductRepository
}

// NewService creates a new wardrobe Service
func NewService(repo closet.Repository, productRepo catalog.ProductRepository) *Service {
	return &Service{repo: repo, productRepo: productRepo}
}

// List returns the user's wardrobe, newest first
func (s *Service) List(ctx context.Context, userID string) ([]ItemResponse, error) {
	items, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item))
	}
	return out, nil
}

// Add stores a new wardrobe item, either linked to a catalog product or
// fully custom. A request carrying both shapes, or neither, is rejected.
func (s *Service) Add(ctx context.Context, userID string, req AddItemRequest) (*ItemResponse, error) {
	fields := closet.CustomFields{
		Name:     req.Name,
		ImageURL: req.ImageURL,
		Category: req.Category,
		Color:    req.Color,
		Brand:    req.Brand,
	}

	var item *closet.WardrobeItem
	var err error
	switch {
	case req.ProductID != nil && !fields.IsEmpty():
		return nil, shared.NewDomainError("INVALID_ITEM", "Provide a product reference or custom fields, not both")
	case req.ProductID != nil:
		item, err = s.newLinkedItem(ctx, userID, *req.ProductID, req.Tags)
	default:
		item, err = closet.NewCustomItem(userID, fields, req.Tags)
	}
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, err
	}
	return s.enriched(ctx, userID, item.ID)
}

// AddProductLink links a catalog product into the wardrobe, skipping the
// insert when the link already exists. Used by the interaction side effect.
func (s *Service) AddProductLink(ctx context.Context, userID string, productID uuid.UUID) error {
	exists, err := s.repo.ExistsLink(ctx, userID, productID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	item, err := s.newLinkedItem(ctx, userID, productID, nil)
	if err != nil {
		return err
	}
	return s.repo.Save(ctx, item)
}

// Remove deletes a wardrobe item owned by the user
func (s *Service) Remove(ctx context.Context, userID string, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *Service) newLinkedItem(ctx context.Context, userID string, productID uuid.UUID, tags []string) (*closet.WardrobeItem, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_PRODUCT", "Product not found")
		}
		return nil, err
	}
	return closet.NewLinkedItem(userID, productID, tags)
}

func (s *Service) enriched(ctx context.Context, userID string, id uuid.UUID) (*ItemResponse, error) {
	items, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.ID == id {
			resp := toItemResponse(item)
			return &resp, nil
		}
	}
	return nil, shared.ErrNotFound
}
