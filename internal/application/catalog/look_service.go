package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/ponsiv/backend/internal/domain/catalog"
)

// LookService serves editorially curated looks
type LookService struct {
	lookRepo    catalog.LookRepository
	productRepo catalog.ProductRepository
}

// NewLookService creates a new LookService
func NewLookService(lookRepo catalog.LookRepository, productRepo catalog.ProductRepository) *LookService {
	return &LookService{lookRepo: lookRepo, productRepo: productRepo}
}

// List returns all looks with their product ID lists
func (s *LookService) List(ctx context.Context) ([]LookResponse, error) {
	looks, err := s.lookRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]LookResponse, 0, len(looks))
	for _, look := range looks {
		ids, err := s.lookRepo.FindProductIDs(ctx, look.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, toLookResponse(look, ids))
	}
	return out, nil
}

// GetByID returns one look with its full product cards
func (s *LookService) GetByID(ctx context.Context, id uuid.UUID) (*LookDetailResponse, error) {
	look, err := s.lookRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ids, err := s.lookRepo.FindProductIDs(ctx, id)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return &LookDetailResponse{
		LookResponse: toLookResponse(*look, ids),
		Products:     toProductResponses(products),
	}, nil
}
