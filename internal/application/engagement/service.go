package engagement

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ponsiv/backend/internal/domain/catalog"
	"github.com/ponsiv/backend/internal/domain/engagement"
	"github.com/ponsiv/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// WardrobeLinker adds a product link to a user's wardrobe. Satisfied by the
// closet application service.
type WardrobeLinker interface {
	AddProductLink(ctx context.Context, userID string, productID uuid.UUID) error
}

// Service records user interactions with products
type Service struct {
	repo        engagement.Repository
	productRepo catalog.ProductRepository
	wardrobe    WardrobeLinker
	logger      *zap.Logger
}

// NewService creates a new engagement Service
func NewService(repo engagement.Repository, productRepo catalog.ProductRepository, wardrobe WardrobeLinker, logger *zap.Logger) *Service {
	return &Service{repo: repo, productRepo: productRepo, wardrobe: wardrobe, logger: logger}
}

// Record appends one interaction to the log. A "have" interaction also links
// the product into the user's wardrobe; that side effect is best effort and
// never fails the recording.
func (s *Service) Record(ctx context.Context, userID string, req RecordRequest) (*InteractionResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_PRODUCT", "Product not found")
		}
		return nil, err
	}

	interaction, err := engagement.NewInteraction(userID, req.ProductID, engagement.Kind(req.Kind), req.Payload)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Append(ctx, interaction); err != nil {
		return nil, err
	}

	if interaction.Kind == engagement.KindHave {
		if err := s.wardrobe.AddProductLink(ctx, userID, req.ProductID); err != nil {
			s.logger.Warn("wardrobe link after have interaction failed",
				zap.String("user_id", userID),
				zap.String("product_id", req.ProductID.String()),
				zap.Error(err))
		}
	}

	resp := toInteractionResponse(interaction)
	return &resp, nil
}
