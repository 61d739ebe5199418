package catalog

import (
	"context"

	"github.com/ponsiv/backend/internal/domain/catalog"
)

const (
	defaultFeedLimit = 20
	maxFeedLimit     = 100
)

// FeedService serves the randomized product discovery feed
type FeedService struct {
	productRepo  catalog.ProductRepository
	defaultLimit int
	maxLimit     int
}

// NewFeedService creates a new FeedService with the built-in page limits
func NewFeedService(productRepo catalog.ProductRepository) *FeedService {
	return NewFeedServiceWithLimits(productRepo, defaultFeedLimit, maxFeedLimit)
}

// NewFeedServiceWithLimits creates a FeedService with custom page limits.
// Non-positive values fall back to the built-in defaults.
func NewFeedServiceWithLimits(productRepo catalog.ProductRepository, defaultLimit, maxLimit int) *FeedService {
	if defaultLimit < 1 {
		defaultLimit = defaultFeedLimit
	}
	if maxLimit < 1 {
		maxLimit = maxFeedLimit
	}
	return &FeedService{productRepo: productRepo, defaultLimit: defaultLimit, maxLimit: maxLimit}
}

// GetPage returns one page of the feed. Products come back in random
// order, so the same page number yields different products across calls.
func (s *FeedService) GetPage(ctx context.Context, req FeedRequest) (*FeedResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	result, err := s.productRepo.FindFeedPage(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	resp := &FeedResponse{
		Products: toProductResponses(result.Items),
		HasMore:  result.HasMore,
	}
	if result.HasMore {
		next := page + 1
		resp.NextPage = &next
	}
	return resp, nil
}
