package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/ponsiv/backend/internal/domain/catalog"
	"github.com/ponsiv/backend/internal/domain/shared"
)

// ProductService handles product detail and catalog browsing
type ProductService struct {
	productRepo  catalog.ProductRepository
	brandRepo    catalog.BrandRepository
	categoryRepo catalog.CategoryRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, brandRepo catalog.BrandRepository, categoryRepo catalog.CategoryRepository) *ProductService {
	return &ProductService{productRepo: productRepo, brandRepo: brandRepo, categoryRepo: categoryRepo}
}

// GetByID returns a single product card with brand and category details
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindEnrichedByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(*product)
	return &resp, nil
}

// Explore lists products filtered by category name and free-text search
func (s *ProductService) Explore(ctx context.Context, req ExploreRequest) (*ExploreResponse, error) {
	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.Limit > 0 {
		filter.PageSize = req.Limit
	}
	if filter.PageSize > maxFeedLimit {
		filter.PageSize = maxFeedLimit
	}
	filter.Search = req.Search
	if req.Category != "" {
		filter.Filters["category"] = req.Category
	}

	products, total, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ExploreResponse{
		Products: toProductResponses(products),
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.PageSize,
	}, nil
}

// Brands lists all brands, for populating explore filters
func (s *ProductService) Brands(ctx context.Context) ([]BrandResponse, error) {
	brands, err := s.brandRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]BrandResponse, 0, len(brands))
	for _, b := range brands {
		out = append(out, BrandResponse{ID: b.ID, Name: b.Name, LogoURL: b.LogoURL})
	}
	return out, nil
}

// Categories lists all categories, for populating explore filters
func (s *ProductService) Categories(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{ID: c.ID, Name: c.Name, IconName: c.IconName})
	}
	return out, nil
}
