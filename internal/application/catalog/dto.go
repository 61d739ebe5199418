package catalog

import (
	"github.com/google/uuid"
	"github.com/ponsiv/backend/internal/domain/catalog"
)

// FeedRequest carries the paging parameters of a feed query
type FeedRequest struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// ExploreRequest carries catalog browsing filters
type ExploreRequest struct {
	Category string `form:"category" binding:"omitempty,max=100"`
	Search   string `form:"search" binding:"omitempty,max=200"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

// ProductResponse represents a product card in API responses
type ProductResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Currency     string    `json:"currency"`
	Images       []string  `json:"images"`
	Sizes        []string  `json:"sizes"`
	Color        string    `json:"color"`
	Stock        int       `json:"stock"`
	CheckoutURL  string    `json:"checkout_url"`
	Brand        string    `json:"brand"`
	BrandLogoURL string    `json:"brand_logo_url"`
	Category     string    `json:"category"`
	CategoryIcon string    `json:"category_icon"`
}

// FeedResponse is one page of the randomized feed
type FeedResponse struct {
	Products []ProductResponse `json:"products"`
	HasMore  bool              `json:"hasMore"`
	NextPage *int              `json:"nextPage"`
}

// ExploreResponse is one page of filtered catalog browsing
type ExploreResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

// BrandResponse represents a brand in explore filter listings
type BrandResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	LogoURL string    `json:"logo_url"`
}

// CategoryResponse represents a category in explore filter listings
type CategoryResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	IconName string    `json:"icon_name"`
}

// LookResponse represents a curated look in API responses
type LookResponse struct {
	ID           uuid.UUID   `json:"id"`
	Title        string      `json:"title"`
	AuthorName   string      `json:"author_name"`
	AuthorAvatar string      `json:"author_avatar"`
	CoverImage   string      `json:"cover_image"`
	ProductIDs   []uuid.UUID `json:"product_ids"`
}

// LookDetailResponse is a look with its full product cards
type LookDetailResponse struct {
	LookResponse
	Products []ProductResponse `json:"products"`
}

func toProductResponse(p catalog.FeedProduct) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Price:        p.PriceMoney().Float64(),
		Currency:     string(p.PriceMoney().Currency()),
		Images:       p.ImageList(),
		Sizes:        p.SizeList(),
		Color:        p.Color,
		Stock:        p.Stock,
		CheckoutURL:  p.CheckoutURL,
		Brand:        p.BrandName,
		BrandLogoURL: p.BrandLogoURL,
		Category:     p.CategoryName,
		CategoryIcon: p.CategoryIconName,
	}
}

func toProductResponses(products []catalog.FeedProduct) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}

func toLookResponse(l catalog.Look, productIDs []uuid.UUID) LookResponse {
	if productIDs == nil {
		productIDs = []uuid.UUID{}
	}
	return LookResponse{
		ID:           l.ID,
		Title:        l.Title,
		AuthorName:   l.AuthorName,
		AuthorAvatar: l.AuthorAvatar,
		CoverImage:   l.CoverImage,
		ProductIDs:   productIDs,
	}
}
