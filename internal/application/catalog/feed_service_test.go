package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/ponsiv/backend/internal/domain/catalog"
	"github.com/ponsiv/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makeFeedProduct(t *testing.T, title string) catalog.FeedProduct {
	t.Helper()
	product, err := catalog.NewProduct(uuid.New(), title, decimal.NewFromFloat(19.99))
	require.NoError(t, err)
	require.NoError(t, product.SetImages([]string{"https://cdn.example.com/a.jpg"}))
	require.NoError(t, product.SetSizes([]string{"S", "M"}))
	return catalog.FeedProduct{
		Product:      *product,
		BrandName:    "Acme",
		BrandLogoURL: "https://cdn.example.com/logo.png",
		CategoryName: "Coats",
	}
}

func TestFeedServiceGetPage(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := NewFeedService(mockRepo)

	page := shared.Page[catalog.FeedProduct]{
		Items:   []catalog.FeedProduct{makeFeedProduct(t, "Wool Coat")},
		HasMore: true,
	}
	mockRepo.On("FindFeedPage", mock.Anything, 2, 10).Return(page, nil)

	resp, err := service.GetPage(context.Background(), FeedRequest{Page: 2, Limit: 10})
	require.NoError(t, err)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Wool Coat", resp.Products[0].Title)
	assert.Equal(t, "Acme", resp.Products[0].Brand)
	assert.Equal(t, []string{"S", "M"}, resp.Products[0].Sizes)
	assert.True(t, resp.HasMore)
	require.NotNil(t, resp.NextPage)
	assert.Equal(t, 3, *resp.NextPage)

	mockRepo.AssertExpectations(t)
}

func TestFeedServiceGetPageDefaults(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := NewFeedService(mockRepo)

	mockRepo.On("FindFeedPage", mock.Anything, 1, defaultFeedLimit).
		Return(shared.Page[catalog.FeedProduct]{Items: []catalog.FeedProduct{}}, nil)

	resp, err := service.GetPage(context.Background(), FeedRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.Products)
	assert.False(t, resp.HasMore)
	assert.Nil(t, resp.NextPage)

	mockRepo.AssertExpectations(t)
}

func TestFeedServiceGetPageCapsLimit(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := NewFeedService(mockRepo)

	mockRepo.On("FindFeedPage", mock.Anything, 1, maxFeedLimit).
		Return(shared.Page[catalog.FeedProduct]{Items: []catalog.FeedProduct{}}, nil)

	_, err := service.GetPage(context.Background(), FeedRequest{Limit: 500})
	require.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestFeedServiceLastPage(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := NewFeedService(mockRepo)

	page := shared.Page[catalog.FeedProduct]{
		Items:   []catalog.FeedProduct{makeFeedProduct(t, "Linen Shirt")},
		HasMore: false,
	}
	mockRepo.On("FindFeedPage", mock.Anything, 5, 20).Return(page, nil)

	resp, err := service.GetPage(context.Background(), FeedRequest{Page: 5, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, resp.Products, 1)
	assert.Nil(t, resp.NextPage)
}
