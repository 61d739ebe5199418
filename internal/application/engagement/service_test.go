package engagement

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/ponsiv/backend/internal/domain/catalog"
	"github.com/ponsiv/backend/internal/domain/engagement"
	"github.com/ponsiv/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockRepository is a mock implementation of engagement.Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Append(ctx context.Context, interaction *engagement.Interaction) error {
	args := m.Called(ctx, interaction)
	return args.Error(0)
}

func (m *MockRepository) FindByUser(ctx context.Context, userID string, limit int) ([]engagement.Interaction, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]engagement.Interaction), args.Error(1)
}

func (m *MockRepository) CountByProduct(ctx context.Context, productID uuid.UUID, kind engagement.Kind) (int64, error) {
	args := m.Called(ctx, productID, kind)
	return args.Get(0).(int64), args.Error(1)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.FeedProduct, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.FeedProduct), args.Error(1)
}

func (m *MockProductRepository) FindEnrichedByID(ctx context.Context, id uuid.UUID) (*catalog.FeedProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.FeedProduct), args.Error(1)
}

func (m *MockProductRepository) FindFeedPage(ctx context.Context, page, pageSize int) (shared.Page[catalog.FeedProduct], error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).(shared.Page[catalog.FeedProduct]), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.FeedProduct, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.FeedProduct), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

// MockWardrobeLinker is a mock implementation of WardrobeLinker
type MockWardrobeLinker struct {
	mock.Mock
}

func (m *MockWardrobeLinker) AddProductLink(ctx context.Context, userID string, productID uuid.UUID) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func newTestService(t *testing.T) (*Service, *MockRepository, *MockProductRepository, *MockWardrobeLinker) {
	t.Helper()
	repo := new(MockRepository)
	products := new(MockProductRepository)
	wardrobe := new(MockWardrobeLinker)
	return NewService(repo, products, wardrobe, zap.NewNop()), repo, products, wardrobe
}

func testProduct(t *testing.T) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(uuid.New(), "Silk Scarf", decimal.NewFromFloat(35))
	require.NoError(t, err)
	return product
}

func TestServiceRecord(t *testing.T) {
	service, repo, products, _ := newTestService(t)

	product := testProduct(t)
	products.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	repo.On("Append", mock.Anything, mock.AnythingOfType("*engagement.Interaction")).Return(nil)

	resp, err := service.Record(context.Background(), "user-1", RecordRequest{
		ProductID: product.ID,
		Kind:      "like",
	})
	require.NoError(t, err)
	assert.Equal(t, "like", resp.Kind)
	assert.Equal(t, product.ID, resp.ProductID)

	repo.AssertExpectations(t)
}

func TestServiceRecordHaveLinksWardrobe(t *testing.T) {
	service, repo, products, wardrobe := newTestService(t)

	product := testProduct(t)
	products.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	repo.On("Append", mock.Anything, mock.AnythingOfType("*engagement.Interaction")).Return(nil)
	wardrobe.On("AddProductLink", mock.Anything, "user-1", product.ID).Return(nil)

	_, err := service.Record(context.Background(), "user-1", RecordRequest{
		ProductID: product.ID,
		Kind:      "have",
	})
	require.NoError(t, err)

	wardrobe.AssertExpectations(t)
}

func TestServiceRecordHaveSideEffectFailureIsSwallowed(t *testing.T) {
	service, repo, products, wardrobe := newTestService(t)

	product := testProduct(t)
	products.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	repo.On("Append", mock.Anything, mock.AnythingOfType("*engagement.Interaction")).Return(nil)
	wardrobe.On("AddProductLink", mock.Anything, "user-1", product.ID).Return(assert.AnError)

	resp, err := service.Record(context.Background(), "user-1", RecordRequest{
		ProductID: product.ID,
		Kind:      "have",
	})
	require.NoError(t, err)
	assert.Equal(t, "have", resp.Kind)
}

func TestServiceRecordUnknownKind(t *testing.T) {
	service, repo, products, _ := newTestService(t)

	product := testProduct(t)
	products.On("FindByID", mock.Anything, product.ID).Return(product, nil)

	_, err := service.Record(context.Background(), "user-1", RecordRequest{
		ProductID: product.ID,
		Kind:      "dislike",
	})
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestServiceRecordUnknownProduct(t *testing.T) {
	service, _, products, _ := newTestService(t)

	id := uuid.New()
	products.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	_, err := service.Record(context.Background(), "user-1", RecordRequest{
		ProductID: id,
		Kind:      "view",
	})
	assert.Error(t, err)
}
