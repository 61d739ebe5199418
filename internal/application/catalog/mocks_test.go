package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/ponsiv/backend/internal/domain/catalog"
	"github.com/ponsiv/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

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

// MockBrandRepository is a mock implementation of catalog.BrandRepository
type MockBrandRepository struct {
	mock.Mock
}

func (m *MockBrandRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Brand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Brand), args.Error(1)
}

func (m *MockBrandRepository) FindAll(ctx context.Context) ([]catalog.Brand, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Brand), args.Error(1)
}

func (m *MockBrandRepository) Save(ctx context.Context, brand *catalog.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

// MockCategoryRepository is a mock implementation of catalog.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]catalog.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// MockLookRepository is a mock implementation of catalog.LookRepository
type MockLookRepository struct {
	mock.Mock
}

func (m *MockLookRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Look, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Look), args.Error(1)
}

func (m *MockLookRepository) FindAll(ctx context.Context) ([]catalog.Look, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Look), args.Error(1)
}

func (m *MockLookRepository) FindProductIDs(ctx context.Context, lookID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, lookID)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockLookRepository) Save(ctx context.Context, look *catalog.Look, productIDs []uuid.UUID) error {
	args := m.Called(ctx, look, productIDs)
	return args.Error(0)
}
