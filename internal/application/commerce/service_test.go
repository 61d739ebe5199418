package commerce

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/ponsiv/backend/internal/domain/catalog"
	"github.com/ponsiv/backend/internal/domain/commerce"
	"github.com/ponsiv/backend/internal/domain/shared"
	"github.com/ponsiv/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCartRepository is a mock implementation of commerce.CartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) FindByUser(ctx context.Context, userID string) ([]commerce.CartItem, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]commerce.CartItem), args.Error(1)
}

func (m *MockCartRepository) FindLine(ctx context.Context, userID string, productID uuid.UUID, size string) (*commerce.CartItem, error) {
	args := m.Called(ctx, userID, productID, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commerce.CartItem), args.Error(1)
}

func (m *MockCartRepository) FindLineByID(ctx context.Context, userID string, lineID uuid.UUID) (*commerce.CartItem, error) {
	args := m.Called(ctx, userID, lineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commerce.CartItem), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, item *commerce.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, userID string, lineID uuid.UUID) error {
	args := m.Called(ctx, userID, lineID)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of commerce.OrderRepository
type MockOrderRepository struct {
	mock.Mock

	// checkout inputs handed to the build callback
	CheckoutItems     []commerce.CartItem
	NextOrderNumber   int
	CheckoutCartClear bool
}

func (m *MockOrderRepository) FindByUser(ctx context.Context, userID string) ([]commerce.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]commerce.Order), args.Error(1)
}

func (m *MockOrderRepository) Checkout(ctx context.Context, userID string, build func(items []commerce.CartItem, nextOrderNumber int) ([]*commerce.Order, error)) ([]commerce.Order, error) {
	m.Called(ctx, userID)
	built, err := build(m.CheckoutItems, m.NextOrderNumber)
	if err != nil {
		return nil, err
	}
	m.CheckoutCartClear = true
	out := make([]commerce.Order, 0, len(built))
	for _, o := range built {
		out = append(out, *o)
	}
	return out, nil
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

func newTestProduct(t *testing.T, title string, price float64) catalog.FeedProduct {
	t.Helper()
	product, err := catalog.NewProduct(uuid.New(), title, decimal.NewFromFloat(price))
	require.NoError(t, err)
	require.NoError(t, product.SetImages([]string{"https://cdn.example.com/p.jpg"}))
	require.NoError(t, product.SetSizes([]string{"S", "M", "L"}))
	return catalog.FeedProduct{Product: *product, BrandName: "Acme"}
}

func TestServiceAddItemNewLine(t *testing.T) {
	carts := new(MockCartRepository)
	products := new(MockProductRepository)
	service := NewService(carts, new(MockOrderRepository), products)

	fp := newTestProduct(t, "Wool Coat", 10)
	products.On("FindByID", mock.Anything, fp.ID).Return(&fp.Product, nil)
	carts.On("FindLine", mock.Anything, "user-1", fp.ID, "M").Return(nil, shared.ErrNotFound)

	var saved *commerce.CartItem
	carts.On("Save", mock.Anything, mock.AnythingOfType("*commerce.CartItem")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*commerce.CartItem)
			carts.On("FindByUser", mock.Anything, "user-1").Return([]commerce.CartItem{*saved}, nil)
		}).
		Return(nil)
	products.On("FindByIDs", mock.Anything, []uuid.UUID{fp.ID}).Return([]catalog.FeedProduct{fp}, nil)

	resp, err := service.AddItem(context.Background(), "user-1", AddCartItemRequest{ProductID: fp.ID, Size: "M"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Items[0].Quantity)
	assert.Equal(t, "Wool Coat", resp.Items[0].Title)
	assert.Equal(t, "10.00", resp.Total)
}

func TestServiceAddItemIncrementsExistingLine(t *testing.T) {
	carts := new(MockCartRepository)
	products := new(MockProductRepository)
	service := NewService(carts, new(MockOrderRepository), products)

	fp := newTestProduct(t, "Wool Coat", 10)
	existing, err := commerce.NewCartItem("user-1", fp.ID, "M", valueobject.NewMoneyEURFromFloat(10))
	require.NoError(t, err)

	products.On("FindByID", mock.Anything, fp.ID).Return(&fp.Product, nil)
	carts.On("FindLine", mock.Anything, "user-1", fp.ID, "M").Return(existing, nil)
	carts.On("Save", mock.Anything, existing).
		Run(func(args mock.Arguments) {
			carts.On("FindByUser", mock.Anything, "user-1").Return([]commerce.CartItem{*existing}, nil)
		}).
		Return(nil)
	products.On("FindByIDs", mock.Anything, []uuid.UUID{fp.ID}).Return([]catalog.FeedProduct{fp}, nil)

	resp, err := service.AddItem(context.Background(), "user-1", AddCartItemRequest{ProductID: fp.ID, Size: "M"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, "20.00", resp.Total)
}

func TestServiceAddItemUnavailableSize(t *testing.T) {
	carts := new(MockCartRepository)
	products := new(MockProductRepository)
	service := NewService(carts, new(MockOrderRepository), products)

	fp := newTestProduct(t, "Wool Coat", 10)
	products.On("FindByID", mock.Anything, fp.ID).Return(&fp.Product, nil)

	_, err := service.AddItem(context.Background(), "user-1", AddCartItemRequest{ProductID: fp.ID, Size: "XXL"})
	assert.Error(t, err)
	carts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestServiceUpdateItemQuantity(t *testing.T) {
	carts := new(MockCartRepository)
	products := new(MockProductRepository)
	service := NewService(carts, new(MockOrderRepository), products)

	fp := newTestProduct(t, "Wool Coat", 10)
	line, err := commerce.NewCartItem("user-1", fp.ID, "M", valueobject.NewMoneyEURFromFloat(10))
	require.NoError(t, err)

	carts.On("FindLineByID", mock.Anything, "user-1", line.ID).Return(line, nil)
	carts.On("Save", mock.Anything, line).
		Run(func(args mock.Arguments) {
			carts.On("FindByUser", mock.Anything, "user-1").Return([]commerce.CartItem{*line}, nil)
		}).
		Return(nil)
	products.On("FindByIDs", mock.Anything, []uuid.UUID{fp.ID}).Return([]catalog.FeedProduct{fp}, nil)

	resp, err := service.UpdateItemQuantity(context.Background(), "user-1", line.ID, UpdateCartItemRequest{Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Items[0].Quantity)
	assert.Equal(t, "50.00", resp.Total)
}

func TestServiceUpdateItemQuantityRejectsZero(t *testing.T) {
	carts := new(MockCartRepository)
	service := NewService(carts, new(MockOrderRepository), new(MockProductRepository))

	line, err := commerce.NewCartItem("user-1", uuid.New(), "M", valueobject.NewMoneyEURFromFloat(10))
	require.NoError(t, err)
	carts.On("FindLineByID", mock.Anything, "user-1", line.ID).Return(line, nil)

	_, err = service.UpdateItemQuantity(context.Background(), "user-1", line.ID, UpdateCartItemRequest{Quantity: 0})
	assert.Error(t, err)
	carts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestServiceRemoveItemAbsentLineIsNoOp(t *testing.T) {
	carts := new(MockCartRepository)
	products := new(MockProductRepository)
	service := NewService(carts, new(MockOrderRepository), products)

	lineID := uuid.New()
	carts.On("Delete", mock.Anything, "user-1", lineID).Return(shared.ErrNotFound)
	carts.On("FindByUser", mock.Anything, "user-1").Return([]commerce.CartItem{}, nil)

	resp, err := service.RemoveItem(context.Background(), "user-1", lineID)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, "0.00", resp.Total)
}

func TestServiceCheckout(t *testing.T) {
	carts := new(MockCartRepository)
	orders := new(MockOrderRepository)
	products := new(MockProductRepository)
	service := NewService(carts, orders, products)

	fp := newTestProduct(t, "Wool Coat", 25)
	line, err := commerce.NewCartItem("user-1", fp.ID, "M", valueobject.NewMoneyEURFromFloat(25))
	require.NoError(t, err)
	line.Increment()

	orders.CheckoutItems = []commerce.CartItem{*line}
	orders.NextOrderNumber = 3
	orders.On("Checkout", mock.Anything, "user-1").Return(nil)
	products.On("FindByIDs", mock.Anything, []uuid.UUID{fp.ID}).Return([]catalog.FeedProduct{fp}, nil)

	resp, err := service.Checkout(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, 3, resp.Orders[0].OrderNumber)
	assert.Equal(t, "Wool Coat", resp.Orders[0].Title)
	assert.Equal(t, "Acme", resp.Orders[0].Brand)
	assert.Equal(t, 2, resp.Orders[0].Quantity)
	assert.Equal(t, "50.00", resp.Orders[0].Total)
	assert.Equal(t, "processing", resp.Orders[0].Status)
	assert.True(t, orders.CheckoutCartClear)
}

func TestServiceCheckoutEmptyCart(t *testing.T) {
	orders := new(MockOrderRepository)
	service := NewService(new(MockCartRepository), orders, new(MockProductRepository))

	orders.CheckoutItems = nil
	orders.NextOrderNumber = 1
	orders.On("Checkout", mock.Anything, "user-1").Return(nil)

	_, err := service.Checkout(context.Background(), "user-1")
	assert.Error(t, err)
}
