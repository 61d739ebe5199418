package outfit

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/ponsiv/backend/internal/domain/closet"
	"github.com/ponsiv/backend/internal/domain/outfit"
	"github.com/ponsiv/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of outfit.Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindByID(ctx context.Context, id uuid.UUID) (*outfit.Outfit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*outfit.Outfit), args.Error(1)
}

func (m *MockRepository) FindByUser(ctx context.Context, userID string) ([]outfit.OutfitWithLikes, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]outfit.OutfitWithLikes), args.Error(1)
}

func (m *MockRepository) FindPublic(ctx context.Context) ([]outfit.OutfitWithLikes, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]outfit.OutfitWithLikes), args.Error(1)
}

func (m *MockRepository) FindItemIDs(ctx context.Context, outfitID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, outfitID)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, o *outfit.Outfit, items []outfit.OutfitItem) error {
	args := m.Called(ctx, o, items)
	return args.Error(0)
}

func (m *MockRepository) Save(ctx context.Context, o *outfit.Outfit) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockRepository) ToggleLike(ctx context.Context, outfitID uuid.UUID, userID string) (bool, error) {
	args := m.Called(ctx, outfitID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) CountLikes(ctx context.Context, outfitID uuid.UUID) (int64, error) {
	args := m.Called(ctx, outfitID)
	return args.Get(0).(int64), args.Error(1)
}

// MockClosetRepository is a mock implementation of closet.Repository
type MockClosetRepository struct {
	mock.Mock
}

func (m *MockClosetRepository) FindByID(ctx context.Context, id uuid.UUID) (*closet.WardrobeItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*closet.WardrobeItem), args.Error(1)
}

func (m *MockClosetRepository) FindByUser(ctx context.Context, userID string) ([]closet.EnrichedItem, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]closet.EnrichedItem), args.Error(1)
}

func (m *MockClosetRepository) FindByIDsForUser(ctx context.Context, userID string, ids []uuid.UUID) ([]closet.WardrobeItem, error) {
	args := m.Called(ctx, userID, ids)
	return args.Get(0).([]closet.WardrobeItem), args.Error(1)
}

func (m *MockClosetRepository) ExistsLink(ctx context.Context, userID string, productID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockClosetRepository) Save(ctx context.Context, item *closet.WardrobeItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockClosetRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func ownedItems(t *testing.T, userID string, n int) []closet.WardrobeItem {
	t.Helper()
	items := make([]closet.WardrobeItem, 0, n)
	for i := 0; i < n; i++ {
		productID := uuid.New()
		item, err := closet.NewLinkedItem(userID, productID, nil)
		require.NoError(t, err)
		items = append(items, *item)
	}
	return items
}

func TestServiceCreate(t *testing.T) {
	mockRepo := new(MockRepository)
	mockCloset := new(MockClosetRepository)
	service := NewService(mockRepo, mockCloset)

	owned := ownedItems(t, "user-1", 2)
	ids := []uuid.UUID{owned[0].ID, owned[1].ID}

	mockCloset.On("FindByIDsForUser", mock.Anything, "user-1", ids).Return(owned, nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*outfit.Outfit"), mock.AnythingOfType("[]outfit.OutfitItem")).
		Return(nil)

	resp, err := service.Create(context.Background(), "user-1", CreateOutfitRequest{
		Name:            "Weekend Fit",
		IsPublic:        true,
		WardrobeItemIDs: ids,
	})
	require.NoError(t, err)
	assert.Equal(t, "Weekend Fit", resp.Name)
	assert.True(t, resp.IsPublic)
	assert.Equal(t, ids, resp.ItemIDs)
	assert.Zero(t, resp.LikesCount)

	mockRepo.AssertExpectations(t)
	mockCloset.AssertExpectations(t)
}

func TestServiceCreateRejectsForeignItems(t *testing.T) {
	mockRepo := new(MockRepository)
	mockCloset := new(MockClosetRepository)
	service := NewService(mockRepo, mockCloset)

	ids := []uuid.UUID{uuid.New(), uuid.New()}
	// Only one of the two requested items belongs to the caller
	mockCloset.On("FindByIDsForUser", mock.Anything, "user-1", ids).
		Return(ownedItems(t, "user-1", 1), nil)

	_, err := service.Create(context.Background(), "user-1", CreateOutfitRequest{
		Name:            "Weekend Fit",
		WardrobeItemIDs: ids,
	})
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestServiceListPublicDegradesToEmpty(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, new(MockClosetRepository))

	mockRepo.On("FindPublic", mock.Anything).Return(nil, assert.AnError)

	resp, err := service.ListPublic(context.Background())
	require.NoError(t, err)
	assert.Empty(t, resp)
}

func TestServiceToggleLike(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, new(MockClosetRepository))

	o, err := outfit.NewOutfit("user-2", "Street", "", true)
	require.NoError(t, err)

	mockRepo.On("FindByID", mock.Anything, o.ID).Return(o, nil)
	mockRepo.On("ToggleLike", mock.Anything, o.ID, "user-1").Return(true, nil)
	mockRepo.On("CountLikes", mock.Anything, o.ID).Return(int64(4), nil)

	resp, err := service.ToggleLike(context.Background(), "user-1", o.ID)
	require.NoError(t, err)
	assert.True(t, resp.Liked)
	assert.Equal(t, int64(4), resp.LikesCount)
}

func TestServiceToggleLikeUnknownOutfit(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, new(MockClosetRepository))

	id := uuid.New()
	mockRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	_, err := service.ToggleLike(context.Background(), "user-1", id)
	assert.Error(t, err)
}
