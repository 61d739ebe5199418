package closet

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLinkedItem(t *testing.T) {
	productID := uuid.New()

	item, err := NewLinkedItem("user-1", productID, []string{"summer", "linen"})
	require.NoError(t, err)
	assert.True(t, item.IsLinked())
	assert.False(t, item.IsCustom)
	assert.Equal(t, productID, *item.ProductID)
	assert.Equal(t, []string{"summer", "linen"}, item.TagList())
}

func TestNewCustomItem(t *testing.T) {
	item, err := NewCustomItem("user-1", CustomFields{Name: "Vintage jacket", Color: "brown"}, nil)
	require.NoError(t, err)
	assert.True(t, item.IsCustom)
	assert.False(t, item.IsLinked())
	assert.Empty(t, item.TagList())
}

func TestNewCustomItemRejectsEmptyFields(t *testing.T) {
	_, err := NewCustomItem("user-1", CustomFields{}, nil)
	assert.Error(t, err)
}

func TestNewItemRequiresOwner(t *testing.T) {
	_, err := NewLinkedItem("", uuid.New(), nil)
	assert.Error(t, err)

	_, err = NewCustomItem("", CustomFields{Name: "x"}, nil)
	assert.Error(t, err)
}

func TestTagListDecodeFailure(t *testing.T) {
	item, err := NewCustomItem("user-1", CustomFields{Name: "Jacket"}, []string{"a"})
	require.NoError(t, err)

	item.Tags = "{broken"
	assert.Equal(t, []string{}, item.TagList())
}

func TestSetTagsDeduplicates(t *testing.T) {
	item, err := NewCustomItem("user-1", CustomFields{Name: "Jacket"}, []string{"a", "a", "", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, item.TagList())
}
