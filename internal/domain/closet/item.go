package closet

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/ponsiv/backend/internal/domain/shared"
)

// WardrobeItem is one garment in a user's wardrobe. It is either a link to a
// catalog product or a fully custom entry; never both, never neither. Tags are
// stored as a JSON-encoded string set.
type WardrobeItem struct {
	shared.OwnedAggregateRoot
	ProductID      *uuid.UUID `gorm:"type:uuid;index"`
	CustomName     string     `gorm:"type:varchar(200)"`
	CustomImageURL string     `gorm:"type:varchar(500)"`
	CustomCategory string     `gorm:"type:varchar(100)"`
	CustomColor    string     `gorm:"type:varchar(50)"`
	CustomBrand    string     `gorm:"type:varchar(100)"`
	Tags           string     `gorm:"type:text"`
	IsCustom       bool       `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (WardrobeItem) TableName() string {
	return "user_wardrobes"
}

// CustomFields carries the free-form shape of a wardrobe item
type CustomFields struct {
	Name     string
	ImageURL string
	Category string
	Color    string
	Brand    string
}

// IsEmpty reports whether no custom field is populated
func (c CustomFields) IsEmpty() bool {
	return c.Name == "" && c.ImageURL == "" && c.Category == "" && c.Color == "" && c.Brand == ""
}

// NewLinkedItem creates a wardrobe item that references a catalog product
func NewLinkedItem(userID string, productID uuid.UUID, tags []string) (*WardrobeItem, error) {
	if userID == "" {
		return nil, shared.ErrUnauthorized
	}
	item := &WardrobeItem{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		ProductID:          &productID,
		IsCustom:           false,
	}
	if err := item.SetTags(tags); err != nil {
		return nil, err
	}
	return item, nil
}

// NewCustomItem creates a wardrobe item described entirely by the user
func NewCustomItem(userID string, fields CustomFields, tags []string) (*WardrobeItem, error) {
	if userID == "" {
		return nil, shared.ErrUnauthorized
	}
	if fields.IsEmpty() {
		return nil, shared.NewDomainError("INVALID_ITEM", "Wardrobe item needs a product reference or custom fields")
	}
	item := &WardrobeItem{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		CustomName:         fields.Name,
		CustomImageURL:     fields.ImageURL,
		CustomCategory:     fields.Category,
		CustomColor:        fields.Color,
		CustomBrand:        fields.Brand,
		IsCustom:           true,
	}
	if err := item.SetTags(tags); err != nil {
		return nil, err
	}
	return item, nil
}

// SetTags replaces the item's tag set
func (w *WardrobeItem) SetTags(tags []string) error {
	if tags == nil {
		w.Tags = ""
		return nil
	}
	data, err := json.Marshal(dedupe(tags))
	if err != nil {
		return shared.NewDomainError("INVALID_TAGS", "Tags cannot be encoded")
	}
	w.Tags = string(data)
	w.UpdatedAt = time.Now()
	return nil
}

// TagList decodes the stored tag payload. A missing or malformed payload
// yields an empty list, never an error.
func (w *WardrobeItem) TagList() []string {
	if w.Tags == "" {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal([]byte(w.Tags), &tags); err != nil {
		return []string{}
	}
	return tags
}

// IsLinked reports whether the item references a catalog product
func (w *WardrobeItem) IsLinked() bool {
	return w.ProductID != nil
}

func dedupe(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
