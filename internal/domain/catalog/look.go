package catalog

import (
	"github.com/google/uuid"
	"github.com/ponsiv/backend/internal/domain/shared"
)

// Look is an editorially curated set of products presented as one styled
// image, e.g. on the explore screen. Membership lives in look_products rows.
type Look struct {
	shared.BaseAggregateRoot
	Title        string `gorm:"type:varchar(200);not null"`
	AuthorName   string `gorm:"type:varchar(100);not null"`
	AuthorAvatar string `gorm:"type:varchar(500)"`
	CoverImage   string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (Look) TableName() string {
	return "looks"
}

// LookProduct links a look to one of its member products. Position keeps
// the editorial ordering stable.
type LookProduct struct {
	shared.BaseEntity
	LookID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Position  int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (LookProduct) TableName() string {
	return "look_products"
}

// NewLookProduct creates a membership row
func NewLookProduct(lookID, productID uuid.UUID, position int) LookProduct {
	return LookProduct{
		BaseEntity: shared.NewBaseEntity(),
		LookID:     lookID,
		ProductID:  productID,
		Position:   position,
	}
}

// NewLook creates a new look
func NewLook(title, authorName string) (*Look, error) {
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Look title cannot be empty")
	}
	if authorName == "" {
		return nil, shared.NewDomainError("INVALID_AUTHOR", "Look author cannot be empty")
	}
	return &Look{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
		AuthorName:        authorName,
	}, nil
}
