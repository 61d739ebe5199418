package catalog

import (
	"github.com/ponsiv/backend/internal/domain/shared"
)

// Brand represents a fashion brand referenced by catalog products
type Brand struct {
	shared.BaseAggregateRoot
	Name    string `gorm:"type:varchar(100);not null;uniqueIndex"`
	LogoURL string `gorm:"type:varchar(500)"`
	Active  bool   `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (Brand) TableName() string {
	return "brands"
}

// NewBrand creates a new brand
func NewBrand(name string) (*Brand, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Brand name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Brand name cannot exceed 100 characters")
	}
	return &Brand{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Active:            true,
	}, nil
}

// Category represents a product category (e.g. "Tops", "Shoes")
type Category struct {
	shared.BaseAggregateRoot
	Name     string `gorm:"type:varchar(100);not null;uniqueIndex"`
	IconName string `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new category
func NewCategory(name, iconName string) (*Category, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	return &Category{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		IconName:          iconName,
	}, nil
}
