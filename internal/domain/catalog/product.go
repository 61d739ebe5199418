package catalog

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/ponsiv/backend/internal/domain/shared"
	"github.com/ponsiv/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Product represents a catalog product (a garment or accessory).
// Catalog rows are seeded by an external catalog-management process; the
// application only reads them, so the aggregate carries validation factories
// but no lifecycle workflow beyond the active flag.
type Product struct {
	shared.BaseAggregateRoot
	BrandID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index"`
	Title       string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Images      string          `gorm:"type:jsonb"` // JSON array of image URLs
	Sizes       string          `gorm:"type:jsonb"` // JSON array of size labels
	Color       string          `gorm:"type:varchar(50)"`
	Stock       int             `gorm:"not null;default:0"`
	CheckoutURL string          `gorm:"type:varchar(500)"`
	Active      bool            `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(brandID uuid.UUID, title string, price decimal.Decimal) (*Product, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		BrandID:           brandID,
		Title:             title,
		Price:             price,
		Images:            "[]",
		Sizes:             "[]",
		Active:            true,
	}, nil
}

// PriceMoney returns the price as a Money value object
func (p *Product) PriceMoney() valueobject.Money {
	return valueobject.NewMoneyEUR(p.Price)
}

// ImageList decodes the stored image URL array.
// A malformed payload yields an empty list rather than an error.
func (p *Product) ImageList() []string {
	return decodeStringList(p.Images)
}

// SizeList decodes the stored size label array
func (p *Product) SizeList() []string {
	return decodeStringList(p.Sizes)
}

// HasSize reports whether size is one of the product's available sizes.
// Products with no declared sizes accept any size.
func (p *Product) HasSize(size string) bool {
	sizes := p.SizeList()
	if len(sizes) == 0 {
		return true
	}
	for _, s := range sizes {
		if s == size {
			return true
		}
	}
	return false
}

// SetImages replaces the stored image URL list
func (p *Product) SetImages(urls []string) error {
	encoded, err := encodeStringList(urls)
	if err != nil {
		return err
	}
	p.Images = encoded
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// SetSizes replaces the stored size label list
func (p *Product) SetSizes(sizes []string) error {
	encoded, err := encodeStringList(sizes)
	if err != nil {
		return err
	}
	p.Sizes = encoded
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// SetStock sets the available stock count
func (p *Product) SetStock(stock int) error {
	if stock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}
	p.Stock = stock
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// IsActive returns true if the product is visible in the feed
func (p *Product) IsActive() bool {
	return p.Active
}

func validateTitle(title string) error {
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Product title cannot be empty")
	}
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Product title cannot exceed 200 characters")
	}
	return nil
}

func decodeStringList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return []string{}
	}
	return out
}

func encodeStringList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", shared.NewDomainError("INVALID_LIST", "List cannot be encoded")
	}
	return string(data), nil
}
