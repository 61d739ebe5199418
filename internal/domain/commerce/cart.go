package commerce

import (
	"github.com/google/uuid"
	"github.com/ponsiv/backend/internal/domain/shared"
	"github.com/ponsiv/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// CartItem is one line of a user's cart, keyed by product and size.
// Adding the same product in the same size increments the existing line.
type CartItem struct {
	shared.BaseEntity
	UserID    string          `gorm:"type:varchar(64);not null;uniqueIndex:idx_cart_line,priority:1"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_line,priority:2"`
	Size      string          `gorm:"type:varchar(50);not null;default:'';uniqueIndex:idx_cart_line,priority:3"`
	Quantity  int             `gorm:"not null;default:1"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Currency  string          `gorm:"type:varchar(3);not null;default:'EUR'"`
}

// TableName returns the table name for GORM
func (CartItem) TableName() string {
	return "cart_items"
}

// NewCartItem creates a cart line with quantity 1
func NewCartItem(userID string, productID uuid.UUID, size string, unitPrice valueobject.Money) (*CartItem, error) {
	if userID == "" {
		return nil, shared.ErrUnauthorized
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID is required")
	}
	return &CartItem{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		ProductID:  productID,
		Size:       size,
		Quantity:   1,
		UnitPrice:  unitPrice.Amount(),
		Currency:   string(unitPrice.Currency()),
	}, nil
}

// Increment raises the line quantity by one
func (c *CartItem) Increment() {
	c.Quantity++
}

// SetQuantity replaces the line quantity. Quantities below one are
// rejected; removal is a separate operation.
func (c *CartItem) SetQuantity(quantity int) error {
	if quantity < 1 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	c.Quantity = quantity
	return nil
}

// LineTotal returns unit price multiplied by quantity
func (c *CartItem) LineTotal() valueobject.Money {
	price, err := valueobject.NewMoney(c.UnitPrice, valueobject.Currency(c.Currency))
	if err != nil {
		price = valueobject.ZeroEUR()
	}
	return price.MultiplyByInt(int64(c.Quantity))
}

// CartTotal sums the line totals of the given items
func CartTotal(items []CartItem) valueobject.Money {
	total := valueobject.ZeroEUR()
	for i := range items {
		total = total.MustAdd(items[i].LineTotal())
	}
	return total
}
