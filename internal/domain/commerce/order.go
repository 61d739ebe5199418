package commerce

import (
	"time"

	"github.com/google/uuid"
	"github.com/ponsiv/backend/internal/domain/shared"
	"github.com/ponsiv/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// OrderStatus tracks the fulfillment state of an order
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Order is a per-line purchase snapshot created at checkout. Product
// details are copied so later catalog edits do not rewrite order history.
type Order struct {
	shared.OwnedAggregateRoot
	OrderNumber int             `gorm:"not null"` // sequential per user, unique (user_id, order_number)
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title       string          `gorm:"type:varchar(255);not null"`
	BrandName   string          `gorm:"type:varchar(255)"`
	ImageURL    string          `gorm:"type:text"`
	Size        string          `gorm:"type:varchar(50)"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Currency    string          `gorm:"type:varchar(3);not null;default:'EUR'"`
	Status      OrderStatus     `gorm:"type:varchar(20);not null;default:'processing'"`
	PlacedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// OrderSnapshot carries the product details frozen into an order line
type OrderSnapshot struct {
	ProductID uuid.UUID
	Title     string
	BrandName string
	ImageURL  string
}

// NewOrder creates an order line from a cart line and its product snapshot.
// orderNumber is sequential per user and must be assigned by the caller
// inside the checkout transaction.
func NewOrder(item CartItem, snapshot OrderSnapshot, orderNumber int) (*Order, error) {
	if item.UserID == "" {
		return nil, shared.ErrUnauthorized
	}
	if snapshot.Title == "" {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order title is required")
	}
	if orderNumber < 1 {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order number must be positive")
	}
	return &Order{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(item.UserID),
		OrderNumber:        orderNumber,
		ProductID:          snapshot.ProductID,
		Title:              snapshot.Title,
		BrandName:          snapshot.BrandName,
		ImageURL:           snapshot.ImageURL,
		Size:               item.Size,
		Quantity:           item.Quantity,
		UnitPrice:          item.UnitPrice,
		Currency:           item.Currency,
		Status:             OrderStatusProcessing,
		PlacedAt:           time.Now(),
	}, nil
}

// Total returns unit price multiplied by quantity
func (o *Order) Total() valueobject.Money {
	price, err := valueobject.NewMoney(o.UnitPrice, valueobject.Currency(o.Currency))
	if err != nil {
		price = valueobject.ZeroEUR()
	}
	return price.MultiplyByInt(int64(o.Quantity))
}
