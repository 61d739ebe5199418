package commerce

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ponsiv/backend/internal/domain/catalog"
	"github.com/ponsiv/backend/internal/domain/commerce"
	"github.com/ponsiv/backend/internal/domain/shared"
	"github.com/ponsiv/backend/internal/domain/shared/valueobject"
)

// Service handles cart and order operations
type Service struct {
	cartRepo    commerce.CartRepository
	orderRepo   commerce.OrderRepository
	productRepo catalog.ProductRepository
}

// NewService creates a new commerce Service
func NewService(cartRepo commerce.CartRepository, orderRepo commerce.OrderRepository, productRepo catalog.ProductRepository) *Service {
	return &Service{cartRepo: cartRepo, orderRepo: orderRepo, productRepo: productRepo}
}

// GetCart returns the user's cart with product details and running total
func (s *Service) GetCart(ctx context.Context, userID string) (*CartResponse, error) {
	items, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.buildCartResponse(ctx, items)
}

// AddItem puts one unit of a product into the cart. The same product in the
// same size increments the existing line instead of adding a new one.
func (s *Service) AddItem(ctx context.Context, userID string, req AddCartItemRequest) (*CartResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_PRODUCT", "Product not found")
		}
		return nil, err
	}
	if req.Size != "" && !product.HasSize(req.Size) {
		return nil, shared.NewDomainError("INVALID_SIZE", "Product is not available in this size")
	}

	line, err := s.cartRepo.FindLine(ctx, userID, req.ProductID, req.Size)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if line != nil {
		line.Increment()
	} else {
		price, perr := valueobject.NewMoney(product.Price, valueobject.DefaultCurrency)
		if perr != nil {
			return nil, perr
		}
		line, err = commerce.NewCartItem(userID, req.ProductID, req.Size, price)
		if err != nil {
			return nil, err
		}
	}
	if err := s.cartRepo.Save(ctx, line); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userID)
}

// UpdateItemQuantity replaces a line's quantity. Zero and negative
// quantities are rejected; removal is its own endpoint.
func (s *Service) UpdateItemQuantity(ctx context.Context, userID string, lineID uuid.UUID, req UpdateCartItemRequest) (*CartResponse, error) {
	line, err := s.cartRepo.FindLineByID(ctx, userID, lineID)
	if err != nil {
		return nil, err
	}
	if err := line.SetQuantity(req.Quantity); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, line); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userID)
}

// RemoveItem deletes a cart line. Removing an absent line is a no-op.
func (s *Service) RemoveItem(ctx context.Context, userID string, lineID uuid.UUID) (*CartResponse, error) {
	if err := s.cartRepo.Delete(ctx, userID, lineID); err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	return s.GetCart(ctx, userID)
}

// Checkout converts every cart line into an order snapshot and clears the
// cart, all inside one transaction. An empty cart is rejected.
func (s *Service) Checkout(ctx context.Context, userID string) (*CheckoutResponse, error) {
	orders, err := s.orderRepo.Checkout(ctx, userID, func(items []commerce.CartItem, nextOrderNumber int) ([]*commerce.Order, error) {
		if len(items) == 0 {
			return nil, shared.NewDomainError("EMPTY_CART", "Cart is empty")
		}

		ids := make([]uuid.UUID, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.ProductID)
		}
		products, err := s.productRepo.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		snapshots := make(map[uuid.UUID]commerce.OrderSnapshot, len(products))
		for _, p := range products {
			snapshot := commerce.OrderSnapshot{
				ProductID: p.ID,
				Title:     p.Title,
				BrandName: p.BrandName,
			}
			if images := p.ImageList(); len(images) > 0 {
				snapshot.ImageURL = images[0]
			}
			snapshots[p.ID] = snapshot
		}

		out := make([]*commerce.Order, 0, len(items))
		for i, item := range items {
			snapshot, ok := snapshots[item.ProductID]
			if !ok {
				return nil, shared.NewDomainError("INVALID_PRODUCT", "A cart item references a product that no longer exists")
			}
			order, err := commerce.NewOrder(item, snapshot, nextOrderNumber+i)
			if err != nil {
				return nil, err
			}
			out = append(out, order)
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return &CheckoutResponse{Orders: toOrderResponses(orders)}, nil
}

// ListOrders returns the user's order history, newest first
func (s *Service) ListOrders(ctx context.Context, userID string) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

func (s *Service) buildCartResponse(ctx context.Context, items []commerce.CartItem) (*CartResponse, error) {
	resp := &CartResponse{
		Items:    make([]CartItemResponse, 0, len(items)),
		Currency: string(valueobject.DefaultCurrency),
	}

	var details map[uuid.UUID]catalog.FeedProduct
	if len(items) > 0 {
		ids := make([]uuid.UUID, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.ProductID)
		}
		products, err := s.productRepo.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		details = make(map[uuid.UUID]catalog.FeedProduct, len(products))
		for _, p := range products {
			details[p.ID] = p
		}
	}

	for _, item := range items {
		line := CartItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Size:      item.Size,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.StringFixed(2),
			LineTotal: item.LineTotal().StringFixed(2),
			Currency:  item.Currency,
		}
		if p, ok := details[item.ProductID]; ok {
			line.Title = p.Title
			line.Brand = p.BrandName
			if images := p.ImageList(); len(images) > 0 {
				line.ImageURL = images[0]
			}
		}
		resp.Items = append(resp.Items, line)
	}
	resp.Total = commerce.CartTotal(items).StringFixed(2)
	return resp, nil
}
