package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kiranakart/kirana-backend/internal/modules/catalog"
)

// ErrValidation wraps problems with a cart request.
var ErrValidation = errors.New("cart: invalid request")

// Service defines cart business logic.
type Service interface {
	AddItem(ctx context.Context, cartID, productID string, quantity int) (*Item, error)
	ListItems(ctx context.Context, cartID string) ([]*Item, error)
	UpdateQuantity(ctx context.Context, cartID, itemID string, quantity int) (*Item, error)
	RemoveItem(ctx context.Context, cartID, itemID string) error
	Clear(ctx context.Context, cartID string) error
	CartTotals(ctx context.Context, cartID string) (*Totals, error)
}

type service struct {
	repo    Repository
	catalog catalog.Service
}

// NewService creates a cart service. The catalog service supplies the product
// snapshot for new lines.
func NewService(repo Repository, catalogSvc catalog.Service) Service {
	return &service{repo: repo, catalog: catalogSvc}
}

func (s *service) AddItem(ctx context.Context, cartID, productID string, quantity int) (*Item, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}
	cid, err := uuid.Parse(cartID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad cart id", ErrValidation)
	}

	// Adding a product already in the cart bumps its quantity instead of
	// growing a duplicate line.
	if existing, err := s.repo.GetItemByProduct(ctx, cartID, productID); err == nil {
		return s.UpdateQuantity(ctx, cartID, existing.ID.String(), existing.Quantity+quantity)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	p, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	item := &Item{
		ID:        uuid.New(),
		CartID:    cid,
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  quantity,
	}
	if err := s.repo.AddItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) ListItems(ctx context.Context, cartID string) ([]*Item, error) {
	return s.repo.ListItems(ctx, cartID)
}

func (s *service) UpdateQuantity(ctx context.Context, cartID, itemID string, quantity int) (*Item, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}
	if err := s.repo.UpdateQuantity(ctx, cartID, itemID, quantity); err != nil {
		return nil, err
	}
	return s.repo.GetItem(ctx, cartID, itemID)
}

func (s *service) RemoveItem(ctx context.Context, cartID, itemID string) error {
	return s.repo.RemoveItem(ctx, cartID, itemID)
}

func (s *service) Clear(ctx context.Context, cartID string) error {
	return s.repo.Clear(ctx, cartID)
}

func (s *service) CartTotals(ctx context.Context, cartID string) (*Totals, error) {
	items, err := s.repo.ListItems(ctx, cartID)
	if err != nil {
		return nil, err
	}
	t := &Totals{}
	for _, item := range items {
		price, err := item.UnitPrice.Float64()
		if err != nil {
			return nil, fmt.Errorf("cart: stored price %q is not numeric: %w", item.UnitPrice, err)
		}
		t.Items += item.Quantity
		t.Subtotal += price * float64(item.Quantity)
	}
	return t, nil
}
