package cart

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a cart line does not exist.
var ErrNotFound = errors.New("cart: item not found")

// Repository defines data access for cart lines.
type Repository interface {
	AddItem(ctx context.Context, item *Item) error
	GetItem(ctx context.Context, cartID, itemID string) (*Item, error)

	// GetItemByProduct finds the line for a product already in the cart, so
	// adds can merge into it. Returns ErrNotFound when absent.
	GetItemByProduct(ctx context.Context, cartID, productID string) (*Item, error)

	ListItems(ctx context.Context, cartID string) ([]*Item, error)
	UpdateQuantity(ctx context.Context, cartID, itemID string, quantity int) error
	RemoveItem(ctx context.Context, cartID, itemID string) error
	Clear(ctx context.Context, cartID string) error
}
