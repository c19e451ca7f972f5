package catalog

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a product id does not exist in the store.
var ErrNotFound = errors.New("catalog: product not found")

// Repository defines the interface for product data storage.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, category string, activeOnly bool) ([]*Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id string) error
}
