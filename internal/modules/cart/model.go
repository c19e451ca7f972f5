package cart

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Item is a single line in a shopping cart. The product name and unit price
// are snapshotted at add time, so later catalog edits do not rewrite carts.
type Item struct {
	ID        uuid.UUID   `json:"id"`
	CartID    uuid.UUID   `json:"cart_id"`
	ProductID uuid.UUID   `json:"product_id"`
	Name      string      `json:"name"`
	UnitPrice json.Number `json:"unit_price"`
	Quantity  int         `json:"quantity"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Totals summarises a cart for display.
type Totals struct {
	Items    int     `json:"items"`
	Subtotal float64 `json:"subtotal"`
}
