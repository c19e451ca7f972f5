package catalog

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Product is a single storefront catalog entry.
//
// Price is json.Number rather than float64: records round-trip through JSON
// blobs in the file store, and a stored price that is not a valid decimal
// must stay representable so sorting can report it as a bad key instead of
// silently reading it as zero.
type Product struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Category    string      `json:"category"`
	Price       json.Number `json:"price"`
	Currency    string      `json:"currency"`
	SKU         string      `json:"sku,omitempty"`
	ImageURL    string      `json:"image_url,omitempty"`
	IsActive    bool        `json:"is_active"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
