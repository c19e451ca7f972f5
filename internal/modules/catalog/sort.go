package catalog

import (
	"fmt"

	"github.com/kiranakart/kirana-backend/internal/sorting"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the product attribute a catalog listing is ordered by.
type SortKey string

const (
	SortByPrice SortKey = "price"
	SortByName  SortKey = "name"
)

// SortProducts returns the products ordered ascending by the given key.
// Products comparing equal under the key keep their input order, and the
// input slice is left untouched.
//
// The price key compares numerically; a product whose stored price does not
// parse as a decimal makes the sort fail with sorting.ErrInvalidKey. The
// name key uses locale-aware collation under tag, so case and diacritics
// order the way users of that locale expect rather than by code point.
func SortProducts(products []Product, key SortKey, tag language.Tag) ([]Product, error) {
	var cmp sorting.Comparator[Product]
	switch key {
	case SortByPrice:
		// Validate every record up front: a lone malformed price must still
		// be reported even though a short sequence never reaches the merge.
		for _, p := range products {
			if _, err := p.Price.Float64(); err != nil {
				return nil, fmt.Errorf("%w: price %q of product %s is not numeric",
					sorting.ErrInvalidKey, p.Price, p.ID)
			}
		}
		cmp = comparePrice
	case SortByName:
		// Collators carry internal buffers and are not safe for concurrent
		// use, so each sort builds its own.
		c := collate.New(tag)
		cmp = func(a, b Product) (int, error) {
			return c.CompareString(a.Name, b.Name), nil
		}
	default:
		return nil, fmt.Errorf("%w: unknown sort key %q", sorting.ErrInvalidKey, key)
	}
	return sorting.Stable(products, cmp)
}

func comparePrice(a, b Product) (int, error) {
	pa, err := a.Price.Float64()
	if err != nil {
		return 0, fmt.Errorf("%w: price %q of product %s is not numeric", sorting.ErrInvalidKey, a.Price, a.ID)
	}
	pb, err := b.Price.Float64()
	if err != nil {
		return 0, fmt.Errorf("%w: price %q of product %s is not numeric", sorting.ErrInvalidKey, b.Price, b.ID)
	}
	switch {
	case pa < pb:
		return -1, nil
	case pa > pb:
		return 1, nil
	default:
		return 0, nil
	}
}
