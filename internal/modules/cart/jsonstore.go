package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"
)

// jsonStore keeps every cart's lines in one JSON file, rewritten whole on
// each mutation, mirroring the single local-storage blob of a browser cart.
type jsonStore struct {
	mu   sync.Mutex
	path string
}

// NewJSONStore returns a file-backed Repository. A missing file reads as no
// carts.
func NewJSONStore(path string) Repository {
	return &jsonStore{path: path}
}

func (s *jsonStore) load() ([]*Item, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	var items []*Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("cart: corrupt store %s: %w", s.path, err)
	}
	return items, nil
}

func (s *jsonStore) save(items []*Item) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

func (s *jsonStore) AddItem(ctx context.Context, item *Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	return s.save(append(items, item))
}

func (s *jsonStore) GetItem(ctx context.Context, cartID, itemID string) (*Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.CartID.String() == cartID && item.ID.String() == itemID {
			cp := *item
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *jsonStore) GetItemByProduct(ctx context.Context, cartID, productID string) (*Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.CartID.String() == cartID && item.ProductID.String() == productID {
			cp := *item
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *jsonStore) ListItems(ctx context.Context, cartID string) ([]*Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return nil, err
	}
	var out []*Item
	for _, item := range items {
		if item.CartID.String() == cartID {
			cp := *item
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *jsonStore) UpdateQuantity(ctx context.Context, cartID, itemID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}
	for _, item := range items {
		if item.CartID.String() == cartID && item.ID.String() == itemID {
			item.Quantity = quantity
			item.UpdatedAt = time.Now().UTC()
			return s.save(items)
		}
	}
	return ErrNotFound
}

func (s *jsonStore) RemoveItem(ctx context.Context, cartID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}
	for i, item := range items {
		if item.CartID.String() == cartID && item.ID.String() == itemID {
			items = append(items[:i], items[i+1:]...)
			return s.save(items)
		}
	}
	return ErrNotFound
}

func (s *jsonStore) Clear(ctx context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, item := range items {
		if item.CartID.String() != cartID {
			kept = append(kept, item)
		}
	}
	return s.save(kept)
}
