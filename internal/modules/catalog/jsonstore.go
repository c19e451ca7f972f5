package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"
)

// jsonStore is a Repository backed by a single JSON file: the whole product
// collection is read and rewritten as one blob on every mutation, the same
// shape a browser demo keeps under one local-storage key. Good for demos and
// tests, not for concurrent processes sharing the file.
type jsonStore struct {
	mu   sync.Mutex
	path string
}

// NewJSONStore returns a file-backed Repository. The file is created on the
// first write; a missing file reads as an empty catalog.
func NewJSONStore(path string) Repository {
	return &jsonStore{path: path}
}

func (s *jsonStore) load() ([]*Product, error) {
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
	var products []*Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("catalog: corrupt store %s: %w", s.path, err)
	}
	return products, nil
}

func (s *jsonStore) save(products []*Product) error {
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

func (s *jsonStore) Create(ctx context.Context, p *Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load()
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.save(append(products, p))
}

func (s *jsonStore) GetByID(ctx context.Context, id string) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID.String() == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *jsonStore) List(ctx context.Context, category string, activeOnly bool) ([]*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load()
	if err != nil {
		return nil, err
	}
	var out []*Product
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if activeOnly && !p.IsActive {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (s *jsonStore) Update(ctx context.Context, p *Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load()
	if err != nil {
		return err
	}
	for i, existing := range products {
		if existing.ID == p.ID {
			cp := *p
			cp.CreatedAt = existing.CreatedAt
			cp.UpdatedAt = time.Now().UTC()
			products[i] = &cp
			return s.save(products)
		}
	}
	return ErrNotFound
}

func (s *jsonStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load()
	if err != nil {
		return err
	}
	for i, p := range products {
		if p.ID.String() == id {
			products = append(products[:i], products[i+1:]...)
			return s.save(products)
		}
	}
	return ErrNotFound
}
