package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// ErrValidation wraps field-level problems with a create/update request.
var ErrValidation = errors.New("catalog: invalid product")

// Service defines catalog business logic.
type Service interface {
	CreateProduct(ctx context.Context, req ProductRequest) (*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context, category string, activeOnly bool) ([]*Product, error)
	ListProductsSorted(ctx context.Context, category string, activeOnly bool, key SortKey) ([]Product, error)
	UpdateProduct(ctx context.Context, id string, req ProductRequest) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// ProductRequest holds the data for creating or updating a product.
type ProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	Currency    string `json:"currency"`
	SKU         string `json:"sku"`
	ImageURL    string `json:"image_url"`
}

type service struct {
	repo      Repository
	collation language.Tag
}

// NewService creates a new catalog service. The collation tag controls how
// name-sorted listings order text.
func NewService(repo Repository, collation language.Tag) Service {
	return &service{repo: repo, collation: collation}
}

func (s *service) validate(req ProductRequest) (price string, err error) {
	if strings.TrimSpace(req.Name) == "" {
		return "", fmt.Errorf("%w: name is required", ErrValidation)
	}
	price = strings.TrimSpace(req.Price)
	if price == "" {
		return "", fmt.Errorf("%w: price is required", ErrValidation)
	}
	n, err := strconv.ParseFloat(price, 64)
	if err != nil {
		return "", fmt.Errorf("%w: price %q is not a number", ErrValidation, req.Price)
	}
	if n < 0 {
		return "", fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	return price, nil
}

func (s *service) CreateProduct(ctx context.Context, req ProductRequest) (*Product, error) {
	price, err := s.validate(req)
	if err != nil {
		return nil, err
	}
	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}
	p := &Product{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       json.Number(price),
		Currency:    currency,
		SKU:         req.SKU,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListProducts(ctx context.Context, category string, activeOnly bool) ([]*Product, error) {
	return s.repo.List(ctx, category, activeOnly)
}

func (s *service) ListProductsSorted(ctx context.Context, category string, activeOnly bool, key SortKey) ([]Product, error) {
	items, err := s.repo.List(ctx, category, activeOnly)
	if err != nil {
		return nil, err
	}
	// Copy out of the repository's records before sorting so the sorted view
	// never aliases what the store handed back.
	products := make([]Product, 0, len(items))
	for _, p := range items {
		products = append(products, *p)
	}
	return SortProducts(products, key, s.collation)
}

func (s *service) UpdateProduct(ctx context.Context, id string, req ProductRequest) (*Product, error) {
	price, err := s.validate(req)
	if err != nil {
		return nil, err
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Name = req.Name
	p.Description = req.Description
	p.Category = req.Category
	p.Price = json.Number(price)
	if req.Currency != "" {
		p.Currency = req.Currency
	}
	p.SKU = req.SKU
	p.ImageURL = req.ImageURL
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
