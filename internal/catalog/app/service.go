package app

import (
	"context"
	"errors"
	"sync"

	"github.com/stonique/storefront/internal/catalog/domain"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("catalog unavailable")
)

// Service wraps a ProductSource and serves the filtered views the shop
// renders. The last successful fetch is kept so a flaky feed degrades to
// slightly stale data instead of an empty page.
type Service struct {
	source ProductSource

	mu     sync.RWMutex
	cached []domain.Product
}

func NewService(source ProductSource) *Service {
	return &Service{source: source}
}

// Products returns the current product list, falling back to the cached
// copy when the source fails. ErrUnavailable is returned only when no data
// has ever been fetched.
func (s *Service) Products(ctx context.Context) ([]domain.Product, error) {
	products, err := s.source.ListProducts(ctx)
	if err != nil {
		s.mu.RLock()
		cached := s.cached
		s.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}
		return nil, ErrUnavailable
	}

	s.mu.Lock()
	s.cached = products
	s.mu.Unlock()
	return products, nil
}

// Filtered evaluates spec against the current product list.
func (s *Service) Filtered(ctx context.Context, spec FilterSpec) ([]domain.Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	return ApplyFilters(products, spec), nil
}

// Categories returns the distinct categories of the current product list,
// prefixed with the "all" sentinel.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	return DeriveCategories(products), nil
}

// Product looks up a single product by id.
func (s *Service) Product(ctx context.Context, id int) (domain.Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return domain.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrNotFound
}
