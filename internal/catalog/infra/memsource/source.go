package memsource

import (
	"context"

	"github.com/stonique/storefront/internal/catalog/domain"
)

// Source serves a fixed product list from memory. It backs tests and the
// offline development mode.
type Source struct {
	products []domain.Product
}

func New(products []domain.Product) *Source {
	return &Source{products: products}
}

func (s *Source) ListProducts(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}
