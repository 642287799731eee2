package app

import (
	"context"

	"github.com/stonique/storefront/internal/catalog/domain"
)

// ProductSource supplies the raw product list. The HTTP feed client is the
// production implementation; tests use in-memory sources.
type ProductSource interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
}
