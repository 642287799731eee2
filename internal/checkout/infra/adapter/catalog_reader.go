package adapter

import (
	"context"

	catalogapp "github.com/stonique/storefront/internal/catalog/app"
	checkoutapp "github.com/stonique/storefront/internal/checkout/app"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) Product(ctx context.Context, id int) (checkoutapp.Product, error) {
	p, err := r.svc.Product(ctx, id)
	if err != nil {
		return checkoutapp.Product{}, err
	}

	return checkoutapp.Product{
		ID:    p.ID,
		Title: p.Title,
		Price: p.Price,
	}, nil
}
