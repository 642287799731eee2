package adapter

import (
	"context"

	cartapp "github.com/stonique/storefront/internal/cart/app"
	checkoutapp "github.com/stonique/storefront/internal/checkout/app"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) Items(ctx context.Context) ([]checkoutapp.CartItem, error) {
	lines := r.svc.Items()

	items := make([]checkoutapp.CartItem, 0, len(lines))
	for _, it := range lines {
		items = append(items, checkoutapp.CartItem{
			ProductID: it.ID,
			Quantity:  it.Quantity,
		})
	}
	return items, nil
}
