package app

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/stonique/storefront/internal/checkout/domain"
)

type CartReader interface {
	Items(ctx context.Context) ([]CartItem, error)
}

type CartItem struct {
	ProductID int
	Quantity  int
}

type CatalogReader interface {
	Product(ctx context.Context, id int) (Product, error)
}

type Product struct {
	ID    int
	Title string
	Price float64
}

var ErrEmptyCart = errors.New("cart is empty")

// Service prices the cart into an order summary. Product detail is resolved
// through the catalog so the summary reflects current prices, not the ones
// captured when the items were added.
type Service struct {
	cart    CartReader
	catalog CatalogReader

	shipping      float64
	maxConcurrent int
}

func NewService(cart CartReader, catalog CatalogReader, shipping float64, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}
	return &Service{
		cart:          cart,
		catalog:       catalog,
		shipping:      shipping,
		maxConcurrent: maxConcurrent,
	}
}

// Summarize builds the order summary for the current cart. Catalog lookups
// fan out with bounded concurrency; line order follows cart order.
func (s *Service) Summarize(ctx context.Context) (domain.Summary, error) {
	items, err := s.cart.Items(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	if len(items) == 0 {
		return domain.Summary{}, ErrEmptyCart
	}

	lines := make([]domain.Line, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range items {
		g.Go(func() error {
			it := items[idx]
			if it.Quantity <= 0 {
				return fmt.Errorf("quantity must be greater than zero: %d", it.Quantity)
			}

			product, err := s.catalog.Product(ctx, it.ProductID)
			if err != nil {
				return fmt.Errorf("failed to get product %d: %w", it.ProductID, err)
			}

			lines[idx] = domain.Line{
				ProductID: product.ID,
				Title:     product.Title,
				Quantity:  it.Quantity,
				UnitPrice: product.Price,
				LineTotal: round2(product.Price * float64(it.Quantity)),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Summary{}, err
	}

	var subtotal float64
	for _, line := range lines {
		subtotal += line.LineTotal
	}
	subtotal = round2(subtotal)

	return domain.Summary{
		Lines:    lines,
		Subtotal: subtotal,
		Shipping: s.shipping,
		Total:    round2(subtotal + s.shipping),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
