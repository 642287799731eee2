package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stonique/storefront/internal/cart/domain"
)

type fakeSnapshots struct {
	items   []domain.LineItem
	loadErr error
	saves   int
}

func (f *fakeSnapshots) Save(ctx context.Context, items []domain.LineItem) error {
	f.items = items
	f.saves++
	return nil
}

func (f *fakeSnapshots) Load(ctx context.Context) ([]domain.LineItem, error) {
	return f.items, f.loadErr
}

func TestRehydrate(t *testing.T) {
	ctx := context.Background()

	t.Run("restores persisted items", func(t *testing.T) {
		snaps := &fakeSnapshots{items: []domain.LineItem{{ID: 2, Price: 9.5, Quantity: 4}}}
		s := NewService(snaps)
		s.Rehydrate(ctx)

		if got := s.TotalItems(); got != 4 {
			t.Fatalf("expected 4 items after rehydrate, got %d", got)
		}
	})

	t.Run("load failure leaves cart empty", func(t *testing.T) {
		snaps := &fakeSnapshots{loadErr: errors.New("boom")}
		s := NewService(snaps)
		s.Rehydrate(ctx)

		if got := len(s.Items()); got != 0 {
			t.Fatalf("expected empty cart, got %d lines", got)
		}
	})

	t.Run("mutations persist snapshots", func(t *testing.T) {
		snaps := &fakeSnapshots{}
		s := NewService(snaps)

		s.AddProduct(ctx, product(1, 10))
		s.SetQuantity(ctx, 1, 3)
		s.Clear(ctx)

		if snaps.saves != 3 {
			t.Fatalf("expected 3 snapshot writes, got %d", snaps.saves)
		}
		if len(snaps.items) != 0 {
			t.Fatalf("expected final snapshot empty, got %+v", snaps.items)
		}
	})
}
