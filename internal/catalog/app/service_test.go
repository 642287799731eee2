package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stonique/storefront/internal/catalog/domain"
)

type fakeSource struct {
	products []domain.Product
	err      error
}

func (f *fakeSource) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return f.products, f.err
}

func TestProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("feed failure with no cache -> unavailable", func(t *testing.T) {
		svc := NewService(&fakeSource{err: errors.New("down")})
		_, err := svc.Products(ctx)
		if !errors.Is(err, ErrUnavailable) {
			t.Fatalf("expected ErrUnavailable, got %v", err)
		}
	})

	t.Run("feed failure falls back to last good fetch", func(t *testing.T) {
		src := &fakeSource{products: fixture}
		svc := NewService(src)

		if _, err := svc.Products(ctx); err != nil {
			t.Fatalf("initial fetch failed: %v", err)
		}

		src.err = errors.New("down")
		got, err := svc.Products(ctx)
		if err != nil {
			t.Fatalf("expected cached fallback, got %v", err)
		}
		if len(got) != len(fixture) {
			t.Fatalf("expected %d cached products, got %d", len(fixture), len(got))
		}
	})
}

func TestProductLookup(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&fakeSource{products: fixture})

	t.Run("found", func(t *testing.T) {
		p, err := svc.Product(ctx, 2)
		if err != nil {
			t.Fatalf("lookup failed: %v", err)
		}
		if p.Category != "b" {
			t.Fatalf("unexpected product %+v", p)
		}
	})

	t.Run("missing -> not found", func(t *testing.T) {
		_, err := svc.Product(ctx, 999)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestFilteredAndCategories(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&fakeSource{products: fixture})

	got, err := svc.Filtered(ctx, FilterSpec{Category: "b"})
	if err != nil {
		t.Fatalf("Filtered failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected only id 2, got %+v", got)
	}

	cats, err := svc.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}
	if len(cats) != 3 || cats[0] != "all" {
		t.Fatalf("unexpected categories %v", cats)
	}
}
