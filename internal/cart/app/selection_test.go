package app

import (
	"context"
	"testing"
)

func TestSelection(t *testing.T) {
	ctx := context.Background()

	t.Run("toggle flips state", func(t *testing.T) {
		sel := NewSelection()

		sel.Toggle(1)
		if !sel.Selected(1) {
			t.Fatal("expected 1 selected")
		}
		sel.Toggle(1)
		if sel.Selected(1) {
			t.Fatal("expected 1 deselected")
		}
	})

	t.Run("select all then none", func(t *testing.T) {
		s := NewService(nil)
		s.AddProduct(ctx, product(1, 10))
		s.AddProduct(ctx, product(2, 10))

		sel := NewSelection()
		sel.SelectAll(s.Items())
		if got := sel.IDs(); len(got) != 2 {
			t.Fatalf("expected 2 selected, got %v", got)
		}

		sel.Clear()
		if got := sel.IDs(); len(got) != 0 {
			t.Fatalf("expected none selected, got %v", got)
		}
	})

	t.Run("bulk remove drops only selected lines", func(t *testing.T) {
		s := NewService(nil)
		s.AddProduct(ctx, product(1, 10))
		s.AddProduct(ctx, product(2, 10))
		s.AddProduct(ctx, product(3, 10))

		sel := NewSelection()
		sel.Toggle(1)
		sel.Toggle(3)

		sel.RemoveSelected(ctx, s)

		items := s.Items()
		if len(items) != 1 || items[0].ID != 2 {
			t.Fatalf("expected only line 2 left, got %+v", items)
		}
		if got := sel.IDs(); len(got) != 0 {
			t.Fatalf("expected empty selection after bulk remove, got %v", got)
		}
	})

	t.Run("bulk remove with empty selection is a no-op", func(t *testing.T) {
		s := NewService(nil)
		s.AddProduct(ctx, product(1, 10))

		NewSelection().RemoveSelected(ctx, s)

		if got := len(s.Items()); got != 1 {
			t.Fatalf("expected untouched cart, got %d lines", got)
		}
	})
}
