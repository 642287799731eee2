package kv

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	t.Run("missing key -> ErrNotFound", func(t *testing.T) {
		_, err := s.Get(ctx, "nope")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("set then get", func(t *testing.T) {
		if err := s.Set(ctx, "theme", "dark"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		v, err := s.Get(ctx, "theme")
		if err != nil || v != "dark" {
			t.Fatalf("expected dark, got %q err %v", v, err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		_ = s.Set(ctx, "k", "v")
		if err := s.Delete(ctx, "k"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := s.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound after delete, got %v", err)
		}
	})

	t.Run("delete missing is a no-op", func(t *testing.T) {
		if err := s.Delete(ctx, "never-set"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}

func TestPrefixed(t *testing.T) {
	ctx := context.Background()
	backing := NewMemoryStore()

	a := NewPrefixed(backing, "session:a:")
	b := NewPrefixed(backing, "session:b:")

	if err := a.Set(ctx, "cart", "[1]"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if _, err := b.Get(ctx, "cart"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected namespaces isolated, got %v", err)
	}

	v, err := a.Get(ctx, "cart")
	if err != nil || v != "[1]" {
		t.Fatalf("expected [1], got %q err %v", v, err)
	}

	raw, err := backing.Get(ctx, "session:a:cart")
	if err != nil || raw != "[1]" {
		t.Fatalf("expected prefixed key in backing store, got %q err %v", raw, err)
	}

	if err := a.Delete(ctx, "cart"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := a.Get(ctx, "cart"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
