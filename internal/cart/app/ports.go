package app

import (
	"context"

	"github.com/stonique/storefront/internal/cart/domain"
)

// SnapshotStore persists the cart between sessions. Load returns nil items
// (not an error) when no usable snapshot exists.
type SnapshotStore interface {
	Save(ctx context.Context, items []domain.LineItem) error
	Load(ctx context.Context) ([]domain.LineItem, error)
}
