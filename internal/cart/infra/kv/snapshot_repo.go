package kv

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/stonique/storefront/internal/cart/domain"
	kvstore "github.com/stonique/storefront/pkg/kv"
)

// DefaultKey is the key the cart snapshot lives under within a session's
// namespace.
const DefaultKey = "cart"

// SnapshotRepo serializes cart items as JSON into a key-value store.
type SnapshotRepo struct {
	store kvstore.Store
	key   string
}

func NewSnapshotRepo(store kvstore.Store, key string) *SnapshotRepo {
	if key == "" {
		key = DefaultKey
	}
	return &SnapshotRepo{store: store, key: key}
}

func (r *SnapshotRepo) Save(ctx context.Context, items []domain.LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, r.key, string(data))
}

// Load returns the persisted items. A missing key or a snapshot that no
// longer parses both yield nil items with no error, so the cart starts
// empty instead of failing.
func (r *SnapshotRepo) Load(ctx context.Context) ([]domain.LineItem, error) {
	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var items []domain.LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, nil
	}
	return items, nil
}
