package kv

import "context"

// Prefixed namespaces every key of a wrapped store. Sessions use it to keep
// their state apart in a shared backend.
type Prefixed struct {
	store  Store
	prefix string
}

func NewPrefixed(store Store, prefix string) *Prefixed {
	return &Prefixed{store: store, prefix: prefix}
}

func (p *Prefixed) Get(ctx context.Context, key string) (string, error) {
	return p.store.Get(ctx, p.prefix+key)
}

func (p *Prefixed) Set(ctx context.Context, key, value string) error {
	return p.store.Set(ctx, p.prefix+key, value)
}

func (p *Prefixed) Delete(ctx context.Context, key string) error {
	return p.store.Delete(ctx, p.prefix+key)
}
