package app

import "context"

// StateStore is the key-value persistence boundary for the session's auth
// flag, user snapshot and theme preference.
type StateStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
