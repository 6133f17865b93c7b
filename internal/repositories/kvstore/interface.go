// Package kvstore implements the persistent key-value store backing the
// history ledger, the saved-codes catalog and the scan quota. Values are
// opaque byte blobs keyed by string; each component owns its own key.
package kvstore

import (
	"context"
)

// Store describes the byte-oriented key-value contract. Get returns
// (nil, nil) when the key is absent; absence is not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
