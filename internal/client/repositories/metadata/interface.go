// Package metadata is the client's durable key/value storage. The session
// token lives here under common.TokenMetadataKey.
package metadata

import (
	"context"
)

// Repository is a small key/value store. Get of a missing key returns
// (nil, nil) and Delete of a missing key is a no-op. List never returns a
// nil map.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
