// Package state stores small client-side key/value state: the generated
// userId (the localStorage analogue of the browser UI) and the cached
// policy snapshot.
package state

import (
	"context"
)

type Repository interface {
	// Get returns the value for key, or (nil, nil) when absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
