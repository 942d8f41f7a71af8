package cache

import (
	"context"
	"errors"
	"time"
)

// Client is a typed read-through cache. Values are stored JSON-encoded,
// so T must round-trip through encoding/json.
type Client[T any] interface {
	Get(ctx context.Context, key string) (T, error)
	Set(ctx context.Context, key string, object T, ttl time.Duration) error

	// GetOrSet returns the cached value when present, otherwise runs the
	// callback and stores its result under the key.
	GetOrSet(ctx context.Context, opts GetOrSetOpts[T]) (T, error)
}

var (
	ErrNotExists           = errors.New("cache key not found")
	ErrCallbackNotProvided = errors.New("callback not provided")
	ErrInvalidType         = errors.New("cached value has an unexpected type")
)

type GetOrSetOpts[T any] struct {
	Key      string
	TTL      time.Duration
	Callback func() (T, error)
}
