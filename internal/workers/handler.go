package workers

import "context"

// WorkerHandler turns one refresh command into a cacheable value.
// Handle returns the value and the redis key it belongs under.
type WorkerHandler[T any] interface {
	Type() string
	Handle(ctx context.Context, key, value []byte) (*T, string, error)
	TTL() int // cache lifetime in seconds
}
