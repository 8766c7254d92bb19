package storage

import "context"

// Backend is a key/value medium for whole JSON documents.
// Get returns nil and no error when the key has never been written.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
	Name() string
}
