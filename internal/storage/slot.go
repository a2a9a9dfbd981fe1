// Package storage mirrors the task list into a durable key-value slot.
package storage

import (
	"context"
	"errors"
)

// DefaultKey is the slot key the task list is stored under.
const DefaultKey = "todos"

// ErrInvalidKey is returned by backends for keys they cannot store.
var ErrInvalidKey = errors.New("invalid slot key")

// Slot is a durable key-value store holding opaque bytes per key.
// Backends live under internal/backend.
type Slot interface {
	// Get returns the bytes stored under key. ok is false if nothing is stored.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Put overwrites the bytes stored under key.
	Put(ctx context.Context, key string, data []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
