// Package kvstore provides the key-value persistence layer: opaque string
// keys mapped to JSON values, with prefix scans for collection reads.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key does not exist
var ErrKeyNotFound = errors.New("key not found")

// Store is the contract shared by every backend. Exactly one implementation
// is selected at startup from configuration; callers never branch on the
// active backend.
type Store interface {
	// Get returns the JSON value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (json.RawMessage, error)
	// Set stores value (marshaled to JSON) under key, overwriting any
	// previous value. Last write wins on concurrent updates.
	Set(ctx context.Context, key string, value interface{}) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// GetByPrefix returns the values of all keys starting with prefix,
	// in ascending key order.
	GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error)
	// Reset removes every key. Intended for tests and local resets only.
	Reset(ctx context.Context) error
	// Close releases backend resources.
	Close() error
}
