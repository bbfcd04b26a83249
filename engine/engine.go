// Package engine defines the storage contract behind the in-process
// backend kinds (embedded databases and clients of remote key-value
// services) and the helpers they share.
package engine

import (
	"context"
	"errors"
	"time"

	"github.com/kvbrowse/kvcore/kv"
)

var (
	// ErrNotFound is returned when a key does not exist.
	ErrNotFound = errors.New("key not found")
	// ErrTTLNotSupported is returned by engines that cannot expire keys.
	ErrTTLNotSupported = errors.New("ttl is not supported by this engine")
	// ErrClosed is returned by operations on a closed engine.
	ErrClosed = errors.New("engine is closed")
)

// Engine is a key-value store the loopback transport serves.
type Engine interface {
	// Get returns the value of key or ErrNotFound.
	Get(ctx context.Context, key []byte) ([]byte, error)
	// Set stores value under key and clears any expiration.
	Set(ctx context.Context, key, value []byte) error
	// Delete removes key and reports whether it existed.
	Delete(ctx context.Context, key []byte) (bool, error)
	// Rename moves the value of key to newKey, or returns ErrNotFound.
	Rename(ctx context.Context, key, newKey []byte) error
	// Keys calls fn for every live key in ascending order until fn
	// returns false.
	Keys(ctx context.Context, fn func(key []byte) bool) error
	// TTL returns the expiration of key, or ErrNotFound.
	TTL(ctx context.Context, key []byte) (kv.TTL, error)
	// Expire sets the time to live of key, or returns ErrNotFound.
	Expire(ctx context.Context, key []byte, ttl time.Duration) error
	// Count returns the number of live keys.
	Count(ctx context.Context) (int64, error)
	// Info describes the engine as flat key/value pairs.
	Info(ctx context.Context) (map[string]string, error)
	// Close releases the engine.
	Close() error
}

// maxPagePrealloc caps the capacity reserved for a page; the limit comes
// from the client.
const maxPagePrealloc = 1024

// Page returns up to limit keys matching pattern, skipping the first
// cursor matches. The next cursor is 0 once the key space is exhausted.
func Page(ctx context.Context, e Engine, cursor uint64, pattern string, limit int) (uint64, [][]byte, error) {
	if limit <= 0 {
		limit = 10
	}

	var (
		matched uint64
		keys    = make([][]byte, 0, min(limit, maxPagePrealloc))
		more    bool
	)

	err := e.Keys(ctx, func(key []byte) bool {
		if !Match(pattern, key) {
			return true
		}

		matched++
		if matched <= cursor {
			return true
		}

		if len(keys) == limit {
			more = true
			return false
		}

		keys = append(keys, append([]byte(nil), key...))

		return true
	})
	if err != nil {
		return 0, nil, err
	}

	if !more {
		return 0, keys, nil
	}

	return cursor + uint64(len(keys)), keys, nil
}

// Count counts the keys of e by iterating them. Engines without a cheaper
// way to count use it.
func Count(ctx context.Context, e Engine) (int64, error) {
	var n int64

	err := e.Keys(ctx, func([]byte) bool {
		n++
		return true
	})
	if err != nil {
		return 0, err
	}

	return n, nil
}
