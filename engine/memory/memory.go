// Package memory provides an in-memory engine for demonstration and tests.
package memory

import (
	"bytes"
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/kvbrowse/kvcore/engine"
	"github.com/kvbrowse/kvcore/kv"
)

type record struct {
	value     []byte
	expiresAt time.Time
}

func (r record) expired(now time.Time) bool {
	return !r.expiresAt.IsZero() && !now.Before(r.expiresAt)
}

// Engine is a thread-safe map of keys to values with optional expiration.
type Engine struct {
	mu      sync.RWMutex
	storage map[string]record
	now     func() time.Time
	closed  bool
}

var _ engine.Engine = &Engine{} //nolint:exhaustruct

// New creates an empty engine.
func New() *Engine {
	return NewWithClock(time.Now)
}

// NewWithClock creates an empty engine reading the time from now.
func NewWithClock(now func() time.Time) *Engine {
	return &Engine{
		mu:      sync.RWMutex{},
		storage: make(map[string]record),
		now:     now,
		closed:  false,
	}
}

func (e *Engine) lookup(key []byte) (record, bool) {
	rec, ok := e.storage[string(key)]
	if !ok || rec.expired(e.now()) {
		return record{}, false //nolint:exhaustruct
	}

	return rec, true
}

// Get returns the value of key.
func (e *Engine) Get(_ context.Context, key []byte) ([]byte, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.closed {
		return nil, engine.ErrClosed
	}

	rec, ok := e.lookup(key)
	if !ok {
		return nil, engine.ErrNotFound
	}

	return bytes.Clone(rec.value), nil
}

// Set stores value under key.
func (e *Engine) Set(_ context.Context, key, value []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return engine.ErrClosed
	}

	e.storage[string(key)] = record{value: bytes.Clone(value), expiresAt: time.Time{}}

	return nil
}

// Delete removes key.
func (e *Engine) Delete(_ context.Context, key []byte) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return false, engine.ErrClosed
	}

	_, ok := e.lookup(key)
	delete(e.storage, string(key))

	return ok, nil
}

// Rename moves key to newKey keeping its expiration.
func (e *Engine) Rename(_ context.Context, key, newKey []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return engine.ErrClosed
	}

	rec, ok := e.lookup(key)
	if !ok {
		return engine.ErrNotFound
	}

	delete(e.storage, string(key))
	e.storage[string(newKey)] = rec

	return nil
}

// Keys iterates live keys in ascending order.
func (e *Engine) Keys(ctx context.Context, fn func(key []byte) bool) error {
	e.mu.RLock()

	if e.closed {
		e.mu.RUnlock()
		return engine.ErrClosed
	}

	now := e.now()
	keys := make([]string, 0, len(e.storage))

	for key, rec := range e.storage {
		if !rec.expired(now) {
			keys = append(keys, key)
		}
	}

	e.mu.RUnlock()

	sort.Strings(keys)

	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return err //nolint:wrapcheck
		}

		if !fn([]byte(key)) {
			return nil
		}
	}

	return nil
}

// TTL returns the expiration of key.
func (e *Engine) TTL(_ context.Context, key []byte) (kv.TTL, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.closed {
		return kv.UnknownTTL(), engine.ErrClosed
	}

	rec, ok := e.lookup(key)
	if !ok {
		return kv.Expired(), engine.ErrNotFound
	}

	if rec.expiresAt.IsZero() {
		return kv.NoExpiration(), nil
	}

	return kv.FromDuration(rec.expiresAt.Sub(e.now())), nil
}

// Expire sets the time to live of key. A non-positive ttl deletes it.
func (e *Engine) Expire(_ context.Context, key []byte, ttl time.Duration) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return engine.ErrClosed
	}

	rec, ok := e.lookup(key)
	if !ok {
		return engine.ErrNotFound
	}

	if ttl <= 0 {
		delete(e.storage, string(key))
		return nil
	}

	rec.expiresAt = e.now().Add(ttl)
	e.storage[string(key)] = rec

	return nil
}

// Count returns the number of live keys.
func (e *Engine) Count(ctx context.Context) (int64, error) {
	return engine.Count(ctx, e)
}

// Info describes the engine.
func (e *Engine) Info(ctx context.Context) (map[string]string, error) {
	count, err := e.Count(ctx)
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"engine": "memory",
		"keys":   strconv.FormatInt(count, 10),
	}, nil
}

// Close drops all data.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.closed = true
	e.storage = make(map[string]record)

	return nil
}
