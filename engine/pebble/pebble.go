// Package pebble provides the engine behind the RocksDB and LevelDB backend
// kinds, stored in a cockroachdb/pebble LSM database.
package pebble

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/cockroachdb/pebble/v2"
	"github.com/cockroachdb/pebble/v2/vfs"
	"go.uber.org/zap"

	"github.com/kvbrowse/kvcore/engine"
	"github.com/kvbrowse/kvcore/internal/options"
	"github.com/kvbrowse/kvcore/kv"
	"github.com/kvbrowse/kvcore/marshaller"
)

// record is the stored form of a value.
type record struct {
	Value     []byte `msgpack:"v"`
	ExpiresAt int64  `msgpack:"e"` // Unix milliseconds, 0 when the key never expires.
}

func (r record) expired(now time.Time) bool {
	return r.ExpiresAt != 0 && now.UnixMilli() >= r.ExpiresAt
}

type engineOptions struct {
	logger   *zap.Logger
	inMemory bool
	now      func() time.Time
}

// Option configures the engine.
type Option = options.OptionCallback[engineOptions]

// WithLogger sets the logger pebble reports through.
func WithLogger(logger *zap.Logger) Option {
	return func(o *engineOptions) { o.logger = logger }
}

// InMemory keeps the database in memory instead of dir.
func InMemory() Option {
	return func(o *engineOptions) { o.inMemory = true }
}

// WithClock sets the time source used for expiration.
func WithClock(now func() time.Time) Option {
	return func(o *engineOptions) { o.now = now }
}

func defaultOptions() engineOptions {
	return engineOptions{
		logger:   zap.NewNop(),
		inMemory: false,
		now:      time.Now,
	}
}

// Engine stores keys in pebble.
type Engine struct {
	db     *pebble.DB
	codec  marshaller.TypedMarshaller[record]
	logger *zap.Logger
	now    func() time.Time
	// mu serializes read-modify-write sequences.
	mu sync.Mutex
}

var _ engine.Engine = &Engine{} //nolint:exhaustruct

// Open opens or creates a database in dir.
func Open(dir string, opts ...Option) (*Engine, error) {
	o := options.ApplyOptions(defaultOptions, opts)

	pebbleOpts := &pebble.Options{ //nolint:exhaustruct
		Logger: o.logger.Named("pebble").Sugar(),
	}

	if o.inMemory {
		pebbleOpts.FS = vfs.NewMem()
	} else if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := pebble.Open(dir, pebbleOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to open pebble db: %w", err)
	}

	o.logger.Debug("pebble engine opened", zap.String("dir", dir), zap.Bool("in_memory", o.inMemory))

	return &Engine{
		db:     db,
		codec:  marshaller.NewTypedMsgpackMarshaller[record](),
		logger: o.logger,
		now:    o.now,
		mu:     sync.Mutex{},
	}, nil
}

// load returns the live record of key. Expired records are deleted.
func (e *Engine) load(key []byte) (record, error) {
	data, closer, err := e.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return record{}, engine.ErrNotFound //nolint:exhaustruct
	}

	if err != nil {
		return record{}, fmt.Errorf("failed to get key: %w", err) //nolint:exhaustruct
	}

	rec, err := e.codec.Unmarshal(data)
	_ = closer.Close()

	if err != nil {
		return record{}, fmt.Errorf("failed to decode record: %w", err) //nolint:exhaustruct
	}

	if rec.expired(e.now()) {
		if err := e.db.Delete(key, pebble.NoSync); err != nil {
			e.logger.Warn("failed to drop expired key", zap.Error(err))
		}

		return record{}, engine.ErrNotFound //nolint:exhaustruct
	}

	return rec, nil
}

func (e *Engine) store(batch *pebble.Batch, key []byte, rec record) error {
	data, err := e.codec.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	if batch != nil {
		return batch.Set(key, data, nil) //nolint:wrapcheck
	}

	if err := e.db.Set(key, data, pebble.Sync); err != nil {
		return fmt.Errorf("failed to set key: %w", err)
	}

	return nil
}

// Get returns the value of key.
func (e *Engine) Get(_ context.Context, key []byte) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec, err := e.load(key)
	if err != nil {
		return nil, err
	}

	return rec.Value, nil
}

// Set stores value under key.
func (e *Engine) Set(_ context.Context, key, value []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.store(nil, key, record{Value: value, ExpiresAt: 0})
}

// Delete removes key.
func (e *Engine) Delete(_ context.Context, key []byte) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, err := e.load(key)

	switch {
	case errors.Is(err, engine.ErrNotFound):
		return false, nil
	case err != nil:
		return false, err
	}

	if err := e.db.Delete(key, pebble.Sync); err != nil {
		return false, fmt.Errorf("failed to delete key: %w", err)
	}

	return true, nil
}

// Rename moves key to newKey in one batch.
func (e *Engine) Rename(_ context.Context, key, newKey []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec, err := e.load(key)
	if err != nil {
		return err
	}

	batch := e.db.NewBatch()
	defer batch.Close()

	if err := batch.Delete(key, nil); err != nil {
		return fmt.Errorf("failed to delete key: %w", err)
	}

	if err := e.store(batch, newKey, rec); err != nil {
		return err
	}

	if err := batch.Commit(pebble.Sync); err != nil {
		return fmt.Errorf("failed to commit rename: %w", err)
	}

	return nil
}

// Keys iterates live keys in ascending order.
func (e *Engine) Keys(ctx context.Context, fn func(key []byte) bool) error {
	iter, err := e.db.NewIter(nil)
	if err != nil {
		return fmt.Errorf("failed to create iterator: %w", err)
	}
	defer iter.Close() //nolint:errcheck

	now := e.now()

	for iter.First(); iter.Valid(); iter.Next() {
		if err := ctx.Err(); err != nil {
			return err //nolint:wrapcheck
		}

		rec, err := e.codec.Unmarshal(iter.Value())
		if err != nil || rec.expired(now) {
			continue
		}

		if !fn(bytes.Clone(iter.Key())) {
			break
		}
	}

	if err := iter.Error(); err != nil {
		return fmt.Errorf("failed to iterate keys: %w", err)
	}

	return nil
}

// TTL returns the expiration of key.
func (e *Engine) TTL(_ context.Context, key []byte) (kv.TTL, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec, err := e.load(key)
	if err != nil {
		return kv.Expired(), err
	}

	if rec.ExpiresAt == 0 {
		return kv.NoExpiration(), nil
	}

	return kv.FromDuration(time.UnixMilli(rec.ExpiresAt).Sub(e.now())), nil
}

// Expire sets the time to live of key. A non-positive ttl deletes it.
func (e *Engine) Expire(_ context.Context, key []byte, ttl time.Duration) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec, err := e.load(key)
	if err != nil {
		return err
	}

	if ttl <= 0 {
		if err := e.db.Delete(key, pebble.Sync); err != nil {
			return fmt.Errorf("failed to delete key: %w", err)
		}

		return nil
	}

	rec.ExpiresAt = e.now().Add(ttl).UnixMilli()

	return e.store(nil, key, rec)
}

// Count returns the number of live keys.
func (e *Engine) Count(ctx context.Context) (int64, error) {
	return engine.Count(ctx, e)
}

// Info describes the database.
func (e *Engine) Info(ctx context.Context) (map[string]string, error) {
	count, err := e.Count(ctx)
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"engine":     "pebble",
		"keys":       strconv.FormatInt(count, 10),
		"disk_usage": strconv.FormatUint(e.db.Metrics().DiskSpaceUsage(), 10),
	}, nil
}

// Close closes the database.
func (e *Engine) Close() error {
	if err := e.db.Close(); err != nil {
		return fmt.Errorf("failed to close pebble db: %w", err)
	}

	return nil
}
