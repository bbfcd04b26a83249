// Package badger provides the engine behind the LMDB backend kind, stored in
// a dgraph-io/badger database with native key expiration.
package badger

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"

	"github.com/kvbrowse/kvcore/engine"
	"github.com/kvbrowse/kvcore/internal/options"
	"github.com/kvbrowse/kvcore/kv"
)

type engineOptions struct {
	logger     *zap.Logger
	inMemory   bool
	syncWrites bool
}

// Option configures the engine.
type Option = options.OptionCallback[engineOptions]

// WithLogger sets the logger badger reports through.
func WithLogger(logger *zap.Logger) Option {
	return func(o *engineOptions) { o.logger = logger }
}

// InMemory keeps the database in memory.
func InMemory() Option {
	return func(o *engineOptions) { o.inMemory = true }
}

// WithSyncWrites syncs every write to disk.
func WithSyncWrites(sync bool) Option {
	return func(o *engineOptions) { o.syncWrites = sync }
}

func defaultOptions() engineOptions {
	return engineOptions{
		logger:     zap.NewNop(),
		inMemory:   false,
		syncWrites: false,
	}
}

// logger adapts zap to badger.Logger.
type logger struct {
	*zap.SugaredLogger
}

func (l logger) Warningf(format string, args ...any) {
	l.Warnf(format, args...)
}

// Engine stores keys in badger.
type Engine struct {
	db     *badger.DB
	logger *zap.Logger
}

var _ engine.Engine = &Engine{} //nolint:exhaustruct

// Open opens or creates a database in dir.
func Open(dir string, opts ...Option) (*Engine, error) {
	o := options.ApplyOptions(defaultOptions, opts)

	badgerOpts := badger.DefaultOptions(dir).
		WithLogger(logger{o.logger.Named("badger").Sugar()}).
		WithSyncWrites(o.syncWrites).
		WithNumVersionsToKeep(1)

	if o.inMemory {
		badgerOpts = badgerOpts.WithDir("").WithValueDir("").WithInMemory(true)
	}

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	o.logger.Debug("badger engine opened", zap.String("dir", dir), zap.Bool("in_memory", o.inMemory))

	return &Engine{db: db, logger: o.logger}, nil
}

func notFound(err error) error {
	if errors.Is(err, badger.ErrKeyNotFound) {
		return engine.ErrNotFound
	}

	return err
}

// Get returns the value of key.
func (e *Engine) Get(_ context.Context, key []byte) ([]byte, error) {
	var value []byte

	err := e.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return notFound(err)
		}

		value, err = item.ValueCopy(nil)

		return err //nolint:wrapcheck
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get key: %w", err)
	}

	return value, nil
}

// Set stores value under key.
func (e *Engine) Set(_ context.Context, key, value []byte) error {
	err := e.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		return fmt.Errorf("failed to set key: %w", err)
	}

	return nil
}

// Delete removes key.
func (e *Engine) Delete(_ context.Context, key []byte) (bool, error) {
	existed := true

	err := e.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				existed = false
				return nil
			}

			return err //nolint:wrapcheck
		}

		return txn.Delete(key)
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete key: %w", err)
	}

	return existed, nil
}

// Rename moves key to newKey in one transaction, keeping its expiration.
func (e *Engine) Rename(_ context.Context, key, newKey []byte) error {
	err := e.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return notFound(err)
		}

		value, err := item.ValueCopy(nil)
		if err != nil {
			return err //nolint:wrapcheck
		}

		entry := badger.NewEntry(newKey, value)
		if expiresAt := item.ExpiresAt(); expiresAt != 0 {
			entry.ExpiresAt = expiresAt
		}

		if err := txn.SetEntry(entry); err != nil {
			return err //nolint:wrapcheck
		}

		return txn.Delete(key)
	})
	if err != nil {
		return fmt.Errorf("failed to rename key: %w", err)
	}

	return nil
}

// Keys iterates live keys in ascending order.
func (e *Engine) Keys(ctx context.Context, fn func(key []byte) bool) error {
	return e.db.View(func(txn *badger.Txn) error { //nolint:wrapcheck
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err //nolint:wrapcheck
			}

			if !fn(it.Item().KeyCopy(nil)) {
				return nil
			}
		}

		return nil
	})
}

// TTL returns the expiration of key.
func (e *Engine) TTL(_ context.Context, key []byte) (kv.TTL, error) {
	var expiresAt uint64

	err := e.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return notFound(err)
		}

		expiresAt = item.ExpiresAt()

		return nil
	})
	if err != nil {
		return kv.Expired(), fmt.Errorf("failed to get ttl: %w", err)
	}

	if expiresAt == 0 {
		return kv.NoExpiration(), nil
	}

	return kv.FromDuration(time.Until(time.Unix(int64(expiresAt), 0))), nil //nolint:gosec
}

// Expire sets the time to live of key. A non-positive ttl deletes it.
func (e *Engine) Expire(_ context.Context, key []byte, ttl time.Duration) error {
	err := e.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return notFound(err)
		}

		if ttl <= 0 {
			return txn.Delete(key)
		}

		value, err := item.ValueCopy(nil)
		if err != nil {
			return err //nolint:wrapcheck
		}

		return txn.SetEntry(badger.NewEntry(key, value).WithTTL(ttl))
	})
	if err != nil {
		return fmt.Errorf("failed to expire key: %w", err)
	}

	return nil
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

	lsm, vlog := e.db.Size()

	return map[string]string{
		"engine":    "badger",
		"keys":      strconv.FormatInt(count, 10),
		"lsm_size":  strconv.FormatInt(lsm, 10),
		"vlog_size": strconv.FormatInt(vlog, 10),
	}, nil
}

// Close closes the database.
func (e *Engine) Close() error {
	if err := e.db.Close(); err != nil {
		return fmt.Errorf("failed to close badger db: %w", err)
	}

	return nil
}
