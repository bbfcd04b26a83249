// Package tarantool provides the engine behind the Tarantool backend kind.
// Keys live in a space of {key, value} tuples with a primary index on key.
package tarantool

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/tarantool/go-tarantool/v2"
	"go.uber.org/zap"

	"github.com/kvbrowse/kvcore/engine"
	"github.com/kvbrowse/kvcore/kv"
)

const (
	// DefaultSpace is the space used when none is configured.
	DefaultSpace = "kv"

	keysBatchSize = 1000
)

const renameScript = `
local space, key, new_key = ...
local t = box.space[space]:get(key)
if t == nil then return false end
box.begin()
box.space[space]:replace({new_key, t[2]})
box.space[space]:delete(key)
box.commit()
return true
`

// Connector is a tarantool connection the engine owns.
// *tarantool.Connection implements it.
type Connector interface {
	tarantool.Doer

	Close() error
}

// Engine stores keys in a tarantool space.
type Engine struct {
	conn   Connector
	space  string
	logger *zap.Logger
}

var _ engine.Engine = &Engine{} //nolint:exhaustruct

// New creates an engine over conn using space.
func New(conn Connector, space string, logger *zap.Logger) *Engine {
	if space == "" {
		space = DefaultSpace
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{conn: conn, space: space, logger: logger}
}

// Dial connects to a tarantool instance.
func Dial(ctx context.Context, address, user, password, space string, timeout time.Duration, logger *zap.Logger) (*Engine, error) {
	dialer := tarantool.NetDialer{ //nolint:exhaustruct
		Address:  address,
		User:     user,
		Password: password,
	}

	conn, err := tarantool.Connect(ctx, dialer, tarantool.Opts{Timeout: timeout}) //nolint:exhaustruct
	if err != nil {
		return nil, fmt.Errorf("failed to connect to tarantool: %w", err)
	}

	return New(conn, space, logger), nil
}

func (e *Engine) get(ctx context.Context, key []byte) (tuple, error) {
	req := tarantool.NewSelectRequest(e.space).
		Iterator(tarantool.IterEq).
		Limit(1).
		Key([]any{string(key)}).
		Context(ctx)

	var tuples []tuple
	if err := e.conn.Do(req).GetTyped(&tuples); err != nil {
		return tuple{}, fmt.Errorf("failed to select key: %w", err) //nolint:exhaustruct
	}

	if len(tuples) == 0 {
		return tuple{}, engine.ErrNotFound //nolint:exhaustruct
	}

	return tuples[0], nil
}

// Get returns the value of key.
func (e *Engine) Get(ctx context.Context, key []byte) ([]byte, error) {
	t, err := e.get(ctx, key)
	if err != nil {
		return nil, err
	}

	return t.Value, nil
}

// Set stores value under key.
func (e *Engine) Set(ctx context.Context, key, value []byte) error {
	req := tarantool.NewReplaceRequest(e.space).
		Tuple(tuple{Key: key, Value: value}).
		Context(ctx)

	if _, err := e.conn.Do(req).Get(); err != nil {
		return fmt.Errorf("failed to replace key: %w", err)
	}

	return nil
}

// Delete removes key.
func (e *Engine) Delete(ctx context.Context, key []byte) (bool, error) {
	req := tarantool.NewDeleteRequest(e.space).
		Key([]any{string(key)}).
		Context(ctx)

	var deleted []tuple
	if err := e.conn.Do(req).GetTyped(&deleted); err != nil {
		return false, fmt.Errorf("failed to delete key: %w", err)
	}

	return len(deleted) > 0, nil
}

// Rename moves key to newKey inside one server-side transaction.
func (e *Engine) Rename(ctx context.Context, key, newKey []byte) error {
	req := tarantool.NewEvalRequest(renameScript).
		Args([]any{e.space, string(key), string(newKey)}).
		Context(ctx)

	var result []bool

	switch err := e.conn.Do(req).GetTyped(&result); {
	case err != nil:
		return fmt.Errorf("failed to rename key: %w", err)
	case len(result) != 1:
		return fmt.Errorf("%w: expected 1 result, got %d", ErrUnexpectedResponse, len(result))
	case !result[0]:
		return engine.ErrNotFound
	}

	return nil
}

// Keys iterates keys in primary index order, one select per batch.
func (e *Engine) Keys(ctx context.Context, fn func(key []byte) bool) error {
	iterator := tarantool.IterAll
	from := []any{}

	for {
		req := tarantool.NewSelectRequest(e.space).
			Iterator(iterator).
			Limit(keysBatchSize).
			Key(from).
			Context(ctx)

		var tuples []tuple
		if err := e.conn.Do(req).GetTyped(&tuples); err != nil {
			return fmt.Errorf("failed to select keys: %w", err)
		}

		for _, t := range tuples {
			if !fn(t.Key) {
				return nil
			}
		}

		if len(tuples) < keysBatchSize {
			return nil
		}

		iterator = tarantool.IterGt
		from = []any{string(tuples[len(tuples)-1].Key)}
	}
}

// TTL reports NoExpiration for every existing key: tuples do not expire.
func (e *Engine) TTL(ctx context.Context, key []byte) (kv.TTL, error) {
	if _, err := e.get(ctx, key); err != nil {
		return kv.Expired(), err
	}

	return kv.NoExpiration(), nil
}

// Expire is not supported.
func (e *Engine) Expire(ctx context.Context, key []byte, _ time.Duration) error {
	if _, err := e.get(ctx, key); err != nil {
		return err
	}

	return engine.ErrTTLNotSupported
}

// Count returns the number of tuples in the space.
func (e *Engine) Count(ctx context.Context) (int64, error) {
	req := tarantool.NewCallRequest("box.space." + e.space + ":len").Context(ctx)

	var result []int64

	switch err := e.conn.Do(req).GetTyped(&result); {
	case err != nil:
		return 0, fmt.Errorf("failed to count keys: %w", err)
	case len(result) != 1:
		return 0, fmt.Errorf("%w: expected 1 result, got %d", ErrUnexpectedResponse, len(result))
	}

	return result[0], nil
}

// Info reports the server version and the space size.
func (e *Engine) Info(ctx context.Context) (map[string]string, error) {
	count, err := e.Count(ctx)
	if err != nil {
		return nil, err
	}

	info := map[string]string{
		"engine": "tarantool",
		"space":  e.space,
		"keys":   strconv.FormatInt(count, 10),
	}

	req := tarantool.NewEvalRequest("return box.info.version").Context(ctx)

	var version []string

	err = e.conn.Do(req).GetTyped(&version)
	switch {
	case err != nil:
		e.logger.Warn("failed to get server version", zap.Error(err))
	case len(version) == 1:
		info["version"] = version[0]
	}

	return info, nil
}

// Close closes the connection.
func (e *Engine) Close() error {
	if err := e.conn.Close(); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}

	return nil
}
