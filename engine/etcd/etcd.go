// Package etcd provides the engine behind the etcd backend kind. Keys are
// stored as-is; expiration is expressed through leases.
package etcd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	etcd "go.etcd.io/etcd/client/v3"
	"go.uber.org/zap"

	"github.com/kvbrowse/kvcore/engine"
	"github.com/kvbrowse/kvcore/kv"
)

// keysBatchSize bounds a single range request while iterating keys.
const keysBatchSize = 1000

// ErrConflict is returned when a key changed while being renamed.
var ErrConflict = errors.New("key was modified concurrently")

// Client defines the subset of the etcd client the engine needs.
// *etcd.Client implements it.
type Client interface {
	etcd.KV
	etcd.Lease

	Status(ctx context.Context, endpoint string) (*etcd.StatusResponse, error)
	Endpoints() []string
}

// Engine stores keys in etcd.
type Engine struct {
	client Client
	logger *zap.Logger
}

var _ engine.Engine = &Engine{} //nolint:exhaustruct

// New creates an engine over an existing client. The engine owns the client.
func New(client Client, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{client: client, logger: logger}
}

// Dial connects to endpoints.
func Dial(endpoints []string, dialTimeout time.Duration, username, password string, logger *zap.Logger) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := etcd.New(etcd.Config{ //nolint:exhaustruct
		Endpoints:   endpoints,
		DialTimeout: dialTimeout,
		Username:    username,
		Password:    password,
		Logger:      logger.Named("etcd"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create etcd client: %w", err)
	}

	return New(client, logger), nil
}

func (e *Engine) get(ctx context.Context, key []byte) (*etcdKV, error) {
	resp, err := e.client.Get(ctx, string(key))
	if err != nil {
		return nil, fmt.Errorf("failed to get key: %w", err)
	}

	if len(resp.Kvs) == 0 {
		return nil, engine.ErrNotFound
	}

	return &etcdKV{
		value:       resp.Kvs[0].Value,
		lease:       etcd.LeaseID(resp.Kvs[0].Lease),
		modRevision: resp.Kvs[0].ModRevision,
	}, nil
}

type etcdKV struct {
	value       []byte
	lease       etcd.LeaseID
	modRevision int64
}

// Get returns the value of key.
func (e *Engine) Get(ctx context.Context, key []byte) ([]byte, error) {
	item, err := e.get(ctx, key)
	if err != nil {
		return nil, err
	}

	return item.value, nil
}

// Set stores value under key, detaching it from any lease.
func (e *Engine) Set(ctx context.Context, key, value []byte) error {
	if _, err := e.client.Put(ctx, string(key), string(value)); err != nil {
		return fmt.Errorf("failed to put key: %w", err)
	}

	return nil
}

// Delete removes key.
func (e *Engine) Delete(ctx context.Context, key []byte) (bool, error) {
	resp, err := e.client.Delete(ctx, string(key))
	if err != nil {
		return false, fmt.Errorf("failed to delete key: %w", err)
	}

	return resp.Deleted > 0, nil
}

// Rename moves key to newKey in one transaction guarded by the source
// revision. The lease of the source key is kept.
func (e *Engine) Rename(ctx context.Context, key, newKey []byte) error {
	item, err := e.get(ctx, key)
	if err != nil {
		return err
	}

	var putOpts []etcd.OpOption
	if item.lease != etcd.NoLease {
		putOpts = append(putOpts, etcd.WithLease(item.lease))
	}

	resp, err := e.client.Txn(ctx).
		If(etcd.Compare(etcd.ModRevision(string(key)), "=", item.modRevision)).
		Then(etcd.OpPut(string(newKey), string(item.value), putOpts...), etcd.OpDelete(string(key))).
		Commit()
	if err != nil {
		return fmt.Errorf("failed to rename key: %w", err)
	}

	if !resp.Succeeded {
		return ErrConflict
	}

	return nil
}

// Keys iterates keys in ascending order, one range request per batch.
func (e *Engine) Keys(ctx context.Context, fn func(key []byte) bool) error {
	from := "\x00"

	for {
		resp, err := e.client.Get(ctx, from,
			etcd.WithFromKey(),
			etcd.WithKeysOnly(),
			etcd.WithLimit(keysBatchSize),
			etcd.WithSort(etcd.SortByKey, etcd.SortAscend),
		)
		if err != nil {
			return fmt.Errorf("failed to list keys: %w", err)
		}

		for _, item := range resp.Kvs {
			if !fn(item.Key) {
				return nil
			}
		}

		if !resp.More || len(resp.Kvs) == 0 {
			return nil
		}

		from = string(resp.Kvs[len(resp.Kvs)-1].Key) + "\x00"
	}
}

// TTL returns the remaining lifetime of the lease attached to key.
func (e *Engine) TTL(ctx context.Context, key []byte) (kv.TTL, error) {
	item, err := e.get(ctx, key)
	if err != nil {
		return kv.Expired(), err
	}

	if item.lease == etcd.NoLease {
		return kv.NoExpiration(), nil
	}

	resp, err := e.client.TimeToLive(ctx, item.lease)
	if err != nil {
		return kv.UnknownTTL(), fmt.Errorf("failed to get lease ttl: %w", err)
	}

	if resp.TTL < 0 {
		return kv.Expired(), nil
	}

	return kv.Seconds(resp.TTL), nil
}

// Expire attaches key to a new lease of ttl. A non-positive ttl deletes it.
func (e *Engine) Expire(ctx context.Context, key []byte, ttl time.Duration) error {
	item, err := e.get(ctx, key)
	if err != nil {
		return err
	}

	if ttl <= 0 {
		_, err := e.Delete(ctx, key)
		return err
	}

	seconds := max(int64(ttl/time.Second), 1)

	lease, err := e.client.Grant(ctx, seconds)
	if err != nil {
		return fmt.Errorf("failed to grant lease: %w", err)
	}

	if _, err := e.client.Put(ctx, string(key), string(item.value), etcd.WithLease(lease.ID)); err != nil {
		return fmt.Errorf("failed to put key: %w", err)
	}

	return nil
}

// Count returns the number of keys.
func (e *Engine) Count(ctx context.Context) (int64, error) {
	resp, err := e.client.Get(ctx, "\x00", etcd.WithFromKey(), etcd.WithCountOnly())
	if err != nil {
		return 0, fmt.Errorf("failed to count keys: %w", err)
	}

	return resp.Count, nil
}

// Info reports the status of the first endpoint.
func (e *Engine) Info(ctx context.Context) (map[string]string, error) {
	count, err := e.Count(ctx)
	if err != nil {
		return nil, err
	}

	info := map[string]string{
		"engine": "etcd",
		"keys":   strconv.FormatInt(count, 10),
	}

	endpoints := e.client.Endpoints()
	if len(endpoints) == 0 {
		return info, nil
	}

	status, err := e.client.Status(ctx, endpoints[0])
	if err != nil {
		e.logger.Warn("failed to get endpoint status", zap.String("endpoint", endpoints[0]), zap.Error(err))
		return info, nil
	}

	info["version"] = status.Version
	info["db_size"] = strconv.FormatInt(status.DbSize, 10)
	info["leader"] = strconv.FormatUint(status.Leader, 10)
	info["raft_index"] = strconv.FormatUint(status.RaftIndex, 10)

	return info, nil
}

// Close closes the client.
func (e *Engine) Close() error {
	if err := e.client.Close(); err != nil {
		return fmt.Errorf("failed to close etcd client: %w", err)
	}

	return nil
}
