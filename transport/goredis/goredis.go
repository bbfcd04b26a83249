// Package goredis tunnels RESP request frames through a go-redis client.
// It lets the generic driver reuse go-redis connection pooling, TLS and
// authentication for the Redis family.
package goredis

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kvbrowse/kvcore/kv"
	"github.com/kvbrowse/kvcore/protocol/resp"
	"github.com/kvbrowse/kvcore/transport"
)

const defaultDialTimeout = 5 * time.Second

// ErrNoReply is returned by Receive when no request is awaiting a reply.
var ErrNoReply = errors.New("no reply pending")

// Client is the subset of *redis.Client the transport needs.
type Client interface {
	Do(ctx context.Context, args ...any) *redis.Cmd
	Close() error
}

// Config describes how to reach the server. URL takes precedence over
// the individual fields.
type Config struct {
	URL         string
	Address     string
	Username    string
	Password    string
	DB          int
	DialTimeout time.Duration
}

// Options converts the config into go-redis options.
func (c Config) Options() (*redis.Options, error) {
	var (
		opts *redis.Options
		err  error
	)

	switch {
	case c.URL != "":
		opts, err = redis.ParseURL(c.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse redis url: %w", err)
		}
	case c.Address != "":
		opts = &redis.Options{ //nolint:exhaustruct
			Addr:     c.Address,
			Username: c.Username,
			Password: c.Password,
			DB:       c.DB,
		}
	default:
		return nil, transport.ErrNoEndpoint
	}

	opts.DialTimeout = c.DialTimeout
	if opts.DialTimeout <= 0 {
		opts.DialTimeout = defaultDialTimeout
	}

	// Redis-compatible servers such as Pika only speak RESP2.
	opts.Protocol = 2

	return opts, nil
}

// Dialer creates go-redis backed transports.
type Dialer struct {
	config Config
}

var (
	_ transport.Dialer    = &Dialer{} //nolint:exhaustruct
	_ transport.Transport = &Transport{} //nolint:exhaustruct
)

// NewDialer creates a dialer for config.
func NewDialer(config Config) *Dialer {
	return &Dialer{config: config}
}

// Dial creates a client and checks the server answers PING.
func (d *Dialer) Dial(ctx context.Context) (transport.Transport, error) {
	opts, err := d.config.Options()
	if err != nil {
		return nil, transport.NewError("dial", err)
	}

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, transport.NewError("dial", fmt.Errorf("failed to ping %s: %w", opts.Addr, err))
	}

	return New(client), nil
}

// Transport executes each request frame with Client.Do and queues the
// RESP encoding of the reply.
type Transport struct {
	client  Client
	mu      sync.Mutex
	partial []byte
	replies []byte
	closed  bool
}

// New wraps client.
func New(client Client) *Transport {
	return &Transport{
		client:  client,
		mu:      sync.Mutex{},
		partial: nil,
		replies: nil,
		closed:  false,
	}
}

// Send executes every complete request frame in data. Server error replies
// are queued as RESP errors; network failures are returned.
func (t *Transport) Send(ctx context.Context, data []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return transport.ErrClosed
	}

	t.partial = append(t.partial, data...)

	for len(t.partial) > 0 {
		reader := bytes.NewReader(t.partial)
		decoder := resp.NewReader(reader)

		args, err := decoder.ReadCommand()
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil
		}

		if err != nil {
			t.partial = nil
			return transport.NewError("send", fmt.Errorf("failed to decode request: %w", err))
		}

		t.partial = t.partial[len(t.partial)-reader.Len()-decoder.Buffered():]

		reply, err := t.do(ctx, args)
		if err != nil {
			return transport.NewError("send", err)
		}

		t.replies = resp.AppendValue(t.replies, reply)
	}

	return nil
}

func (t *Transport) do(ctx context.Context, args []string) (kv.Value, error) {
	cmdArgs := make([]any, 0, len(args))
	for _, arg := range args {
		cmdArgs = append(cmdArgs, arg)
	}

	result, err := t.client.Do(ctx, cmdArgs...).Result()

	var redisErr redis.Error

	switch {
	case errors.Is(err, redis.Nil):
		return kv.Null(), nil
	case errors.As(err, &redisErr):
		return kv.Error(redisErr.Error()), nil
	case err != nil:
		return kv.Null(), err
	}

	return ToValue(result), nil
}

// Receive returns the queued replies.
func (t *Transport) Receive(ctx context.Context) ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil, transport.ErrClosed
	}

	if err := ctx.Err(); err != nil {
		return nil, transport.NewError("receive", err)
	}

	if len(t.replies) == 0 {
		return nil, transport.NewError("receive", ErrNoReply)
	}

	out := t.replies
	t.replies = nil

	return out, nil
}

// IsConnected reports whether the transport is open.
func (t *Transport) IsConnected() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return !t.closed
}

// Close closes the client.
func (t *Transport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}

	t.closed = true
	t.partial = nil
	t.replies = nil

	if err := t.client.Close(); err != nil {
		return fmt.Errorf("failed to close redis client: %w", err)
	}

	return nil
}

// ToValue converts a go-redis reply into a kv.Value.
func ToValue(reply any) kv.Value {
	switch v := reply.(type) {
	case nil:
		return kv.Null()
	case string:
		return kv.StringOf(v)
	case []byte:
		return kv.String(v)
	case int64:
		return kv.Integer(v)
	case float64:
		return kv.Float(v)
	case bool:
		return kv.Bool(v)
	case redis.Error:
		return kv.Error(v.Error())
	case []any:
		items := make([]kv.Value, 0, len(v))
		for _, item := range v {
			items = append(items, ToValue(item))
		}

		return kv.Array(items...)
	case map[any]any:
		entries := make([]kv.MapEntry, 0, len(v))
		for key, value := range v {
			entries = append(entries, kv.MapEntry{Key: ToValue(key), Value: ToValue(value)})
		}

		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Key.String(" ") < entries[j].Key.String(" ")
		})

		return kv.Map(entries...)
	default:
		return kv.StringOf(fmt.Sprint(v))
	}
}
