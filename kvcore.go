package kvcore

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kvbrowse/kvcore/backend"
	"github.com/kvbrowse/kvcore/config"
	"github.com/kvbrowse/kvcore/driver"
	"github.com/kvbrowse/kvcore/driver/memcached"
	"github.com/kvbrowse/kvcore/driver/resp"
	"github.com/kvbrowse/kvcore/engine"
	"github.com/kvbrowse/kvcore/engine/badger"
	"github.com/kvbrowse/kvcore/engine/etcd"
	"github.com/kvbrowse/kvcore/engine/pebble"
	"github.com/kvbrowse/kvcore/engine/tarantool"
	"github.com/kvbrowse/kvcore/internal/metrics"
	"github.com/kvbrowse/kvcore/internal/options"
	"github.com/kvbrowse/kvcore/transport"
	"github.com/kvbrowse/kvcore/transport/goredis"
	"github.com/kvbrowse/kvcore/transport/loopback"
	"github.com/kvbrowse/kvcore/transport/tcp"
)

type openOptions struct {
	logger     *zap.Logger
	registerer prometheus.Registerer
}

func defaultOpenOptions() openOptions {
	return openOptions{
		logger:     zap.NewNop(),
		registerer: nil,
	}
}

// Option configures Open.
type Option = options.OptionCallback[openOptions]

// WithLogger sets the logger of the driver and its engine.
func WithLogger(logger *zap.Logger) Option {
	return func(opts *openOptions) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// WithMetrics registers driver metrics on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(opts *openOptions) {
		opts.registerer = reg
	}
}

// Connection is a driver together with the resources opened for it.
type Connection struct {
	*driver.Base

	release func() error
}

// Close disconnects the driver and releases the embedded store or client.
func (c *Connection) Close() error {
	c.Disconnect()

	if c.release == nil {
		return nil
	}

	if err := c.release(); err != nil {
		return fmt.Errorf("failed to release backend: %w", err)
	}

	return nil
}

// Open builds the driver described by settings. Embedded stores and
// client-library backends are opened immediately and served through an
// in-process RESP server; network backends are dialed by Connect.
func Open(ctx context.Context, settings config.Settings, opts ...Option) (*Connection, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	o := options.ApplyOptions(defaultOpenOptions, opts)

	kind, err := settings.Kind()
	if err != nil {
		return nil, err
	}

	driverOpts := []driver.Option{driver.WithLogger(o.logger)}

	if o.registerer != nil {
		collectors, err := metrics.New(o.registerer)
		if err != nil {
			return nil, err
		}

		driverOpts = append(driverOpts, driver.WithMetrics(collectors))
	}

	switch kind {
	case backend.Memcached:
		d, err := memcached.New(tcpDialer(settings, kind), driverOpts...)
		if err != nil {
			return nil, err
		}

		return &Connection{Base: d.Base, release: nil}, nil
	case backend.Redis, backend.KeyDB, backend.Pika:
		driverOpts = append(driverOpts, driver.WithDatabase(fmt.Sprintf("db%d", settings.DB)))

		d, err := resp.New(kind, redisDialer(settings, kind), driverOpts...)
		if err != nil {
			return nil, err
		}

		return &Connection{Base: d.Base, release: nil}, nil
	default:
		e, err := openEngine(ctx, settings, kind, o.logger)
		if err != nil {
			return nil, err
		}

		return serve(e, kind, o.logger, driverOpts)
	}
}

func tcpDialer(settings config.Settings, kind backend.Kind) transport.Dialer {
	return tcp.NewDialer(tcp.Config{
		Address:     settings.Endpoint(kind),
		DialTimeout: settings.DialTimeout,
		IOTimeout:   settings.IOTimeout,
	})
}

func redisDialer(settings config.Settings, kind backend.Kind) transport.Dialer {
	useGoRedis := settings.Transport == config.TransportGoRedis ||
		(settings.Transport == config.TransportAuto && settings.URL != "")

	if !useGoRedis {
		return tcpDialer(settings, kind)
	}

	return goredis.NewDialer(goredis.Config{
		URL:         settings.URL,
		Address:     settings.Endpoint(kind),
		Username:    settings.Username,
		Password:    settings.Password,
		DB:          settings.DB,
		DialTimeout: settings.DialTimeout,
	})
}

var errNoEngine = errors.New("no engine for backend")

func openEngine(ctx context.Context, settings config.Settings, kind backend.Kind, logger *zap.Logger) (engine.Engine, error) {
	switch kind {
	case backend.RocksDB, backend.LevelDB:
		opts := []pebble.Option{pebble.WithLogger(logger)}
		if settings.Path == "" {
			opts = append(opts, pebble.InMemory())
		}

		return pebble.Open(settings.Path, opts...)
	case backend.LMDB:
		opts := []badger.Option{badger.WithLogger(logger)}
		if settings.Path == "" {
			opts = append(opts, badger.InMemory())
		}

		return badger.Open(settings.Path, opts...)
	case backend.Etcd:
		endpoints := settings.Endpoints
		if len(endpoints) == 0 {
			endpoints = []string{settings.Endpoint(kind)}
		}

		return etcd.Dial(endpoints, settings.DialTimeout, settings.Username, settings.Password, logger)
	case backend.Tarantool:
		return tarantool.Dial(ctx, settings.Endpoint(kind), settings.Username, settings.Password,
			settings.Space, settings.DialTimeout, logger)
	default:
		return nil, fmt.Errorf("%w: %s", errNoEngine, kind)
	}
}

func serve(e engine.Engine, kind backend.Kind, logger *zap.Logger, driverOpts []driver.Option) (*Connection, error) {
	server, err := loopback.NewServer(e, kind, logger)
	if err != nil {
		_ = e.Close()
		return nil, err
	}

	d, err := resp.New(kind, server.Dialer(), driverOpts...)
	if err != nil {
		_ = server.Close()
		return nil, err
	}

	return &Connection{Base: d.Base, release: server.Close}, nil
}
