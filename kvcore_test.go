package kvcore_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/kvbrowse/kvcore"
	"github.com/kvbrowse/kvcore/backend"
	"github.com/kvbrowse/kvcore/config"
	"github.com/kvbrowse/kvcore/driver"
	"github.com/kvbrowse/kvcore/kv"
)

func settings(backendName string) config.Settings {
	return config.Settings{ //nolint:exhaustruct
		Backend:     backendName,
		Transport:   config.TransportAuto,
		DialTimeout: time.Second,
		PageSize:    10,
	}
}

func TestOpen_Embedded(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"rocksdb", "leveldb", "lmdb"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()

			conn, err := kvcore.Open(ctx, settings(name),
				kvcore.WithLogger(zaptest.NewLogger(t)),
				kvcore.WithMetrics(prometheus.NewRegistry()))
			require.NoError(t, err)

			defer func() { require.NoError(t, conn.Close()) }()

			require.NoError(t, conn.Connect(ctx))

			require.NoError(t, conn.CreateKey(ctx, kv.NewKeyValue(kv.KeyOf("user:1"), kv.StringOf("hello world"))))

			_, err = conn.Execute(ctx, conn.Translator().Verbs().Get+" user:1")
			require.NoError(t, err)

			page, err := conn.ListKeysPage(ctx, driver.PageRequest{}, nil) //nolint:exhaustruct
			require.NoError(t, err)
			require.Len(t, page.Keys, 1)
			assert.Equal(t, int64(1), page.Total)

			info, err := conn.ServerInfo(ctx)
			require.NoError(t, err)
			assert.Equal(t, name, info["backend"])
		})
	}
}

func TestOpen_Remote(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	for _, name := range []string{"redis", "memcached"} {
		s := settings(name)
		s.Address = "127.0.0.1:1"

		conn, err := kvcore.Open(ctx, s)
		require.NoError(t, err)

		kind, err := s.Kind()
		require.NoError(t, err)
		assert.Equal(t, kind, conn.Kind())

		var connErr driver.ConnectionError
		require.ErrorAs(t, conn.Connect(ctx), &connErr)
		assert.Equal(t, driver.StateDisconnected, conn.State())
		require.NoError(t, conn.Close())
	}
}

func TestOpen_Invalid(t *testing.T) {
	t.Parallel()

	_, err := kvcore.Open(context.Background(), settings("mongo"))
	require.ErrorIs(t, err, config.ErrInvalid)

	s := settings("memcached")
	s.Transport = config.TransportGoRedis

	_, err = kvcore.Open(context.Background(), s)
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestOpen_RedisDatabaseName(t *testing.T) {
	t.Parallel()

	s := settings(backend.Redis.String())
	s.URL = "redis://127.0.0.1:1/3"
	s.DB = 3

	conn, err := kvcore.Open(context.Background(), s)
	require.NoError(t, err)

	defer conn.Close()

	_, err = conn.CurrentDatabaseInfo(context.Background())
	require.ErrorIs(t, err, driver.ErrNotConnected)
}
