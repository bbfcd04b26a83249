// Integration tests require a running tarantool reachable through
// KVCORE_TARANTOOL_ADDR with a space "kv" of {string key, any value}.
package tarantool_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kvbrowse/kvcore/engine"
	"github.com/kvbrowse/kvcore/engine/enginetest"
	"github.com/kvbrowse/kvcore/engine/tarantool"
)

func createTestEngine(t *testing.T) engine.Engine {
	t.Helper()

	addr := os.Getenv("KVCORE_TARANTOOL_ADDR")
	if addr == "" {
		t.Skip("KVCORE_TARANTOOL_ADDR is not set")
	}

	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	ctx := context.Background()

	e, err := tarantool.Dial(ctx, addr, os.Getenv("KVCORE_TARANTOOL_USER"),
		os.Getenv("KVCORE_TARANTOOL_PASSWORD"), tarantool.DefaultSpace, 5*time.Second, nil)
	require.NoError(t, err)

	purge := func() {
		var keys [][]byte

		_ = e.Keys(ctx, func(key []byte) bool {
			keys = append(keys, key)
			return true
		})

		for _, key := range keys {
			_, _ = e.Delete(ctx, key)
		}
	}

	purge()
	t.Cleanup(func() {
		purge()
		_ = e.Close()
	})

	return e
}

//nolint:paralleltest
func TestEngine(t *testing.T) {
	enginetest.Run(t, createTestEngine, enginetest.Options{NoTTL: true})
}
