package badger_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvbrowse/kvcore/engine"
	"github.com/kvbrowse/kvcore/engine/badger"
	"github.com/kvbrowse/kvcore/engine/enginetest"
)

func open(t *testing.T) *badger.Engine {
	t.Helper()

	e, err := badger.Open("", badger.InMemory())
	require.NoError(t, err)

	t.Cleanup(func() { _ = e.Close() })

	return e
}

func TestEngine(t *testing.T) {
	t.Parallel()

	enginetest.Run(t, func(t *testing.T) engine.Engine { return open(t) }, enginetest.Options{NoTTL: false})
}

func TestEngine_RenameKeepsExpiration(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	e := open(t)

	require.NoError(t, e.Set(ctx, []byte("a"), []byte("1")))
	require.NoError(t, e.Expire(ctx, []byte("a"), time.Hour))
	require.NoError(t, e.Rename(ctx, []byte("a"), []byte("b")))

	ttl, err := e.TTL(ctx, []byte("b"))
	require.NoError(t, err)
	assert.False(t, ttl.IsNoExpiration())

	_, err = e.Get(ctx, []byte("a"))
	require.ErrorIs(t, err, engine.ErrNotFound)
}

func TestEngine_OnDisk(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()

	e, err := badger.Open(dir, badger.WithSyncWrites(true))
	require.NoError(t, err)
	require.NoError(t, e.Set(ctx, []byte("k"), []byte("v")))
	require.NoError(t, e.Close())

	e, err = badger.Open(dir)
	require.NoError(t, err)

	defer e.Close()

	value, err := e.Get(ctx, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), value)
}
