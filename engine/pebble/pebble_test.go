package pebble_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvbrowse/kvcore/engine"
	"github.com/kvbrowse/kvcore/engine/enginetest"
	"github.com/kvbrowse/kvcore/engine/pebble"
)

func open(t *testing.T, opts ...pebble.Option) *pebble.Engine {
	t.Helper()

	e, err := pebble.Open("", append([]pebble.Option{pebble.InMemory()}, opts...)...)
	require.NoError(t, err)

	t.Cleanup(func() { _ = e.Close() })

	return e
}

func TestEngine(t *testing.T) {
	t.Parallel()

	enginetest.Run(t, func(t *testing.T) engine.Engine { return open(t) }, enginetest.Options{NoTTL: false})
}

func TestEngine_OnDisk(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()

	e, err := pebble.Open(dir)
	require.NoError(t, err)
	require.NoError(t, e.Set(ctx, []byte("k"), []byte("v")))
	require.NoError(t, e.Close())

	e, err = pebble.Open(dir)
	require.NoError(t, err)

	defer e.Close()

	value, err := e.Get(ctx, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), value)
}

func TestEngine_ExpiredKeysDisappear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.UnixMilli(1_700_000_000_000)
	e := open(t, pebble.WithClock(func() time.Time { return now }))

	require.NoError(t, e.Set(ctx, []byte("a"), []byte("1")))
	require.NoError(t, e.Set(ctx, []byte("b"), []byte("2")))
	require.NoError(t, e.Expire(ctx, []byte("a"), time.Minute))

	ttl, err := e.TTL(ctx, []byte("a"))
	require.NoError(t, err)

	seconds, ok := ttl.Seconds()
	require.True(t, ok)
	assert.Equal(t, int64(60), seconds)

	now = now.Add(2 * time.Minute)

	_, err = e.Get(ctx, []byte("a"))
	require.ErrorIs(t, err, engine.ErrNotFound)

	count, err := e.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
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
}
