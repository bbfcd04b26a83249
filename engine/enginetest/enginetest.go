// Package enginetest provides a behavioural test suite every engine.Engine
// implementation is expected to pass.
package enginetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvbrowse/kvcore/engine"
)

// Factory creates a fresh, empty engine for one subtest.
type Factory func(t *testing.T) engine.Engine

// Options tunes the suite for engine capabilities.
type Options struct {
	// NoTTL marks engines that return engine.ErrTTLNotSupported from Expire.
	NoTTL bool
}

// Run runs the suite against engines produced by factory.
func Run(t *testing.T, factory Factory, opts Options) {
	t.Helper()

	t.Run("GetSet", func(t *testing.T) { testGetSet(t, factory(t)) })
	t.Run("Delete", func(t *testing.T) { testDelete(t, factory(t)) })
	t.Run("Rename", func(t *testing.T) { testRename(t, factory(t)) })
	t.Run("KeysOrdered", func(t *testing.T) { testKeysOrdered(t, factory(t)) })
	t.Run("Page", func(t *testing.T) { testPage(t, factory(t)) })
	t.Run("TTL", func(t *testing.T) { testTTL(t, factory(t), opts) })
	t.Run("Info", func(t *testing.T) { testInfo(t, factory(t)) })
}

func testGetSet(t *testing.T, e engine.Engine) {
	t.Helper()

	ctx := context.Background()

	_, err := e.Get(ctx, []byte("missing"))
	require.ErrorIs(t, err, engine.ErrNotFound)

	require.NoError(t, e.Set(ctx, []byte("user:1"), []byte("hello world")))
	require.NoError(t, e.Set(ctx, []byte{0x00, 0x01}, []byte{0xff}))

	value, err := e.Get(ctx, []byte("user:1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("hello world"), value)

	value, err = e.Get(ctx, []byte{0x00, 0x01})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff}, value)

	require.NoError(t, e.Set(ctx, []byte("user:1"), []byte("bye")))

	value, err = e.Get(ctx, []byte("user:1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("bye"), value)
}

func testDelete(t *testing.T, e engine.Engine) {
	t.Helper()

	ctx := context.Background()

	require.NoError(t, e.Set(ctx, []byte("k"), []byte("v")))

	deleted, err := e.Delete(ctx, []byte("k"))
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = e.Delete(ctx, []byte("k"))
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = e.Get(ctx, []byte("k"))
	require.ErrorIs(t, err, engine.ErrNotFound)
}

func testRename(t *testing.T, e engine.Engine) {
	t.Helper()

	ctx := context.Background()

	require.ErrorIs(t, e.Rename(ctx, []byte("a"), []byte("b")), engine.ErrNotFound)

	require.NoError(t, e.Set(ctx, []byte("a"), []byte("1")))
	require.NoError(t, e.Rename(ctx, []byte("a"), []byte("b")))

	_, err := e.Get(ctx, []byte("a"))
	require.ErrorIs(t, err, engine.ErrNotFound)

	value, err := e.Get(ctx, []byte("b"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), value)
}

func testKeysOrdered(t *testing.T, e engine.Engine) {
	t.Helper()

	ctx := context.Background()

	for _, key := range []string{"c", "a", "b"} {
		require.NoError(t, e.Set(ctx, []byte(key), []byte(key)))
	}

	var keys []string

	require.NoError(t, e.Keys(ctx, func(key []byte) bool {
		keys = append(keys, string(key))
		return true
	}))
	assert.Equal(t, []string{"a", "b", "c"}, keys)

	count, err := e.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	keys = nil

	require.NoError(t, e.Keys(ctx, func(key []byte) bool {
		keys = append(keys, string(key))
		return len(keys) < 2
	}))
	assert.Equal(t, []string{"a", "b"}, keys)
}

func testPage(t *testing.T, e engine.Engine) {
	t.Helper()

	ctx := context.Background()

	for _, key := range []string{"user:1", "user:2", "user:3", "order:1", "user:4"} {
		require.NoError(t, e.Set(ctx, []byte(key), []byte("x")))
	}

	cursor, keys, err := engine.Page(ctx, e, 0, "user:*", 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), cursor)
	assert.Equal(t, [][]byte{[]byte("user:1"), []byte("user:2"), []byte("user:3")}, keys)

	cursor, keys, err = engine.Page(ctx, e, cursor, "user:*", 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), cursor)
	assert.Equal(t, [][]byte{[]byte("user:4")}, keys)
}

func testTTL(t *testing.T, e engine.Engine, opts Options) {
	t.Helper()

	ctx := context.Background()

	_, err := e.TTL(ctx, []byte("missing"))
	require.ErrorIs(t, err, engine.ErrNotFound)

	require.NoError(t, e.Set(ctx, []byte("k"), []byte("v")))

	ttl, err := e.TTL(ctx, []byte("k"))
	require.NoError(t, err)
	assert.True(t, ttl.IsNoExpiration(), "got %s", ttl)

	err = e.Expire(ctx, []byte("k"), time.Hour)
	if opts.NoTTL {
		require.True(t, errors.Is(err, engine.ErrTTLNotSupported), "got %v", err)
		return
	}

	require.NoError(t, err)

	ttl, err = e.TTL(ctx, []byte("k"))
	require.NoError(t, err)

	seconds, ok := ttl.Seconds()
	require.True(t, ok, "got %s", ttl)
	assert.InDelta(t, 3600, seconds, 5)

	require.ErrorIs(t, e.Expire(ctx, []byte("missing"), time.Hour), engine.ErrNotFound)
}

func testInfo(t *testing.T, e engine.Engine) {
	t.Helper()

	info, err := e.Info(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, info["engine"])
}
