package resp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/kvbrowse/kvcore/backend"
	"github.com/kvbrowse/kvcore/driver"
	"github.com/kvbrowse/kvcore/driver/resp"
	"github.com/kvbrowse/kvcore/engine/memory"
	"github.com/kvbrowse/kvcore/kv"
	"github.com/kvbrowse/kvcore/transport/loopback"
)

func TestDriver_Loopback(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	logger := zaptest.NewLogger(t)

	server, err := loopback.NewServer(memory.New(), backend.LevelDB, logger)
	require.NoError(t, err)

	t.Cleanup(func() { _ = server.Close() })

	d, err := resp.New(backend.LevelDB, server.Dialer(), driver.WithLogger(logger))
	require.NoError(t, err)
	require.NoError(t, d.Connect(ctx))

	defer d.Disconnect()

	for _, name := range []string{"user:3", "user:1", "user:2", "session:1"} {
		require.NoError(t, d.CreateKey(ctx, kv.NewKeyValue(kv.KeyOf(name), kv.StringOf("hello world"))))
	}

	reply, err := d.Execute(ctx, "EXPIRE user:2 100")
	require.NoError(t, err)
	assert.True(t, reply.Equals(kv.Integer(1)))

	page, err := d.ListKeysPage(ctx, driver.PageRequest{Cursor: 0, Pattern: "user:*", Limit: 2}, nil)
	require.NoError(t, err)

	require.Len(t, page.Keys, 2)
	assert.Equal(t, "user:1", page.Keys[0].Key().KeyString().Raw())
	assert.True(t, page.Keys[0].Key().TTL().IsNoExpiration())
	assert.Equal(t, "user:2", page.Keys[1].Key().KeyString().Raw())

	seconds, ok := page.Keys[1].Key().TTL().Seconds()
	require.True(t, ok)
	assert.InDelta(t, 100, seconds, 2)

	assert.Equal(t, uint64(2), page.NextCursor)
	assert.Equal(t, int64(4), page.Total)
	assert.Empty(t, page.TTLFailures)

	page, err = d.ListKeysPage(ctx, driver.PageRequest{Cursor: page.NextCursor, Pattern: "user:*", Limit: 2}, nil)
	require.NoError(t, err)
	require.Len(t, page.Keys, 1)
	assert.Equal(t, "user:3", page.Keys[0].Key().KeyString().Raw())
	assert.Equal(t, uint64(0), page.NextCursor)

	pair, err := d.LoadKey(ctx, kv.KeyOf("user:1"), kv.TypeString)
	require.NoError(t, err)
	assert.Equal(t, "hello world", pair.ValueString())

	renamed, err := d.RenameKey(ctx, kv.KeyOf("user:1"), kv.KeyStringOf("user:9"))
	require.NoError(t, err)

	deleted, err := d.DeleteKey(ctx, renamed)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = d.RenameKey(ctx, kv.KeyOf("missing"), kv.KeyStringOf("other"))
	require.ErrorIs(t, err, driver.ErrServer)

	info, err := d.ServerInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "leveldb", info["backend"])
	assert.Equal(t, "memory", info["engine"])
}

func TestDriver_LoopbackBinaryKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	logger := zaptest.NewLogger(t)
	binary := []byte{0x00, 0x01, 0x02}

	store := memory.New()
	require.NoError(t, store.Set(ctx, binary, []byte("payload")))

	server, err := loopback.NewServer(store, backend.Redis, logger)
	require.NoError(t, err)

	t.Cleanup(func() { _ = server.Close() })

	d, err := resp.New(backend.Redis, server.Dialer(), driver.WithLogger(logger))
	require.NoError(t, err)
	require.NoError(t, d.Connect(ctx))

	defer d.Disconnect()

	page, err := d.ListKeysPage(ctx, driver.PageRequest{Cursor: 0, Pattern: "*", Limit: 10}, nil)
	require.NoError(t, err)
	require.Len(t, page.Keys, 1)

	key := page.Keys[0].Key()
	assert.Equal(t, binary, key.KeyString().Data())

	pair, err := d.LoadKey(ctx, key, kv.TypeString)
	require.NoError(t, err)
	require.True(t, pair.Value().IsSome())
	assert.Equal(t, "payload", pair.ValueString())

	renamed, err := d.RenameKey(ctx, key, kv.NewKeyString([]byte{0x00, 0x01, 0x03}))
	require.NoError(t, err)

	pair, err = d.LoadKey(ctx, key, kv.TypeString)
	require.NoError(t, err)
	assert.False(t, pair.Value().IsSome())

	deleted, err := d.DeleteKey(ctx, renamed)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = store.Get(ctx, []byte{0x00, 0x01, 0x03})
	require.Error(t, err)
}
