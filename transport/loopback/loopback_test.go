package loopback_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvbrowse/kvcore/backend"
	"github.com/kvbrowse/kvcore/engine/memory"
	"github.com/kvbrowse/kvcore/kv"
	"github.com/kvbrowse/kvcore/protocol/resp"
	"github.com/kvbrowse/kvcore/transport"
	"github.com/kvbrowse/kvcore/transport/loopback"
)

func newServer(t *testing.T, kind backend.Kind) *loopback.Server {
	t.Helper()

	server, err := loopback.NewServer(memory.New(), kind, nil)
	require.NoError(t, err)

	t.Cleanup(func() { _ = server.Close() })

	return server
}

func call(t *testing.T, server *loopback.Server, args ...string) kv.Value {
	t.Helper()

	return server.Handle(context.Background(), args)
}

func TestServer_KeyOperations(t *testing.T) {
	t.Parallel()

	server := newServer(t, backend.RocksDB)

	assert.True(t, kv.StringOf("OK").Equals(call(t, server, "set", "user:1", "hello", "world")))
	assert.True(t, kv.StringOf("hello world").Equals(call(t, server, "get", "user:1")))
	assert.True(t, kv.StringOf("OK").Equals(call(t, server, "rename", "user:1", "user:2")))
	assert.True(t, call(t, server, "get", "user:1").IsNull())
	assert.True(t, kv.Integer(1).Equals(call(t, server, "del", "user:2", "missing")))
	assert.Equal(t, kv.TypeError, call(t, server, "rename", "user:2", "user:3").Type())
}

func TestServer_KindVerbs(t *testing.T) {
	t.Parallel()

	server := newServer(t, backend.Etcd)

	assert.True(t, kv.StringOf("OK").Equals(call(t, server, "put", "a", "1")))
	assert.True(t, kv.StringOf("OK").Equals(call(t, server, "PUT", "b", "2")))
	assert.Equal(t, kv.TypeError, call(t, server, "set", "c", "3").Type())
	assert.True(t, kv.Integer(2).Equals(call(t, server, "DBSIZE")))
}

func TestServer_Scan(t *testing.T) {
	t.Parallel()

	server := newServer(t, backend.LMDB)

	for _, key := range []string{"user:1", "user:2", "user:3", "order:1"} {
		call(t, server, "set", key, "x")
	}

	reply := call(t, server, "SCAN", "0", "MATCH", "user:*", "COUNT", "2")
	expected := kv.Array(kv.StringOf("2"), kv.Array(kv.StringOf("user:1"), kv.StringOf("user:2")))
	assert.True(t, expected.Equals(reply), "got %s", reply.String(" "))

	reply = call(t, server, "SCAN", "2", "MATCH", "user:*", "COUNT", "2")
	expected = kv.Array(kv.StringOf("0"), kv.Array(kv.StringOf("user:3")))
	assert.True(t, expected.Equals(reply), "got %s", reply.String(" "))

	reply = call(t, server, "SCAN", "0", "MATCH", "user:*", "COUNT", "9223372036854775807")
	expected = kv.Array(kv.StringOf("0"), kv.Array(kv.StringOf("user:1"), kv.StringOf("user:2"), kv.StringOf("user:3")))
	assert.True(t, expected.Equals(reply), "got %s", reply.String(" "))

	assert.Equal(t, kv.TypeError, call(t, server, "SCAN", "x").Type())
	assert.Equal(t, kv.TypeError, call(t, server, "SCAN", "0", "COUNT").Type())
	assert.Equal(t, 3, call(t, server, "KEYS", "user:*").Len())
}

func TestServer_TTL(t *testing.T) {
	t.Parallel()

	server := newServer(t, backend.RocksDB)

	call(t, server, "set", "k", "v")
	assert.True(t, kv.Integer(-1).Equals(call(t, server, "TTL", "k")))
	assert.True(t, kv.Integer(-2).Equals(call(t, server, "TTL", "missing")))
	assert.True(t, kv.Integer(1).Equals(call(t, server, "EXPIRE", "k", "100")))
	assert.True(t, kv.Integer(0).Equals(call(t, server, "EXPIRE", "missing", "100")))

	ttl, ok := call(t, server, "TTL", "k").Int()
	require.True(t, ok)
	assert.InDelta(t, 100, ttl, 2)
}

func TestServer_InfoAndPing(t *testing.T) {
	t.Parallel()

	server := newServer(t, backend.LevelDB)

	assert.True(t, kv.StringOf("PONG").Equals(call(t, server, "PING")))

	info, ok := call(t, server, "INFO").Str()
	require.True(t, ok)
	assert.Contains(t, info, "backend:leveldb\r\n")
	assert.Contains(t, info, "engine:memory\r\n")

	assert.Equal(t, kv.TypeError, call(t, server, "FLUSHALL").Type())
}

func TestTransport_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	tr, err := newServer(t, backend.RocksDB).Dialer().Dial(ctx)
	require.NoError(t, err)

	frame := resp.AppendCommand(nil, []string{"set", "k", "v"})
	frame = resp.AppendCommand(frame, []string{"get", "k"})

	// Requests may arrive split at any byte.
	require.NoError(t, tr.Send(ctx, frame[:5]))
	require.NoError(t, tr.Send(ctx, frame[5:]))

	data, err := tr.Receive(ctx)
	require.NoError(t, err)

	reader := resp.NewReader(strings.NewReader(string(data)))

	first, err := reader.ReadValue()
	require.NoError(t, err)
	assert.True(t, kv.StringOf("OK").Equals(first))

	second, err := reader.ReadValue()
	require.NoError(t, err)
	assert.True(t, kv.StringOf("v").Equals(second))

	_, err = tr.Receive(ctx)
	require.ErrorIs(t, err, loopback.ErrNoReply)

	require.NoError(t, tr.Close())
	assert.False(t, tr.IsConnected())
	require.ErrorIs(t, tr.Send(ctx, frame), transport.ErrClosed)
}

func TestNewServer_UnknownKind(t *testing.T) {
	t.Parallel()

	_, err := loopback.NewServer(memory.New(), backend.Kind(99), nil)
	require.ErrorIs(t, err, backend.ErrUnknownKind)
}
