package resp_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvbrowse/kvcore/backend"
	"github.com/kvbrowse/kvcore/driver"
	"github.com/kvbrowse/kvcore/driver/resp"
	testingUtils "github.com/kvbrowse/kvcore/internal/testing"
	"github.com/kvbrowse/kvcore/kv"
	wire "github.com/kvbrowse/kvcore/protocol/resp"
	"github.com/kvbrowse/kvcore/transport"
)

var errBroken = errors.New("connection reset")

// handler answers one decoded request with a kv.Value or an error.
type handler func(args []string) any

func responder(t *testing.T, h handler) testingUtils.Responder {
	t.Helper()

	return func(request []byte) any {
		args, err := wire.NewReader(bytes.NewReader(request)).ReadCommand()
		if err != nil {
			t.Errorf("failed to decode request %q: %s", request, err)
			return nil
		}

		switch reply := h(args).(type) {
		case kv.Value:
			return wire.AppendValue(nil, reply)
		default:
			return reply
		}
	}
}

func connected(t *testing.T, h handler) (*resp.Driver, *testingUtils.MockTransport) {
	t.Helper()

	mock := testingUtils.NewRespondingTransport(t, responder(t, h))

	d, err := resp.New(backend.Redis, mock.Dialer())
	require.NoError(t, err)
	require.NoError(t, d.Connect(context.Background()))

	return d, mock
}

func keyNames(n int) []string {
	names := make([]string, 0, n)
	for i := range n {
		names = append(names, fmt.Sprintf("key%02d", i))
	}

	return names
}

func scanReply(cursor string, names []string) kv.Value {
	items := make([]kv.Value, 0, len(names))
	for _, name := range names {
		items = append(items, kv.StringOf(name))
	}

	return kv.Array(kv.StringOf(cursor), kv.Array(items...))
}

func recorder() (*[]int, driver.ProgressFunc) {
	var got []int

	return &got, func(percent int) { got = append(got, percent) }
}

func TestListKeysPage_TTLFailureIsTolerated(t *testing.T) {
	t.Parallel()

	names := keyNames(10)

	d, mock := connected(t, func(args []string) any {
		switch args[0] {
		case "SCAN":
			assert.Equal(t, []string{"SCAN", "0", "MATCH", "*", "COUNT", "10"}, args)
			return scanReply("17", names)
		case "TTL":
			if args[1] == "key02" {
				return kv.Error("ERR ttl lookup failed")
			}

			return kv.Integer(60)
		case "DBSIZE":
			return kv.Integer(42)
		default:
			return kv.Error("ERR unexpected")
		}
	})

	progress, report := recorder()

	page, err := d.ListKeysPage(context.Background(), driver.PageRequest{Cursor: 0, Pattern: "*", Limit: 10}, report)
	require.NoError(t, err)

	require.Len(t, page.Keys, 10)

	for i, pair := range page.Keys {
		assert.Equal(t, names[i], pair.Key().KeyString().Raw())
		assert.Equal(t, kv.TypeString, pair.Type())

		if i == 2 {
			assert.True(t, pair.Key().TTL().IsNoExpiration())
			continue
		}

		assert.True(t, pair.Key().TTL().Equals(kv.Seconds(60)))
	}

	assert.Equal(t, uint64(17), page.NextCursor)
	assert.True(t, page.HasTotal)
	assert.Equal(t, int64(42), page.Total)
	require.NoError(t, page.Err)
	require.Len(t, page.TTLFailures, 1)
	assert.Equal(t, "key02", page.TTLFailures[0].Raw())
	assert.False(t, page.Interrupted)
	assert.Equal(t, []int{0, 50, 75, 100}, *progress)
	assert.Equal(t, 12, mock.SentCount())
}

func TestExecute_NotConnected(t *testing.T) {
	t.Parallel()

	mock := testingUtils.NewMockTransport(t)

	d, err := resp.New(backend.Redis, mock.Dialer())
	require.NoError(t, err)

	_, err = d.Execute(context.Background(), "GET k")
	require.ErrorIs(t, err, driver.ErrNotConnected)
	assert.Equal(t, 0, mock.SentCount())

	_, err = d.ListKeysPage(context.Background(), driver.PageRequest{}, nil) //nolint:exhaustruct
	require.ErrorIs(t, err, driver.ErrNotConnected)
	assert.Equal(t, 0, mock.SentCount())
}

func TestListKeysPage_Interrupted(t *testing.T) {
	t.Parallel()

	names := keyNames(10)
	lookups := 0

	var d *resp.Driver

	d, mock := connected(t, func(args []string) any {
		switch args[0] {
		case "SCAN":
			return scanReply("0", names)
		case "TTL":
			lookups++
			if lookups == 5 {
				d.SetInterrupted(true)
			}

			return kv.Integer(30)
		default:
			t.Errorf("unexpected command %v", args)
			return kv.Error("ERR unexpected")
		}
	})

	progress, report := recorder()

	page, err := d.ListKeysPage(context.Background(), driver.PageRequest{Cursor: 0, Pattern: "*", Limit: 10}, report)
	require.NoError(t, err)

	require.Len(t, page.Keys, 10)
	assert.True(t, page.Interrupted)
	assert.False(t, page.HasTotal)

	for i, pair := range page.Keys {
		assert.Equal(t, names[i], pair.Key().KeyString().Raw())

		if i < 5 {
			assert.True(t, pair.Key().TTL().Equals(kv.Seconds(30)))
		} else {
			assert.True(t, pair.Key().TTL().IsUnknown())
		}
	}

	assert.Equal(t, 6, mock.SentCount())
	assert.Equal(t, []int{0, 50, 75, 100}, *progress)
	assert.False(t, d.IsInterrupted())
}

func TestListKeysPage_TransportFailureAborts(t *testing.T) {
	t.Parallel()

	mock := testingUtils.NewMockTransport(t,
		wire.AppendValue(nil, scanReply("0", keyNames(3))),
		errBroken,
	)

	d, err := resp.New(backend.Redis, mock.Dialer())
	require.NoError(t, err)
	require.NoError(t, d.Connect(context.Background()))

	progress, report := recorder()

	_, err = d.ListKeysPage(context.Background(), driver.PageRequest{}, report) //nolint:exhaustruct
	require.ErrorIs(t, err, errBroken)
	require.ErrorIs(t, err, driver.ErrConnectionLost)
	assert.True(t, transport.IsError(err))
	assert.Equal(t, []int{0, 50, 100}, *progress)
	assert.Equal(t, 2, mock.SentCount())
	assert.Equal(t, driver.StateDisconnected, d.State())
}

func TestListKeysPage_ScanFailureFinishesProgress(t *testing.T) {
	t.Parallel()

	mock := testingUtils.NewMockTransport(t, errBroken)

	d, err := resp.New(backend.Redis, mock.Dialer())
	require.NoError(t, err)
	require.NoError(t, d.Connect(context.Background()))

	progress, report := recorder()

	page, err := d.ListKeysPage(context.Background(), driver.PageRequest{}, report) //nolint:exhaustruct
	require.ErrorIs(t, err, driver.ErrConnectionLost)
	assert.Empty(t, page.Keys)
	assert.Equal(t, []int{0, 100}, *progress)
	assert.Equal(t, 1, mock.SentCount())
}

func TestListKeysPage_CountFailureIsCarried(t *testing.T) {
	t.Parallel()

	d, _ := connected(t, func(args []string) any {
		switch args[0] {
		case "SCAN":
			return scanReply("0", keyNames(2))
		case "TTL":
			return kv.Integer(-1)
		default:
			return kv.Error("ERR DBSIZE is disabled")
		}
	})

	page, err := d.ListKeysPage(context.Background(), driver.PageRequest{}, nil) //nolint:exhaustruct
	require.NoError(t, err)

	require.Len(t, page.Keys, 2)
	assert.True(t, page.Keys[0].Key().TTL().IsNoExpiration())
	assert.False(t, page.HasTotal)
	require.ErrorIs(t, page.Err, driver.ErrServer)
	assert.Contains(t, page.Err.Error(), "DBSIZE is disabled")
}

func TestListKeysPage_MalformedScanIsEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		reply kv.Value
	}{
		{"string", kv.StringOf("garbage")},
		{"short array", kv.Array(kv.StringOf("0"))},
		{"bad cursor", kv.Array(kv.StringOf("next"), kv.Array())},
		{"error reply", kv.Error("ERR unknown command 'SCAN'")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d, mock := connected(t, func([]string) any { return tc.reply })

			progress, report := recorder()

			page, err := d.ListKeysPage(context.Background(), driver.PageRequest{Cursor: 5}, report) //nolint:exhaustruct
			require.NoError(t, err)
			assert.Empty(t, page.Keys)
			assert.Equal(t, uint64(0), page.NextCursor)
			assert.Equal(t, 1, mock.SentCount())
			assert.Equal(t, []int{0, 100}, *progress)
		})
	}
}

func TestListKeysPage_DefaultRequest(t *testing.T) {
	t.Parallel()

	d, _ := connected(t, func(args []string) any {
		switch args[0] {
		case "SCAN":
			assert.Equal(t, []string{"SCAN", "0", "MATCH", "*", "COUNT", "10"}, args)
			return scanReply("0", nil)
		default:
			return kv.Integer(0)
		}
	})

	page, err := d.ListKeysPage(context.Background(), driver.PageRequest{}, nil) //nolint:exhaustruct
	require.NoError(t, err)
	assert.Empty(t, page.Keys)
	assert.Equal(t, "*", page.Request.Pattern)
	assert.Equal(t, driver.DefaultPageLimit, page.Request.Limit)
	assert.True(t, page.HasTotal)
}

func TestExecute(t *testing.T) {
	t.Parallel()

	d, mock := connected(t, func(args []string) any {
		switch args[0] {
		case "GET":
			return kv.StringOf("hello world")
		default:
			return kv.Error("ERR unknown command '" + args[0] + "'")
		}
	})

	ctx := context.Background()

	value, err := d.Execute(ctx, "GET user:1")
	require.NoError(t, err)
	assert.True(t, value.Equals(kv.StringOf("hello world")))
	assert.Equal(t, "*2\r\n$3\r\nGET\r\n$6\r\nuser:1\r\n", mock.SentStrings()[0])

	value, err = d.Execute(ctx, "FLUSHALL")
	var serverErr driver.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, "flushall", serverErr.Command)
	assert.Equal(t, kv.TypeError, value.Type())

	_, err = d.Execute(ctx, "   ")
	require.ErrorIs(t, err, driver.ErrInvalidArgument)

	_, err = d.Execute(ctx, `GET "unterminated`)
	require.ErrorIs(t, err, driver.ErrInvalidArgument)

	assert.Equal(t, 2, mock.SentCount())
}

func TestExecute_ConnectionLost(t *testing.T) {
	t.Parallel()

	d, mock := connected(t, func([]string) any { return kv.StringOf("PONG") })

	mock.FailSends(errBroken)
	mock.SetConnected(false)

	_, err := d.Execute(context.Background(), "PING")
	require.ErrorIs(t, err, errBroken)
	require.ErrorIs(t, err, driver.ErrConnectionLost)
	assert.Equal(t, driver.StateDisconnected, d.State())
	assert.Positive(t, mock.Closed())

	_, err = d.Execute(context.Background(), "PING")
	require.ErrorIs(t, err, driver.ErrNotConnected)
}

func TestConnect(t *testing.T) {
	t.Parallel()

	mock := testingUtils.NewMockTransport(t)
	attempts := 0

	dialer := transport.DialerFunc(func(ctx context.Context) (transport.Transport, error) {
		attempts++
		if attempts == 1 {
			return nil, errBroken
		}

		return mock.Dialer().Dial(ctx)
	})

	d, err := resp.New(backend.KeyDB, dialer)
	require.NoError(t, err)
	assert.Equal(t, driver.StateDisconnected, d.State())

	err = d.Connect(context.Background())

	var connErr driver.ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, "keydb", connErr.Backend)
	require.ErrorIs(t, err, errBroken)
	assert.Equal(t, driver.StateDisconnected, d.State())

	require.NoError(t, d.Connect(context.Background()))
	assert.Equal(t, driver.StateConnected, d.State())

	require.NoError(t, d.Connect(context.Background()))
	assert.Equal(t, 2, attempts)

	d.Disconnect()
	assert.Equal(t, driver.StateDisconnected, d.State())
	assert.Equal(t, 1, mock.Closed())

	d.Disconnect()
	assert.Equal(t, 1, mock.Closed())
}

func TestKeyOperations(t *testing.T) {
	t.Parallel()

	store := map[string]string{"user:1": "hello world"}

	d, mock := connected(t, func(args []string) any {
		switch args[0] {
		case "GET":
			value, ok := store[args[1]]
			if !ok {
				return kv.Null()
			}

			return kv.StringOf(value)
		case "SET":
			store[args[1]] = strings.Join(args[2:], " ")
			return kv.StringOf("OK")
		case "DEL":
			_, ok := store[args[1]]
			delete(store, args[1])

			if ok {
				return kv.Integer(1)
			}

			return kv.Integer(0)
		case "RENAME":
			store[args[2]] = store[args[1]]
			delete(store, args[1])

			return kv.StringOf("OK")
		case "TTL":
			return kv.Integer(-2)
		default:
			return kv.Error("ERR unexpected")
		}
	})

	ctx := context.Background()
	key := kv.KeyOf("user:2")

	require.NoError(t, d.CreateKey(ctx, kv.NewKeyValue(key, kv.StringOf("hello world"))))
	assert.Equal(t, "hello world", store["user:2"])
	assert.Equal(t, wire.AppendCommand(nil, []string{"SET", "user:2", "hello world"}), mock.Sent[0])

	pair, err := d.LoadKey(ctx, key, kv.TypeString)
	require.NoError(t, err)
	assert.True(t, pair.Value().UnwrapOr(kv.Null()).Equals(kv.StringOf("hello world")))

	missing, err := d.LoadKey(ctx, kv.KeyOf("nope"), kv.TypeString)
	require.NoError(t, err)
	assert.False(t, missing.Value().IsSome())

	renamed, err := d.RenameKey(ctx, key, kv.KeyStringOf("user:3"))
	require.NoError(t, err)
	assert.Equal(t, "user:3", renamed.KeyString().Raw())

	deleted, err := d.DeleteKey(ctx, renamed)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = d.DeleteKey(ctx, renamed)
	require.NoError(t, err)
	assert.False(t, deleted)

	ttl, err := d.KeyTTL(ctx, kv.KeyStringOf("user:1"))
	require.NoError(t, err)
	assert.True(t, ttl.IsExpired())

	require.ErrorIs(t, d.CreateKey(ctx, kv.NewKeyValue(kv.KeyOf(""), kv.StringOf("x"))), driver.ErrInvalidArgument)

	_, err = d.RenameKey(ctx, key, kv.KeyStringOf(""))
	require.ErrorIs(t, err, driver.ErrInvalidArgument)
}

func TestServerInfo(t *testing.T) {
	t.Parallel()

	d, _ := connected(t, func(args []string) any {
		switch args[0] {
		case "INFO":
			return kv.StringOf("# Server\r\nredis_version:7.2.4\r\nuptime_in_seconds:12\r\n\r\n# Keyspace\r\ndb0:keys=3,expires=0\r\n")
		case "DBSIZE":
			return kv.Integer(3)
		default:
			return kv.Error("ERR unexpected")
		}
	})

	ctx := context.Background()

	info, err := d.ServerInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"redis_version":     "7.2.4",
		"uptime_in_seconds": "12",
		"db0":               "keys=3,expires=0",
	}, info)

	db, err := d.CurrentDatabaseInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, driver.DatabaseInfo{Name: "db0", Keys: 3}, db)

	assert.Equal(t, ":", d.NsSeparator())
	assert.Equal(t, "\n", d.Delimiter())
}

func TestNew_UnsupportedKind(t *testing.T) {
	t.Parallel()

	_, err := resp.New(backend.Memcached, testingUtils.FailingDialer(errBroken))
	require.ErrorIs(t, err, resp.ErrUnsupportedKind)

	_, err = resp.New(backend.Kind(99), testingUtils.FailingDialer(errBroken))
	require.ErrorIs(t, err, resp.ErrUnsupportedKind)
}
