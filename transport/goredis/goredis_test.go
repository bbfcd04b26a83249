package goredis_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvbrowse/kvcore/kv"
	"github.com/kvbrowse/kvcore/protocol/resp"
	"github.com/kvbrowse/kvcore/transport"
	"github.com/kvbrowse/kvcore/transport/goredis"
)

type reply struct {
	val any
	err error
}

// fakeClient answers commands from a table keyed by the command line.
type fakeClient struct {
	replies map[string]reply
	calls   []string
	closed  bool
}

func (c *fakeClient) Do(ctx context.Context, args ...any) *redis.Cmd {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, arg.(string)) //nolint:forcetypeassert
	}

	line := strings.Join(parts, " ")
	c.calls = append(c.calls, line)

	cmd := redis.NewCmd(ctx, args...)

	r, ok := c.replies[line]
	if !ok {
		cmd.SetErr(errors.New("connection reset"))
		return cmd
	}

	if r.err != nil {
		cmd.SetErr(r.err)
	} else {
		cmd.SetVal(r.val)
	}

	return cmd
}

func (c *fakeClient) Close() error {
	c.closed = true
	return nil
}

type serverError string

func (e serverError) Error() string { return string(e) }
func (e serverError) RedisError()   {}

func roundTrip(t *testing.T, tr transport.Transport, args ...string) kv.Value {
	t.Helper()

	ctx := context.Background()
	require.NoError(t, tr.Send(ctx, resp.AppendCommand(nil, args)))

	data, err := tr.Receive(ctx)
	require.NoError(t, err)

	value, err := resp.NewReader(strings.NewReader(string(data))).ReadValue()
	require.NoError(t, err)

	return value
}

func TestTransport_Replies(t *testing.T) {
	t.Parallel()

	client := &fakeClient{replies: map[string]reply{
		"GET user:1":     {val: "hello world"},
		"GET missing":    {err: redis.Nil},
		"TTL user:1":     {val: int64(-1)},
		"BAD":            {err: serverError("ERR unknown command 'BAD'")},
		"SCAN 0 COUNT 2": {val: []any{"0", []any{"a", "b"}}},
	}}
	tr := goredis.New(client)

	tests := []struct {
		args     []string
		expected kv.Value
	}{
		{[]string{"GET", "user:1"}, kv.StringOf("hello world")},
		{[]string{"GET", "missing"}, kv.Null()},
		{[]string{"TTL", "user:1"}, kv.Integer(-1)},
		{[]string{"BAD"}, kv.Error("ERR unknown command 'BAD'")},
		{[]string{"SCAN", "0", "COUNT", "2"}, kv.Array(kv.StringOf("0"), kv.Array(kv.StringOf("a"), kv.StringOf("b")))},
	}

	for _, tt := range tests {
		got := roundTrip(t, tr, tt.args...)
		assert.True(t, tt.expected.Equals(got), "%v: got %s", tt.args, got.String(" "))
	}
}

func TestTransport_NetworkFailure(t *testing.T) {
	t.Parallel()

	tr := goredis.New(&fakeClient{replies: map[string]reply{}})

	err := tr.Send(context.Background(), resp.AppendCommand(nil, []string{"PING"}))
	require.Error(t, err)
	assert.True(t, transport.IsError(err))

	_, err = tr.Receive(context.Background())
	require.ErrorIs(t, err, goredis.ErrNoReply)
}

func TestTransport_Close(t *testing.T) {
	t.Parallel()

	client := &fakeClient{replies: map[string]reply{}}
	tr := goredis.New(client)

	require.NoError(t, tr.Close())
	require.NoError(t, tr.Close())
	assert.True(t, client.closed)
	assert.False(t, tr.IsConnected())
	require.ErrorIs(t, tr.Send(context.Background(), []byte("PING\r\n")), transport.ErrClosed)
}

func TestToValue(t *testing.T) {
	t.Parallel()

	got := goredis.ToValue(map[any]any{"b": int64(2), "a": 1.5})
	expected := kv.Map(
		kv.MapEntry{Key: kv.StringOf("a"), Value: kv.Float(1.5)},
		kv.MapEntry{Key: kv.StringOf("b"), Value: kv.Integer(2)},
	)
	assert.True(t, expected.Equals(got))
	assert.True(t, kv.Bool(true).Equals(goredis.ToValue(true)))
	assert.True(t, kv.Null().Equals(goredis.ToValue(nil)))
}

func TestConfig_Options(t *testing.T) {
	t.Parallel()

	opts, err := goredis.Config{URL: "redis://:secret@localhost:6380/2"}.Options() //nolint:exhaustruct
	require.NoError(t, err)
	assert.Equal(t, "localhost:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 2, opts.Protocol)

	opts, err = goredis.Config{Address: "127.0.0.1:6379", DialTimeout: time.Second}.Options() //nolint:exhaustruct
	require.NoError(t, err)
	assert.Equal(t, time.Second, opts.DialTimeout)

	_, err = goredis.Config{}.Options() //nolint:exhaustruct
	require.ErrorIs(t, err, transport.ErrNoEndpoint)
}

func TestDialer_Integration(t *testing.T) {
	t.Parallel()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set, skipping Redis tests")
	}

	tr, err := goredis.NewDialer(goredis.Config{URL: redisURL}).Dial(context.Background()) //nolint:exhaustruct
	require.NoError(t, err)

	defer tr.Close()

	assert.True(t, kv.StringOf("PONG").Equals(roundTrip(t, tr, "PING")))
}
