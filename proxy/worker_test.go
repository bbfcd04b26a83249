package proxy_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/kvbrowse/kvcore/backend"
	"github.com/kvbrowse/kvcore/driver"
	"github.com/kvbrowse/kvcore/driver/resp"
	"github.com/kvbrowse/kvcore/engine/memory"
	"github.com/kvbrowse/kvcore/events"
	"github.com/kvbrowse/kvcore/internal/mocks"
	"github.com/kvbrowse/kvcore/kv"
	"github.com/kvbrowse/kvcore/proxy"
	"github.com/kvbrowse/kvcore/transport/loopback"
)

const waitTimeout = 5 * time.Second

func next(t *testing.T, w *proxy.Worker) events.Response {
	t.Helper()

	select {
	case resp, ok := <-w.Responses():
		require.True(t, ok, "responses channel closed")
		return resp
	case <-time.After(waitTimeout):
		t.Fatalf("no response within %s", waitTimeout)
		return nil
	}
}

func loopbackDriver(t *testing.T) *resp.Driver {
	t.Helper()

	server, err := loopback.NewServer(memory.New(), backend.RocksDB, zaptest.NewLogger(t))
	require.NoError(t, err)

	d, err := resp.New(backend.RocksDB, server.Dialer())
	require.NoError(t, err)

	return d
}

func TestWorker_Sequence(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	w := proxy.Start(ctx, loopbackDriver(t), proxy.WithLogger(zaptest.NewLogger(t)))

	defer func() { require.NoError(t, w.Stop()) }()

	tab := events.NewSender()
	key := kv.KeyOf("user:1")

	requests := []events.Request{
		events.ExecuteRequest{From: tab, Command: "PING"},
		events.ConnectRequest{From: tab},
		events.CreateKeyRequest{From: tab, Pair: kv.NewKeyValue(key, kv.StringOf("hello world"))},
		events.LoadKeyRequest{From: tab, Key: key, ExpectedType: kv.TypeString},
		events.LoadDatabaseContentRequest{From: tab, Page: driver.PageRequest{Cursor: 0, Pattern: "*", Limit: 10}},
		events.RenameKeyRequest{From: tab, Key: key, NewKey: kv.KeyStringOf("user:2")},
		events.ServerInfoRequest{From: tab},
		events.DeleteKeyRequest{From: tab, Key: kv.KeyOf("user:2")},
		events.DisconnectRequest{From: tab},
	}

	for _, req := range requests {
		require.NoError(t, w.Submit(ctx, req))
	}

	notConnected, ok := next(t, w).(events.ExecuteResponse)
	require.True(t, ok)
	require.ErrorIs(t, notConnected.Err, driver.ErrNotConnected)

	connected, ok := next(t, w).(events.ConnectResponse)
	require.True(t, ok)
	require.NoError(t, connected.Err)

	created, ok := next(t, w).(events.CreateKeyResponse)
	require.True(t, ok)
	require.NoError(t, created.Err)

	loaded, ok := next(t, w).(events.LoadKeyResponse)
	require.True(t, ok)
	require.NoError(t, loaded.Err)
	assert.Equal(t, "hello world", loaded.Pair.ValueString())

	content, ok := next(t, w).(events.LoadDatabaseContentResponse)
	require.True(t, ok)
	require.NoError(t, content.Err)
	require.Len(t, content.Page.Keys, 1)
	assert.Equal(t, int64(1), content.Page.Total)

	renamed, ok := next(t, w).(events.RenameKeyResponse)
	require.True(t, ok)
	require.NoError(t, renamed.Err)
	assert.Equal(t, "user:2", renamed.Key.KeyString().Raw())

	info, ok := next(t, w).(events.ServerInfoResponse)
	require.True(t, ok)
	require.NoError(t, info.Err)
	assert.Equal(t, "rocksdb", info.Info["backend"])
	assert.Equal(t, int64(1), info.Database.Keys)

	deleted, ok := next(t, w).(events.DeleteKeyResponse)
	require.True(t, ok)
	assert.True(t, deleted.Deleted)

	disconnected, ok := next(t, w).(events.DisconnectResponse)
	require.True(t, ok)
	assert.Equal(t, tab, disconnected.Sender())

	var progress []int

	for len(progress) < 4 {
		select {
		case p := <-w.Progress():
			assert.Equal(t, tab, p.From)
			progress = append(progress, p.Percent)
		case <-time.After(waitTimeout):
			t.Fatalf("missing progress, got %v", progress)
		}
	}

	assert.Equal(t, []int{0, 50, 75, 100}, progress)
}

func TestWorker_Interrupt(t *testing.T) {
	t.Parallel()

	var (
		mc          = minimock.NewController(t)
		d           = mocks.NewDriverMock(mc)
		started     = make(chan struct{})
		interrupted atomic.Bool
	)

	d.SetInterruptedMock.Set(func(value bool) { interrupted.Store(value) })
	d.ListKeysPageMock.Set(func(ctx context.Context, req driver.PageRequest, progress driver.ProgressFunc) (driver.Page, error) {
		progress(driver.ProgressStarted)
		close(started)

		for !interrupted.Load() {
			select {
			case <-ctx.Done():
				return driver.Page{}, ctx.Err() //nolint:exhaustruct
			case <-time.After(time.Millisecond):
			}
		}

		return driver.Page{Request: req, Interrupted: true}, nil //nolint:exhaustruct
	})

	w := proxy.Start(context.Background(), d)

	defer func() { require.NoError(t, w.Stop()) }()

	tab := events.NewSender()
	require.NoError(t, w.Submit(context.Background(), events.LoadDatabaseContentRequest{From: tab})) //nolint:exhaustruct

	select {
	case <-started:
	case <-time.After(waitTimeout):
		t.Fatal("listing did not start")
	}

	w.Interrupt()

	content, ok := next(t, w).(events.LoadDatabaseContentResponse)
	require.True(t, ok)
	require.NoError(t, content.Err)
	assert.True(t, content.Page.Interrupted)
}

func TestWorker_ServerInfo(t *testing.T) {
	t.Parallel()

	var (
		mc    = minimock.NewController(t)
		d     = mocks.NewDriverMock(mc)
		dbErr = errors.New("database lookup failed")
	)

	d.ServerInfoMock.Return(map[string]string{"redis_version": "7.2.4"}, nil)
	d.CurrentDatabaseInfoMock.Return(driver.DatabaseInfo{Name: "db0"}, dbErr) //nolint:exhaustruct

	w := proxy.Start(context.Background(), d)

	defer func() { require.NoError(t, w.Stop()) }()

	require.NoError(t, w.Submit(context.Background(), events.ServerInfoRequest{From: events.NewSender()}))

	info, ok := next(t, w).(events.ServerInfoResponse)
	require.True(t, ok)
	require.ErrorIs(t, info.Err, dbErr)
	assert.Equal(t, "7.2.4", info.Info["redis_version"])
	assert.Equal(t, "db0", info.Database.Name)
}

func TestWorker_ServerInfoFailure(t *testing.T) {
	t.Parallel()

	var (
		mc      = minimock.NewController(t)
		d       = mocks.NewDriverMock(mc)
		infoErr = errors.New("info failed")
	)

	// The database lookup must not run after a failed INFO.
	d.ServerInfoMock.Return(nil, infoErr)

	w := proxy.Start(context.Background(), d)

	defer func() { require.NoError(t, w.Stop()) }()

	require.NoError(t, w.Submit(context.Background(), events.ServerInfoRequest{From: events.NewSender()}))

	resp := next(t, w)
	require.ErrorIs(t, resp.Failure(), infoErr)
	assert.Equal(t, uint64(0), d.CurrentDatabaseInfoBeforeCounter())
}

type unknownRequest struct{ events.ConnectRequest }

func TestWorker_UnsupportedRequest(t *testing.T) {
	t.Parallel()

	w := proxy.Start(context.Background(), loopbackDriver(t))

	defer func() { require.NoError(t, w.Stop()) }()

	require.NoError(t, w.Submit(context.Background(), unknownRequest{}))

	resp := next(t, w)
	require.ErrorIs(t, resp.Failure(), proxy.ErrUnsupportedRequest)
}

func TestWorker_Stop(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	w := proxy.Start(ctx, loopbackDriver(t))

	cancel()
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())

	err := w.Submit(context.Background(), events.ConnectRequest{From: events.NewSender()})
	require.ErrorIs(t, err, proxy.ErrStopped)

	for resp := range w.Responses() {
		require.True(t, errors.Is(resp.Failure(), proxy.ErrStopped))
	}

	_, open := <-w.Progress()
	assert.False(t, open)
}
