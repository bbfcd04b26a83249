package resp_test

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvbrowse/kvcore/backend"
	"github.com/kvbrowse/kvcore/driver"
	"github.com/kvbrowse/kvcore/driver/resp"
	"github.com/kvbrowse/kvcore/internal/mocks"
	wire "github.com/kvbrowse/kvcore/protocol/resp"
	"github.com/kvbrowse/kvcore/transport"
)

func mockDialer(tr transport.Transport) transport.Dialer {
	return transport.DialerFunc(func(context.Context) (transport.Transport, error) {
		return tr, nil
	})
}

func TestExecute_ReceiveTimeoutClosesTransport(t *testing.T) {
	t.Parallel()

	var (
		ctx       = context.Background()
		mc        = minimock.NewController(t)
		tr        = mocks.NewTransportMock(mc)
		connected atomic.Bool
	)

	connected.Store(true)

	tr.SendMock.Set(func(_ context.Context, data []byte) error {
		assert.Equal(t, wire.AppendCommand(nil, []string{"GET", "user:1"}), data)
		return nil
	})
	tr.ReceiveMock.Return(nil, fmt.Errorf("read tcp: %w", os.ErrDeadlineExceeded))
	tr.IsConnectedMock.Set(connected.Load)
	tr.CloseMock.Set(func() error {
		connected.Store(false)
		return nil
	})

	d, err := resp.New(backend.Redis, mockDialer(tr))
	require.NoError(t, err)
	require.NoError(t, d.Connect(ctx))

	_, err = d.Execute(ctx, "GET user:1")
	require.ErrorIs(t, err, driver.ErrConnectionLost)
	assert.Equal(t, driver.StateDisconnected, d.State())
	assert.Positive(t, tr.CloseAfterCounter())
	assert.Len(t, tr.SendMock.Calls(), 1)

	_, err = d.Execute(ctx, "GET user:1")
	require.ErrorIs(t, err, driver.ErrNotConnected)
	assert.Len(t, tr.SendMock.Calls(), 1)
}

func TestExecute_ErrorReplyKeepsConnection(t *testing.T) {
	t.Parallel()

	var (
		ctx = context.Background()
		mc  = minimock.NewController(t)
		tr  = mocks.NewTransportMock(mc)
	)

	tr.SendMock.Return(nil)
	tr.ReceiveMock.Return([]byte("-ERR unknown command 'FOO'\r\n"), nil)
	tr.IsConnectedMock.Optional().Return(true)
	tr.CloseMock.Expect().Times(1).Return(nil)

	d, err := resp.New(backend.Redis, mockDialer(tr))
	require.NoError(t, err)
	require.NoError(t, d.Connect(ctx))

	_, err = d.Execute(ctx, "FOO")
	require.ErrorIs(t, err, driver.ErrServer)
	assert.Equal(t, driver.StateConnected, d.State())

	d.Disconnect()
	assert.Equal(t, driver.StateDisconnected, d.State())
}
