package testing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testingUtils "github.com/kvbrowse/kvcore/internal/testing"
)

var errBroken = errors.New("broken")

func TestMockTransport_Script(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mock := testingUtils.NewMockTransport(t, "+OK\r\n", errBroken)

	require.NoError(t, mock.Send(ctx, []byte("PING\r\n")))

	data, err := mock.Receive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "+OK\r\n", string(data))

	_, err = mock.Receive(ctx)
	require.ErrorIs(t, err, errBroken)

	assert.Equal(t, []string{"PING\r\n"}, mock.SentStrings())
	assert.Equal(t, 0, mock.Pending())
}

func TestMockTransport_Responder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mock := testingUtils.NewRespondingTransport(t, func(request []byte) any {
		return "echo " + string(request)
	})

	require.NoError(t, mock.Send(ctx, []byte("a")))

	data, err := mock.Receive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "echo a", string(data))
}

func TestMockTransport_FailSends(t *testing.T) {
	t.Parallel()

	mock := testingUtils.NewMockTransport(t)
	mock.FailSends(errBroken)

	require.ErrorIs(t, mock.Send(context.Background(), []byte("x")), errBroken)
	assert.Equal(t, 1, mock.SentCount())
}

func TestMockTransport_CloseAndDial(t *testing.T) {
	t.Parallel()

	mock := testingUtils.NewMockTransport(t)
	require.NoError(t, mock.Close())
	assert.False(t, mock.IsConnected())
	assert.Equal(t, 1, mock.Closed())

	tr, err := mock.Dialer().Dial(context.Background())
	require.NoError(t, err)
	assert.True(t, tr.IsConnected())

	_, err = testingUtils.FailingDialer(errBroken).Dial(context.Background())
	require.ErrorIs(t, err, errBroken)
}
