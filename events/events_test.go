package events_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvbrowse/kvcore/driver"
	"github.com/kvbrowse/kvcore/events"
	"github.com/kvbrowse/kvcore/kv"
)

func TestNewSender(t *testing.T) {
	t.Parallel()

	first, second := events.NewSender(), events.NewSender()
	assert.NotEqual(t, first, second)
}

func TestFail_MirrorsRequest(t *testing.T) {
	t.Parallel()

	errStopped := errors.New("stopped")
	sender := events.NewSender()
	key := kv.KeyOf("user:1")

	requests := []events.Request{
		events.LoadDatabaseContentRequest{From: sender, Page: driver.PageRequest{Cursor: 3, Pattern: "u*", Limit: 5}},
		events.ExecuteRequest{From: sender, Command: "PING"},
		events.LoadKeyRequest{From: sender, Key: key, ExpectedType: kv.TypeString},
		events.CreateKeyRequest{From: sender, Pair: kv.KeyOnly(key)},
		events.DeleteKeyRequest{From: sender, Key: key},
		events.RenameKeyRequest{From: sender, Key: key, NewKey: kv.KeyStringOf("user:2")},
		events.ServerInfoRequest{From: sender},
		events.ConnectRequest{From: sender},
		events.DisconnectRequest{From: sender},
	}

	for _, req := range requests {
		resp := req.Fail(errStopped)

		assert.Equal(t, sender, resp.Sender())
		require.ErrorIs(t, resp.Failure(), errStopped)
	}

	page, ok := requests[0].Fail(errStopped).(events.LoadDatabaseContentResponse)
	require.True(t, ok)
	assert.Equal(t, uint64(3), page.Page.Request.Cursor)
	assert.Equal(t, "u*", page.Request.Page.Pattern)

	rename, ok := requests[5].Fail(errStopped).(events.RenameKeyResponse)
	require.True(t, ok)
	assert.Equal(t, "user:1", rename.Key.KeyString().Raw())
}
