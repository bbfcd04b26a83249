package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvbrowse/kvcore/engine"
	"github.com/kvbrowse/kvcore/engine/enginetest"
	"github.com/kvbrowse/kvcore/engine/memory"
)

func TestEngine(t *testing.T) {
	t.Parallel()

	enginetest.Run(t, func(*testing.T) engine.Engine { return memory.New() }, enginetest.Options{NoTTL: false})
}

func TestEngine_Expiration(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Unix(1_700_000_000, 0)
	e := memory.NewWithClock(func() time.Time { return now })

	require.NoError(t, e.Set(ctx, []byte("k"), []byte("v")))
	require.NoError(t, e.Expire(ctx, []byte("k"), 90*time.Second))

	ttl, err := e.TTL(ctx, []byte("k"))
	require.NoError(t, err)

	seconds, ok := ttl.Seconds()
	require.True(t, ok)
	assert.Equal(t, int64(90), seconds)

	now = now.Add(91 * time.Second)

	_, err = e.Get(ctx, []byte("k"))
	require.ErrorIs(t, err, engine.ErrNotFound)

	count, err := e.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestEngine_Closed(t *testing.T) {
	t.Parallel()

	e := memory.New()
	require.NoError(t, e.Close())

	_, err := e.Get(context.Background(), []byte("k"))
	require.ErrorIs(t, err, engine.ErrClosed)
}
