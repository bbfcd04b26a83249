package log_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kvbrowse/kvcore/internal/log"
)

func TestNew(t *testing.T) {
	t.Parallel()

	for _, env := range []string{"dev", log.EnvProduction} {
		logger, err := log.New(env)
		require.NoError(t, err)
		assert.NotNil(t, logger)
	}

	prod, err := log.New(log.EnvProduction)
	require.NoError(t, err)
	assert.False(t, prod.Core().Enabled(zap.DebugLevel))

	dev, err := log.New("dev")
	require.NoError(t, err)
	assert.True(t, dev.Core().Enabled(zap.DebugLevel))
}

func TestWithLevel(t *testing.T) {
	t.Parallel()

	logger, err := log.WithLevel("dev", "warn")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.ErrorLevel))

	_, err = log.WithLevel("dev", "loud")
	require.Error(t, err)
}
