package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvbrowse/kvcore/internal/metrics"
)

func TestCollectors(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()

	c, err := metrics.New(reg)
	require.NoError(t, err)

	c.ObserveCommand("redis", "get", metrics.StatusOK, time.Millisecond)
	c.ObserveCommand("redis", "get", metrics.StatusOK, time.Millisecond)
	c.ObservePage("redis", "complete")
	c.Connected("redis", 1)

	// Second registration shares the collectors.
	other, err := metrics.New(reg)
	require.NoError(t, err)
	other.ObserveCommand("redis", "get", metrics.StatusOK, time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, family := range families {
		names = append(names, family.GetName())

		if family.GetName() == "kvcore_driver_commands_total" {
			require.Len(t, family.GetMetric(), 1)
			assert.InDelta(t, 3, family.GetMetric()[0].GetCounter().GetValue(), 0)
		}
	}

	assert.Contains(t, names, "kvcore_driver_commands_total")
	assert.Contains(t, names, "kvcore_driver_pages_total")
	count, err := testutil.GatherAndCount(reg, "kvcore_driver_connected")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCollectors_Nil(t *testing.T) {
	t.Parallel()

	var c *metrics.Collectors

	assert.NotPanics(t, func() {
		c.ObserveCommand("redis", "get", metrics.StatusOK, time.Millisecond)
		c.ObservePage("redis", "failed")
		c.Connected("redis", -1)
	})
}
