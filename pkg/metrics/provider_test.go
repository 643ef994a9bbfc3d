package metrics_test

import (
	"context"
	"outreach/pkg/metrics"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestNewMeterProvider_ExportsToRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	counter, err := mp.Meter("test").Int64Counter("outreach.test.events")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, f := range families {
		if strings.HasPrefix(f.GetName(), "outreach_test_events") {
			found = true
			require.InDelta(t, 3, f.GetMetric()[0].GetCounter().GetValue(), 0)
		}
	}
	require.True(t, found, "counter not exported")
}
