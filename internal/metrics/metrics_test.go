package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRegistry(reg)
	require.NotNil(t, r)

	r.Deliveries.WithLabelValues("ntfy", "sent").Inc()
	r.Deliveries.WithLabelValues("ntfy", "sent").Inc()
	r.Deliveries.WithLabelValues("email", "failed").Inc()
	r.DatabaseUp.Set(1)

	assert.Equal(t, float64(2), testutil.ToFloat64(r.Deliveries.WithLabelValues("ntfy", "sent")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.Deliveries.WithLabelValues("email", "failed")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.DatabaseUp))

	count, err := testutil.GatherAndCount(reg, "notifier_delivery_attempts_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNewRegistry_Isolated(t *testing.T) {
	// two registries must not collide on registration
	assert.NotPanics(t, func() {
		NewRegistry(prometheus.NewRegistry())
		NewRegistry(prometheus.NewRegistry())
	})
}
