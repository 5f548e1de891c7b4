package metrics_test

import (
	"testing"

	"github.com/KirkDiggler/nexus-classes/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCountersIncrement(t *testing.T) {
	before := testutil.ToFloat64(metrics.RuleFired.WithLabelValues("builder.no_fall_damage", "perk"))
	metrics.RuleFired.WithLabelValues("builder.no_fall_damage", "perk").Inc()
	after := testutil.ToFloat64(metrics.RuleFired.WithLabelValues("builder.no_fall_damage", "perk"))

	assert.Equal(t, before+1, after)
}
