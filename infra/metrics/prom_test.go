package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/kilianp07/ecoroute/core/metrics"
)

func TestPromSink_RecordPrediction(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	require.NoError(t, sink.RecordPrediction(coremetrics.PredictionEvent{
		Vehicle: "car", RouteType: "eco", FuelL: 2, CO2Kg: 4.5, Latency: 2 * time.Millisecond,
	}))
	require.NoError(t, sink.RecordPrediction(coremetrics.PredictionEvent{
		Vehicle: "ev", RouteType: "fast", EnergyKWh: 20, Electric: true,
	}))

	expected := `
# HELP ecoroute_predictions_total Total number of answered predictions
# TYPE ecoroute_predictions_total counter
ecoroute_predictions_total{route_type="eco",vehicle="car"} 1
ecoroute_predictions_total{route_type="fast",vehicle="ev"} 1
`
	assert.NoError(t, testutil.CollectAndCompare(sink.predictions, strings.NewReader(expected)))
	assert.Equal(t, 4.5, testutil.ToFloat64(sink.co2.WithLabelValues("car")))
	assert.Equal(t, 2.0, testutil.ToFloat64(sink.fuel.WithLabelValues("car")))
	assert.Equal(t, 20.0, testutil.ToFloat64(sink.energy.WithLabelValues("ev")))
	assert.Equal(t, 2, testutil.CollectAndCount(sink.latency))
}

func TestPromSink_RecordComparison(t *testing.T) {
	sink, err := NewPromSinkWithRegistry(prometheus.NewRegistry())
	require.NoError(t, err)
	require.NoError(t, sink.RecordComparison(coremetrics.ComparisonEvent{Vehicle: "car", Preferred: "eco", SavedPercent: 12}))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.comparisons.WithLabelValues("car", "eco")))
	assert.Equal(t, 1, testutil.CollectAndCount(sink.saved))
}

func TestPromSink_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	b, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	require.NoError(t, a.RecordPrediction(coremetrics.PredictionEvent{Vehicle: "van", RouteType: "fast"}))
	assert.Equal(t, 1.0, testutil.ToFloat64(b.predictions.WithLabelValues("van", "fast")))
}

func TestRegisterDropCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	var n uint64 = 3
	require.NoError(t, RegisterDropCounter(reg, func() uint64 { return n }))
	// Registering twice reuses the existing collector.
	require.NoError(t, RegisterDropCounter(reg, func() uint64 { return 0 }))

	n = 7
	expected := `
# HELP ecoroute_metric_events_dropped_total Prediction and comparison events dropped before reaching the sinks
# TYPE ecoroute_metric_events_dropped_total counter
ecoroute_metric_events_dropped_total 7
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "ecoroute_metric_events_dropped_total"))
}
