package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/ecoroute/core/metrics"
)

// PromSink records predictions in Prometheus metrics.
type PromSink struct {
	predictions *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	co2         *prometheus.CounterVec
	fuel        *prometheus.CounterVec
	energy      *prometheus.CounterVec
	comparisons *prometheus.CounterVec
	saved       prometheus.Histogram
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer. Collectors
// already present on reg are reused.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	predictions, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ecoroute_predictions_total",
		Help: "Total number of answered predictions",
	}, []string{"vehicle", "route_type"}))
	if err != nil {
		return nil, err
	}
	latency, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ecoroute_prediction_latency_seconds",
		Help:    "Time spent encoding, inferring and adjusting a prediction",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
	}, []string{"vehicle"}))
	if err != nil {
		return nil, err
	}
	co2, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ecoroute_predicted_co2_kg_total",
		Help: "Sum of predicted CO2 emissions in kg",
	}, []string{"vehicle"}))
	if err != nil {
		return nil, err
	}
	fuel, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ecoroute_predicted_fuel_l_total",
		Help: "Sum of predicted fuel consumption in litres",
	}, []string{"vehicle"}))
	if err != nil {
		return nil, err
	}
	energy, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ecoroute_predicted_energy_kwh_total",
		Help: "Sum of predicted electric energy in kWh",
	}, []string{"vehicle"}))
	if err != nil {
		return nil, err
	}
	comparisons, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ecoroute_route_comparisons_total",
		Help: "Total number of fast/eco route comparisons",
	}, []string{"vehicle", "preferred"}))
	if err != nil {
		return nil, err
	}
	saved, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ecoroute_co2_saved_percent",
		Help:    "CO2 saved by the eco route relative to the fast route",
		Buckets: prometheus.LinearBuckets(0, 10, 11),
	}))
	if err != nil {
		return nil, err
	}
	return &PromSink{
		predictions: predictions,
		latency:     latency,
		co2:         co2,
		fuel:        fuel,
		energy:      energy,
		comparisons: comparisons,
		saved:       saved,
	}, nil
}

// RegisterDropCounter exposes the number of events the event buses dropped
// because a subscriber was full. A nil registerer defaults to the global one.
func RegisterDropCounter(reg prometheus.Registerer, dropped func() uint64) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	_, err := register(reg, prometheus.NewCounterFunc(prometheus.CounterOpts{
		Name: "ecoroute_metric_events_dropped_total",
		Help: "Prediction and comparison events dropped before reaching the sinks",
	}, func() float64 { return float64(dropped()) }))
	return err
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordPrediction updates counters and the latency histogram.
func (s *PromSink) RecordPrediction(ev coremetrics.PredictionEvent) error {
	s.predictions.WithLabelValues(ev.Vehicle, ev.RouteType).Inc()
	s.latency.WithLabelValues(ev.Vehicle).Observe(ev.Latency.Seconds())
	s.co2.WithLabelValues(ev.Vehicle).Add(ev.CO2Kg)
	if ev.Electric {
		s.energy.WithLabelValues(ev.Vehicle).Add(ev.EnergyKWh)
	} else {
		s.fuel.WithLabelValues(ev.Vehicle).Add(ev.FuelL)
	}
	return nil
}

// RecordComparison counts comparisons and observes the saved percentage.
func (s *PromSink) RecordComparison(ev coremetrics.ComparisonEvent) error {
	s.comparisons.WithLabelValues(ev.Vehicle, ev.Preferred).Inc()
	s.saved.Observe(ev.SavedPercent)
	return nil
}
