// Package metrics defines the observability sinks fed by the prediction
// engine. Sinks record one PredictionEvent per answered request and, when
// they implement ComparisonRecorder, one ComparisonEvent per route
// comparison. Concrete sinks live in infra/metrics and register themselves
// by type name; NewSink builds a MultiSink when several are configured.
package metrics
