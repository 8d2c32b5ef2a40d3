package metrics

import "time"

// PredictionEvent describes one answered prediction.
type PredictionEvent struct {
	ID        string        `json:"id"`
	Vehicle   string        `json:"vehicle"`
	RouteType string        `json:"route_type"`
	FuelL     float64       `json:"fuel_l"`
	CO2Kg     float64       `json:"co2_kg"`
	EnergyKWh float64       `json:"energy_kwh,omitempty"`
	Electric  bool          `json:"electric"`
	Latency   time.Duration `json:"latency_ns"`
	Time      time.Time     `json:"time"`
}

// PredictionSink records prediction events for observability purposes.
type PredictionSink interface {
	RecordPrediction(ev PredictionEvent) error
}

// ComparisonEvent captures the outcome of a fast/eco route comparison.
type ComparisonEvent struct {
	ID           string    `json:"id"`
	Vehicle      string    `json:"vehicle"`
	OptimizeFor  string    `json:"optimize_for"`
	Preferred    string    `json:"preferred"`
	FastCO2Kg    float64   `json:"fast_co2_kg"`
	EcoCO2Kg     float64   `json:"eco_co2_kg"`
	SavedPercent float64   `json:"co2_saved_percent"`
	Time         time.Time `json:"time"`
}

// ComparisonRecorder records route comparisons.
type ComparisonRecorder interface {
	RecordComparison(ev ComparisonEvent) error
}

// NopSink implements every recorder with no-op methods.
type NopSink struct{}

func (NopSink) RecordPrediction(PredictionEvent) error { return nil }

func (NopSink) RecordComparison(ComparisonEvent) error { return nil }

// Close releases the resources held by s, if any.
func Close(s PredictionSink) {
	if c, ok := s.(interface{ Close() }); ok {
		c.Close()
	}
}
