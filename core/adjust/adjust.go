package adjust

import (
	"github.com/kilianp07/ecoroute/core/model"
	"github.com/kilianp07/ecoroute/core/regression"
)

// Config toggles the optional adjustment stages.
type Config struct {
	// RouteHeuristics applies the speed, turn, traffic and route multipliers
	// to the raw baseline before vehicle scaling.
	RouteHeuristics bool `json:"route_heuristics"`
}

// Adjuster applies vehicle scaling and EV substitution. The zero value is
// ready to use and leaves route heuristics off.
type Adjuster struct {
	cfg Config
}

// New returns an Adjuster for cfg.
func New(cfg Config) Adjuster {
	return Adjuster{cfg: cfg}
}

// Adjust never fails. EV trips report energy with zero fuel, every other
// vehicle reports fuel with no energy field.
func (a Adjuster) Adjust(raw regression.Output, req model.TripRequest, profile model.VehicleProfile) model.PredictionResult {
	fuel, co2 := raw.FuelL, raw.CO2Kg
	if a.cfg.RouteHeuristics {
		h := Heuristic(req)
		fuel *= h
		co2 *= h
	}
	co2 *= profile.CO2ScaleFactor

	if req.Vehicle.IsElectric() {
		energy := req.DistanceKm * model.EVEnergyPerKm
		return model.PredictionResult{FuelL: 0, EnergyKWh: &energy, CO2Kg: co2}
	}
	return model.PredictionResult{FuelL: fuel, CO2Kg: co2}
}
