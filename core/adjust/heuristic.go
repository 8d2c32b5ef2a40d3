package adjust

import "github.com/kilianp07/ecoroute/core/model"

const (
	slowSpeedKph      = 30.0
	slowFactor        = 1.10
	fastSpeedKph      = 100.0
	fastFactor        = 1.15
	turnDensityLimit  = 2.0
	turnDensityFactor = 1.05
	trafficStep       = 0.1
	ecoRouteFactor    = 0.93
)

// Heuristic is the combined multiplier applied to the raw baseline when
// route heuristics are enabled. RouteOther gets no route factor.
func Heuristic(req model.TripRequest) float64 {
	h := 1.0
	switch {
	case req.AvgSpeedKph < slowSpeedKph:
		h *= slowFactor
	case req.AvgSpeedKph > fastSpeedKph:
		h *= fastFactor
	}
	if req.DistanceKm > 0 && float64(req.Turns)/req.DistanceKm > turnDensityLimit {
		h *= turnDensityFactor
	}
	if req.TrafficIndex > 1 {
		h *= 1 + trafficStep*(req.TrafficIndex-1)
	}
	if req.RouteType == model.RouteEco {
		h *= ecoRouteFactor
	}
	return h
}
