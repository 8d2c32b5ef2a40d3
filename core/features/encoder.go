package features

import "github.com/kilianp07/ecoroute/core/model"

// Contract is the name of the feature layout produced by Encode.
const Contract = "trip-v2"

// Names lists the features in vector order.
var Names = []string{
	"distance_km",
	"elevation_gain_m",
	"avg_speed_kph",
	"turns",
	"humps",
	"weight_kg",
	"traffic_index",
	"route_type",
}

// Size is the length of an encoded vector.
var Size = len(Names)

// Encode builds the model input for req. The weight slot always carries the
// profile reference weight; req.WeightKg never reaches the model.
func Encode(req model.TripRequest, profile model.VehicleProfile) []float64 {
	return []float64{
		req.DistanceKm,
		req.ElevationGainM,
		req.AvgSpeedKph,
		float64(req.Turns),
		float64(req.Humps),
		profile.ReferenceWeightKg,
		req.TrafficIndex,
		req.RouteType.Code(),
	}
}
