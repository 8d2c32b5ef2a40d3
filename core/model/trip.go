package model

// Defaults applied to optional TripRequest fields.
const (
	DefaultAvgSpeedKph  = 50.0
	DefaultWeightKg     = 1000.0
	DefaultTrafficIndex = 1.0
)

// TripRequest describes one route to estimate.
type TripRequest struct {
	DistanceKm     float64
	ElevationGainM float64
	AvgSpeedKph    float64
	Turns          int
	Humps          int
	// WeightKg is accepted for compatibility but superseded by the vehicle profile.
	WeightKg     float64
	TrafficIndex float64
	RouteType    RouteType
	// RouteName keeps the strategy name as received, for logging.
	RouteName string
	Vehicle   VehicleKind
}

// NewTripRequest returns a request for the given distance with every optional
// field set to its default.
func NewTripRequest(distanceKm float64) TripRequest {
	return TripRequest{
		DistanceKm:   distanceKm,
		AvgSpeedKph:  DefaultAvgSpeedKph,
		WeightKg:     DefaultWeightKg,
		TrafficIndex: DefaultTrafficIndex,
		RouteType:    RouteFast,
		RouteName:    "fast",
		Vehicle:      VehicleCar,
	}
}

// Profile resolves the vehicle profile of the request.
func (r TripRequest) Profile() VehicleProfile { return r.Vehicle.Profile() }
