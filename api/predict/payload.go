package predict

import "github.com/kilianp07/ecoroute/core/model"

// TripPayload is the JSON body of POST /predict. Optional fields are
// pointers so that absent values take their documented defaults.
type TripPayload struct {
	DistanceKm     *float64 `json:"distance_km" validate:"required,gte=0"`
	ElevationGainM *float64 `json:"elevation_gain_m" validate:"omitempty,gte=0"`
	AvgSpeedKph    *float64 `json:"avg_speed_kph"`
	Turns          *int     `json:"turns" validate:"omitempty,gte=0"`
	Humps          *int     `json:"humps" validate:"omitempty,gte=0"`
	WeightKg       *float64 `json:"weight_kg"`
	TrafficIndex   *float64 `json:"traffic_index"`
	RouteType      *string  `json:"route_type"`
	Vehicle        *string  `json:"vehicle"`
}

// Trip converts a validated payload to a TripRequest.
func (p TripPayload) Trip() model.TripRequest {
	var distance float64
	if p.DistanceKm != nil {
		distance = *p.DistanceKm
	}
	req := model.NewTripRequest(distance)
	if p.ElevationGainM != nil {
		req.ElevationGainM = *p.ElevationGainM
	}
	if p.AvgSpeedKph != nil {
		req.AvgSpeedKph = *p.AvgSpeedKph
	}
	if p.Turns != nil {
		req.Turns = *p.Turns
	}
	if p.Humps != nil {
		req.Humps = *p.Humps
	}
	if p.WeightKg != nil {
		req.WeightKg = *p.WeightKg
	}
	if p.TrafficIndex != nil {
		req.TrafficIndex = *p.TrafficIndex
	}
	if p.RouteType != nil {
		req.RouteType = model.ParseRouteType(*p.RouteType)
		req.RouteName = *p.RouteType
	}
	if p.Vehicle != nil {
		req.Vehicle = model.ParseVehicle(*p.Vehicle)
	}
	return req
}
