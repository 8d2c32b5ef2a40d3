package routing

import (
	"context"
	"errors"
	"math"

	"github.com/kilianp07/ecoroute/core/model"
)

var (
	// ErrNoRoute is returned when the router finds no path between the points.
	ErrNoRoute = errors.New("no route found")
	// ErrRouting wraps failures of the router itself.
	ErrRouting = errors.New("routing failed")
)

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geometry is a GeoJSON LineString. Coordinates are [lng, lat] pairs.
type Geometry struct {
	Type        string       `json:"type"`
	Coordinates [][2]float64 `json:"coordinates"`
}

// Route is one candidate path returned by a Router.
type Route struct {
	DistanceM float64  `json:"distance"`
	DurationS float64  `json:"duration"`
	Geometry  Geometry `json:"geometry"`
}

// Router finds driving routes.
type Router interface {
	// Alternatives returns the fastest route first, followed by any
	// alternatives. It returns ErrNoRoute when the list would be empty.
	Alternatives(ctx context.Context, from, to Point) ([]Route, error)
	// Via returns the fastest route through all points in order.
	Via(ctx context.Context, points ...Point) (Route, error)
}

// detourOffsetDeg shifts the forced waypoint north of the straight line.
const detourOffsetDeg = 0.01

// Detour returns the waypoint used to force a second route when the router
// offers no alternative.
func Detour(from, to Point) Point {
	return Point{
		Lat: (from.Lat+to.Lat)/2 + detourOffsetDeg,
		Lng: (from.Lng + to.Lng) / 2,
	}
}

// TripFromRoute derives the model inputs of a routed path. Elevation is not
// known and stays 0; turns are estimated from the geometry density.
func TripFromRoute(r Route, routeType model.RouteType, vehicle string, weightKg float64) model.TripRequest {
	distanceKm := r.DistanceM / 1000
	duration := r.DurationS
	if duration == 0 {
		duration = 1
	}
	turns := len(r.Geometry.Coordinates) / 10
	if turns < 1 {
		turns = 1
	}

	req := model.NewTripRequest(distanceKm)
	req.AvgSpeedKph = distanceKm / (duration / 3600)
	req.Turns = turns
	req.Humps = turns / 4
	req.RouteType = routeType
	req.RouteName = routeType.String()
	req.Vehicle = model.ParseVehicle(vehicle)
	req.WeightKg = defaultWeight(vehicle, weightKg)
	return req
}

func defaultWeight(vehicle string, weightKg float64) float64 {
	if weightKg > 0 {
		return weightKg
	}
	if k, ok := model.LookupVehicle(vehicle); ok {
		return k.Profile().ReferenceWeightKg
	}
	return model.DefaultWeightKg
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
