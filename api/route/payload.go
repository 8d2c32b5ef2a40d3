package route

import "github.com/kilianp07/ecoroute/core/routing"

// PointPayload is a coordinate as sent by clients.
type PointPayload struct {
	Lat *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng *float64 `json:"lng" validate:"required,gte=-180,lte=180"`
}

func (p PointPayload) point() routing.Point {
	return routing.Point{Lat: *p.Lat, Lng: *p.Lng}
}

// ComparePayload is the JSON body of POST /api/route.
type ComparePayload struct {
	Source      *PointPayload `json:"source" validate:"required"`
	Destination *PointPayload `json:"destination" validate:"required"`
	Vehicle     string        `json:"vehicle"`
	WeightKg    float64       `json:"weight_kg" validate:"gte=0"`
	OptimizeFor string        `json:"optimize_for"`
	// OptimizeForCamel accepts the camelCase key of older clients.
	OptimizeForCamel string `json:"optimizeFor"`
}

// Request converts a validated payload to a routing.Request.
func (p ComparePayload) Request() routing.Request {
	opt := p.OptimizeFor
	if opt == "" {
		opt = p.OptimizeForCamel
	}
	if opt == "" {
		opt = routing.OptimizeCO2
	}
	return routing.Request{
		Source:      p.Source.point(),
		Destination: p.Destination.point(),
		Vehicle:     p.Vehicle,
		WeightKg:    p.WeightKg,
		OptimizeFor: opt,
	}
}
