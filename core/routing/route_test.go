package routing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/ecoroute/core/model"
)

func line(n int) Geometry {
	g := Geometry{Type: "LineString", Coordinates: make([][2]float64, n)}
	for i := range g.Coordinates {
		g.Coordinates[i] = [2]float64{2.35 + float64(i)*0.001, 48.85}
	}
	return g
}

func TestTripFromRoute(t *testing.T) {
	r := Route{DistanceM: 12000, DurationS: 900, Geometry: line(85)}
	req := TripFromRoute(r, model.RouteEco, "van", 0)

	assert.Equal(t, 12.0, req.DistanceKm)
	assert.Equal(t, 0.0, req.ElevationGainM)
	assert.InDelta(t, 48.0, req.AvgSpeedKph, 1e-9)
	assert.Equal(t, 8, req.Turns)
	assert.Equal(t, 2, req.Humps)
	assert.Equal(t, 2500.0, req.WeightKg)
	assert.Equal(t, 1.0, req.TrafficIndex)
	assert.Equal(t, model.RouteEco, req.RouteType)
	assert.Equal(t, "eco", req.RouteName)
	assert.Equal(t, model.VehicleVan, req.Vehicle)
}

func TestTripFromRouteEdgeCases(t *testing.T) {
	req := TripFromRoute(Route{DistanceM: 500, Geometry: line(3)}, model.RouteFast, "hovercraft", 0)
	assert.Equal(t, 1, req.Turns)
	assert.Equal(t, 0, req.Humps)
	// zero duration counts as one second
	assert.InDelta(t, 0.5*3600, req.AvgSpeedKph, 1e-9)
	assert.Equal(t, 1000.0, req.WeightKg)
	assert.Equal(t, model.VehicleCar, req.Vehicle)

	req = TripFromRoute(Route{DistanceM: 500, DurationS: 60}, model.RouteFast, "bike", 95)
	assert.Equal(t, 95.0, req.WeightKg)
}

func TestDetour(t *testing.T) {
	p := Detour(Point{Lat: 48.0, Lng: 2.0}, Point{Lat: 49.0, Lng: 3.0})
	assert.InDelta(t, 48.51, p.Lat, 1e-9)
	assert.InDelta(t, 2.5, p.Lng, 1e-9)
}

func TestSavedPercent(t *testing.T) {
	assert.Equal(t, 20.0, SavedPercent(2.5, 2.0))
	assert.Equal(t, 0.0, SavedPercent(2.0, 2.5))
	assert.Equal(t, 0.0, SavedPercent(0, 0))
	assert.Equal(t, 0.0, SavedPercent(0, 0.3))
	assert.Equal(t, 33.0, SavedPercent(3, 2))
	assert.Equal(t, 50.0, SavedPercent(1.999, 0.99))
}

func TestComparisonJSONKeys(t *testing.T) {
	fuel := 1.2
	data, err := json.Marshal(Comparison{
		TimeOptimized:   Summary{DistanceKm: 3, FuelL: &fuel},
		CO2SavedPercent: 17,
		PreferredRoute:  "eco",
		Vehicle:         "car",
	})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, 17.0, raw["co2_saved_percent"])
	assert.Equal(t, 17.0, raw["co2SavedPercent"])
	assert.Equal(t, "car", raw["vehicle"])
	fast := raw["time_optimized"].(map[string]any)
	assert.Equal(t, 1.2, fast["fuel_l"])
	assert.NotContains(t, fast, "energy_kwh")
}
