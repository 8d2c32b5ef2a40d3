package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/kilianp07/ecoroute/core/logger"
	coremetrics "github.com/kilianp07/ecoroute/core/metrics"
	"github.com/kilianp07/ecoroute/core/model"
	"github.com/kilianp07/ecoroute/core/prediction"
)

// Optimization targets accepted in Request.OptimizeFor.
const (
	OptimizeCO2  = "co2"
	OptimizeTime = "time"
)

// Request asks for a fast/eco comparison between two points.
type Request struct {
	Source      Point
	Destination Point
	Vehicle     string
	// WeightKg overrides the vehicle default weight when positive.
	WeightKg    float64
	OptimizeFor string
}

// Summary is the rounded estimate of one route.
type Summary struct {
	DistanceKm  float64  `json:"distance_km"`
	DurationMin float64  `json:"duration_min"`
	CO2Kg       float64  `json:"co2_kg"`
	FuelL       *float64 `json:"fuel_l,omitempty"`
	EnergyKWh   *float64 `json:"energy_kwh,omitempty"`
	Geometry    Geometry `json:"geometry"`
}

// Comparison is the result of Plan.
type Comparison struct {
	TimeOptimized   Summary `json:"time_optimized"`
	EcoOptimized    Summary `json:"eco_optimized"`
	Preferred       Summary `json:"preferred"`
	PreferredRoute  string  `json:"preferred_route"`
	CO2SavedPercent float64 `json:"co2_saved_percent"`
	Vehicle         string  `json:"vehicle"`
}

// MarshalJSON adds the camelCase co2SavedPercent key read by existing
// clients next to co2_saved_percent.
func (c Comparison) MarshalJSON() ([]byte, error) {
	type plain Comparison
	return json.Marshal(struct {
		plain
		CO2SavedPercentCamel float64 `json:"co2SavedPercent"`
	}{plain(c), c.CO2SavedPercent})
}

// ComparisonPublisher receives one event per comparison. Publish must not block.
type ComparisonPublisher interface {
	Publish(ev coremetrics.ComparisonEvent)
}

// Planner runs route comparisons.
type Planner struct {
	router    Router
	predictor prediction.Predictor
	events    ComparisonPublisher
	log       logger.Logger
}

// NewPlanner wires a planner. events may be nil.
func NewPlanner(r Router, p prediction.Predictor, events ComparisonPublisher, log logger.Logger) *Planner {
	return &Planner{router: r, predictor: p, events: events, log: log}
}

// Plan fetches the fast route and an eco alternative and estimates both.
// When no alternative exists a detour through a shifted midpoint is tried;
// if that fails too the fast route doubles as the eco route.
func (p *Planner) Plan(ctx context.Context, req Request) (Comparison, error) {
	if req.Vehicle == "" {
		req.Vehicle = model.VehicleCar.String()
	}
	routes, err := p.router.Alternatives(ctx, req.Source, req.Destination)
	if err != nil {
		return Comparison{}, fmt.Errorf("%w: %w", ErrRouting, err)
	}
	if len(routes) == 0 {
		return Comparison{}, ErrNoRoute
	}
	fast := routes[0]
	eco := fast
	if len(routes) > 1 {
		eco = routes[1]
	} else {
		alt, err := p.router.Via(ctx, req.Source, Detour(req.Source, req.Destination), req.Destination)
		switch {
		case err == nil:
			eco = alt
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return Comparison{}, err
		default:
			p.log.Warnf("detour route unavailable, reusing fast route: %v", err)
		}
	}

	var fastRes, ecoRes model.PredictionResult
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		fastRes, err = p.predictor.Predict(gctx, TripFromRoute(fast, model.RouteFast, req.Vehicle, req.WeightKg))
		return err
	})
	g.Go(func() error {
		var err error
		ecoRes, err = p.predictor.Predict(gctx, TripFromRoute(eco, model.RouteEco, req.Vehicle, req.WeightKg))
		return err
	})
	if err := g.Wait(); err != nil {
		return Comparison{}, fmt.Errorf("predict routes: %w", err)
	}

	electric := model.ParseVehicle(req.Vehicle).IsElectric()
	cmp := Comparison{
		TimeOptimized: summarize(fast, fastRes, electric),
		EcoOptimized:  summarize(eco, ecoRes, electric),
		Vehicle:       req.Vehicle,
	}
	cmp.CO2SavedPercent = SavedPercent(cmp.TimeOptimized.CO2Kg, cmp.EcoOptimized.CO2Kg)
	if req.OptimizeFor == OptimizeTime {
		cmp.Preferred, cmp.PreferredRoute = cmp.TimeOptimized, model.RouteFast.String()
	} else {
		cmp.Preferred, cmp.PreferredRoute = cmp.EcoOptimized, model.RouteEco.String()
	}

	if p.events != nil {
		optimizeFor := req.OptimizeFor
		if optimizeFor == "" {
			optimizeFor = OptimizeCO2
		}
		p.events.Publish(coremetrics.ComparisonEvent{
			ID:           uuid.NewString(),
			Vehicle:      req.Vehicle,
			OptimizeFor:  optimizeFor,
			Preferred:    cmp.PreferredRoute,
			FastCO2Kg:    cmp.TimeOptimized.CO2Kg,
			EcoCO2Kg:     cmp.EcoOptimized.CO2Kg,
			SavedPercent: cmp.CO2SavedPercent,
			Time:         time.Now(),
		})
	}
	return cmp, nil
}

// SavedPercent is the whole-number share of fast-route CO2 avoided by the
// eco route, never negative. A zero fast-route CO2 divides by 1.
func SavedPercent(fastCO2, ecoCO2 float64) float64 {
	denom := fastCO2
	if denom == 0 {
		denom = 1
	}
	return math.Round(math.Max(0, (fastCO2-ecoCO2)/denom*100))
}

func summarize(r Route, res model.PredictionResult, electric bool) Summary {
	s := Summary{
		DistanceKm:  round(r.DistanceM/1000, 3),
		DurationMin: round(r.DurationS/60, 1),
		CO2Kg:       round(res.CO2Kg, 3),
		Geometry:    r.Geometry,
	}
	if electric {
		e := round(res.Energy(), 2)
		s.EnergyKWh = &e
	} else {
		f := round(res.FuelL, 3)
		s.FuelL = &f
	}
	return s
}
