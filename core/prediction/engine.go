package prediction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/ecoroute/core/adjust"
	"github.com/kilianp07/ecoroute/core/features"
	"github.com/kilianp07/ecoroute/core/logger"
	coremetrics "github.com/kilianp07/ecoroute/core/metrics"
	"github.com/kilianp07/ecoroute/core/model"
	"github.com/kilianp07/ecoroute/core/regression"
)

// ErrNoModel is returned when an engine is built without a regressor.
var ErrNoModel = errors.New("prediction engine has no model")

// Predictor estimates fuel, energy and CO2 for a trip.
type Predictor interface {
	Predict(ctx context.Context, req model.TripRequest) (model.PredictionResult, error)
}

// EventPublisher receives one event per answered prediction. Publish must
// not block.
type EventPublisher interface {
	Publish(ev coremetrics.PredictionEvent)
}

// Engine implements Predictor on top of a regressor.
type Engine struct {
	model    regression.Regressor
	adjuster adjust.Adjuster
	events   EventPublisher
	log      logger.Logger
	now      func() time.Time
}

// NewEngine wires the pipeline. events may be nil.
func NewEngine(r regression.Regressor, adj adjust.Adjuster, events EventPublisher, log logger.Logger) (*Engine, error) {
	if r == nil {
		return nil, ErrNoModel
	}
	if r.NumFeatures() != features.Size {
		return nil, fmt.Errorf("%w: model expects %d features, encoder produces %d",
			regression.ErrContractMismatch, r.NumFeatures(), features.Size)
	}
	return &Engine{model: r, adjuster: adj, events: events, log: log, now: time.Now}, nil
}

// Predict implements Predictor.
func (e *Engine) Predict(ctx context.Context, req model.TripRequest) (model.PredictionResult, error) {
	if err := ctx.Err(); err != nil {
		return model.PredictionResult{}, err
	}
	start := e.now()
	profile := req.Profile()
	raw, err := e.model.Predict(features.Encode(req, profile))
	if err != nil {
		return model.PredictionResult{}, fmt.Errorf("model inference: %w", err)
	}
	res := e.adjuster.Adjust(raw, req, profile)
	end := e.now()

	ev := coremetrics.PredictionEvent{
		ID:        uuid.NewString(),
		Vehicle:   req.Vehicle.String(),
		RouteType: req.RouteType.String(),
		FuelL:     res.FuelL,
		CO2Kg:     res.CO2Kg,
		EnergyKWh: res.Energy(),
		Electric:  res.IsElectric(),
		Latency:   end.Sub(start),
		Time:      end,
	}
	e.log.Debugw("prediction", map[string]any{
		"id":         ev.ID,
		"vehicle":    ev.Vehicle,
		"route_type": req.RouteName,
		"fuel_l":     res.FuelL,
		"co2_kg":     res.CO2Kg,
	})
	if e.events != nil {
		e.events.Publish(ev)
	}
	return res, nil
}
