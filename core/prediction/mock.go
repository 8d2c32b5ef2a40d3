package prediction

import (
	"context"
	"sync"

	"github.com/kilianp07/ecoroute/core/model"
)

// MockPredictor returns a canned result, or delegates to Fn when set, and
// records the requests it received.
type MockPredictor struct {
	Result model.PredictionResult
	Err    error
	Fn     func(model.TripRequest) (model.PredictionResult, error)

	mu       sync.Mutex
	requests []model.TripRequest
}

// Predict implements Predictor.
func (m *MockPredictor) Predict(_ context.Context, req model.TripRequest) (model.PredictionResult, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()
	if m.Fn != nil {
		return m.Fn(req)
	}
	return m.Result, m.Err
}

// Requests returns a copy of the received requests.
func (m *MockPredictor) Requests() []model.TripRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.TripRequest(nil), m.requests...)
}
