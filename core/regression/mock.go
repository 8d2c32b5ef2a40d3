package regression

import "sync"

// MockRegressor returns a fixed output and remembers the last input row.
type MockRegressor struct {
	Out      Output
	Err      error
	Features int

	mu    sync.Mutex
	last  []float64
	calls int
}

// NumFeatures implements Regressor. It defaults to 8 when Features is unset.
func (m *MockRegressor) NumFeatures() int {
	if m.Features == 0 {
		return 8
	}
	return m.Features
}

// Predict implements Regressor.
func (m *MockRegressor) Predict(x []float64) (Output, error) {
	m.mu.Lock()
	m.last = append([]float64(nil), x...)
	m.calls++
	m.mu.Unlock()
	if m.Err != nil {
		return Output{}, m.Err
	}
	return m.Out, nil
}

// Last returns a copy of the most recent input row.
func (m *MockRegressor) Last() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.last...)
}

// Calls returns how many times Predict was invoked.
func (m *MockRegressor) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
