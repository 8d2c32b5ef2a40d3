package regression

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrFeatureCount is returned when an input vector has the wrong length.
	ErrFeatureCount = errors.New("feature vector has wrong length")
	// ErrNonFinite is returned when a model produces NaN or infinite values.
	ErrNonFinite = errors.New("model output is not finite")
)

// Output is the baseline estimate produced by a regressor.
type Output struct {
	FuelL float64
	CO2Kg float64
}

// Regressor predicts fuel and CO2 for a single feature row.
type Regressor interface {
	Predict(x []float64) (Output, error)
	// NumFeatures is the input length the regressor expects.
	NumFeatures() int
}

func checkInput(r Regressor, x []float64) error {
	if len(x) != r.NumFeatures() {
		return fmt.Errorf("%w: got %d want %d", ErrFeatureCount, len(x), r.NumFeatures())
	}
	return nil
}

func checkOutput(o Output) (Output, error) {
	for _, v := range [2]float64{o.FuelL, o.CO2Kg} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Output{}, ErrNonFinite
		}
	}
	return o, nil
}
