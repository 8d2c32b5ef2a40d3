package regression

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/kilianp07/ecoroute/core/features"
)

// ErrNotEnoughSamples is returned when a fit has fewer rows than parameters.
var ErrNotEnoughSamples = errors.New("not enough samples to fit")

// Sample is one labelled training row in contract order.
type Sample struct {
	X     []float64
	FuelL float64
	CO2Kg float64
}

// Synthesize generates n rows of the synthetic trip dataset. Fuel follows
// distance/12 + weight/2000 with an eco (~0.9) or fast (~1.05) route factor,
// CO2 is 2.31 kg per litre with its own noise.
func Synthesize(n int, rng *rand.Rand) []Sample {
	uniform := func(lo, hi float64) float64 { return lo + rng.Float64()*(hi-lo) }
	out := make([]Sample, n)
	for i := range out {
		distance := uniform(5, 1000)
		elevation := uniform(0, 500)
		speed := uniform(20, 100)
		turns := float64(5 + rng.Intn(195))
		humps := float64(rng.Intn(50))
		weight := uniform(800, 3000)
		traffic := uniform(0.5, 2.0)
		eco := rng.Intn(2) == 1

		fuel := distance/12 + weight/1000*0.5
		co2 := fuel * 2.31
		base, code := 1.05, 0.0
		if eco {
			base, code = 0.9, 1.0
		}
		fuel *= base + uniform(-0.05, 0.05)
		co2 *= base + uniform(-0.05, 0.05)

		out[i] = Sample{
			X:     []float64{distance, elevation, speed, turns, humps, weight, traffic, code},
			FuelL: fuel,
			CO2Kg: co2,
		}
	}
	return out
}

// FitLinear solves the ordinary least squares problem for both outputs.
func FitLinear(samples []Sample) (LinearConf, error) {
	p := features.Size
	if len(samples) < p+1 {
		return LinearConf{}, fmt.Errorf("%w: %d rows for %d parameters", ErrNotEnoughSamples, len(samples), p+1)
	}
	x := mat.NewDense(len(samples), p+1, nil)
	y := mat.NewDense(len(samples), 2, nil)
	for i, s := range samples {
		if len(s.X) != p {
			return LinearConf{}, fmt.Errorf("sample %d: %w", i, ErrFeatureCount)
		}
		for j, v := range s.X {
			x.Set(i, j, v)
		}
		x.Set(i, p, 1)
		y.Set(i, 0, s.FuelL)
		y.Set(i, 1, s.CO2Kg)
	}
	var beta mat.Dense
	if err := beta.Solve(x, y); err != nil {
		return LinearConf{}, fmt.Errorf("least squares: %w", err)
	}
	conf := LinearConf{Coefficients: make([][]float64, 2), Intercepts: make([]float64, 2)}
	for o := 0; o < 2; o++ {
		conf.Coefficients[o] = make([]float64, p)
		for j := 0; j < p; j++ {
			conf.Coefficients[o][j] = beta.At(j, o)
		}
		conf.Intercepts[o] = beta.At(p, o)
	}
	return conf, nil
}
