package regression

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitLinearRecoversExactModel(t *testing.T) {
	want := testLinearConf()
	want.Coefficients[0][2] = -0.01
	want.Coefficients[1][7] = -1.5
	truth, err := NewLinear(want)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	samples := make([]Sample, 200)
	for i := range samples {
		x := make([]float64, 8)
		for j := range x {
			x[j] = rng.Float64() * 100
		}
		out, err := truth.Predict(x)
		require.NoError(t, err)
		samples[i] = Sample{X: x, FuelL: out.FuelL, CO2Kg: out.CO2Kg}
	}

	got, err := FitLinear(samples)
	require.NoError(t, err)
	for o := range want.Coefficients {
		for j := range want.Coefficients[o] {
			assert.InDelta(t, want.Coefficients[o][j], got.Coefficients[o][j], 1e-6)
		}
		assert.InDelta(t, want.Intercepts[o], got.Intercepts[o], 1e-6)
	}
}

func TestFitLinearNotEnoughSamples(t *testing.T) {
	_, err := FitLinear(make([]Sample, 3))
	assert.True(t, errors.Is(err, ErrNotEnoughSamples))
}

func TestSynthesizeRanges(t *testing.T) {
	samples := Synthesize(500, rand.New(rand.NewSource(42)))
	require.Len(t, samples, 500)
	for _, s := range samples {
		require.Len(t, s.X, 8)
		assert.GreaterOrEqual(t, s.X[0], 5.0)
		assert.Less(t, s.X[0], 1000.0)
		assert.GreaterOrEqual(t, s.X[3], 5.0)
		assert.Less(t, s.X[3], 200.0)
		assert.Contains(t, []float64{0, 1}, s.X[7])
		assert.Greater(t, s.FuelL, 0.0)
		assert.Greater(t, s.CO2Kg, s.FuelL)
	}
}

func TestSynthesizeIsSeeded(t *testing.T) {
	a := Synthesize(20, rand.New(rand.NewSource(42)))
	b := Synthesize(20, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
}

func TestFitSyntheticDistanceSlope(t *testing.T) {
	conf, err := FitLinear(Synthesize(5000, rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	// about 1/12 litre per km averaged over both route factors
	assert.InDelta(t, 0.081, conf.Coefficients[0][0], 0.01)
	assert.InDelta(t, 0.081*2.31, conf.Coefficients[1][0], 0.02)
	// eco routes burn less
	assert.Less(t, conf.Coefficients[0][7], 0.0)
}
