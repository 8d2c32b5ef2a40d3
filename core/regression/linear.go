package regression

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LinearConf holds the parameters of a two-output linear model. Row 0 of
// Coefficients and Intercepts predicts fuel, row 1 predicts CO2.
type LinearConf struct {
	Coefficients [][]float64 `json:"coefficients"`
	Intercepts   []float64   `json:"intercepts"`
}

// Linear evaluates y = W·x + b.
type Linear struct {
	w *mat.Dense
	b *mat.VecDense
}

// NewLinear validates c and builds the model.
func NewLinear(c LinearConf) (*Linear, error) {
	if len(c.Coefficients) != 2 {
		return nil, fmt.Errorf("linear: need 2 coefficient rows, got %d", len(c.Coefficients))
	}
	if len(c.Intercepts) != 2 {
		return nil, fmt.Errorf("linear: need 2 intercepts, got %d", len(c.Intercepts))
	}
	n := len(c.Coefficients[0])
	if n == 0 || len(c.Coefficients[1]) != n {
		return nil, fmt.Errorf("linear: coefficient rows must be non-empty and of equal length")
	}
	data := make([]float64, 0, 2*n)
	data = append(data, c.Coefficients[0]...)
	data = append(data, c.Coefficients[1]...)
	return &Linear{
		w: mat.NewDense(2, n, data),
		b: mat.NewVecDense(2, append([]float64(nil), c.Intercepts...)),
	}, nil
}

// NumFeatures implements Regressor.
func (l *Linear) NumFeatures() int {
	_, c := l.w.Dims()
	return c
}

// Predict implements Regressor.
func (l *Linear) Predict(x []float64) (Output, error) {
	if err := checkInput(l, x); err != nil {
		return Output{}, err
	}
	var y mat.VecDense
	y.MulVec(l.w, mat.NewVecDense(len(x), append([]float64(nil), x...)))
	y.AddVec(&y, l.b)
	return checkOutput(Output{FuelL: y.AtVec(0), CO2Kg: y.AtVec(1)})
}

// Conf returns the parameters of the model.
func (l *Linear) Conf() LinearConf {
	r, _ := l.w.Dims()
	out := LinearConf{Coefficients: make([][]float64, r), Intercepts: make([]float64, r)}
	for i := 0; i < r; i++ {
		out.Coefficients[i] = mat.Row(nil, i, l.w)
		out.Intercepts[i] = l.b.AtVec(i)
	}
	return out
}
