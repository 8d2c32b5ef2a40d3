// Package features turns trip requests into the fixed-order numeric vectors
// consumed by the regression model. The layout is versioned by Contract so a
// model artifact can declare which encoding it was trained on.
package features
