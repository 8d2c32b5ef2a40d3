// Package regression loads and evaluates the fuel/CO2 regression model.
//
// A model artifact is a JSON or YAML document naming a regressor type, the
// feature contract it was trained on and the type specific settings. Built-in
// types are "linear" and "forest". Regressors are immutable once built and
// may be shared by concurrent callers.
package regression
