// Package prediction runs the inference pipeline: feature encoding, model
// evaluation and per-vehicle adjustment. The Engine owns the loaded
// regressor and is safe for concurrent use.
package prediction
