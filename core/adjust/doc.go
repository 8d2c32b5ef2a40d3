// Package adjust turns raw regressor output into the per-vehicle estimate
// returned to callers.
package adjust
