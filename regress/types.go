// Package regress defines sentinel errors and result types for linear
// model fitting.
package regress

import "errors"

// Sentinel errors returned by the regress package.
var (
	// ErrBadLearningRate indicates a non-positive or non-finite SGD
	// learning rate.
	ErrBadLearningRate = errors.New("regress: learning rate must be positive and finite")

	// ErrBadNoise indicates a negative sensor noise amplitude.
	ErrBadNoise = errors.New("regress: noise amplitude must be non-negative")

	// ErrEmptySample indicates a batch sample that is empty or whose x
	// and y slices differ in length.
	ErrEmptySample = errors.New("regress: sample must be non-empty with matching lengths")
)

// Update is the snapshot produced by one SGD observation: the input,
// the prediction made before the step, the observed value, their
// residual, and the coefficients after the step.
type Update struct {
	X         float64 // input of this observation
	Predicted float64 // model output before the gradient step
	Actual    float64 // observed value
	Residual  float64 // Actual - Predicted
	Slope     float64 // slope after the step
	Intercept float64 // intercept after the step
}

// Converged reports whether the update's absolute residual is below
// tol — the usual signal that the model has locked onto the source.
func Converged(u Update, tol float64) bool {
	r := u.Residual
	if r < 0 {
		r = -r
	}

	return r < tol
}

// ResidualSummary aggregates the residuals of a calibration run.
type ResidualSummary struct {
	Mean   float64 // average residual (bias indicator)
	StdDev float64 // sample standard deviation of residuals
	MaxAbs float64 // worst absolute residual
}

// Source yields observation pairs for Calibrate. Sensor is the built-in
// implementation; anything producing (x, y) readings qualifies.
type Source interface {
	Reading() (x, y float64)
}
