package regress

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// BatchFit computes the ordinary-least-squares line over a full sample.
// It is the closed-form reference an online Calibrate run should
// approach: compare its coefficients against Model.Coefficients after
// training on the same data.
//
// Complexity: O(n).
//
// Errors: ErrEmptySample when the sample is empty or lengths differ.
func BatchFit(xs, ys []float64) (slope, intercept float64, err error) {
	if len(xs) == 0 || len(xs) != len(ys) {
		return 0, 0, ErrEmptySample
	}
	intercept, slope = stat.LinearRegression(xs, ys, nil, false)

	return slope, intercept, nil
}

// Summarize aggregates the residuals of a calibration run into mean,
// sample standard deviation and worst absolute residual.
//
// Complexity: O(n).
//
// Errors: ErrEmptySample when updates is empty.
func Summarize(updates []Update) (ResidualSummary, error) {
	if len(updates) == 0 {
		return ResidualSummary{}, ErrEmptySample
	}

	residuals := make([]float64, len(updates))
	for i, u := range updates {
		residuals[i] = u.Residual
	}

	mean, std := stat.MeanStdDev(residuals, nil)

	return ResidualSummary{
		Mean:   mean,
		StdDev: std,
		MaxAbs: floats.Norm(residuals, math.Inf(1)),
	}, nil
}
