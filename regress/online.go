package regress

import "math"

// Model is an online simple linear regression fitted by SGD.
// The zero value is not usable; construct with New. Not goroutine-safe:
// Observe mutates the coefficients.
type Model struct {
	slope     float64
	intercept float64
	rate      float64
}

// New returns a Model with zero coefficients and the given learning
// rate. The rate trades convergence speed against stability; 0.01 is a
// reasonable starting point for inputs of order 1–10.
//
// Errors: ErrBadLearningRate when rate ≤ 0, NaN or infinite.
func New(rate float64) (*Model, error) {
	if !(rate > 0) || math.IsInf(rate, 1) {
		return nil, ErrBadLearningRate
	}

	return &Model{rate: rate}, nil
}

// Observe — one online learning step.
//
// Description:
//
//	Predicts with the current coefficients, measures the residual
//	against the observed value, then applies the gradient step
//	  slope     += rate · residual · x
//	  intercept += rate · residual
//	and returns the full snapshot.
//
// Complexity: O(1), no allocations.
func (m *Model) Observe(x, y float64) Update {
	predicted := m.slope*x + m.intercept
	residual := y - predicted

	m.slope += m.rate * residual * x
	m.intercept += m.rate * residual

	return Update{
		X:         x,
		Predicted: predicted,
		Actual:    y,
		Residual:  residual,
		Slope:     m.slope,
		Intercept: m.intercept,
	}
}

// Predict returns the model output for x without learning.
func (m *Model) Predict(x float64) float64 {
	return m.slope*x + m.intercept
}

// Coefficients returns the current slope and intercept.
func (m *Model) Coefficients() (slope, intercept float64) {
	return m.slope, m.intercept
}

// Calibrate drives the model with n readings from src and returns the
// per-observation updates in order. For n ≤ 0 the model is untouched
// and the result is nil.
//
// Complexity: O(n) time and space (the collected updates).
func (m *Model) Calibrate(src Source, n int) []Update {
	if n <= 0 {
		return nil
	}
	updates := make([]Update, 0, n)
	for i := 0; i < n; i++ {
		x, y := src.Reading()
		updates = append(updates, m.Observe(x, y))
	}

	return updates
}
