// Package regress fits simple linear models y ≈ slope·x + intercept:
// online, one observation at a time via stochastic gradient descent
// (SGD), and batch via ordinary least squares (OLS) as a cross-check.
//
// 🚀 What is online regression?
//
//	A model that learns while data streams in. Each observation (x, y)
//	produces a prediction from the current coefficients, a residual
//	against the observed value, and a gradient step:
//	  slope     += rate · residual · x
//	  intercept += rate · residual
//	No sample is ever stored; memory stays O(1) forever.
//
// ✨ Key features:
//   - Model.Observe — one SGD step, returning a full Update snapshot
//     (prediction, residual, coefficients after the step).
//   - Model.Calibrate — drive the model from any Source for n readings,
//     collecting the updates; Sensor provides a deterministic noisy
//     linear signal for calibration runs.
//   - BatchFit — OLS over a full sample (gonum/stat), the reference the
//     online estimate should converge toward.
//   - Summarize — residual mean, standard deviation and worst absolute
//     residual over a run (gonum/stat, gonum/floats).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numstream/regress"
//
//	model, _ := regress.New(0.01)
//	sensor, _ := regress.NewSensor(2.0, 5.0, 1.0, 42)
//	updates := model.Calibrate(sensor, 500)
//	slope, intercept := model.Coefficients()
//
// Errors (sentinel):
//   - ErrBadLearningRate — rate ≤ 0 or not finite.
//   - ErrBadNoise        — negative noise amplitude.
//   - ErrEmptySample     — empty or length-mismatched batch sample.
//
// Complexity: Observe is O(1); Calibrate O(n); BatchFit and Summarize
// O(n) over the sample.
//
// See examples in example_test.go.
package regress
