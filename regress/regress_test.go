// Package regress_test contains unit tests for online SGD fitting, the
// deterministic sensor, the batch OLS cross-check, and residual
// summaries.
package regress_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numstream/regress"
)

// ------------------------------------------------------------------------
// 1. Validation.
// ------------------------------------------------------------------------

func TestNew_BadLearningRate(t *testing.T) {
	for _, rate := range []float64{0, -0.5, math.NaN(), math.Inf(1)} {
		_, err := regress.New(rate)
		assert.ErrorIsf(t, err, regress.ErrBadLearningRate, "rate=%v must be rejected", rate)
	}
}

func TestNewSensor_NegativeNoise(t *testing.T) {
	_, err := regress.NewSensor(2, 5, -0.1, 1)
	assert.ErrorIs(t, err, regress.ErrBadNoise)
}

func TestBatchFit_BadSample(t *testing.T) {
	_, _, err := regress.BatchFit(nil, nil)
	assert.ErrorIs(t, err, regress.ErrEmptySample)

	_, _, err = regress.BatchFit([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, regress.ErrEmptySample, "length mismatch must be rejected")
}

func TestSummarize_EmptyRun(t *testing.T) {
	_, err := regress.Summarize(nil)
	assert.ErrorIs(t, err, regress.ErrEmptySample)
}

// ------------------------------------------------------------------------
// 2. Single-step arithmetic: the SGD update pinned by hand.
// ------------------------------------------------------------------------

func TestObserve_HandComputedSteps(t *testing.T) {
	m, err := regress.New(0.1)
	require.NoError(t, err)

	// From zero coefficients, observe (x=2, y=10):
	// predicted 0, residual 10, slope 0+0.1·10·2 = 2, intercept 0+0.1·10 = 1.
	u := m.Observe(2, 10)
	assert.InDelta(t, 0.0, u.Predicted, 1e-12)
	assert.InDelta(t, 10.0, u.Residual, 1e-12)
	assert.InDelta(t, 2.0, u.Slope, 1e-12)
	assert.InDelta(t, 1.0, u.Intercept, 1e-12)

	// Next, observe (x=1, y=5):
	// predicted 2·1+1 = 3, residual 2, slope 2.2, intercept 1.2.
	u = m.Observe(1, 5)
	assert.InDelta(t, 3.0, u.Predicted, 1e-12)
	assert.InDelta(t, 2.0, u.Residual, 1e-12)
	assert.InDelta(t, 2.2, u.Slope, 1e-12)
	assert.InDelta(t, 1.2, u.Intercept, 1e-12)

	slope, intercept := m.Coefficients()
	assert.InDelta(t, 2.2, slope, 1e-12)
	assert.InDelta(t, 1.2, intercept, 1e-12)
}

func TestPredict_DoesNotLearn(t *testing.T) {
	m, err := regress.New(0.05)
	require.NoError(t, err)
	m.Observe(1, 3)

	before, _ := m.Coefficients()
	_ = m.Predict(100)
	after, _ := m.Coefficients()
	assert.Equal(t, before, after, "Predict must not mutate coefficients")
}

// ------------------------------------------------------------------------
// 3. Sensor determinism and signal shape.
// ------------------------------------------------------------------------

func TestSensor_SameSeedSameReadings(t *testing.T) {
	a, err := regress.NewSensor(2, 5, 1, 42)
	require.NoError(t, err)
	b, err := regress.NewSensor(2, 5, 1, 42)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		ax, ay := a.Reading()
		bx, by := b.Reading()
		require.Equalf(t, ax, bx, "x diverged at reading %d", i)
		require.Equalf(t, ay, by, "y diverged at reading %d", i)
	}
}

func TestSensor_ZeroSeedMapsToDefault(t *testing.T) {
	zero, err := regress.NewSensor(2, 5, 1, 0)
	require.NoError(t, err)
	def, err := regress.NewSensor(2, 5, 1, 1)
	require.NoError(t, err)

	zx, zy := zero.Reading()
	dx, dy := def.Reading()
	assert.Equal(t, dx, zx)
	assert.Equal(t, dy, zy)
}

func TestSensor_NoiselessReadingsOnTheLine(t *testing.T) {
	s, err := regress.NewSensor(3, -2, 0, 7)
	require.NoError(t, err)
	for i := 0; i < 200; i++ {
		x, y := s.Reading()
		require.GreaterOrEqual(t, x, 0.0)
		require.Less(t, x, 10.0)
		require.InDeltaf(t, 3*x-2, y, 1e-12, "reading %d off the true line", i)
	}
}

// ------------------------------------------------------------------------
// 4. Convergence: a calibration run locks onto the true line.
// ------------------------------------------------------------------------

func TestCalibrate_ConvergesNoiseless(t *testing.T) {
	m, err := regress.New(0.01)
	require.NoError(t, err)
	s, err := regress.NewSensor(2, 5, 0, 42)
	require.NoError(t, err)

	updates := m.Calibrate(s, 5000)
	require.Len(t, updates, 5000)

	slope, intercept := m.Coefficients()
	assert.InDelta(t, 2.0, slope, 0.05, "slope must converge to the true 2.0")
	assert.InDelta(t, 5.0, intercept, 0.05, "intercept must converge to the true 5.0")

	// Late-run updates are converged under a loose tolerance.
	tail := updates[len(updates)-1]
	assert.True(t, regress.Converged(tail, 0.05), "final residual %v too large", tail.Residual)
}

func TestCalibrate_ConvergesUnderNoise(t *testing.T) {
	m, err := regress.New(0.01)
	require.NoError(t, err)
	s, err := regress.NewSensor(2, 5, 1, 42)
	require.NoError(t, err)

	m.Calibrate(s, 5000)
	slope, intercept := m.Coefficients()
	assert.InDelta(t, 2.0, slope, 0.3)
	assert.InDelta(t, 5.0, intercept, 0.5)
}

func TestCalibrate_NonPositiveCount(t *testing.T) {
	m, err := regress.New(0.01)
	require.NoError(t, err)
	s, err := regress.NewSensor(2, 5, 1, 1)
	require.NoError(t, err)

	assert.Nil(t, m.Calibrate(s, 0))
	assert.Nil(t, m.Calibrate(s, -3))
	slope, intercept := m.Coefficients()
	assert.Zero(t, slope, "no reading may have been consumed")
	assert.Zero(t, intercept)
}

func TestCalibrate_UpdatesCarryCoefficients(t *testing.T) {
	m, err := regress.New(0.01)
	require.NoError(t, err)
	s, err := regress.NewSensor(2, 5, 1, 9)
	require.NoError(t, err)

	updates := m.Calibrate(s, 50)
	require.Len(t, updates, 50)

	// The last snapshot must equal the model's final coefficients.
	slope, intercept := m.Coefficients()
	last := updates[len(updates)-1]
	assert.Equal(t, slope, last.Slope)
	assert.Equal(t, intercept, last.Intercept)
}

// ------------------------------------------------------------------------
// 5. Batch OLS cross-check.
// ------------------------------------------------------------------------

func TestBatchFit_ExactOnPerfectLine(t *testing.T) {
	xs := make([]float64, 10)
	ys := make([]float64, 10)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = 2*xs[i] + 5
	}

	slope, intercept, err := regress.BatchFit(xs, ys)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, slope, 1e-9)
	assert.InDelta(t, 5.0, intercept, 1e-9)
}

func TestBatchFit_AgreesWithOnlineEstimate(t *testing.T) {
	// Train online and refit the very same sample in batch; the two
	// estimates must land near each other and near the truth.
	m, err := regress.New(0.01)
	require.NoError(t, err)
	s, err := regress.NewSensor(2, 5, 1, 42)
	require.NoError(t, err)

	updates := m.Calibrate(s, 5000)
	xs := make([]float64, len(updates))
	ys := make([]float64, len(updates))
	for i, u := range updates {
		xs[i] = u.X
		ys[i] = u.Actual
	}

	batchSlope, batchIntercept, err := regress.BatchFit(xs, ys)
	require.NoError(t, err)
	onlineSlope, onlineIntercept := m.Coefficients()

	assert.InDelta(t, batchSlope, onlineSlope, 0.3)
	assert.InDelta(t, batchIntercept, onlineIntercept, 0.5)
	assert.InDelta(t, 2.0, batchSlope, 0.1)
	assert.InDelta(t, 5.0, batchIntercept, 0.2)
}

// ------------------------------------------------------------------------
// 6. Residual summaries and the convergence predicate.
// ------------------------------------------------------------------------

func TestSummarize_HandComputed(t *testing.T) {
	updates := []regress.Update{
		{Residual: 1},
		{Residual: -1},
		{Residual: 3},
	}
	sum, err := regress.Summarize(updates)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sum.Mean, 1e-12)
	assert.InDelta(t, 2.0, sum.StdDev, 1e-12) // sample stddev of {1,-1,3}
	assert.InDelta(t, 3.0, sum.MaxAbs, 1e-12)
}

func TestConverged_Tolerance(t *testing.T) {
	assert.True(t, regress.Converged(regress.Update{Residual: 0.5}, 2))
	assert.True(t, regress.Converged(regress.Update{Residual: -1.9}, 2))
	assert.False(t, regress.Converged(regress.Update{Residual: 2.0}, 2), "boundary is exclusive")
	assert.False(t, regress.Converged(regress.Update{Residual: -3}, 2))
}
