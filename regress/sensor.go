package regress

import "math/rand"

// defaultSensorSeed is the fixed “zero” seed used when callers pass
// seed==0, keeping default runs reproducible.
const defaultSensorSeed int64 = 1

// sensorInputSpan is the width of the uniform input range [0, span).
const sensorInputSpan = 10.0

// Sensor simulates a noisy linear signal: inputs drawn uniformly from
// [0, 10), outputs slope·x + intercept plus uniform noise in
// [-noise, +noise). Deterministic under a fixed seed.
//
// Not goroutine-safe; create one Sensor per worker.
type Sensor struct {
	slope     float64
	intercept float64
	noise     float64
	rng       *rand.Rand
}

// NewSensor returns a deterministic sensor for the true line
// y = slope·x + intercept with the given noise amplitude.
// Policy: seed==0 ⇒ use defaultSensorSeed; otherwise the seed verbatim.
//
// Errors: ErrBadNoise when noise < 0.
func NewSensor(slope, intercept, noise float64, seed int64) (*Sensor, error) {
	if noise < 0 {
		return nil, ErrBadNoise
	}
	s := seed
	if s == 0 {
		s = defaultSensorSeed
	}

	return &Sensor{
		slope:     slope,
		intercept: intercept,
		noise:     noise,
		rng:       rand.New(rand.NewSource(s)),
	}, nil
}

// Reading returns the next simulated observation pair.
//
// Complexity: O(1).
func (s *Sensor) Reading() (x, y float64) {
	x = s.rng.Float64() * sensorInputSpan
	jitter := (s.rng.Float64() - 0.5) * 2 * s.noise
	y = s.slope*x + s.intercept + jitter

	return x, y
}
