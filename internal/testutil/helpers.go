// Package testutil provides reusable assertions for unit and buffer tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"

	units "github.com/tphakala/go-audio-units"
	"github.com/tphakala/go-audio-units/internal/simdops"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	Int16Tolerance   = 1.0 / 32767
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf[F simdops.Float](t *testing.T, s []F) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(float64(v)) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(float64(v), 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllEqual verifies that every element of s equals want.
func AssertAllEqual[F simdops.Float](t *testing.T, s []F, want F) bool {
	t.Helper()
	for i, v := range s {
		if v != want {
			return assert.Fail(t, "unexpected sample",
				"s[%d]=%v, want %v", i, v, want)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange[F simdops.Float](t *testing.T, s []F, minVal, maxVal F) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%v is outside range [%v, %v]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertSlicesInDelta verifies that two float32 slices match element-wise within tolerance.
func AssertSlicesInDelta(t *testing.T, expected, actual []float32, tolerance float64) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected)) {
		return false
	}
	for i := range expected {
		if !floats.EqualWithinAbs(float64(expected[i]), float64(actual[i]), tolerance) {
			return assert.Fail(t, "slices differ",
				"index %d: expected %v, actual %v (tolerance %e)", i, expected[i], actual[i], tolerance)
		}
	}
	return true
}

// AssertWithinHalfSample verifies that got is within half a sample period of want.
func AssertWithinHalfSample(t *testing.T, want, got units.Seconds, sr units.SampleRate) bool {
	t.Helper()
	if got.WithinSamplePeriod(want, sr) {
		return true
	}
	return assert.Fail(t, "round trip drifted",
		"got %v, want %v within half a sample at %v", got, want, sr)
}
