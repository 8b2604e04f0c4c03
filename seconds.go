package units

import (
	"math"
	"strconv"
	"time"

	"gonum.org/v1/gonum/floats"
)

// Seconds is a raw duration in seconds.
type Seconds float64

// Value returns the raw number of seconds.
func (s Seconds) Value() float64 {
	return float64(s)
}

// ToSamples converts to a sample count at the given sample rate.
//
// The product is rounded to the nearest integer with ties away from zero.
// Negative and NaN products clamp to zero, and products past the range of
// Samples saturate at its maximum.
func (s Seconds) ToSamples(sr SampleRate) Samples {
	v := math.Round(float64(s) * sr.AsFloat64())

	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= maxSamplesFloat:
		return Samples(math.MaxUint64)
	}

	return Samples(v)
}

// WithinSamplePeriod reports whether s and other differ by at most half a
// sample period at the given rate, the precision of a ToSamples round trip.
// A zero rate has an infinite period, so every pair compares equal.
func (s Seconds) WithinSamplePeriod(other Seconds, sr SampleRate) bool {
	tol := halfSamplePeriod * float64(sr.Period())
	return floats.EqualWithinAbsOrRel(float64(s), float64(other), tol, relativeTolerance)
}

// AsDuration returns s as a Duration.
func (s Seconds) AsDuration() Duration {
	return Duration(s)
}

// AsTimePoint returns s as a position on a timeline.
func (s Seconds) AsTimePoint() TimePoint {
	return TimePoint(s)
}

// Std converts s to a time.Duration, truncating to whole nanoseconds.
func (s Seconds) Std() time.Duration {
	return time.Duration(float64(s) * float64(time.Second))
}

// SecondsFromStd converts a time.Duration to Seconds.
func SecondsFromStd(d time.Duration) Seconds {
	return Seconds(d.Seconds())
}

func (s Seconds) String() string {
	return strconv.FormatFloat(float64(s), 'g', -1, 64) + "s"
}
