package units

import "time"

// Duration is a length in the time domain, e.g. the length of a clip.
// Unlike TimePoint it has no origin.
type Duration float64

// DurationFromSecsF64 creates a Duration from a number of seconds.
func DurationFromSecsF64(seconds float64) Duration {
	return Duration(seconds)
}

// DurationFromStd converts a time.Duration.
func DurationFromStd(d time.Duration) Duration {
	return Duration(d.Seconds())
}

// ToSamples converts the duration to a sample count, rounding as Seconds.ToSamples.
func (d Duration) ToSamples(sr SampleRate) Samples {
	return d.AsSeconds().ToSamples(sr)
}

// AsSeconds returns the duration as Seconds.
func (d Duration) AsSeconds() Seconds {
	return Seconds(d)
}

// SecsF64 returns the duration as a raw number of seconds.
func (d Duration) SecsF64() float64 {
	return float64(d)
}

// Std converts the duration to a time.Duration.
func (d Duration) Std() time.Duration {
	return d.AsSeconds().Std()
}

func (d Duration) String() string {
	return d.AsSeconds().String()
}
