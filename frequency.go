package units

import "strconv"

// Frequency is a frequency in Hz.
type Frequency float64

// Value returns the raw frequency in Hz.
func (f Frequency) Value() float64 {
	return float64(f)
}

// Period returns the duration of one cycle.
//
//	units.Frequency(20).Period() == units.DurationFromSecsF64(0.05)
func (f Frequency) Period() Duration {
	return f.PeriodSeconds().AsDuration()
}

// PeriodSeconds returns the duration of one cycle in seconds.
func (f Frequency) PeriodSeconds() Seconds {
	return Seconds(1 / float64(f))
}

// Nyquist returns the highest frequency representable at the given rate.
func Nyquist(sr SampleRate) Frequency {
	return Frequency(sr.AsFloat64() / 2)
}

func (f Frequency) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64) + " Hz"
}
