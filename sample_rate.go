package units

import "strconv"

// SampleRate is a sample rate in Hz (samples per second).
type SampleRate uint32

// Value returns the raw rate.
func (r SampleRate) Value() uint32 {
	return uint32(r)
}

// AsInt returns the rate as an int, the form most Go audio APIs expect.
func (r SampleRate) AsInt() int {
	return int(r)
}

// AsUint64 returns the rate as a uint64.
func (r SampleRate) AsUint64() uint64 {
	return uint64(r)
}

// AsFloat64 returns the rate as a float64.
func (r SampleRate) AsFloat64() float64 {
	return float64(r)
}

// Period returns the duration of a single sample at this rate.
// A zero rate yields +Inf.
func (r SampleRate) Period() Seconds {
	return Seconds(1 / r.AsFloat64())
}

func (r SampleRate) String() string {
	return strconv.FormatUint(uint64(r), 10) + " Hz"
}
