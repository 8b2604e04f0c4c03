package units

import "strconv"

// Samples is a count of samples (frames) in the audio domain.
type Samples uint64

// Value returns the raw count.
func (s Samples) Value() uint64 {
	return uint64(s)
}

// AsInt returns the count as an int for slice sizing and indexing.
func (s Samples) AsInt() int {
	return int(s)
}

// AsFloat64 returns the count as a float64.
func (s Samples) AsFloat64() float64 {
	return float64(s)
}

// ToSeconds converts the count to seconds at the given sample rate.
//
// The division follows IEEE-754: a zero rate yields +Inf, or NaN when the
// count is also zero. This is not reported as an error.
func (s Samples) ToSeconds(sr SampleRate) Seconds {
	return Seconds(s.AsFloat64() / sr.AsFloat64())
}

// ToDuration converts the count to a Duration at the given sample rate.
func (s Samples) ToDuration(sr SampleRate) Duration {
	return s.ToSeconds(sr).AsDuration()
}

func (s Samples) String() string {
	return strconv.FormatUint(uint64(s), 10) + " samples"
}
