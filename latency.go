package units

// Latency is a processing or device delay.
type Latency float64

// LatencyFromSeconds creates a Latency from a number of seconds.
func LatencyFromSeconds(seconds float64) Latency {
	return Latency(seconds)
}

// Value returns the raw latency in seconds.
func (l Latency) Value() float64 {
	return float64(l)
}

// AsSeconds returns the latency as Seconds.
func (l Latency) AsSeconds() Seconds {
	return Seconds(l)
}

// ToSamples converts the latency to a sample count at the given rate.
func (l Latency) ToSamples(sr SampleRate) Samples {
	return l.AsSeconds().ToSamples(sr)
}
