package units

// TimePoint is a position in the time domain, e.g. the start of a clip
// on a timeline, measured in seconds from the timeline origin.
type TimePoint float64

// TimePointFromSecsF64 creates a TimePoint from a number of seconds.
func TimePointFromSecsF64(seconds float64) TimePoint {
	return TimePoint(seconds)
}

// AsSeconds returns the position in seconds.
func (p TimePoint) AsSeconds() Seconds {
	return Seconds(p)
}

// SecsF64 returns the position as a raw number of seconds.
func (p TimePoint) SecsF64() float64 {
	return float64(p)
}

// Add returns the point d after p.
func (p TimePoint) Add(d Duration) TimePoint {
	return p + TimePoint(d)
}

// Sub returns the point d before p.
func (p TimePoint) Sub(d Duration) TimePoint {
	return p - TimePoint(d)
}

// AddSeconds returns the point s after p.
func (p TimePoint) AddSeconds(s Seconds) TimePoint {
	return p + TimePoint(s)
}

// SubSeconds returns the point s before p.
func (p TimePoint) SubSeconds(s Seconds) TimePoint {
	return p - TimePoint(s)
}

// Since returns the duration from earlier to p. It is negative when
// earlier lies after p.
func (p TimePoint) Since(earlier TimePoint) Duration {
	return Duration(p - earlier)
}

func (p TimePoint) String() string {
	return "@" + p.AsSeconds().String()
}
