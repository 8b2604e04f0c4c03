package units

// TimeSection is a span on a timeline, e.g. the placement of a clip in an
// arrangement.
type TimeSection struct {
	Start    TimePoint
	Duration Duration
}

// End returns the point where the section ends.
func (s TimeSection) End() TimePoint {
	return s.Start.Add(s.Duration)
}

// Overlap returns the section shared by s and other. Sections that only
// touch at an edge do not overlap.
func (s TimeSection) Overlap(other TimeSection) (TimeSection, bool) {
	if s.End() <= other.Start || other.End() <= s.Start {
		return TimeSection{}, false
	}

	start := max(s.Start, other.Start)
	end := min(s.End(), other.End())

	return TimeSection{Start: start, Duration: end.Since(start)}, true
}
