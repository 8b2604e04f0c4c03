package units

import "math"

// Rounding and saturation limits for sample conversions
const (
	halfSamplePeriod = 0.5 // Maximum rounding error of a seconds->samples round trip, in sample periods

	// maxSamplesFloat is 2^64, the first float64 that no longer fits in Samples.
	maxSamplesFloat = float64(math.MaxUint64)

	// relativeTolerance absorbs float64 rounding at exact half-sample ties.
	relativeTolerance = 1e-12
)

// Percentage scale
const (
	percentScale = 100.0
)

// Common sample rates in Hz
const (
	SampleRate8k    SampleRate = 8000
	SampleRate16k   SampleRate = 16000
	SampleRate22k   SampleRate = 22050
	SampleRateCD    SampleRate = 44100
	SampleRateDAT   SampleRate = 48000
	SampleRate2xCD  SampleRate = 88200
	SampleRateHiRes SampleRate = 96000
	SampleRate4xDAT SampleRate = 192000
)

// Common channel layouts
const (
	Mono       Channels = 1
	Stereo     Channels = 2
	Surround51 Channels = 6
	Surround71 Channels = 8
)
