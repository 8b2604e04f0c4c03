package units_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	units "github.com/tphakala/go-audio-units"
)

func TestSamplesToSeconds(t *testing.T) {
	tests := []struct {
		name    string
		samples units.Samples
		rate    units.SampleRate
		want    units.Seconds
	}{
		{"case_1", 1000, 10, 100},
		{"CD_one_second", 44100, 44100, 1},
		{"half_second", 24000, 48000, 0.5},
		{"zero", 0, 48000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.samples.ToSeconds(tt.rate))
		})
	}
}

func TestSamplesToSeconds_ZeroRate(t *testing.T) {
	assert.True(t, math.IsInf(units.Samples(10).ToSeconds(0).Value(), 1))
	assert.True(t, math.IsNaN(units.Samples(0).ToSeconds(0).Value()))
}

// TestSamplesRoundTrip verifies samples -> seconds -> samples is exact.
func TestSamplesRoundTrip(t *testing.T) {
	rates := []units.SampleRate{1, 7, 8000, 11025, 44100, 48000, 96000, 192000}
	counts := []units.Samples{0, 1, 2, 3, 441, 1023, 44099, 132300, 1 << 20, 123456789, 1 << 40}

	for _, rate := range rates {
		for _, n := range counts {
			got := n.ToSeconds(rate).ToSamples(rate)
			assert.Equal(t, n, got, "rate %v, count %v", rate, n)
		}
	}
}

func TestSamplesOrdering(t *testing.T) {
	a, b := units.Samples(10), units.Samples(20)

	assert.Less(t, a, b)
	assert.Equal(t, units.Samples(30), a+b)
	assert.Equal(t, units.Samples(10), b-a)
	assert.Equal(t, 10, a.AsInt())
	assert.Equal(t, 10.0, a.AsFloat64())
	assert.Equal(t, uint64(10), a.Value())
	assert.Equal(t, "10 samples", a.String())
}

func TestSamplesToDuration(t *testing.T) {
	assert.Equal(t, units.DurationFromSecsF64(0.5), units.Samples(22050).ToDuration(units.SampleRateCD))
}
