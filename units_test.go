package units_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	units "github.com/tphakala/go-audio-units"
)

func TestSampleRate(t *testing.T) {
	r := units.SampleRateDAT

	assert.Equal(t, uint32(48000), r.Value())
	assert.Equal(t, 48000, r.AsInt())
	assert.Equal(t, uint64(48000), r.AsUint64())
	assert.Equal(t, 48000.0, r.AsFloat64())
	assert.Equal(t, units.Seconds(1.0/48000), r.Period())
	assert.Equal(t, "48000 Hz", r.String())
}

func TestChannels(t *testing.T) {
	c := units.Stereo

	assert.Equal(t, uint32(2), c.Value())
	assert.Equal(t, 2, c.AsInt())
	assert.Equal(t, uint64(2), c.AsUint64())
	assert.Equal(t, 2.0, c.AsFloat64())
	assert.Equal(t, "2 ch", c.String())
	assert.Less(t, units.Mono, units.Surround71)
}

func TestFrequencyPeriod(t *testing.T) {
	f := units.Frequency(20)

	assert.Equal(t, units.DurationFromSecsF64(0.05), f.Period())
	assert.Equal(t, units.Seconds(0.05), f.PeriodSeconds())
	assert.Equal(t, units.Frequency(22050), units.Nyquist(units.SampleRateCD))
	assert.Equal(t, "440 Hz", units.Frequency(440).String())
}

func TestDuration(t *testing.T) {
	d := units.DurationFromStd(250 * time.Millisecond)

	assert.Equal(t, units.DurationFromSecsF64(0.25), d)
	assert.Equal(t, units.Samples(12000), d.ToSamples(units.SampleRateDAT))
	assert.Equal(t, units.Seconds(0.25), d.AsSeconds())
	assert.Equal(t, 0.25, d.SecsF64())
	assert.Equal(t, 250*time.Millisecond, d.Std())
	assert.Equal(t, "0.25s", d.String())
}

func TestTimePoint(t *testing.T) {
	p := units.TimePointFromSecsF64(2)

	assert.Equal(t, units.TimePoint(3), p.Add(units.DurationFromSecsF64(1)))
	assert.Equal(t, units.TimePoint(1.5), p.Sub(units.DurationFromSecsF64(0.5)))
	assert.Equal(t, units.TimePoint(2.5), p.AddSeconds(0.5))
	assert.Equal(t, units.TimePoint(1), p.SubSeconds(1))
	assert.Equal(t, units.Duration(1.5), p.Since(units.TimePoint(0.5)))
	assert.Equal(t, units.Duration(-1), p.Since(units.TimePoint(3)))
	assert.Equal(t, units.Seconds(2), p.AsSeconds())
	assert.Equal(t, 2.0, p.SecsF64())
}

func section(start, duration float64) units.TimeSection {
	return units.TimeSection{
		Start:    units.TimePointFromSecsF64(start),
		Duration: units.DurationFromSecsF64(duration),
	}
}

func TestTimeSectionOverlap(t *testing.T) {
	tests := []struct {
		name   string
		a, b   units.TimeSection
		want   units.TimeSection
		wantOK bool
	}{
		{"not_overlapping", section(0, 1), section(2, 1), units.TimeSection{}, false},
		{"touching", section(0, 2), section(2, 1), units.TimeSection{}, false},
		{"same", section(2, 1), section(2, 1), section(2, 1), true},
		{"start_overlap", section(1, 2), section(2, 1), section(2, 1), true},
		{"a_spans_b", section(1, 4), section(2, 1), section(2, 1), true},
		{"partial", section(0, 3), section(2, 4), section(2, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Overlap(tt.b)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)

			got, ok = tt.b.Overlap(tt.a)
			assert.Equal(t, tt.wantOK, ok, "overlap should be symmetric")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeSectionEnd(t *testing.T) {
	assert.Equal(t, units.TimePoint(3.5), section(1, 2.5).End())
}

func TestLatency(t *testing.T) {
	l := units.LatencyFromSeconds(0.01)

	assert.Equal(t, 0.01, l.Value())
	assert.Equal(t, units.Seconds(0.01), l.AsSeconds())
	assert.Equal(t, units.Samples(480), l.ToSamples(units.SampleRateDAT))
}

func TestPercentage(t *testing.T) {
	p := units.PercentageFromFraction(0.25)

	assert.Equal(t, units.Percentage(25), p)
	assert.Equal(t, 25.0, p.Value())
	assert.Equal(t, 0.25, p.Fraction())
	assert.Equal(t, "25%", p.String())
}

func TestBitDepth(t *testing.T) {
	tests := []struct {
		bits    int
		want    units.BitDepth
		maxAmpl int
	}{
		{8, units.Bits8, 127},
		{16, units.Bits16, 32767},
		{24, units.Bits24, 8388607},
		{32, units.Bits32, 2147483647},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			got, err := units.ParseBitDepth(tt.bits)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, uint16(tt.bits), got.Bits())
			assert.True(t, got.Valid())
			assert.Equal(t, tt.maxAmpl, got.MaxAmplitude())
		})
	}
}

func TestBitDepth_Unsupported(t *testing.T) {
	_, err := units.ParseBitDepth(12)
	require.Error(t, err)
	assert.ErrorIs(t, err, units.ErrUnsupportedBitDepth)

	assert.False(t, units.BitDepth(12).Valid())
	assert.Equal(t, 0, units.BitDepth(12).MaxAmplitude())
}
