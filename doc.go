// Package units provides strongly typed audio quantities in pure Go.
//
// Audio code routinely mixes raw seconds with raw sample indices, or passes
// a float sample rate where an integer one was expected. Every quantity in
// this package is a distinct defined type, so such mix-ups fail to compile
// and all conversions are explicit, named method calls.
//
// # Types
//
//   - [SampleRate]: samples per second (Hz)
//   - [Samples]: a sample (frame) count
//   - [Seconds]: a raw duration in seconds
//   - [Channels]: a channel count
//   - [Frequency]: a frequency in Hz
//   - [Duration], [TimePoint], [TimeSection], [Latency]: time-domain values
//   - [Percentage], [BitDepth]: progress and sample format helpers
//
// # Quick Start
//
// Values are constructed with a plain conversion and converted with methods
// that always take the sample rate explicitly:
//
//	seconds := units.Seconds(3.0)
//	rate := units.SampleRate(44100)
//
//	samples := seconds.ToSamples(rate) // units.Samples(132300)
//	back := samples.ToSeconds(rate)    // units.Seconds(3.0)
//
// [Seconds.ToSamples] rounds to the nearest sample with ties away from zero,
// so converting an integer sample count to seconds and back is exact.
//
// # Validation
//
// Nothing is validated at construction. A zero [SampleRate] or zero
// [Channels] is representable; conversions involving them follow IEEE-754
// semantics (for example [Samples.ToSeconds] with a zero rate yields +Inf)
// and callers are expected to check inputs they do not control.
//
// # Buffers
//
// Multi-channel sample storage sized by [Channels] and [Samples] lives in the
// buffer subpackage.
//
// # Thread Safety
//
// All types are immutable values and safe to copy and share between
// goroutines.
package units
