// Package simdops provides generic SIMD sample operations for float32 and float64.
// Buffers store float32 while go-audio interop uses float64; both go through
// the same generic helpers.
package simdops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops provides SIMD-accelerated operations for type F.
type Ops[F Float] struct {
	// Interleave2 interleaves two slices: dst[0]=a[0], dst[1]=b[0], dst[2]=a[1], ...
	// dst must hold at least 2*len(a) elements.
	Interleave2 func(dst, a, b []F)

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s.
	// dst and a may be the same slice.
	Scale func(dst, a []F, s F)
}

// Pre-instantiated operations for each float type.
var (
	ops32 = Ops[float32]{
		Interleave2: f32.Interleave2,
		Scale:       f32.Scale,
	}
	ops64 = Ops[float64]{
		Interleave2: f64.Interleave2,
		Scale:       f64.Scale,
	}
)

// For returns the Ops instance for type F.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

// AppendInterleaved appends the frames of the planar channels to dst in
// interleaved order (ch0[0], ch1[0], ..., ch0[1], ...). All channels must
// have the same length. Two channels use the SIMD Interleave2 kernel.
func AppendInterleaved[F Float](dst []F, chans [][]F) []F {
	if len(chans) == 0 {
		return dst
	}

	frames := len(chans[0])
	start := len(dst)
	dst = append(dst, make([]F, frames*len(chans))...)
	out := dst[start:]

	switch len(chans) {
	case 1:
		copy(out, chans[0])
	case stereoChannels:
		For[F]().Interleave2(out, chans[0], chans[1])
	default:
		n := len(chans)
		for ch, samples := range chans {
			for i, v := range samples {
				out[i*n+ch] = v
			}
		}
	}

	return dst
}

// Deinterleave scatters interleaved frames from src into the planar
// channels. len(src) must equal len(chans)*len(chans[0]).
func Deinterleave[F Float](chans [][]F, src []F) {
	n := len(chans)
	for ch, samples := range chans {
		for i := range samples {
			samples[i] = src[i*n+ch]
		}
	}
}
