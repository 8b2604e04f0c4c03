// Package buffer provides fixed-size multi-channel sample storage.
//
// A [Buffer] is allocated once from a units.Channels and units.Samples
// pair and never changes shape. Samples are float32 and stored planar: each
// channel occupies its own contiguous, non-overlapping region of a single
// allocation.
//
//	buf := buffer.Allocate(units.Stereo, units.Samples(4))
//
//	for _, ch := range buf.ChansMut() {
//	    for i := range ch {
//	        ch[i] = 1.0
//	    }
//	}
//
//	for c, ch := range buf.Chans() {
//	    for i, v := range ch.All() {
//	        fmt.Println(c, i, v)
//	    }
//	}
//
// Indexed accessors return [ErrOutOfBounds] for channel or sample indices
// outside the allocated shape.
//
// Buffers convert to and from the go-audio containers
// (audio.Float32Buffer, audio.FloatBuffer and audio.IntBuffer) so they
// can be handed to encoders and decoders in that ecosystem.
//
// # Thread Safety
//
// A Buffer has no internal locking. Callers sharing one between goroutines
// must serialize access; in particular, mutable iteration assumes exclusive
// access to the whole buffer.
package buffer
