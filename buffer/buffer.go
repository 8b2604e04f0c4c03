package buffer

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"

	units "github.com/tphakala/go-audio-units"
	"github.com/tphakala/go-audio-units/internal/simdops"
)

// Common errors returned by buffer accessors.
var (
	// ErrOutOfBounds indicates a channel or sample index outside the buffer shape.
	ErrOutOfBounds = errors.New("index out of bounds")

	// ErrShapeMismatch indicates source data whose channel count or length
	// does not match the buffer.
	ErrShapeMismatch = errors.New("buffer shape mismatch")
)

// Buffer owns planar float32 storage shaped (channels, samples).
type Buffer struct {
	data        []float32
	numChannels units.Channels
	numSamples  units.Samples
}

// Allocate creates a zeroed buffer with the given shape. It is the only way
// to create a Buffer; the shape is fixed for its lifetime.
//
// Allocate panics if channels x samples exceeds math.MaxInt.
func Allocate(numChannels units.Channels, numSamples units.Samples) *Buffer {
	if numChannels > 0 && numSamples.Value() > uint64(math.MaxInt)/numChannels.AsUint64() {
		panic(errAllocationTooLarge)
	}

	total := numChannels.AsInt() * numSamples.AsInt()

	return &Buffer{
		data:        make([]float32, total),
		numChannels: numChannels,
		numSamples:  numSamples,
	}
}

// NumChannels returns the number of channels.
func (b *Buffer) NumChannels() units.Channels {
	return b.numChannels
}

// NumSamples returns the number of samples in each channel.
func (b *Buffer) NumSamples() units.Samples {
	return b.numSamples
}

// Len returns the total number of samples across all channels.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Data returns the underlying planar storage: channel 0 first, then channel 1,
// and so on. Writes through the returned slice modify the buffer.
func (b *Buffer) Data() []float32 {
	return b.data
}

// ZeroOut sets every sample to zero.
func (b *Buffer) ZeroOut() {
	clear(b.data)
}

// IsSilent reports whether every sample is zero.
func (b *Buffer) IsSilent() bool {
	for _, v := range b.data {
		if v != 0 {
			return false
		}
	}
	return true
}

// MapSamples replaces every sample s with fn(s).
func (b *Buffer) MapSamples(fn func(float32) float32) {
	for i, v := range b.data {
		b.data[i] = fn(v)
	}
}

// Chan returns a read-only view of channel ch.
func (b *Buffer) Chan(ch int) (Channel, error) {
	if err := b.checkChannel(ch); err != nil {
		return Channel{}, err
	}
	return Channel{samples: b.channel(ch)}, nil
}

// ChanMut returns the samples of channel ch for in-place mutation. The slice
// capacity ends at the channel boundary, so appending to it reallocates
// instead of overwriting the next channel.
func (b *Buffer) ChanMut(ch int) ([]float32, error) {
	if err := b.checkChannel(ch); err != nil {
		return nil, err
	}
	return b.channel(ch), nil
}

// At returns the sample at index s of channel ch.
func (b *Buffer) At(ch, s int) (float32, error) {
	i, err := b.index(ch, s)
	if err != nil {
		return 0, err
	}
	return b.data[i], nil
}

// Set stores v at index s of channel ch.
func (b *Buffer) Set(ch, s int, v float32) error {
	i, err := b.index(ch, s)
	if err != nil {
		return err
	}
	b.data[i] = v
	return nil
}

// Chans returns a sequence of read-only channel views, in channel order.
// Each call starts a fresh iteration.
func (b *Buffer) Chans() iter.Seq2[int, Channel] {
	return func(yield func(int, Channel) bool) {
		for ch := range b.numChannels.AsInt() {
			if !yield(ch, Channel{samples: b.channel(ch)}) {
				return
			}
		}
	}
}

// ChansMut returns a sequence of mutable channel slices, in channel order.
// The yielded slices never overlap; see ChanMut.
func (b *Buffer) ChansMut() iter.Seq2[int, []float32] {
	return func(yield func(int, []float32) bool) {
		for ch := range b.numChannels.AsInt() {
			if !yield(ch, b.channel(ch)) {
				return
			}
		}
	}
}

// Interleaved returns the samples frame by frame: sample 0 of every channel,
// then sample 1 of every channel, and so on.
func (b *Buffer) Interleaved() iter.Seq[float32] {
	return func(yield func(float32) bool) {
		stride := b.numSamples.AsInt()
		for s := range stride {
			for ch := range b.numChannels.AsInt() {
				if !yield(b.data[ch*stride+s]) {
					return
				}
			}
		}
	}
}

// AppendInterleaved appends the samples to dst in interleaved order and
// returns the extended slice.
func (b *Buffer) AppendInterleaved(dst []float32) []float32 {
	return simdops.AppendInterleaved(dst, b.planes())
}

// LoadInterleaved overwrites the buffer with interleaved frames from src.
// len(src) must equal Len().
func (b *Buffer) LoadInterleaved(src []float32) error {
	if len(src) != b.Len() {
		return fmt.Errorf("%w: %d interleaved samples for %d channels x %d samples",
			ErrShapeMismatch, len(src), b.numChannels, b.numSamples)
	}
	simdops.Deinterleave(b.planes(), src)
	return nil
}

// channel returns the capacity-capped storage of channel ch. ch must be valid.
func (b *Buffer) channel(ch int) []float32 {
	start := ch * b.numSamples.AsInt()
	end := start + b.numSamples.AsInt()
	return b.data[start:end:end]
}

// planes returns every channel slice, in channel order.
func (b *Buffer) planes() [][]float32 {
	planes := make([][]float32, 0, b.numChannels.AsInt())
	for _, ch := range b.ChansMut() {
		planes = append(planes, ch)
	}
	return planes
}

func (b *Buffer) checkChannel(ch int) error {
	if ch < 0 || ch >= b.numChannels.AsInt() {
		return fmt.Errorf("%w: channel %d not in [0, %d)", ErrOutOfBounds, ch, b.numChannels.AsInt())
	}
	return nil
}

func (b *Buffer) index(ch, s int) (int, error) {
	if err := b.checkChannel(ch); err != nil {
		return 0, err
	}
	if s < 0 || s >= b.numSamples.AsInt() {
		return 0, fmt.Errorf("%w: sample %d not in [0, %d)", ErrOutOfBounds, s, b.numSamples.AsInt())
	}
	return ch*b.numSamples.AsInt() + s, nil
}

// Channel is a read-only view of one channel's samples.
type Channel struct {
	samples []float32
}

// Len returns the number of samples in the channel.
func (c Channel) Len() int {
	return len(c.samples)
}

// At returns sample i.
func (c Channel) At(i int) (float32, error) {
	if i < 0 || i >= len(c.samples) {
		return 0, fmt.Errorf("%w: sample %d not in [0, %d)", ErrOutOfBounds, i, len(c.samples))
	}
	return c.samples[i], nil
}

// All returns index/sample pairs in order.
func (c Channel) All() iter.Seq2[int, float32] {
	return slices.All(c.samples)
}

// Values returns the samples in order.
func (c Channel) Values() iter.Seq[float32] {
	return slices.Values(c.samples)
}

// CopyTo copies the samples into dst and returns the number copied,
// the smaller of Len() and len(dst).
func (c Channel) CopyTo(dst []float32) int {
	return copy(dst, c.samples)
}

// AppendTo appends the samples to dst and returns the extended slice.
func (c Channel) AppendTo(dst []float32) []float32 {
	return append(dst, c.samples...)
}
