package buffer

import (
	"fmt"
	"math"

	"github.com/go-audio/audio"

	units "github.com/tphakala/go-audio-units"
	"github.com/tphakala/go-audio-units/internal/simdops"
)

// Format returns the go-audio format describing this buffer at rate sr.
func (b *Buffer) Format(sr units.SampleRate) *audio.Format {
	return &audio.Format{
		NumChannels: b.numChannels.AsInt(),
		SampleRate:  sr.AsInt(),
	}
}

// Float32Buffer returns an interleaved copy of the samples as a go-audio
// Float32Buffer.
func (b *Buffer) Float32Buffer(sr units.SampleRate) *audio.Float32Buffer {
	return &audio.Float32Buffer{
		Format:         b.Format(sr),
		Data:           b.AppendInterleaved(make([]float32, 0, b.Len())),
		SourceBitDepth: int(units.Bits32),
	}
}

// FloatBuffer returns an interleaved float64 copy of the samples as a
// go-audio FloatBuffer.
func (b *Buffer) FloatBuffer(sr units.SampleRate) *audio.FloatBuffer {
	planes := make([][]float64, 0, b.numChannels.AsInt())
	for _, ch := range b.Chans() {
		plane := make([]float64, ch.Len())
		for i, v := range ch.All() {
			plane[i] = float64(v)
		}
		planes = append(planes, plane)
	}

	return &audio.FloatBuffer{
		Format: b.Format(sr),
		Data:   simdops.AppendInterleaved(make([]float64, 0, b.Len()), planes),
	}
}

// IntBuffer returns the samples as interleaved integer PCM at the given bit
// depth. NaN samples become silence and the rest are clamped to [-1, 1] and scaled by depth.MaxAmplitude().
func (b *Buffer) IntBuffer(sr units.SampleRate, depth units.BitDepth) (*audio.IntBuffer, error) {
	if !depth.Valid() {
		return nil, fmt.Errorf("%w: %d", units.ErrUnsupportedBitDepth, depth.Bits())
	}

	scaled := b.FloatBuffer(sr)
	for i, v := range scaled.Data {
		if math.IsNaN(v) {
			v = 0
		}
		scaled.Data[i] = max(minNormalized, min(maxNormalized, v))
	}
	simdops.For[float64]().Scale(scaled.Data, scaled.Data, float64(depth.MaxAmplitude()))

	data := make([]int, len(scaled.Data))
	for i, v := range scaled.Data {
		data[i] = int(math.Round(v))
	}

	return &audio.IntBuffer{
		Format:         scaled.Format,
		Data:           data,
		SourceBitDepth: int(depth.Bits()),
	}, nil
}

// LoadFloat32Buffer overwrites the buffer with the interleaved samples of src.
// The channel count and total length must match the buffer.
func (b *Buffer) LoadFloat32Buffer(src *audio.Float32Buffer) error {
	if err := b.checkFormat(src.Format, len(src.Data)); err != nil {
		return err
	}
	simdops.Deinterleave(b.planes(), src.Data)
	return nil
}

// LoadIntBuffer overwrites the buffer with the interleaved integer PCM of
// src, normalized by the MaxAmplitude of its SourceBitDepth.
func (b *Buffer) LoadIntBuffer(src *audio.IntBuffer) error {
	if err := b.checkFormat(src.Format, len(src.Data)); err != nil {
		return err
	}

	depth, err := units.ParseBitDepth(src.SourceBitDepth)
	if err != nil {
		return err
	}

	normalized := make([]float64, len(src.Data))
	for i, v := range src.Data {
		normalized[i] = float64(v)
	}
	simdops.For[float64]().Scale(normalized, normalized, 1/float64(depth.MaxAmplitude()))

	interleaved := make([]float32, len(normalized))
	for i, v := range normalized {
		interleaved[i] = float32(v)
	}
	simdops.Deinterleave(b.planes(), interleaved)

	return nil
}

func (b *Buffer) checkFormat(format *audio.Format, n int) error {
	if format == nil {
		return fmt.Errorf("%w: source has no format", ErrShapeMismatch)
	}
	if format.NumChannels != b.numChannels.AsInt() {
		return fmt.Errorf("%w: source has %d channels, buffer has %d",
			ErrShapeMismatch, format.NumChannels, b.numChannels.AsInt())
	}
	if n != b.Len() {
		return fmt.Errorf("%w: source has %d samples, buffer holds %d",
			ErrShapeMismatch, n, b.Len())
	}
	return nil
}
