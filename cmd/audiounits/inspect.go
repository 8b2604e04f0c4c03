package main

import (
	"fmt"
	"os"

	"github.com/go-audio/wav"

	units "github.com/tphakala/go-audio-units"
	"github.com/tphakala/go-audio-units/buffer"
)

// wavReport describes a WAV file in audio units.
type wavReport struct {
	rate     units.SampleRate
	channels units.Channels
	depth    units.BitDepth
	frames   units.Samples
	duration units.Seconds
	silent   bool
}

// inspectWAV decodes a WAV file into a Buffer and reports its shape.
func inspectWAV(path string) (*wavReport, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = file.Close() }()

	decoder := wav.NewDecoder(file)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	depth, err := units.ParseBitDepth(int(decoder.BitDepth))
	if err != nil {
		return nil, err
	}

	pcm, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read PCM data: %w", err)
	}
	pcm.SourceBitDepth = int(depth.Bits())
	if depth == units.Bits8 {
		for i := range pcm.Data {
			pcm.Data[i] -= wav8BitOffset
		}
	}

	rate := units.SampleRate(decoder.SampleRate)
	channels := units.Channels(decoder.NumChans)
	if channels == 0 {
		return nil, fmt.Errorf("invalid WAV file: %s has no channels", path)
	}
	frames := units.Samples(len(pcm.Data) / channels.AsInt())

	buf := buffer.Allocate(channels, frames)
	pcm.Format = buf.Format(rate)
	pcm.Data = pcm.Data[:buf.Len()]
	if err := buf.LoadIntBuffer(pcm); err != nil {
		return nil, fmt.Errorf("failed to load PCM data: %w", err)
	}

	return &wavReport{
		rate:     rate,
		channels: buf.NumChannels(),
		depth:    depth,
		frames:   buf.NumSamples(),
		duration: buf.NumSamples().ToSeconds(rate),
		silent:   buf.IsSilent(),
	}, nil
}
