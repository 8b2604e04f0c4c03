package main

import "math"

// Default command-line flag values
const (
	defaultSampleRate = 44100 // CD quality sample rate
	maxSampleRate     = math.MaxUint32
)

// 8-bit WAV PCM is unsigned with silence at this offset
const wav8BitOffset = 128
