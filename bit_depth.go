package units

import (
	"errors"
	"fmt"
)

// ErrUnsupportedBitDepth indicates a bit depth other than 8, 16, 24 or 32.
var ErrUnsupportedBitDepth = errors.New("unsupported bit depth")

// BitDepth is the sample resolution of integer PCM audio.
type BitDepth uint8

// Supported bit depths. The constant value is the number of bits.
const (
	Bits8  BitDepth = 8
	Bits16 BitDepth = 16
	Bits24 BitDepth = 24
	Bits32 BitDepth = 32
)

// ParseBitDepth converts a bit count, such as the SourceBitDepth of a
// go-audio buffer, to a BitDepth.
func ParseBitDepth(bits int) (BitDepth, error) {
	switch bits {
	case 8:
		return Bits8, nil
	case 16:
		return Bits16, nil
	case 24:
		return Bits24, nil
	case 32:
		return Bits32, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bits)
	}
}

// Bits returns the number of bits per sample.
func (b BitDepth) Bits() uint16 {
	return uint16(b)
}

// Valid reports whether b is one of the supported depths.
func (b BitDepth) Valid() bool {
	switch b {
	case Bits8, Bits16, Bits24, Bits32:
		return true
	default:
		return false
	}
}

// MaxAmplitude returns the largest positive integer sample value, used to
// scale normalized float samples. It returns 0 for unsupported depths.
func (b BitDepth) MaxAmplitude() int {
	if !b.Valid() {
		return 0
	}
	return 1<<(b.Bits()-1) - 1
}

func (b BitDepth) String() string {
	return fmt.Sprintf("%d-bit", b.Bits())
}
