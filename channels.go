package units

import "strconv"

// Channels is a number of audio channels.
type Channels uint32

// Value returns the raw channel count.
func (c Channels) Value() uint32 {
	return uint32(c)
}

// AsInt returns the channel count as an int.
func (c Channels) AsInt() int {
	return int(c)
}

// AsUint64 returns the channel count as a uint64.
func (c Channels) AsUint64() uint64 {
	return uint64(c)
}

// AsFloat64 returns the channel count as a float64.
func (c Channels) AsFloat64() float64 {
	return float64(c)
}

func (c Channels) String() string {
	return strconv.FormatUint(uint64(c), 10) + " ch"
}
