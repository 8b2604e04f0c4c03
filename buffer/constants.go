package buffer

// errAllocationTooLarge is the panic value for shapes whose sample total overflows int.
const errAllocationTooLarge = "buffer: channels x samples overflows int"

// Normalized float sample range used for integer PCM conversion
const (
	minNormalized = -1.0
	maxNormalized = 1.0
)
