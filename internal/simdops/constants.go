package simdops

const stereoChannels = 2 // Channel count served by the Interleave2 kernel
