package utils

import "math/bits"

// MSBIndex returns the one-based index of the most significant set bit
// of v. MSBIndex(0) is 0.
func MSBIndex(v uint32) uint32 {
	return uint32(bits.Len32(v))
}

// BDotProd computes the binary dot product of x and y: the sum modulo 2
// of the bits set in x & y.
func BDotProd(x, y uint32) uint32 {
	return uint32(bits.OnesCount32(x&y)) & 0x1
}

// ReverseBits reverses the low n bits of v; bits above n are discarded.
func ReverseBits(v uint32, n uint32) uint32 {
	var reversed uint32
	for i := uint32(0); i < n; i++ {
		reversed <<= 1
		reversed |= v & 0x1
		v >>= 1
	}
	return reversed
}
