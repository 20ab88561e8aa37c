package sequence

// BSequence is an append-only binary sequence packed most significant
// bit first within each byte.
type BSequence struct {
	buf    []byte
	bitLen int
}

func NewBSequence() *BSequence {
	return &BSequence{}
}

// Reset discards all stored bits.
func (bs *BSequence) Reset() {
	bs.buf = bs.buf[:0]
	bs.bitLen = 0
}

// Push appends the least significant bit of bit to the sequence.
func (bs *BSequence) Push(bit uint32) {
	if bs.bitLen%8 == 0 {
		bs.buf = append(bs.buf, 0)
	}
	if bit&0x1 == 1 {
		bs.buf[len(bs.buf)-1] |= 0x80 >> uint(bs.bitLen%8)
	}
	bs.bitLen++
}

// Len returns the number of bits stored.
func (bs *BSequence) Len() int {
	return bs.bitLen
}

// Bit returns the bit at position i. Positions outside [0, Len) read
// as zero.
func (bs *BSequence) Bit(i int) uint32 {
	if i < 0 || i >= bs.bitLen {
		return 0
	}
	if bs.buf[i/8]&(0x80>>uint(i%8)) != 0 {
		return 1
	}
	return 0
}

// Bytes returns the packed bit storage; unused bits in the final byte
// are zero.
func (bs *BSequence) Bytes() []byte {
	return bs.buf
}
