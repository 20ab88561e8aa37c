package sequence

import (
	"fmt"
	"github.com/fernandosanchezjr/gomseq/utils"
)

const (
	MinRegisterLength = 2
	MaxRegisterLength = 31
)

// MSequence is a maximal-length sequence generator: a linear-feedback
// shift register whose output repeats every (2^m)-1 bits when the
// generator polynomial is primitive. Instances are not safe for
// concurrent mutation.
type MSequence struct {
	m uint32 // shift register length
	g uint32 // generator polynomial, most significant bit stripped
	a uint32 // initial register state, bit order reversed
	n uint32 // sequence length, (2^m)-1
	v uint32 // live shift register
	b uint32 // last output bit
}

// New creates an m-sequence generator with an internal shift register of
// m bits, generator polynomial g (conventional form, most significant bit
// present) and initial register state a.
func New(m, g, a uint32) (*MSequence, error) {
	if m < MinRegisterLength || m > MaxRegisterLength {
		return nil, fmt.Errorf("register length %d not in [%d, %d]",
			m, MinRegisterLength, MaxRegisterLength)
	}
	ms := &MSequence{
		m: m,
		g: g >> 1,
		a: utils.ReverseBits(a, m),
		n: (1 << m) - 1,
	}
	ms.v = ms.a
	return ms, nil
}

// NewFromPolynomial creates an m-sequence generator from a generator
// polynomial alone, deriving the register length from its most
// significant bit and starting from register state 1.
func NewFromPolynomial(g uint32) (*MSequence, error) {
	t := utils.MSBIndex(g)
	if t < 2 {
		return nil, fmt.Errorf("invalid generator polynomial: %#x", g)
	}
	return New(t-1, g, 0x1)
}

// Advance computes the feedback bit as the binary dot product of the
// shift register and the generator polynomial, shifts the register and
// returns the output bit.
func (ms *MSequence) Advance() uint32 {
	ms.b = utils.BDotProd(ms.v, ms.g)
	ms.v <<= 1
	ms.v |= ms.b
	ms.v &= ms.n
	return ms.b
}

// GenerateSymbol packs bits consecutive output bits into one value,
// most significant bit first.
func (ms *MSequence) GenerateSymbol(bits uint32) uint32 {
	var symbol uint32
	for i := uint32(0); i < bits; i++ {
		symbol <<= 1
		symbol |= ms.Advance()
	}
	return symbol
}

// Reset restores the shift register to its initial state.
func (ms *MSequence) Reset() {
	ms.v = ms.a
}

// Length returns the sequence length, (2^m)-1.
func (ms *MSequence) Length() uint32 {
	return ms.n
}

// GenPoly returns the generator polynomial in its stored form, with the
// most significant bit stripped.
func (ms *MSequence) GenPoly() uint32 {
	return ms.g
}

// GenPolyLength returns the shift register length m.
func (ms *MSequence) GenPolyLength() uint32 {
	return ms.m
}

// State returns the current shift register contents.
func (ms *MSequence) State() uint32 {
	return ms.v
}

// SetState overwrites the shift register contents. No masking or
// validation is applied; a zero state locks the generator at zero.
func (ms *MSequence) SetState(v uint32) {
	ms.v = v
}

func (ms *MSequence) String() string {
	return fmt.Sprintf("msequence: m=%d (n=%d):\n    shift register: %0*b\n    generator poly: %0*b\n",
		ms.m, ms.n, int(ms.m), ms.v, int(ms.m), ms.g)
}

// Print writes the register length, sequence length, shift register and
// generator polynomial to standard output.
func (ms *MSequence) Print() {
	fmt.Print(ms.String())
}
