package sequence

import "fmt"

const MaxDefaultLength = 15

// Known-primitive generator polynomials for register lengths 2 through 15.
// Polynomials are stored with the most significant bit already stripped
// and initial states already bit-reversed, so NewDefault copies entries
// verbatim instead of going through New.
var defaultSequences = [MaxDefaultLength + 1]MSequence{
	2:  {m: 2, g: 0x0003, a: 0x0002, n: 1<<2 - 1, v: 0x0002},
	3:  {m: 3, g: 0x0005, a: 0x0004, n: 1<<3 - 1, v: 0x0004},
	4:  {m: 4, g: 0x0009, a: 0x0008, n: 1<<4 - 1, v: 0x0008},
	5:  {m: 5, g: 0x0012, a: 0x0010, n: 1<<5 - 1, v: 0x0010},
	6:  {m: 6, g: 0x0021, a: 0x0020, n: 1<<6 - 1, v: 0x0020},
	7:  {m: 7, g: 0x0044, a: 0x0040, n: 1<<7 - 1, v: 0x0040},
	8:  {m: 8, g: 0x008e, a: 0x0080, n: 1<<8 - 1, v: 0x0080},
	9:  {m: 9, g: 0x0108, a: 0x0100, n: 1<<9 - 1, v: 0x0100},
	10: {m: 10, g: 0x0204, a: 0x0200, n: 1<<10 - 1, v: 0x0200},
	11: {m: 11, g: 0x0402, a: 0x0400, n: 1<<11 - 1, v: 0x0400},
	12: {m: 12, g: 0x0829, a: 0x0800, n: 1<<12 - 1, v: 0x0800},
	13: {m: 13, g: 0x100d, a: 0x1000, n: 1<<13 - 1, v: 0x1000},
	14: {m: 14, g: 0x2015, a: 0x2000, n: 1<<14 - 1, v: 0x2000},
	15: {m: 15, g: 0x4001, a: 0x4000, n: 1<<15 - 1, v: 0x4000},
}

// NewDefault creates an m-sequence generator from the table of default
// polynomials, available for register lengths 2 through 15.
func NewDefault(m uint32) (*MSequence, error) {
	if m < MinRegisterLength || m > MaxDefaultLength {
		return nil, fmt.Errorf("no default polynomial for register length %d", m)
	}
	ms := defaultSequences[m]
	return &ms, nil
}
