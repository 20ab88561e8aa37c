package utils

import (
	"testing"
)

func TestMSBIndex(t *testing.T) {
	if MSBIndex(0) != 0 {
		t.Fatal("MSBIndex(0) failure!")
	}
	if MSBIndex(0x1) != 1 {
		t.Fatal("MSBIndex(0x1) failure!")
	}
	if MSBIndex(0x7) != 3 {
		t.Fatal("MSBIndex(0x7) failure!")
	}
	if MSBIndex(0x8e) != 8 {
		t.Fatal("MSBIndex(0x8e) failure!")
	}
	if MSBIndex(0x80000000) != 32 {
		t.Fatal("MSBIndex(0x80000000) failure!")
	}
}

func TestBDotProd(t *testing.T) {
	if BDotProd(0x2, 0x3) != 1 {
		t.Fatal("BDotProd(0x2, 0x3) failure!")
	}
	if BDotProd(0x3, 0x3) != 0 {
		t.Fatal("BDotProd(0x3, 0x3) failure!")
	}
	if BDotProd(0x0, 0xffffffff) != 0 {
		t.Fatal("BDotProd(0x0, 0xffffffff) failure!")
	}
	if BDotProd(0xffffffff, 0xffffffff) != 0 {
		t.Fatal("BDotProd(0xffffffff, 0xffffffff) failure!")
	}
	if BDotProd(0x80000001, 0x80000000) != 1 {
		t.Fatal("BDotProd(0x80000001, 0x80000000) failure!")
	}
}

func TestReverseBits(t *testing.T) {
	if ReverseBits(0x1, 2) != 0x2 {
		t.Fatal("ReverseBits(0x1, 2) failure!")
	}
	if ReverseBits(0x1, 15) != 0x4000 {
		t.Fatal("ReverseBits(0x1, 15) failure!")
	}
	if ReverseBits(0x3, 4) != 0xc {
		t.Fatal("ReverseBits(0x3, 4) failure!")
	}
	if ReverseBits(0xffff0001, 4) != 0x8 {
		t.Fatal("ReverseBits(0xffff0001, 4) failure!")
	}
}
