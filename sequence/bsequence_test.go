package sequence

import (
	"bytes"
	"testing"
)

func TestBSequencePush(t *testing.T) {
	bs := NewBSequence()
	for _, bit := range []uint32{1, 0, 1, 1, 0, 0, 1, 0, 1} {
		bs.Push(bit)
	}
	if bs.Len() != 9 {
		t.Fatal("wrong length:", bs.Len())
	}
	if !bytes.Equal(bs.Bytes(), []byte{0xb2, 0x80}) {
		t.Fatal("wrong packing:", bs.Bytes())
	}
	if bs.Bit(0) != 1 || bs.Bit(1) != 0 || bs.Bit(8) != 1 {
		t.Fatal("wrong bit access")
	}
	if bs.Bit(-1) != 0 || bs.Bit(9) != 0 {
		t.Fatal("out of range bits should read as zero")
	}
	bs.Reset()
	if bs.Len() != 0 || len(bs.Bytes()) != 0 {
		t.Fatal("reset did not clear buffer")
	}
}

func TestFillBuffer(t *testing.T) {
	ms, err := NewDefault(2)
	if err != nil {
		t.Fatal(err)
	}
	bs := NewBSequence()
	bs.Push(1)
	FillBuffer(bs, ms)
	if bs.Len() != int(ms.Length()) {
		t.Fatal("wrong buffer length:", bs.Len())
	}
	for i, expected := range []uint32{1, 1, 0} {
		if bs.Bit(i) != expected {
			t.Fatal("wrong bit at", i)
		}
	}
}

func TestFillBufferFullPeriod(t *testing.T) {
	ms, err := NewDefault(11)
	if err != nil {
		t.Fatal(err)
	}
	bs := NewBSequence()
	FillBuffer(bs, ms)
	if bs.Len() != int(ms.Length()) {
		t.Fatal("wrong buffer length:", bs.Len())
	}
	var ones int
	for i := 0; i < bs.Len(); i++ {
		ones += int(bs.Bit(i))
	}
	if ones != 1<<10 {
		t.Fatal("unbalanced buffer contents:", ones)
	}
}
