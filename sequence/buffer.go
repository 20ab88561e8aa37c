package sequence

// BitBuffer is the contract for external bit buffer collaborators.
type BitBuffer interface {
	Reset()
	Push(bit uint32)
}

// FillBuffer clears buf and pushes exactly one period of output bits
// from ms into it.
func FillBuffer(buf BitBuffer, ms *MSequence) {
	buf.Reset()
	for i := uint32(0); i < ms.Length(); i++ {
		buf.Push(ms.Advance())
	}
}
