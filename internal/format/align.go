package format

// AlignDWord returns n aligned up to the next 8-byte boundary.
//
// Example:
//
//	AlignDWord(1)  = 8
//	AlignDWord(8)  = 8
//	AlignDWord(9)  = 16
func AlignDWord(n int) int {
	return (n + DWordMask) & ^DWordMask
}

// AlignDWordU32 is AlignDWord for block sizes.
func AlignDWordU32(n uint32) uint32 {
	return (n + DWordMask) & ^uint32(DWordMask)
}

// IsDWordAligned reports whether n is a multiple of DWordSize.
func IsDWordAligned(n int) bool {
	return n&DWordMask == 0
}

// EvenWords rounds a word count up to an even number so that the byte count
// stays a multiple of DWordSize.
func EvenWords(words uint32) uint32 {
	if words%2 != 0 {
		return words + 1
	}
	return words
}

// BlockSize converts a payload request into the block size the allocator
// carves out: header and footer overhead plus the payload rounded up to the
// alignment unit, floored at MinBlockSize. ok is false when the result would
// not fit in MaxHeapSize.
//
// Example:
//
//	BlockSize(1)  = 16
//	BlockSize(8)  = 16
//	BlockSize(9)  = 24
//	BlockSize(48) = 56
func BlockSize(payload int) (size uint32, ok bool) {
	if payload < 0 || int64(payload) > MaxHeapSize-Overhead {
		return 0, false
	}
	if payload <= DWordSize {
		return MinBlockSize, true
	}
	return AlignDWordU32(uint32(payload) + Overhead), true
}
