package block

import (
	"fmt"

	"github.com/joshuapare/heapkit/internal/format"
)

// Ptr is the byte offset of a block's payload inside the region.
type Ptr uint32

// Nil is never a payload: offset 0 is the pad word.
const Nil Ptr = 0

// Tag is the decoded form of a boundary-tag word: either Free(size) or
// Allocated(size).
type Tag struct {
	Size      uint32
	Allocated bool
}

// Free returns the tag of a free block of the given size.
func Free(size uint32) Tag { return Tag{Size: size} }

// Allocated returns the tag of an allocated block of the given size.
func Allocated(size uint32) Tag { return Tag{Size: size, Allocated: true} }

// Epilogue is the zero-size allocated tag that terminates the chain.
var Epilogue = Allocated(0)

// Prologue is the tag written in both words of the prologue block.
var Prologue = Allocated(format.PrologueSize)

// Word encodes t as it is stored in the region.
func (t Tag) Word() uint32 { return Pack(t.Size, t.Allocated) }

// IsEpilogue reports whether t terminates the block chain.
func (t Tag) IsEpilogue() bool { return t.Size == 0 }

func (t Tag) String() string {
	if t.Allocated {
		return fmt.Sprintf("allocated(%d)", t.Size)
	}
	return fmt.Sprintf("free(%d)", t.Size)
}

// Unpack decodes a tag word.
func Unpack(w uint32) Tag {
	return Tag{Size: SizeOf(w), Allocated: IsAllocated(w)}
}

// Pack combines a size and the allocation bit into a tag word. size must be
// a multiple of format.DWordSize; the low bits are masked off.
func Pack(size uint32, allocated bool) uint32 {
	w := size & format.SizeMask
	if allocated {
		w |= format.AllocBit
	}
	return w
}

// SizeOf extracts the block size from a tag word.
func SizeOf(w uint32) uint32 { return w & format.SizeMask }

// IsAllocated extracts the allocation bit from a tag word.
func IsAllocated(w uint32) bool { return w&format.AllocBit != 0 }
