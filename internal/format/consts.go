// Package format holds the constants and low-level word helpers shared by the
// heap packages. Everything here describes the on-region byte layout:
//
//	[pad][prologue hdr][prologue ftr][block]...[block][epilogue hdr]
//
// All words are 32-bit little-endian.
package format

const (
	// WordSize is the width of a header or footer word.
	WordSize = 4

	// DWordSize is the alignment unit. Every block size and every payload
	// offset is a multiple of it.
	DWordSize = 2 * WordSize

	// DWordMask is DWordSize - 1.
	DWordMask = DWordSize - 1

	// Overhead is the per-block cost of the boundary tags (header + footer).
	Overhead = 2 * WordSize

	// PrologueSize is the size recorded in the prologue's tags: a header and
	// a footer with no payload, the smallest well-formed block.
	PrologueSize = Overhead

	// MinBlockSize is the smallest block handed out by the allocator and the
	// floor for a split remainder: tags plus one aligned payload unit.
	MinBlockSize = 2 * DWordSize

	// ChunkSize is the default number of bytes the heap grows by when no
	// free block fits.
	ChunkSize = 1 << 12

	// MaxHeapSize bounds the region. Sizes live in 32-bit words whose low
	// three bits are flags.
	MaxHeapSize = 0xFFFFFFF8
)

// Tag word bits.
const (
	// AllocBit marks a block as allocated.
	AllocBit = 0x1

	// FlagMask covers the low bits that alignment leaves free in a size.
	FlagMask = DWordMask

	// SizeMask extracts the size from a tag word.
	SizeMask = ^uint32(FlagMask)
)

// Region layout offsets.
const (
	// PadOffset is the alignment pad word at the very start of the region.
	PadOffset = 0

	// PrologueHeaderOffset is the prologue header word.
	PrologueHeaderOffset = PadOffset + WordSize

	// PrologueFooterOffset is the prologue footer word.
	PrologueFooterOffset = PrologueHeaderOffset + WordSize

	// ProloguePayload is the payload offset of the prologue block; it is the
	// logical start of the heap.
	ProloguePayload = PrologueFooterOffset

	// FirstPayload is the payload offset of the first real block.
	FirstPayload = ProloguePayload + PrologueSize

	// InitialSize is what the region must hold before the first extension:
	// pad, prologue header, prologue footer, epilogue header.
	InitialSize = 4 * WordSize

	// PadMagic is written into the pad word so a reopened heap file can be
	// recognized. The layout does not depend on it.
	PadMagic = 0x6b706568 // "hepk"
)
