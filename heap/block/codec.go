package block

import "github.com/joshuapare/heapkit/internal/format"

// HeaderOff returns the offset of p's header word.
func HeaderOff(p Ptr) int { return int(p) - format.WordSize }

// FooterOff returns the offset of the footer word of a block of the given
// size whose payload starts at p.
func FooterOff(p Ptr, size uint32) int { return int(p) + int(size) - format.DWordSize }

// Header decodes p's header.
func Header(data []byte, p Ptr) Tag {
	return Unpack(format.ReadU32(data, HeaderOff(p)))
}

// Footer decodes p's footer, located through the size in p's header.
func Footer(data []byte, p Ptr) Tag {
	size := SizeOf(format.ReadU32(data, HeaderOff(p)))
	return Unpack(format.ReadU32(data, FooterOff(p, size)))
}

// SetHeader writes only p's header word.
func SetHeader(data []byte, p Ptr, t Tag) {
	format.PutU32(data, HeaderOff(p), t.Word())
}

// SetFooter writes the footer word of a block of size t.Size at p.
func SetFooter(data []byte, p Ptr, t Tag) {
	format.PutU32(data, FooterOff(p, t.Size), t.Word())
}

// Write stamps t into both of p's boundary tags.
func Write(data []byte, p Ptr, t Tag) {
	SetHeader(data, p, t)
	SetFooter(data, p, t)
}

// Size returns the size recorded in p's header.
func Size(data []byte, p Ptr) uint32 {
	return SizeOf(format.ReadU32(data, HeaderOff(p)))
}

// IsFree reports whether p's header has the allocation bit clear.
func IsFree(data []byte, p Ptr) bool {
	return !IsAllocated(format.ReadU32(data, HeaderOff(p)))
}

// Next returns the payload pointer of the block after p.
func Next(data []byte, p Ptr) Ptr {
	return p + Ptr(Size(data, p))
}

// Prev returns the payload pointer of the block before p, read through the
// previous block's footer (the word just below p's header).
func Prev(data []byte, p Ptr) Ptr {
	return p - Ptr(SizeOf(format.ReadU32(data, int(p)-format.DWordSize)))
}

// PrevTag decodes the footer of the block before p.
func PrevTag(data []byte, p Ptr) Tag {
	return Unpack(format.ReadU32(data, int(p)-format.DWordSize))
}

// Usable returns the payload capacity of a block of the given size.
func Usable(size uint32) int {
	if size < format.Overhead {
		return 0
	}
	return int(size) - format.Overhead
}
