package block

import (
	"fmt"
	"io"

	"github.com/joshuapare/heapkit/internal/buf"
	"github.com/joshuapare/heapkit/internal/format"
)

// Block is a decoded block: where its payload starts and what its header says.
type Block struct {
	Ptr Ptr
	Tag Tag
}

// Next returns the payload pointer of the following block.
func (b Block) Next() Ptr { return b.Ptr + Ptr(b.Tag.Size) }

// Usable returns the payload capacity of b.
func (b Block) Usable() int { return Usable(b.Tag.Size) }

// Iterator walks a block chain without trusting it. Every header is bounds
// checked before it is decoded, so it is safe over bytes read from disk.
type Iterator struct {
	data []byte
	p    Ptr
	done bool
	// Epilogue is the payload pointer at which the walk ended, valid after
	// Next has returned io.EOF.
	Epilogue Ptr
}

// Walk returns an iterator over data starting with the block whose payload
// is at start. Pass format.FirstPayload to visit every real block.
func Walk(data []byte, start Ptr) *Iterator {
	return &Iterator{data: data, p: start}
}

// Next returns the next block. It returns io.EOF once the epilogue header is
// reached, and an error wrapping format.ErrTruncated or format.ErrCorrupt if
// the chain runs off the region or holds an impossible size.
func (it *Iterator) Next() (Block, error) {
	if it.done {
		return Block{}, io.EOF
	}

	hdr := HeaderOff(it.p)
	if hdr < 0 || !buf.Has(it.data, hdr, format.WordSize) {
		it.done = true
		return Block{}, fmt.Errorf("block: header at %d: %w", hdr, format.ErrTruncated)
	}

	t := Unpack(format.ReadU32(it.data, hdr))
	if t.IsEpilogue() {
		it.done = true
		it.Epilogue = it.p
		return Block{}, io.EOF
	}

	if t.Size < format.MinBlockSize {
		it.done = true
		return Block{}, fmt.Errorf("block: %v at %d below minimum %d: %w",
			t, it.p, format.MinBlockSize, format.ErrCorrupt)
	}

	// The next header sits at p+size-4; it must exist for the chain to continue.
	end, ok := buf.AddOverflowSafe(int(it.p), int(t.Size))
	if !ok || end > len(it.data) {
		it.done = true
		return Block{}, fmt.Errorf("block: %v at %d overruns region (len=%d): %w",
			t, it.p, len(it.data), format.ErrTruncated)
	}

	b := Block{Ptr: it.p, Tag: t}
	it.p = b.Next()
	return b, nil
}
