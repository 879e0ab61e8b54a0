package alloc

import (
	"fmt"

	"github.com/joshuapare/heapkit/heap/block"
	"github.com/joshuapare/heapkit/internal/buf"
	"github.com/joshuapare/heapkit/internal/format"
)

// Alloc returns a block with at least size usable payload bytes, 8-byte
// aligned. Alloc(0) returns block.Nil and no error.
//
// When no free block fits, the heap grows by max(block size, chunk size). If
// that fails the error wraps ErrOutOfMemory and the heap is unchanged.
func (a *Allocator) Alloc(size int) (block.Ptr, error) {
	a.stats.AllocCalls++
	if size == 0 {
		return block.Nil, nil
	}
	if size < 0 {
		return block.Nil, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	asize, ok := format.BlockSize(size)
	if !ok {
		a.log.Debug("alloc failed", "size", size, "reason", "exceeds max heap size")
		return block.Nil, fmt.Errorf("%w: request of %d bytes exceeds the largest heap", ErrOutOfMemory, size)
	}

	if p, ok := a.loc.FindFit(a.r.Bytes(), a.first(), asize); ok {
		a.place(p, asize)
		a.stats.AllocFastPath++
		return p, nil
	}

	p, err := a.extend(max(asize, a.chunk) / format.WordSize)
	if err != nil {
		a.log.Debug("alloc failed", "size", size, "block", asize, "err", err)
		return block.Nil, err
	}
	a.place(p, asize)
	a.stats.AllocSlowPath++
	return p, nil
}

// Free releases p and merges it with free neighbours. Free(block.Nil) does
// nothing. p must come from Alloc on this allocator and not be freed yet;
// other values corrupt the heap and are not detected.
func (a *Allocator) Free(p block.Ptr) {
	if p == block.Nil {
		return
	}
	size := block.Size(a.r.Bytes(), p)
	a.writeTags(p, block.Free(size))
	a.stats.FreeCalls++
	a.stats.BytesFreed += int64(size)
	a.coalesce(p)
}

// Payload returns the usable bytes of p. The slice capacity ends at the
// block's footer. Payload(block.Nil) returns nil.
func (a *Allocator) Payload(p block.Ptr) []byte {
	if p == block.Nil {
		return nil
	}
	data := a.r.Bytes()
	s, ok := buf.Window(data, int(p), block.Usable(block.Size(data, p)))
	if !ok {
		return nil
	}
	return s
}

// UsableSize returns how many payload bytes p can hold, which may exceed the
// size requested from Alloc.
func (a *Allocator) UsableSize(p block.Ptr) int {
	if p == block.Nil {
		return 0
	}
	return block.Usable(block.Size(a.r.Bytes(), p))
}
