package alloc

import (
	"fmt"

	"github.com/joshuapare/heapkit/heap/block"
	"github.com/joshuapare/heapkit/internal/format"
)

// extend grows the heap by words 4-byte words (rounded up to an even count)
// and returns the resulting free block after coalescing it with a free
// predecessor.
//
// The old epilogue header becomes the new block's header, so the new block's
// payload starts exactly at the old end of the region:
//
//	before: ...[last block][epi]|
//	after:  ...[last block][hdr  new free block  ftr][epi]|
//
// If the region refuses to grow, no block is touched.
func (a *Allocator) extend(words uint32) (block.Ptr, error) {
	size := format.EvenWords(words) * format.WordSize

	old, err := a.r.Grow(int(size))
	if err != nil {
		a.log.Debug("extend failed", "bytes", size, "len", a.r.Len(), "err", err)
		return block.Nil, fmt.Errorf("%w: extend by %d bytes: %w", ErrOutOfMemory, size, err)
	}
	a.stats.GrowCalls++
	a.stats.GrowBytes += int64(size)
	a.log.Debug("extend", "bytes", size, "old_end", old, "new_end", old+int(size))

	p := block.Ptr(old)
	a.writeTags(p, block.Free(size))
	a.writeHeader(p+block.Ptr(size), block.Epilogue)
	return a.coalesce(p), nil
}
