package alloc

import (
	"github.com/joshuapare/heapkit/heap/block"
	"github.com/joshuapare/heapkit/internal/format"
)

// place allocates asize bytes at the start of the free block p. A remainder
// of at least format.MinBlockSize is split off as a new free block; anything
// smaller stays inside the allocated block.
func (a *Allocator) place(p block.Ptr, asize uint32) {
	csize := block.Size(a.r.Bytes(), p)

	if rem := csize - asize; rem >= format.MinBlockSize {
		a.writeTags(p, block.Allocated(asize))
		a.writeTags(p+block.Ptr(asize), block.Free(rem))
		a.stats.SplitCount++
		a.stats.BytesAllocated += int64(asize)
		return
	}
	a.writeTags(p, block.Allocated(csize))
	a.stats.BytesAllocated += int64(csize)
}
