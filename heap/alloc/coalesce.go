package alloc

import "github.com/joshuapare/heapkit/heap/block"

// coalesce merges the free block p with whichever neighbours are free and
// returns the payload of the merged block. The prologue and epilogue are
// allocated, so the first and last blocks need no special case.
func (a *Allocator) coalesce(p block.Ptr) block.Ptr {
	data := a.r.Bytes()
	size := block.Size(data, p)
	prev := block.PrevTag(data, p)
	next := block.Header(data, block.Next(data, p))

	switch {
	case prev.Allocated && next.Allocated:
		return p

	case prev.Allocated && !next.Allocated:
		size += next.Size
		a.writeTags(p, block.Free(size))
		a.stats.CoalesceForward++

	case !prev.Allocated && next.Allocated:
		p = block.Prev(data, p)
		size += prev.Size
		a.writeTags(p, block.Free(size))
		a.stats.CoalesceBackward++

	default:
		p = block.Prev(data, p)
		size += prev.Size + next.Size
		a.writeTags(p, block.Free(size))
		a.stats.CoalesceForward++
		a.stats.CoalesceBackward++
	}
	return p
}
