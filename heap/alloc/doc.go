// Package alloc implements a boundary-tag heap allocator over a growable
// byte region.
//
// # Overview
//
// The heap is a single implicit list of blocks laid out back to back inside
// a heap.Region:
//
//	[pad][prologue hdr][prologue ftr][block]...[block][epilogue hdr]
//
// Every block carries its size and an allocated bit in a 4-byte header and
// an identical footer. Walking the list forward uses the header, walking it
// backward uses the footer of the previous block. There are no free-list
// links: free blocks are found by scanning.
//
// # Allocation
//
// Alloc rounds the request up to a block size (payload plus 8 bytes of tags,
// aligned to 8, at least 16), asks the Locator for a free block that fits
// and places the request at its start. If the leftover is at least 16 bytes
// it becomes a new free block, otherwise the whole block is handed out.
// When nothing fits, the heap grows by max(block size, Config.ChunkSize)
// bytes and the request is placed into the new space.
//
// # Release
//
// Free marks a block free and immediately merges it with free neighbours, so
// between calls no two adjacent blocks are both free. A merged block always
// starts at the leftmost participant.
//
// # Usage Example
//
//	r := heap.NewMem(1 << 20)
//	a, err := alloc.New(r, nil, nil)
//	if err != nil {
//	    return err
//	}
//
//	p, err := a.Alloc(48)
//	if err != nil {
//	    return err
//	}
//	copy(a.Payload(p), "hello")
//	a.Free(p)
//
// # Persistence
//
// Over a heap.File the allocator state lives entirely in the file. Every tag
// write is reported to the DirtyTracker; flush it with dirty.Tracker.Flush
// and reattach later with Open.
//
// # Thread Safety
//
// An Allocator is not safe for concurrent use. Callers must serialize
// access. Allocators over different regions are independent.
//
// # Debugging
//
// Set HEAPKIT_LOG_ALLOC to any value to log extensions and failures to
// stderr when no Config.Logger is given.
package alloc
