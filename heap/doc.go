// Package heap provides the memory regions that heapkit allocators manage.
//
// # Overview
//
// A Region is a contiguous byte span with a movable end, the Go shape of the
// classic sbrk interface: Grow(n) extends the span by n zeroed bytes and
// returns the old end. Regions never shrink and never move: every Region
// reserves its whole limit up front, so byte slices taken from Bytes() stay
// valid across later growth.
//
// # Implementations
//
// Mem: a Go byte slice reserved to the limit. Portable, used by tests and by
// short-lived heaps.
//
//	r := heap.NewMem(1 << 20)
//
// Anon: an anonymous private mapping outside the Go heap (unix). The kernel
// commits pages on first touch, so a large limit costs nothing until used.
//
//	r, err := heap.NewAnon(64 << 20)
//
// File: a shared mapping of a heap file. Growth extends the file with
// ftruncate inside the reserved mapping. Together with the dirty package
// this gives a persistent heap that can be reopened later.
//
//	r, err := heap.CreateFile("data.heap", 64<<20)
//	...
//	r, err = heap.OpenFile("data.heap", 64<<20)
//
// # Thread Safety
//
// Regions are not thread-safe. They are owned by a single allocator.
//
// # Related Packages
//
//   - github.com/joshuapare/heapkit/heap/alloc: the allocator over a Region
//   - github.com/joshuapare/heapkit/heap/dirty: flushes modified ranges of a File
package heap
