package alloc

import (
	"errors"
	"io"

	"github.com/joshuapare/heapkit/heap/block"
	"github.com/joshuapare/heapkit/heap/verify"
	"github.com/joshuapare/heapkit/internal/format"
)

// Counters are operation counts since the Allocator was created or opened.
type Counters struct {
	AllocCalls       int   `json:"alloc_calls"`       // Total Alloc() calls
	AllocFastPath    int   `json:"alloc_fast_path"`   // Allocations served without growing
	AllocSlowPath    int   `json:"alloc_slow_path"`   // Allocations that required extend
	FreeCalls        int   `json:"free_calls"`        // Free() calls on non-nil pointers
	GrowCalls        int   `json:"grow_calls"`        // Successful region growths
	GrowBytes        int64 `json:"grow_bytes"`        // Total bytes added by growth
	SplitCount       int   `json:"split_count"`       // Block splits during placement
	CoalesceForward  int   `json:"coalesce_forward"`  // Merges with the next block
	CoalesceBackward int   `json:"coalesce_backward"` // Merges with the previous block
	BytesAllocated   int64 `json:"bytes_allocated"`   // Total block bytes handed out (including tags)
	BytesFreed       int64 `json:"bytes_freed"`       // Total block bytes released
}

// Layout summarizes the block chain at one point in time.
type Layout struct {
	HeapSize       int    `json:"heap_size"`       // Region length, sentinels included
	Blocks         int    `json:"blocks"`          // Blocks between prologue and epilogue
	FreeBlocks     int    `json:"free_blocks"`     // Of which free
	AllocatedBytes int64  `json:"allocated_bytes"` // Sum of allocated block sizes
	FreeBytes      int64  `json:"free_bytes"`      // Sum of free block sizes
	LargestFree    uint32 `json:"largest_free"`    // Size of the largest free block
}

// Stats is a snapshot of the counters and the current layout.
type Stats struct {
	Counters
	Layout
}

// Stats returns the current counters and layout.
func (a *Allocator) Stats() Stats {
	// The live heap is well formed between calls, so Summarize cannot fail.
	l, _ := Summarize(a.r.Bytes())
	return Stats{Counters: a.stats, Layout: l}
}

// Summarize computes the Layout of a raw heap region. It walks the chain with
// bounds checks and returns the layout seen so far together with the first
// chain error.
func Summarize(data []byte) (Layout, error) {
	l := Layout{HeapSize: len(data)}
	if len(data) < format.InitialSize {
		return l, format.ErrTruncated
	}
	err := walk(data, format.FirstPayload, func(b block.Block) bool {
		l.Blocks++
		if b.Tag.Allocated {
			l.AllocatedBytes += int64(b.Tag.Size)
			return true
		}
		l.FreeBlocks++
		l.FreeBytes += int64(b.Tag.Size)
		l.LargestFree = max(l.LargestFree, b.Tag.Size)
		return true
	})
	return l, err
}

// Walk calls fn for every block from the lowest address up, stopping early
// when fn returns false. fn must not allocate or free.
func (a *Allocator) Walk(fn func(b block.Block) bool) error {
	return walk(a.r.Bytes(), a.first(), fn)
}

// Check validates the whole heap and returns the first problem found as a
// *verify.ValidationError.
func (a *Allocator) Check() error {
	return verify.AllInvariants(a.r.Bytes())
}

func walk(data []byte, start block.Ptr, fn func(b block.Block) bool) error {
	it := block.Walk(data, start)
	for {
		b, err := it.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if !fn(b) {
			return nil
		}
	}
}
