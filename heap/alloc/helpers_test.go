package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/heap/block"
	"github.com/joshuapare/heapkit/heap/verify"
	"github.com/joshuapare/heapkit/internal/format"
)

const testLimit = 1 << 20

// dirtyRange is one Add call seen by recordingTracker.
type dirtyRange struct {
	off, length int
}

// recordingTracker records every dirty range for inspection.
type recordingTracker struct {
	ranges []dirtyRange
}

func (r *recordingTracker) Add(off, length int) {
	r.ranges = append(r.ranges, dirtyRange{off, length})
}

func (r *recordingTracker) covers(off int) bool {
	for _, d := range r.ranges {
		if off >= d.off && off < d.off+d.length {
			return true
		}
	}
	return false
}

// newTestAllocator builds an allocator over a fresh in-memory region.
func newTestAllocator(t *testing.T, cfg *Config) *Allocator {
	t.Helper()
	a, err := New(heap.NewMem(testLimit), nil, cfg)
	require.NoError(t, err)
	assertInvariants(t, a)
	return a
}

// allocN allocates size bytes and fails the test on error.
func allocN(t *testing.T, a *Allocator, size int) block.Ptr {
	t.Helper()
	p, err := a.Alloc(size)
	require.NoError(t, err, "Alloc(%d)", size)
	require.NotEqual(t, block.Nil, p, "Alloc(%d) returned Nil", size)
	return p
}

// assertInvariants runs every structural check over the heap.
func assertInvariants(t *testing.T, a *Allocator) {
	t.Helper()
	require.NoError(t, verify.AllInvariants(a.Bytes()))
}

// requireBlock checks both tags of the block at p.
func requireBlock(t *testing.T, a *Allocator, p block.Ptr, want block.Tag) {
	t.Helper()
	data := a.Bytes()
	require.Equal(t, want, block.Header(data, p), "header of block at %d", p)
	require.Equal(t, want, block.Footer(data, p), "footer of block at %d", p)
}

// epilogueWord reads the last word of the region.
func epilogueWord(a *Allocator) uint32 {
	data := a.Bytes()
	return format.ReadU32(data, len(data)-format.WordSize)
}

// fill writes a pattern derived from seed into p's payload.
func fill(a *Allocator, p block.Ptr, n int, seed byte) {
	payload := a.Payload(p)
	for i := 0; i < n; i++ {
		payload[i] = seed + byte(i)
	}
}

// requireFilled checks the pattern written by fill.
func requireFilled(t *testing.T, a *Allocator, p block.Ptr, n int, seed byte) {
	t.Helper()
	payload := a.Payload(p)
	require.GreaterOrEqual(t, len(payload), n)
	for i := 0; i < n; i++ {
		if payload[i] != seed+byte(i) {
			require.Failf(t, "payload clobbered", "block %d byte %d: got %d want %d",
				p, i, payload[i], seed+byte(i))
		}
	}
}
