package dirty

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMapping is a memory-only mapping with a configurable descriptor.
type fakeMapping struct {
	data []byte
	fd   int
}

func (f *fakeMapping) Bytes() []byte { return f.data }
func (f *fakeMapping) FD() int       { return f.fd }

func newTestTracker() (*Tracker, int64) {
	tr := NewTracker(&fakeMapping{data: make([]byte, 1<<20), fd: -1})
	return tr, int64(os.Getpagesize())
}

func Test_DirtyTracker_PageAlignment(t *testing.T) {
	tr, page := newTestTracker()

	// Not page-aligned: offset 100, length 200.
	tr.Add(100, 200)

	coalesced := tr.Ranges()
	require.Len(t, coalesced, 1)
	assert.Equal(t, int64(0), coalesced[0].Off)
	assert.Equal(t, page, coalesced[0].Len)
}

func Test_DirtyTracker_Coalesce_Adjacent(t *testing.T) {
	tr, page := newTestTracker()

	tr.Add(int(page), int(page))
	tr.Add(int(2*page), int(page))

	coalesced := tr.Ranges()
	require.Len(t, coalesced, 1)
	assert.Equal(t, page, coalesced[0].Off)
	assert.Equal(t, 2*page, coalesced[0].Len)
}

func Test_DirtyTracker_Coalesce_Overlapping(t *testing.T) {
	tr, page := newTestTracker()

	tr.Add(int(page)+10, 20)
	tr.Add(int(page)+5, 100)
	tr.Add(int(page)+int(page)-4, 8) // straddles into the next page

	coalesced := tr.Ranges()
	require.Len(t, coalesced, 1)
	assert.Equal(t, page, coalesced[0].Off)
	assert.Equal(t, 2*page, coalesced[0].Len)
}

func Test_DirtyTracker_Coalesce_Separate(t *testing.T) {
	tr, page := newTestTracker()

	// Added out of order; result is sorted.
	tr.Add(int(5*page), 4)
	tr.Add(int(page), 4)

	coalesced := tr.Ranges()
	require.Len(t, coalesced, 2)
	assert.Equal(t, Range{Off: page, Len: page}, coalesced[0])
	assert.Equal(t, Range{Off: 5 * page, Len: page}, coalesced[1])
}

func Test_DirtyTracker_Coalesce_ManyRanges(t *testing.T) {
	tr, page := newTestTracker()

	// 100 boundary-tag sized writes spread over three pages.
	for i := 0; i < 100; i++ {
		tr.Add(i*int(page)*3/100, 4)
	}
	assert.Equal(t, 100, tr.Pending())

	coalesced := tr.Ranges()
	require.Len(t, coalesced, 1)
	assert.Equal(t, int64(0), coalesced[0].Off)
	assert.Equal(t, 3*page, coalesced[0].Len)
}

func Test_DirtyTracker_IgnoresEmptyRanges(t *testing.T) {
	tr, _ := newTestTracker()
	tr.Add(100, 0)
	tr.Add(100, -4)
	assert.Equal(t, 0, tr.Pending())
	assert.Nil(t, tr.Ranges())
}

func Test_DirtyTracker_Reset(t *testing.T) {
	tr, _ := newTestTracker()
	tr.Add(0, 4)
	tr.Add(64, 4)
	require.Equal(t, 2, tr.Pending())

	tr.Reset()
	assert.Equal(t, 0, tr.Pending())
}

func Test_DirtyTracker_Flush_MemoryOnlyClearsRanges(t *testing.T) {
	tr, _ := newTestTracker()
	tr.Add(0, 4)

	require.NoError(t, tr.Flush(context.Background(), FlushAuto))
	assert.Equal(t, 0, tr.Pending())
}

func Test_DirtyTracker_Flush_PreCancelled(t *testing.T) {
	tr, _ := newTestTracker()
	tr.Add(0, 4)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := tr.Flush(ctx, FlushAuto)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, tr.Pending(), "cancelled flush keeps ranges for a retry")
}

func TestClip(t *testing.T) {
	start, end, ok := clip(Range{Off: 4096, Len: 4096}, 6000)
	require.True(t, ok)
	assert.Equal(t, 4096, start)
	assert.Equal(t, 6000, end)

	_, _, ok = clip(Range{Off: 8192, Len: 4096}, 6000)
	assert.False(t, ok)
}

func Benchmark_DirtyTracker_Add(b *testing.B) {
	tr, _ := newTestTracker()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Add(i%(1<<20), 4)
		if tr.Pending() == defaultRangeCapacity {
			tr.Reset()
		}
	}
}
