package dirty

import (
	"context"
	"os"
	"sort"
)

// defaultRangeCapacity is the pre-allocated capacity for dirty ranges.
const defaultRangeCapacity = 64

// FlushMode controls durability guarantees of Flush.
type FlushMode int

const (
	// FlushAuto syncs dirty pages, then fdatasyncs the file.
	FlushAuto FlushMode = iota

	// FlushDataOnly only syncs dirty pages. The caller is responsible for a
	// later FlushAuto or FlushFull when batching.
	FlushDataOnly

	// FlushFull is FlushAuto plus F_FULLFSYNC on macOS.
	FlushFull
)

// Range represents a dirty byte range.
type Range struct {
	Off int64
	Len int64
}

// Tracker accumulates dirty ranges and flushes them efficiently.
//
// NOT thread-safe. Only one goroutine should use it at a time.
type Tracker struct {
	m        Mapping
	ranges   []Range
	pageSize int64
}

// NewTracker creates a dirty tracker for the given mapping.
func NewTracker(m Mapping) *Tracker {
	return &Tracker{
		m:        m,
		ranges:   make([]Range, 0, defaultRangeCapacity),
		pageSize: int64(os.Getpagesize()),
	}
}

// Add records a dirty range. It only appends; alignment and merging happen
// at flush time.
func (t *Tracker) Add(off, length int) {
	if length <= 0 {
		return
	}
	t.ranges = append(t.ranges, Range{
		Off: int64(off),
		Len: int64(length),
	})
}

// Pending returns the number of raw ranges recorded since the last flush.
func (t *Tracker) Pending() int { return len(t.ranges) }

// Flush syncs every dirty range and, depending on mode, the file itself.
//
// The context is checked before each range. If it is cancelled midway some
// ranges may have reached the disk while others have not; the recorded
// ranges are kept so a later Flush retries all of them.
func (t *Tracker) Flush(ctx context.Context, mode FlushMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fd := t.m.FD()
	if fd < 0 {
		t.Reset()
		return nil
	}

	data := t.m.Bytes()
	if len(t.ranges) > 0 && len(data) > 0 {
		if err := t.flushRanges(ctx, data); err != nil {
			return err
		}
	}

	if mode != FlushDataOnly {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fdatasync(t.m, fd, mode == FlushFull); err != nil {
			return err
		}
	}

	t.Reset()
	return nil
}

// Reset clears all tracked ranges.
func (t *Tracker) Reset() {
	t.ranges = t.ranges[:0]
}

// Ranges returns the page-aligned, sorted, merged ranges the next Flush
// would sync.
func (t *Tracker) Ranges() []Range {
	return t.coalesce()
}

// coalesce page-aligns all ranges, sorts them, and merges overlapping/adjacent ranges.
func (t *Tracker) coalesce() []Range {
	if len(t.ranges) == 0 {
		return nil
	}

	aligned := make([]Range, len(t.ranges))
	for i, r := range t.ranges {
		start := (r.Off / t.pageSize) * t.pageSize

		end := r.Off + r.Len
		if end%t.pageSize != 0 {
			end = ((end / t.pageSize) + 1) * t.pageSize
		}

		aligned[i] = Range{
			Off: start,
			Len: end - start,
		}
	}

	sort.Slice(aligned, func(i, j int) bool {
		return aligned[i].Off < aligned[j].Off
	})

	merged := make([]Range, 0, len(aligned))
	current := aligned[0]

	for i := 1; i < len(aligned); i++ {
		next := aligned[i]

		if next.Off <= current.Off+current.Len {
			end := max(current.Off+current.Len, next.Off+next.Len)
			current.Len = end - current.Off
		} else {
			merged = append(merged, current)
			current = next
		}
	}

	return append(merged, current)
}

// clip bounds r to the current region length. ok is false when nothing of r
// remains.
func clip(r Range, n int) (start, end int, ok bool) {
	start = int(r.Off)
	end = min(int(r.Off+r.Len), n)
	return start, end, start < end
}
