// Package dirty tracks which byte ranges of a file-backed heap were modified
// and flushes exactly those ranges to disk.
//
// # Overview
//
// The allocator reports every boundary-tag word it writes; callers report
// the payload bytes they write. At flush time the tracker page-aligns the
// ranges, merges overlapping and adjacent ones, and syncs each merged range
// (msync on unix; write-back on platforms without mmap).
//
// # Usage
//
//	r, _ := heap.CreateFile("data.heap", 64<<20)
//	dt := dirty.NewTracker(r)
//	a, _ := alloc.New(r, dt, nil)
//
//	p, _ := a.Alloc(128)
//	copy(a.Payload(p), record)
//	dt.Add(int(p), len(record))
//
//	if err := dt.Flush(ctx, dirty.FlushAuto); err != nil {
//	    return err
//	}
//
// Memory-only regions (FD() < 0) have nothing to flush: Flush just clears
// the recorded ranges.
//
// # Thread Safety
//
// Tracker instances are not thread-safe.
package dirty
