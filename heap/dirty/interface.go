package dirty

// DirtyTracker is the minimal interface for reporting modified byte ranges.
// The allocator depends on this, not on Tracker, so tests can count calls.
type DirtyTracker interface {
	// Add marks a byte range as dirty.
	// off is the offset from the start of the region, length is the number of bytes.
	Add(off, length int)
}

// Mapping is what a Tracker flushes: the current region bytes and the file
// descriptor behind them (-1 when there is none).
type Mapping interface {
	Bytes() []byte
	FD() int
}
