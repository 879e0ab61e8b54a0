package heap

import (
	"fmt"

	"github.com/joshuapare/heapkit/internal/buf"
	"github.com/joshuapare/heapkit/internal/format"
)

// DefaultLimit is the reservation used by callers that do not pick one.
const DefaultLimit = 64 << 20

// Region is the environment an allocator grows into.
type Region interface {
	// Bytes returns the current span [0, Len()). The slice stays valid after
	// Grow; its length does not follow later growth.
	Bytes() []byte

	// Len returns the current end of the region.
	Len() int

	// Grow extends the region by n zeroed bytes and returns the previous
	// end. On error the region is unchanged.
	Grow(n int) (int, error)

	// FD returns the backing file descriptor, or -1 for memory-only regions.
	FD() int

	// Close releases the reservation. Bytes taken earlier must not be used
	// afterwards.
	Close() error
}

// checkLimit validates a reservation size.
func checkLimit(limit int) error {
	if limit <= 0 || int64(limit) > format.MaxHeapSize {
		return fmt.Errorf("%w: %d", ErrBadLimit, limit)
	}
	return nil
}

// nextEnd computes the end after growing size by n within limit.
func nextEnd(size, n, limit int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadGrow, n)
	}
	end, ok := buf.AddOverflowSafe(size, n)
	if !ok || end > limit {
		return 0, fmt.Errorf("%w: grow by %d from %d exceeds %d", ErrLimit, n, size, limit)
	}
	return end, nil
}
