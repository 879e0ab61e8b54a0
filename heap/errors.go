package heap

import "errors"

var (
	// ErrLimit indicates that growing would take the region past its limit.
	ErrLimit = errors.New("heap: region limit reached")

	// ErrClosed indicates use of a region after Close.
	ErrClosed = errors.New("heap: region closed")

	// ErrBadGrow indicates a negative growth request.
	ErrBadGrow = errors.New("heap: negative grow")

	// ErrBadLimit indicates a limit that is not positive or exceeds the
	// largest addressable heap.
	ErrBadLimit = errors.New("heap: invalid region limit")
)
