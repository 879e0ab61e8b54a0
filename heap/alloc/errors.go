package alloc

import "errors"

var (
	// ErrOutOfMemory indicates that no free block fit and the region could not
	// grow. The region error is wrapped alongside it.
	ErrOutOfMemory = errors.New("alloc: out of memory")

	// ErrBadSize indicates a negative allocation size.
	ErrBadSize = errors.New("alloc: negative allocation size")

	// ErrRegionInUse indicates New was given a region that already holds data.
	ErrRegionInUse = errors.New("alloc: region is not empty")

	// ErrBadConfig indicates an invalid Config.
	ErrBadConfig = errors.New("alloc: invalid config")
)
