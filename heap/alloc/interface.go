package alloc

import "github.com/joshuapare/heapkit/heap/dirty"

// DirtyTracker is a type alias for the interface defined in heap/dirty.
type DirtyTracker = dirty.DirtyTracker

// noDirty is used when the caller passes a nil tracker.
type noDirty struct{}

func (noDirty) Add(int, int) {}
