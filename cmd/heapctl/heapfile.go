package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/heap/alloc"
	"github.com/joshuapare/heapkit/heap/block"
	"github.com/joshuapare/heapkit/heap/dirty"
)

// heapSession is a heap file opened for modification.
type heapSession struct {
	r  *heap.File
	dt *dirty.Tracker
	a  *alloc.Allocator
}

// createHeap lays out a new heap file at path.
func createHeap(path string) (*heapSession, error) {
	limit, err := heapLimit()
	if err != nil {
		return nil, err
	}
	cfg, err := heapConfig()
	if err != nil {
		return nil, err
	}
	r, err := heap.CreateFile(path, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to create heap file: %w", err)
	}
	dt := dirty.NewTracker(r)
	a, err := alloc.New(r, dt, cfg)
	if err != nil {
		_ = r.Close()
		return nil, err
	}
	return &heapSession{r: r, dt: dt, a: a}, nil
}

// openHeap attaches to an existing heap file.
func openHeap(path string) (*heapSession, error) {
	limit, err := heapLimit()
	if err != nil {
		return nil, err
	}
	cfg, err := heapConfig()
	if err != nil {
		return nil, err
	}
	r, err := heap.OpenFile(path, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to open heap file: %w", err)
	}
	dt := dirty.NewTracker(r)
	a, err := alloc.Open(r, dt, cfg)
	if err != nil {
		_ = r.Close()
		return nil, fmt.Errorf("%s is not a valid heap: %w", path, err)
	}
	return &heapSession{r: r, dt: dt, a: a}, nil
}

// close flushes every dirty range and releases the file.
func (s *heapSession) close() error {
	flushErr := s.dt.Flush(context.Background(), dirty.FlushAuto)
	return errors.Join(flushErr, s.r.Close())
}

// markPayload records payload bytes written by the CLI itself.
func (s *heapSession) markPayload(p block.Ptr, n int) {
	s.dt.Add(int(p), n)
}

// findAllocated reports whether p is the payload of an allocated block.
func findAllocated(a *alloc.Allocator, p block.Ptr) (block.Block, bool) {
	var found block.Block
	ok := false
	_ = a.Walk(func(b block.Block) bool {
		if b.Ptr == p {
			found, ok = b, b.Tag.Allocated
			return false
		}
		return b.Ptr < p
	})
	return found, ok
}
