package alloc

import "github.com/joshuapare/heapkit/heap/block"

// Locator finds a free block of at least size bytes. start is the payload of
// the first real block; the scan stops at the epilogue.
type Locator interface {
	FindFit(data []byte, start block.Ptr, size uint32) (block.Ptr, bool)
}

// FirstFit returns the lowest-addressed free block that fits.
type FirstFit struct{}

func (FirstFit) FindFit(data []byte, start block.Ptr, size uint32) (block.Ptr, bool) {
	for p := start; ; {
		t := block.Header(data, p)
		if t.IsEpilogue() {
			return block.Nil, false
		}
		if !t.Allocated && t.Size >= size {
			return p, true
		}
		p += block.Ptr(t.Size)
	}
}

// BestFit returns the smallest free block that fits, the lowest-addressed
// one among equals. An exact fit ends the scan.
type BestFit struct{}

func (BestFit) FindFit(data []byte, start block.Ptr, size uint32) (block.Ptr, bool) {
	best := block.Nil
	var bestSize uint32
	for p := start; ; {
		t := block.Header(data, p)
		if t.IsEpilogue() {
			break
		}
		if !t.Allocated && t.Size >= size && (best == block.Nil || t.Size < bestSize) {
			best, bestSize = p, t.Size
			if t.Size == size {
				break
			}
		}
		p += block.Ptr(t.Size)
	}
	return best, best != block.Nil
}
