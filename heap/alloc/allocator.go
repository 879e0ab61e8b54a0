package alloc

import (
	"fmt"
	"log/slog"

	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/heap/block"
	"github.com/joshuapare/heapkit/heap/verify"
	"github.com/joshuapare/heapkit/internal/format"
)

// Allocator manages the blocks of one heap region.
type Allocator struct {
	r     heap.Region
	dt    DirtyTracker
	loc   Locator
	chunk uint32
	log   *slog.Logger

	// start is the prologue payload, the logical beginning of the heap.
	start block.Ptr

	stats Counters
}

// New lays out an empty heap in r and extends it by the configured chunk.
//
// r must be empty. dt may be nil; cfg may be nil for DefaultConfig. If the
// region cannot supply the initial space the error wraps ErrOutOfMemory and
// no Allocator is returned.
func New(r heap.Region, dt DirtyTracker, cfg *Config) (*Allocator, error) {
	a, err := newAllocator(r, dt, cfg)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: length %d", ErrRegionInUse, r.Len())
	}

	if _, err := r.Grow(format.InitialSize); err != nil {
		a.log.Debug("init failed", "bytes", format.InitialSize, "err", err)
		return nil, fmt.Errorf("%w: initial layout: %w", ErrOutOfMemory, err)
	}
	data := r.Bytes()
	format.PutU32(data, format.PadOffset, format.PadMagic)
	a.dt.Add(format.PadOffset, format.WordSize)
	a.writeTags(a.start, block.Prologue)
	a.writeHeader(a.start+format.PrologueSize, block.Epilogue)

	if _, err := a.extend(a.chunk / format.WordSize); err != nil {
		a.log.Debug("init failed", "bytes", a.chunk, "err", err)
		return nil, err
	}
	a.log.Debug("heap initialized", "len", r.Len(), "chunk", a.chunk)
	return a, nil
}

// Open attaches to a heap already laid out in r, typically a reopened
// heap.File. The region is validated first; a broken heap is rejected with
// the *verify.ValidationError that describes it.
func Open(r heap.Region, dt DirtyTracker, cfg *Config) (*Allocator, error) {
	a, err := newAllocator(r, dt, cfg)
	if err != nil {
		return nil, err
	}
	data := r.Bytes()
	if err := verify.Signature(data); err != nil {
		return nil, err
	}
	if err := verify.AllInvariants(data); err != nil {
		return nil, err
	}
	a.log.Debug("heap opened", "len", r.Len())
	return a, nil
}

func newAllocator(r heap.Region, dt DirtyTracker, cfg *Config) (*Allocator, error) {
	if cfg == nil {
		cfg = &DefaultConfig
	}
	c, err := cfg.resolve()
	if err != nil {
		return nil, err
	}
	if dt == nil {
		dt = noDirty{}
	}
	return &Allocator{
		r:     r,
		dt:    dt,
		loc:   c.Locator,
		chunk: uint32(c.ChunkSize),
		log:   c.Logger,
		start: format.ProloguePayload,
	}, nil
}

// Bytes returns the current heap region. The slice does not follow later
// growth; take it again after Alloc.
func (a *Allocator) Bytes() []byte { return a.r.Bytes() }

// Len returns the current heap size in bytes.
func (a *Allocator) Len() int { return a.r.Len() }

// first returns the payload pointer of the first real block.
func (a *Allocator) first() block.Ptr { return a.start + format.PrologueSize }

// writeTags stamps t into p's header and footer and marks both words dirty.
func (a *Allocator) writeTags(p block.Ptr, t block.Tag) {
	block.Write(a.r.Bytes(), p, t)
	a.dt.Add(block.HeaderOff(p), format.WordSize)
	a.dt.Add(block.FooterOff(p, t.Size), format.WordSize)
}

// writeHeader stamps t into p's header only. Used for the epilogue.
func (a *Allocator) writeHeader(p block.Ptr, t block.Tag) {
	block.SetHeader(a.r.Bytes(), p, t)
	a.dt.Add(block.HeaderOff(p), format.WordSize)
}
