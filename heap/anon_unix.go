//go:build linux || darwin || freebsd

package heap

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Anon is a Region backed by an anonymous private mapping of the whole limit.
type Anon struct {
	mapping []byte
	size    int
}

// NewAnon maps limit bytes of anonymous memory.
func NewAnon(limit int) (*Anon, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}
	data, err := unix.Mmap(-1, 0, limit, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("heap: mmap %d anonymous bytes: %w", limit, err)
	}
	return &Anon{mapping: data}, nil
}

func (a *Anon) Bytes() []byte { return a.mapping[:a.size:a.size] }

func (a *Anon) Len() int { return a.size }

// Limit returns the reservation size.
func (a *Anon) Limit() int { return len(a.mapping) }

func (a *Anon) Grow(n int) (int, error) {
	if a.mapping == nil {
		return 0, ErrClosed
	}
	old := a.size
	end, err := nextEnd(old, n, len(a.mapping))
	if err != nil {
		return 0, err
	}
	a.size = end
	return old, nil
}

func (a *Anon) FD() int { return -1 }

func (a *Anon) Close() error {
	if a.mapping == nil {
		return nil
	}
	err := unix.Munmap(a.mapping)
	a.mapping = nil
	a.size = 0
	return err
}
