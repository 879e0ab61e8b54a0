//go:build linux || darwin || freebsd

package heap

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// File is a Region backed by a shared mapping of a heap file. The mapping
// covers the whole limit from the start; Grow only extends the file, so the
// mapping never moves. Pages past the end of the file are never touched.
type File struct {
	f       *os.File
	mapping []byte
	size    int
}

// CreateFile creates a new, empty heap file at path. It fails if the file exists.
func CreateFile(path string, limit int) (*File, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, err
	}
	return mapFile(f, 0, limit)
}

// OpenFile maps an existing heap file for read-write use.
func OpenFile(path string, limit int) (*File, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if st.Size() > int64(limit) {
		_ = f.Close()
		return nil, fmt.Errorf("%w: file %s is %d bytes, limit %d", ErrLimit, path, st.Size(), limit)
	}
	return mapFile(f, int(st.Size()), limit)
}

func mapFile(f *os.File, size, limit int) (*File, error) {
	data, err := unix.Mmap(int(f.Fd()), 0, limit, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("heap: mmap failed: %w", err)
	}
	return &File{f: f, mapping: data, size: size}, nil
}

func (r *File) Bytes() []byte { return r.mapping[:r.size:r.size] }

func (r *File) Len() int { return r.size }

// Limit returns the reservation size.
func (r *File) Limit() int { return len(r.mapping) }

// Grow extends the file by n bytes. The OS zero-fills the new range.
func (r *File) Grow(n int) (int, error) {
	if r.f == nil {
		return 0, ErrClosed
	}
	old := r.size
	end, err := nextEnd(old, n, len(r.mapping))
	if err != nil {
		return 0, err
	}
	if err := r.f.Truncate(int64(end)); err != nil {
		return 0, fmt.Errorf("heap: failed to extend file: %w", err)
	}
	r.size = end
	return old, nil
}

func (r *File) FD() int {
	if r.f == nil {
		return -1
	}
	return int(r.f.Fd())
}

// Name returns the path the file was opened with.
func (r *File) Name() string {
	if r.f == nil {
		return ""
	}
	return r.f.Name()
}

// Sync flushes the whole mapped span and the file metadata to disk.
func (r *File) Sync() error {
	if r.f == nil {
		return ErrClosed
	}
	if r.size > 0 {
		if err := unix.Msync(r.mapping[:r.size], unix.MS_SYNC); err != nil {
			return err
		}
	}
	return r.f.Sync()
}

func (r *File) Close() error {
	var err error
	if r.mapping != nil {
		err = unix.Munmap(r.mapping)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			err = nil
		}
		r.mapping = nil
	}
	if r.f != nil {
		if cerr := r.f.Close(); err == nil {
			err = cerr
		}
		r.f = nil
	}
	r.size = 0
	return err
}
