//go:build !linux && !darwin && !freebsd

package heap

import (
	"fmt"
	"io"
	"os"
)

// File keeps the heap file's bytes in memory where mmap is not used. Changes
// reach the disk through WriteBack and Sync.
type File struct {
	f    *os.File
	data []byte
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
	return &File{f: f, data: make([]byte, 0, limit)}, nil
}

// OpenFile loads an existing heap file.
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
		f.Close()
		return nil, err
	}
	if st.Size() > int64(limit) {
		f.Close()
		return nil, fmt.Errorf("%w: file %s is %d bytes, limit %d", ErrLimit, path, st.Size(), limit)
	}
	data := make([]byte, st.Size(), limit)
	if _, err := io.ReadFull(f, data); err != nil {
		f.Close()
		return nil, err
	}
	return &File{f: f, data: data}, nil
}

func (r *File) Bytes() []byte { return r.data[:len(r.data):len(r.data)] }

func (r *File) Len() int { return len(r.data) }

// Limit returns the reservation size.
func (r *File) Limit() int { return cap(r.data) }

func (r *File) Grow(n int) (int, error) {
	if r.f == nil {
		return 0, ErrClosed
	}
	old := len(r.data)
	end, err := nextEnd(old, n, cap(r.data))
	if err != nil {
		return 0, err
	}
	if err := r.f.Truncate(int64(end)); err != nil {
		return 0, fmt.Errorf("heap: failed to extend file: %w", err)
	}
	r.data = r.data[:end]
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

// WriteBack copies data[off:off+n] to the same range of the file.
func (r *File) WriteBack(off, n int) error {
	if r.f == nil {
		return ErrClosed
	}
	end := min(off+n, len(r.data))
	if off < 0 || off >= end {
		return nil
	}
	_, err := r.f.WriteAt(r.data[off:end], int64(off))
	return err
}

// Sync writes the whole span back and syncs the file.
func (r *File) Sync() error {
	if err := r.WriteBack(0, len(r.data)); err != nil {
		return err
	}
	return r.f.Sync()
}

func (r *File) Close() error {
	if r.f == nil {
		return nil
	}
	err := r.f.Close()
	r.f = nil
	r.data = nil
	return err
}
