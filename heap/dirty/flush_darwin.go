//go:build darwin

package dirty

import (
	"context"

	"golang.org/x/sys/unix"
)

// flushRanges syncs the mapped span once.
//
// On macOS, msync() requires the address to match the original mmap() address,
// so sub-slices cannot be flushed individually. The kernel only writes pages
// that are actually dirty.
func (t *Tracker) flushRanges(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return unix.Msync(data, unix.MS_SYNC)
}

// fdatasync performs file descriptor sync.
//
// If fullfsync is true, F_FULLFSYNC makes the drive flush its own cache too.
// macOS doesn't have fdatasync, so fsync is used otherwise.
func fdatasync(_ Mapping, fd int, fullfsync bool) error {
	if fullfsync {
		_, err := unix.FcntlInt(uintptr(fd), unix.F_FULLFSYNC, 0)
		return err
	}
	return unix.Fsync(fd)
}
