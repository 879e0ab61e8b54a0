package dirty

import "golang.org/x/sys/unix"

// fdatasync syncs file data. fullfsync only matters on macOS.
func fdatasync(_ Mapping, fd int, _ bool) error {
	return unix.Fdatasync(fd)
}
