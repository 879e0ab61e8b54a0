//go:build !linux && !darwin && !freebsd

package dirty

import "context"

// writeBacker is implemented by regions that keep file bytes in memory.
type writeBacker interface {
	WriteBack(off, n int) error
}

type syncer interface {
	Sync() error
}

// flushRanges writes each merged range back to the file.
func (t *Tracker) flushRanges(ctx context.Context, data []byte) error {
	wb, ok := t.m.(writeBacker)
	if !ok {
		return nil
	}
	for _, r := range t.coalesce() {
		if err := ctx.Err(); err != nil {
			return err
		}
		start, end, ok := clip(r, len(data))
		if !ok {
			continue
		}
		if err := wb.WriteBack(start, end-start); err != nil {
			return err
		}
	}
	return nil
}

func fdatasync(m Mapping, _ int, _ bool) error {
	if s, ok := m.(syncer); ok {
		return s.Sync()
	}
	return nil
}
