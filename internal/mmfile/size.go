package mmfile

import (
	"fmt"

	"github.com/joshuapare/heapkit/internal/format"
)

// checkSize rejects files no heap can occupy.
func checkSize(size int64) error {
	if size > format.MaxHeapSize || size > int64(^uint(0)>>1) {
		return fmt.Errorf("mmfile: file too large to be a heap (%d bytes)", size)
	}
	return nil
}
