package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/heapkit/heap/block"
	"github.com/joshuapare/heapkit/internal/format"
	"github.com/joshuapare/heapkit/internal/mmfile"
)

// blockInfo is one block as reported by dump and trace.
type blockInfo struct {
	Ptr       uint32 `json:"ptr"`
	Size      uint32 `json:"size"`
	Allocated bool   `json:"allocated"`
	Usable    int    `json:"usable"`
}

// withMappedHeap maps path read-only for the duration of fn.
func withMappedHeap(path string, fn func(data []byte) error) error {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return fmt.Errorf("failed to map heap file: %w", err)
	}
	defer func() { _ = cleanup() }()
	return fn(data)
}

// listBlocks walks data and returns every block up to the epilogue or the
// first chain error.
func listBlocks(data []byte) ([]blockInfo, error) {
	if len(data) < format.InitialSize {
		return nil, format.ErrTruncated
	}
	var out []blockInfo
	it := block.Walk(data, format.FirstPayload)
	for {
		b, err := it.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, blockInfo{
			Ptr:       uint32(b.Ptr),
			Size:      b.Tag.Size,
			Allocated: b.Tag.Allocated,
			Usable:    b.Usable(),
		})
	}
}

// printBlocks renders a block table.
func printBlocks(blocks []blockInfo) {
	printInfo("%10s  %10s  %-9s  %10s\n", "PTR", "SIZE", "STATE", "USABLE")
	for _, b := range blocks {
		state := "free"
		if b.Allocated {
			state = "allocated"
		}
		printInfo("%10d  %10d  %-9s  %10d\n", b.Ptr, b.Size, state, b.Usable)
	}
}
