package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/heap/alloc"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <heap>",
		Short: "Show space usage of a heap file",
		Long: `The stats command summarizes a heap file: block counts, allocated and
free bytes, the largest free block and how fragmented the free space is.

Example:
  heapctl stats my.heap
  heapctl stats my.heap --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
}

type heapStats struct {
	Path string `json:"path"`
	alloc.Layout
	// Fragmentation is 1 - LargestFree/FreeBytes: 0 when all free space is
	// one block.
	Fragmentation float64 `json:"fragmentation"`
}

func runStats(args []string) error {
	path := args[0]
	return withMappedHeap(path, func(data []byte) error {
		l, err := alloc.Summarize(data)
		if err != nil {
			return fmt.Errorf("block chain broken after %d blocks: %w", l.Blocks, err)
		}
		st := heapStats{Path: path, Layout: l}
		if l.FreeBytes > 0 {
			st.Fragmentation = 1 - float64(l.LargestFree)/float64(l.FreeBytes)
		}

		if jsonOut {
			return printJSON(st)
		}
		printInfo("Heap:             %s\n", path)
		printInfo("Size:             %s\n", sizeString(int64(l.HeapSize)))
		printInfo("Blocks:           %s (%s free)\n", humanize.Comma(int64(l.Blocks)), humanize.Comma(int64(l.FreeBlocks)))
		printInfo("Allocated:        %s\n", sizeString(l.AllocatedBytes))
		printInfo("Free:             %s\n", sizeString(l.FreeBytes))
		printInfo("Largest free:     %s\n", sizeString(int64(l.LargestFree)))
		printInfo("Fragmentation:    %.1f%%\n", st.Fragmentation*100)
		return nil
	})
}
