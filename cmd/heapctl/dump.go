package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <heap>",
		Short: "List every block of a heap file",
		Long: `The dump command maps a heap file read-only and prints each block
between the prologue and the epilogue: payload offset, block size, state and
usable payload bytes.

Example:
  heapctl dump my.heap
  heapctl dump my.heap --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
}

func runDump(args []string) error {
	path := args[0]
	printVerbose("Mapping heap: %s\n", path)

	return withMappedHeap(path, func(data []byte) error {
		blocks, err := listBlocks(data)
		if err != nil {
			return fmt.Errorf("block chain broken after %d blocks: %w", len(blocks), err)
		}
		if jsonOut {
			return printJSON(map[string]any{
				"path":      path,
				"heap_size": len(data),
				"blocks":    blocks,
			})
		}
		printInfo("Heap %s, %s\n", path, sizeString(int64(len(data))))
		printBlocks(blocks)
		return nil
	})
}
