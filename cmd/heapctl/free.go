package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/heap/block"
)

func init() {
	rootCmd.AddCommand(newFreeCmd())
}

func newFreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "free <heap> <ptr>",
		Short: "Free a block in a heap file",
		Long: `The free command releases the block whose payload starts at ptr, as
printed by alloc. The pointer is checked against the block chain first, so a
stale or made-up pointer is rejected instead of corrupting the file.

Example:
  heapctl free my.heap 16
  heapctl free my.heap 0x10`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFree(args)
		},
	}
}

func runFree(args []string) error {
	path := args[0]
	v, err := strconv.ParseUint(args[1], 0, 32)
	if err != nil {
		return fmt.Errorf("invalid pointer %q: %w", args[1], err)
	}
	p := block.Ptr(v)

	s, err := openHeap(path)
	if err != nil {
		return err
	}
	b, ok := findAllocated(s.a, p)
	if !ok {
		_ = s.close()
		return fmt.Errorf("%d is not the payload of an allocated block", p)
	}
	s.a.Free(p)
	if err := s.close(); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{"ptr": uint32(p), "size": b.Tag.Size})
	}
	printInfo("Freed block at %d (%d bytes)\n", p, b.Tag.Size)
	return nil
}
