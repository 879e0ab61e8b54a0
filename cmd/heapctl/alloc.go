package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var allocFill string

func init() {
	cmd := newAllocCmd()
	cmd.Flags().StringVar(&allocFill, "fill", "", "Repeat this text through the payload")
	rootCmd.AddCommand(cmd)
}

func newAllocCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alloc <heap> <size>",
		Short: "Allocate a block in a heap file",
		Long: `The alloc command allocates size payload bytes in a heap file and prints
the payload offset. The heap grows when no free block fits.

Example:
  heapctl alloc my.heap 100
  heapctl alloc my.heap 4096 --fill hello`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlloc(args)
		},
	}
}

type allocResult struct {
	Ptr    uint32 `json:"ptr"`
	Size   int    `json:"size"`
	Usable int    `json:"usable"`
	Heap   int    `json:"heap_size"`
}

func runAlloc(args []string) error {
	path := args[0]
	size, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid size %q: %w", args[1], err)
	}

	s, err := openHeap(path)
	if err != nil {
		return err
	}
	p, err := s.a.Alloc(size)
	if err != nil {
		_ = s.close()
		return fmt.Errorf("alloc %d: %w", size, err)
	}
	if allocFill != "" && size > 0 {
		payload := s.a.Payload(p)[:size]
		for i := range payload {
			payload[i] = allocFill[i%len(allocFill)]
		}
		s.markPayload(p, size)
	}
	res := allocResult{Ptr: uint32(p), Size: size, Usable: s.a.UsableSize(p), Heap: s.a.Len()}
	if err := s.close(); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(res)
	}
	printVerbose("Allocated %d bytes (%d usable), heap is %s\n", size, res.Usable, sizeString(int64(res.Heap)))
	printInfo("%d\n", res.Ptr)
	return nil
}
