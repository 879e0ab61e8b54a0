package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/heap/alloc"
	"github.com/joshuapare/heapkit/heap/block"
)

var demoSize int

func init() {
	cmd := newDemoCmd()
	cmd.Flags().IntVar(&demoSize, "size", 48, "Number of payload bytes to allocate")
	rootCmd.AddCommand(cmd)
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Allocate a block, fill it with a pattern and free it",
		Long: `The demo command initializes an in-memory heap, allocates a block,
writes the alphabet into it, prints the payload and frees the block again.

Example:
  heapctl demo
  heapctl demo --size 100 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
}

type demoResult struct {
	Ptr     uint32 `json:"ptr"`
	Block   uint32 `json:"block_size"`
	Usable  int    `json:"usable"`
	Payload string `json:"payload"`
	Freed   bool   `json:"freed"`
}

func runDemo() error {
	limit, err := heapLimit()
	if err != nil {
		return err
	}
	cfg, err := heapConfig()
	if err != nil {
		return err
	}
	a, err := alloc.New(heap.NewMem(limit), nil, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize heap: %w", err)
	}

	p, err := a.Alloc(demoSize)
	if err != nil {
		return fmt.Errorf("allocation of %d bytes failed: %w", demoSize, err)
	}
	if p == block.Nil {
		if jsonOut {
			return printJSON(demoResult{})
		}
		printInfo("no block allocated for a %d-byte request\n", demoSize)
		return nil
	}
	payload := a.Payload(p)[:demoSize]
	for i := range payload {
		payload[i] = 'a' + byte(i%26)
	}
	res := demoResult{
		Ptr:     uint32(p),
		Block:   block.Size(a.Bytes(), p),
		Usable:  a.UsableSize(p),
		Payload: string(payload),
	}

	a.Free(p)
	if err := a.Check(); err != nil {
		return fmt.Errorf("heap corrupt after free: %w", err)
	}
	res.Freed = true

	if jsonOut {
		return printJSON(res)
	}
	printVerbose("Allocated %d bytes at %d (block %d bytes)\n", demoSize, res.Ptr, res.Block)
	printInfo("%s\n", res.Payload)
	printVerbose("Freed block at %d\n", res.Ptr)
	return nil
}
