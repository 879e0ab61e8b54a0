package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/heap/alloc"
	"github.com/joshuapare/heapkit/heap/block"
)

var traceCheck bool

func init() {
	cmd := newTraceCmd()
	cmd.Flags().BoolVar(&traceCheck, "check", true, "Validate the heap after every operation")
	rootCmd.AddCommand(cmd)
}

func newTraceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trace <script>",
		Short: "Replay an allocation trace against an in-memory heap",
		Long: `The trace command replays a script of allocations and frees and
prints the final block layout and allocator counters. Each line is one of

  a <id> <size>   allocate size bytes and remember the block as id
  f <id>          free the block remembered as id

Blank lines and lines starting with # are ignored. Use - to read stdin.

Example:
  heapctl trace workload.trace
  heapctl trace --best-fit workload.trace --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(args)
		},
	}
}

type traceResult struct {
	Ops    int         `json:"ops"`
	Stats  alloc.Stats `json:"stats"`
	Blocks []blockInfo `json:"blocks"`
}

func runTrace(args []string) error {
	var in io.Reader = os.Stdin
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open trace: %w", err)
		}
		defer f.Close()
		in = f
	}

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

	ops, err := replay(a, in)
	if err != nil {
		return err
	}

	var blocks []blockInfo
	_ = a.Walk(func(b block.Block) bool {
		blocks = append(blocks, blockInfo{
			Ptr:       uint32(b.Ptr),
			Size:      b.Tag.Size,
			Allocated: b.Tag.Allocated,
			Usable:    b.Usable(),
		})
		return true
	})
	res := traceResult{Ops: ops, Stats: a.Stats(), Blocks: blocks}

	if jsonOut {
		return printJSON(res)
	}
	printInfo("Replayed %d operations, heap is %s\n", ops, sizeString(int64(res.Stats.HeapSize)))
	printInfo("alloc %d (grew %d times), free %d, splits %d, coalesces %d\n",
		res.Stats.AllocCalls, res.Stats.GrowCalls, res.Stats.FreeCalls, res.Stats.SplitCount,
		res.Stats.CoalesceForward+res.Stats.CoalesceBackward)
	printBlocks(blocks)
	return nil
}

// replay runs every operation of a trace script and returns how many ran.
func replay(a *alloc.Allocator, in io.Reader) (int, error) {
	live := make(map[string]block.Ptr)
	ops := 0
	sc := bufio.NewScanner(in)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch {
		case fields[0] == "a" && len(fields) == 3:
			id := fields[1]
			if _, dup := live[id]; dup {
				return ops, fmt.Errorf("line %d: id %s is already allocated", lineNo, id)
			}
			size, err := strconv.Atoi(fields[2])
			if err != nil {
				return ops, fmt.Errorf("line %d: invalid size %q", lineNo, fields[2])
			}
			p, err := a.Alloc(size)
			if err != nil {
				return ops, fmt.Errorf("line %d: alloc %d: %w", lineNo, size, err)
			}
			live[id] = p
			printVerbose("a %s %d -> %d\n", id, size, p)

		case fields[0] == "f" && len(fields) == 2:
			id := fields[1]
			p, ok := live[id]
			if !ok {
				return ops, fmt.Errorf("line %d: id %s is not allocated", lineNo, id)
			}
			a.Free(p)
			delete(live, id)
			printVerbose("f %s (%d)\n", id, p)

		default:
			return ops, fmt.Errorf("line %d: cannot parse %q", lineNo, line)
		}
		ops++

		if traceCheck {
			if err := a.Check(); err != nil {
				return ops, fmt.Errorf("line %d: heap invalid: %w", lineNo, err)
			}
		}
	}
	return ops, sc.Err()
}
