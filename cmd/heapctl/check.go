package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/heap/verify"
)

func init() {
	rootCmd.AddCommand(newCheckCmd())
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <heap>",
		Short: "Validate the structure of a heap file",
		Long: `The check command verifies the signature, the prologue and epilogue,
every block's boundary tags, and that no two free blocks are adjacent.
It exits non-zero on the first problem found.

Example:
  heapctl check my.heap`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args)
		},
	}
}

type checkResult struct {
	Path  string `json:"path"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func runCheck(args []string) error {
	path := args[0]
	return withMappedHeap(path, func(data []byte) error {
		err := verify.Signature(data)
		if err == nil {
			err = verify.AllInvariants(data)
		}

		if jsonOut {
			res := checkResult{Path: path, Valid: err == nil}
			if err != nil {
				res.Error = err.Error()
			}
			if perr := printJSON(res); perr != nil {
				return perr
			}
			return err
		}
		if err != nil {
			return err
		}
		printInfo("%s: OK\n", path)
		return nil
	})
}
