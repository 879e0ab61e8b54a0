package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newCreateCmd())
}

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <heap>",
		Short: "Create an empty heap file",
		Long: `The create command writes a new heap file holding the prologue, one
free block of --chunk bytes and the epilogue. It refuses to overwrite an
existing file.

Example:
  heapctl create my.heap
  heapctl create my.heap --chunk 64KiB --limit 1GiB`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(args)
		},
	}
}

func runCreate(args []string) error {
	path := args[0]
	printVerbose("Creating heap: %s\n", path)

	s, err := createHeap(path)
	if err != nil {
		return err
	}
	size := s.a.Len()
	if err := s.close(); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{"path": path, "size": size})
	}
	printInfo("Created %s (%s)\n", path, sizeString(int64(size)))
	return nil
}
