package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/heap/alloc"
	"github.com/joshuapare/heapkit/internal/format"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	jsonOut  bool
	limitStr string
	chunkStr string
	bestFit  bool
)

// logger receives allocator debug records; --verbose sends them to stderr.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var rootCmd = &cobra.Command{
	Use:   "heapctl",
	Short: "Create, inspect and exercise boundary-tag heaps",
	Long: `heapctl drives the heapkit allocator. It can run the allocator over an
in-memory heap (demo, trace) or over a heap file that persists between runs
(create, alloc, free), and it inspects heap files read-only (dump, check, stats).`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output and allocator debug logs")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&limitStr, "limit", "64MiB", "Largest size the heap may grow to")
	rootCmd.PersistentFlags().StringVar(&chunkStr, "chunk", "4KiB", "Minimum heap growth step")
	rootCmd.PersistentFlags().BoolVar(&bestFit, "best-fit", false, "Use best-fit instead of first-fit placement")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogger() {
	if verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		logger = slog.New(h)
		return
	}
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

// heapLimit parses --limit.
func heapLimit() (int, error) {
	n, err := humanize.ParseBytes(limitStr)
	if err != nil {
		return 0, fmt.Errorf("invalid --limit %q: %w", limitStr, err)
	}
	if n == 0 || n > format.MaxHeapSize {
		return 0, fmt.Errorf("invalid --limit %q: %w", limitStr, heap.ErrBadLimit)
	}
	return int(n), nil
}

// heapConfig builds the allocator config from --chunk and --best-fit.
func heapConfig() (*alloc.Config, error) {
	n, err := humanize.ParseBytes(chunkStr)
	if err != nil {
		return nil, fmt.Errorf("invalid --chunk %q: %w", chunkStr, err)
	}
	if n > format.MaxHeapSize {
		return nil, fmt.Errorf("invalid --chunk %q: %w", chunkStr, alloc.ErrBadConfig)
	}
	cfg := alloc.DefaultConfig
	if bestFit {
		cfg = alloc.ConfigBestFit
	}
	cfg.ChunkSize = int(n)
	cfg.Logger = logger
	return &cfg, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// sizeString renders a byte count in IEC units followed by the exact value.
func sizeString(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%s (%s bytes)", humanize.IBytes(uint64(n)), humanize.Comma(n))
}
