package alloc

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joshuapare/heapkit/internal/format"
)

// logAlloc enables stderr debug logging for allocators built without a logger.
var logAlloc = os.Getenv("HEAPKIT_LOG_ALLOC") != ""

// Config tunes an Allocator. The zero value of each field means its default.
type Config struct {
	// ChunkSize is the minimum number of bytes the heap grows by when no free
	// block fits. Must be a multiple of 8 and at least format.MinBlockSize.
	ChunkSize int

	// Locator picks the free block for a request. Nil means FirstFit.
	Locator Locator

	// Logger receives debug records. Nil means discard, unless
	// HEAPKIT_LOG_ALLOC is set.
	Logger *slog.Logger
}

var (
	// ConfigFirstFit grows in 4 KiB chunks and takes the lowest fitting block.
	ConfigFirstFit = Config{
		ChunkSize: format.ChunkSize,
		Locator:   FirstFit{},
	}

	// ConfigBestFit grows in 4 KiB chunks and takes the smallest fitting block.
	ConfigBestFit = Config{
		ChunkSize: format.ChunkSize,
		Locator:   BestFit{},
	}

	// DefaultConfig is used when New or Open receive a nil config.
	DefaultConfig = ConfigFirstFit
)

// resolve fills in defaults and validates c.
func (c Config) resolve() (Config, error) {
	if c.ChunkSize == 0 {
		c.ChunkSize = format.ChunkSize
	}
	if c.ChunkSize < format.MinBlockSize || !format.IsDWordAligned(c.ChunkSize) ||
		int64(c.ChunkSize) > format.MaxHeapSize {
		return Config{}, fmt.Errorf("%w: chunk size %d must be a multiple of %d and at least %d",
			ErrBadConfig, c.ChunkSize, format.DWordSize, format.MinBlockSize)
	}
	if c.Locator == nil {
		c.Locator = FirstFit{}
	}
	if c.Logger == nil {
		c.Logger = defaultLogger()
	}
	return c, nil
}

func defaultLogger() *slog.Logger {
	if !logAlloc {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h).With("component", "alloc")
}
