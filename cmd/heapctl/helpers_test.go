package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.Bytes()
	}()

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout
	return string(<-done), fnErr
}

// resetFlags restores every global flag to its default.
func resetFlags(t *testing.T) {
	t.Helper()
	verbose = false
	quiet = false
	jsonOut = false
	limitStr = "64MiB"
	chunkStr = "4KiB"
	bestFit = false
	demoSize = 48
	allocFill = ""
	traceCheck = true
}

// newHeapFile creates a heap file in a temp dir and returns its path.
func newHeapFile(t *testing.T) string {
	t.Helper()
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "test.heap")
	_, err := captureOutput(t, func() error { return runCreate([]string{path}) })
	require.NoError(t, err)
	return path
}
