//go:build !unix

// Package mmfile maps heap files read-only for inspection.
package mmfile

import "os"

// Map reads the entire file when mmap is not available.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	if err := checkSize(int64(len(data))); err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}
