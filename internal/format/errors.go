package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrCorrupt indicates a boundary tag that cannot belong to a well-formed heap.
	ErrCorrupt = errors.New("format: corrupt boundary tag")
	// ErrSignatureMismatch indicates the pad word does not carry PadMagic.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
)
