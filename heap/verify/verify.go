package verify

import (
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/heapkit/heap/block"
	"github.com/joshuapare/heapkit/internal/format"
)

// ValidationError describes the first structural problem found.
type ValidationError struct {
	Type    string
	Message string
	Offset  int
	Details map[string]any
}

func (e *ValidationError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset 0x%X: %s", e.Type, e.Offset, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// AllInvariants validates every heap invariant in one call.
// Returns the first error encountered, or nil if all checks pass.
func AllInvariants(data []byte) error {
	if err := Sentinels(data); err != nil {
		return err
	}
	if err := Blocks(data); err != nil {
		return err
	}
	return NoAdjacentFree(data)
}

// Signature checks that the pad word carries format.PadMagic. The layout does
// not depend on it; it only tells a heap file apart from arbitrary bytes.
func Signature(data []byte) error {
	if len(data) < format.WordSize {
		return &ValidationError{
			Type:    "Signature",
			Message: fmt.Sprintf("region too small: %d bytes", len(data)),
			Offset:  -1,
		}
	}
	if got := format.ReadU32(data, format.PadOffset); got != format.PadMagic {
		return &ValidationError{
			Type:    "Signature",
			Message: fmt.Sprintf("pad word 0x%08X, expected 0x%08X", got, uint32(format.PadMagic)),
			Offset:  format.PadOffset,
		}
	}
	return nil
}

// Sentinels validates the prologue and epilogue.
func Sentinels(data []byte) error {
	if len(data) < format.InitialSize {
		return &ValidationError{
			Type:    "Sentinels",
			Message: fmt.Sprintf("region too small: %d bytes (need %d)", len(data), format.InitialSize),
			Offset:  -1,
		}
	}
	if len(data)%format.DWordSize != 0 {
		return &ValidationError{
			Type:    "Sentinels",
			Message: fmt.Sprintf("region length %d not a multiple of %d", len(data), format.DWordSize),
			Offset:  -1,
		}
	}

	for _, off := range []int{format.PrologueHeaderOffset, format.PrologueFooterOffset} {
		if t := block.Unpack(format.ReadU32(data, off)); t != block.Prologue {
			return &ValidationError{
				Type:    "Sentinels",
				Message: fmt.Sprintf("prologue tag is %v, expected %v", t, block.Prologue),
				Offset:  off,
			}
		}
	}

	epi := len(data) - format.WordSize
	if t := block.Unpack(format.ReadU32(data, epi)); t != block.Epilogue {
		return &ValidationError{
			Type:    "Sentinels",
			Message: fmt.Sprintf("epilogue tag is %v, expected %v", t, block.Epilogue),
			Offset:  epi,
		}
	}
	return nil
}

// Blocks walks the chain from the first block to the epilogue and checks
// each block: size at least format.MinBlockSize, payload aligned, reserved
// tag bits clear, header equal to footer. The walk must end exactly at the last
// word of the region.
func Blocks(data []byte) error {
	it := block.Walk(data, format.FirstPayload)
	count := 0
	for {
		b, err := it.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return &ValidationError{
				Type:    "Blocks",
				Message: err.Error(),
				Offset:  -1,
				Details: map[string]any{"block": count},
			}
		}

		hdr := block.HeaderOff(b.Ptr)
		if int(b.Ptr)%format.DWordSize != 0 {
			return &ValidationError{
				Type:    "Blocks",
				Message: fmt.Sprintf("payload %d not %d-byte aligned", b.Ptr, format.DWordSize),
				Offset:  hdr,
			}
		}
		if w := format.ReadU32(data, hdr); w&format.FlagMask&^format.AllocBit != 0 {
			return &ValidationError{
				Type:    "Blocks",
				Message: fmt.Sprintf("%v: reserved tag bits set (0x%08X)", b.Tag, w),
				Offset:  hdr,
			}
		}
		if ftr := block.Footer(data, b.Ptr); ftr != b.Tag {
			return &ValidationError{
				Type:    "Blocks",
				Message: fmt.Sprintf("header %v does not match footer %v", b.Tag, ftr),
				Offset:  hdr,
				Details: map[string]any{
					"footer_offset": block.FooterOff(b.Ptr, b.Tag.Size),
				},
			}
		}
		count++
	}

	if int(it.Epilogue) != len(data) {
		return &ValidationError{
			Type:    "Blocks",
			Message: fmt.Sprintf("chain ends at %d, region ends at %d", it.Epilogue, len(data)),
			Offset:  block.HeaderOff(it.Epilogue),
			Details: map[string]any{"blocks": count},
		}
	}
	return nil
}

// NoAdjacentFree validates that coalescing left no two neighbouring free
// blocks. It assumes Blocks has passed; a broken chain ends the scan early.
func NoAdjacentFree(data []byte) error {
	it := block.Walk(data, format.FirstPayload)
	prevFree := false
	var prev block.Block
	for {
		b, err := it.Next()
		if err != nil {
			return nil
		}
		if prevFree && !b.Tag.Allocated {
			return &ValidationError{
				Type: "NoAdjacentFree",
				Message: fmt.Sprintf("free block at %d (%v) follows free block at %d (%v)",
					b.Ptr, b.Tag, prev.Ptr, prev.Tag),
				Offset: block.HeaderOff(b.Ptr),
			}
		}
		prevFree = !b.Tag.Allocated
		prev = b
	}
}
