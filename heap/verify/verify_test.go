package verify

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/heap/block"
	"github.com/joshuapare/heapkit/internal/format"
)

// buildHeap lays out pad, prologue, the given blocks and the epilogue.
func buildHeap(t *testing.T, tags ...block.Tag) []byte {
	t.Helper()
	n := format.InitialSize
	for _, tg := range tags {
		n += int(tg.Size)
	}
	data := make([]byte, n)
	format.PutU32(data, format.PadOffset, format.PadMagic)
	format.PutU32(data, format.PrologueHeaderOffset, block.Prologue.Word())
	format.PutU32(data, format.PrologueFooterOffset, block.Prologue.Word())
	p := block.Ptr(format.FirstPayload)
	for _, tg := range tags {
		block.Write(data, p, tg)
		p += block.Ptr(tg.Size)
	}
	block.SetHeader(data, p, block.Epilogue)
	return data
}

func requireValidationError(t *testing.T, err error, typ string) *ValidationError {
	t.Helper()
	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, typ, ve.Type)
	return ve
}

func TestAllInvariants_Valid(t *testing.T) {
	cases := map[string][]block.Tag{
		"empty":         nil,
		"single free":   {block.Free(4096)},
		"alternating":   {block.Allocated(16), block.Free(32), block.Allocated(56), block.Free(16)},
		"all allocated": {block.Allocated(24), block.Allocated(16), block.Allocated(48)},
		"trailing free": {block.Allocated(64), block.Free(4032)},
	}
	for name, tags := range cases {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, AllInvariants(buildHeap(t, tags...)))
		})
	}
}

func TestSignature(t *testing.T) {
	data := buildHeap(t, block.Free(16))
	require.NoError(t, Signature(data))

	format.PutU32(data, format.PadOffset, 0)
	ve := requireValidationError(t, Signature(data), "Signature")
	require.Equal(t, format.PadOffset, ve.Offset)

	requireValidationError(t, Signature([]byte{1, 2}), "Signature")
}

func TestSentinels_TooSmall(t *testing.T) {
	ve := requireValidationError(t, Sentinels(make([]byte, 8)), "Sentinels")
	require.Equal(t, -1, ve.Offset)
	require.Contains(t, ve.Error(), "too small")
}

func TestSentinels_BadPrologue(t *testing.T) {
	data := buildHeap(t, block.Free(16))
	format.PutU32(data, format.PrologueFooterOffset, block.Free(8).Word())

	ve := requireValidationError(t, Sentinels(data), "Sentinels")
	require.Equal(t, format.PrologueFooterOffset, ve.Offset)
}

func TestSentinels_BadEpilogue(t *testing.T) {
	data := buildHeap(t, block.Free(16))
	format.PutU32(data, len(data)-format.WordSize, block.Free(0).Word())

	ve := requireValidationError(t, Sentinels(data), "Sentinels")
	require.Equal(t, len(data)-format.WordSize, ve.Offset)
	require.Contains(t, ve.Error(), "epilogue")
}

func TestSentinels_UnalignedLength(t *testing.T) {
	data := append(buildHeap(t, block.Free(16)), 0, 0, 0, 0)
	requireValidationError(t, Sentinels(data), "Sentinels")
}

func TestBlocks_HeaderFooterMismatch(t *testing.T) {
	data := buildHeap(t, block.Allocated(32), block.Free(16))
	block.SetFooter(data, format.FirstPayload, block.Free(32))

	ve := requireValidationError(t, Blocks(data), "Blocks")
	require.Equal(t, format.FirstPayload-format.WordSize, ve.Offset)
	require.Contains(t, ve.Error(), "does not match footer")
}

func TestBlocks_ReservedBits(t *testing.T) {
	data := buildHeap(t, block.Allocated(32))
	// Size 32 with bit 2 set: still decodes as allocated(32).
	format.PutU32(data, block.HeaderOff(format.FirstPayload), 32|0x4|format.AllocBit)

	ve := requireValidationError(t, Blocks(data), "Blocks")
	require.Contains(t, ve.Error(), "reserved tag bits")
}

func TestBlocks_BelowMinimum(t *testing.T) {
	data := buildHeap(t, block.Allocated(16), block.Allocated(16))
	block.Write(data, format.FirstPayload, block.Allocated(8))

	ve := requireValidationError(t, Blocks(data), "Blocks")
	require.Contains(t, ve.Error(), "below minimum")
}

func TestBlocks_Overrun(t *testing.T) {
	data := buildHeap(t, block.Free(32))
	block.SetHeader(data, format.FirstPayload, block.Free(4096))

	ve := requireValidationError(t, Blocks(data), "Blocks")
	require.Contains(t, ve.Error(), "overruns")
}

func TestBlocks_EarlyEpilogue(t *testing.T) {
	data := buildHeap(t, block.Allocated(16), block.Free(32))
	// A zero-size header in the middle ends the chain before the region does.
	block.SetHeader(data, format.FirstPayload+16, block.Epilogue)

	ve := requireValidationError(t, Blocks(data), "Blocks")
	require.Contains(t, ve.Error(), "chain ends at")
	require.Equal(t, 1, ve.Details["blocks"])
}

func TestNoAdjacentFree(t *testing.T) {
	require.NoError(t, NoAdjacentFree(buildHeap(t, block.Free(16), block.Allocated(16), block.Free(16))))

	data := buildHeap(t, block.Allocated(16), block.Free(16), block.Free(32))
	ve := requireValidationError(t, NoAdjacentFree(data), "NoAdjacentFree")
	require.Equal(t, format.FirstPayload+32-format.WordSize, ve.Offset)

	requireValidationError(t, AllInvariants(data), "NoAdjacentFree")
}
