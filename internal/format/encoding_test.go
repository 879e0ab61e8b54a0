package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPutReadU32LittleEndian(t *testing.T) {
	b := make([]byte, 8)
	PutU32(b, 4, 0x11223344)

	assert.Equal(t, []byte{0, 0, 0, 0, 0x44, 0x33, 0x22, 0x11}, b)
	assert.Equal(t, uint32(0x11223344), ReadU32(b, 4))
	assert.Equal(t, uint32(0), ReadU32(b, 0))
}

func TestReadU32OutOfRangePanics(t *testing.T) {
	b := make([]byte, 6)
	assert.Panics(t, func() { ReadU32(b, 4) })
}
