package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type growableRegion interface {
	Region
	Limit() int
}

func regionsUnderTest(t *testing.T, limit int) map[string]growableRegion {
	t.Helper()
	anon, err := NewAnon(limit)
	require.NoError(t, err)
	t.Cleanup(func() { _ = anon.Close() })
	return map[string]growableRegion{
		"mem":  NewMem(limit),
		"anon": anon,
	}
}

func TestRegionGrowReturnsOldEnd(t *testing.T) {
	for name, r := range regionsUnderTest(t, 8192) {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, 0, r.Len())
			assert.Equal(t, 8192, r.Limit())
			assert.Equal(t, -1, r.FD())

			old, err := r.Grow(16)
			require.NoError(t, err)
			assert.Equal(t, 0, old)

			old, err = r.Grow(4096)
			require.NoError(t, err)
			assert.Equal(t, 16, old)
			assert.Equal(t, 4112, r.Len())
			assert.Len(t, r.Bytes(), 4112)
		})
	}
}

func TestRegionGrowZeroFills(t *testing.T) {
	for name, r := range regionsUnderTest(t, 4096) {
		t.Run(name, func(t *testing.T) {
			_, err := r.Grow(64)
			require.NoError(t, err)
			for i, b := range r.Bytes() {
				require.Zero(t, b, "byte %d", i)
			}
		})
	}
}

func TestRegionBytesStayValidAcrossGrowth(t *testing.T) {
	for name, r := range regionsUnderTest(t, 1<<16) {
		t.Run(name, func(t *testing.T) {
			_, err := r.Grow(32)
			require.NoError(t, err)
			early := r.Bytes()
			early[7] = 0xAB

			_, err = r.Grow(1 << 15)
			require.NoError(t, err)

			// Same backing memory: a write through the old slice is visible
			// through the new one and vice versa.
			assert.Equal(t, byte(0xAB), r.Bytes()[7])
			r.Bytes()[8] = 0xCD
			assert.Equal(t, byte(0xCD), early[8])
		})
	}
}

func TestRegionLimit(t *testing.T) {
	for name, r := range regionsUnderTest(t, 4096) {
		t.Run(name, func(t *testing.T) {
			_, err := r.Grow(4000)
			require.NoError(t, err)

			_, err = r.Grow(97)
			require.ErrorIs(t, err, ErrLimit)
			assert.Equal(t, 4000, r.Len(), "failed grow leaves the region unchanged")

			old, err := r.Grow(96)
			require.NoError(t, err)
			assert.Equal(t, 4000, old)
			assert.Equal(t, 4096, r.Len())
		})
	}
}

func TestRegionRejectsNegativeGrow(t *testing.T) {
	for name, r := range regionsUnderTest(t, 4096) {
		t.Run(name, func(t *testing.T) {
			_, err := r.Grow(-8)
			assert.ErrorIs(t, err, ErrBadGrow)
		})
	}
}

func TestRegionClosed(t *testing.T) {
	for name, r := range regionsUnderTest(t, 4096) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, r.Close())
			_, err := r.Grow(8)
			assert.ErrorIs(t, err, ErrClosed)
			assert.Empty(t, r.Bytes())
		})
	}
}

func TestNewMemClampsLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, NewMem(0).Limit())
	assert.Equal(t, DefaultLimit, NewMem(-1).Limit())
	assert.Equal(t, 100, NewMem(100).Limit())
}

func TestNewAnonRejectsBadLimit(t *testing.T) {
	_, err := NewAnon(0)
	assert.ErrorIs(t, err, ErrBadLimit)
}
