package aruco

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	d, err := Lookup("DICT_4X4_50")
	require.NoError(t, err)
	assert.Equal(t, 50, d.Size())
	assert.Equal(t, 4, d.GridSize)

	d, err = Lookup("DICT_4X4_100")
	require.NoError(t, err)
	assert.Equal(t, 100, d.Size())
}

func TestLookup_RejectsBadNames(t *testing.T) {
	_, err := Lookup("4X4_50")
	assert.ErrorContains(t, err, "not recognized")

	_, err = Lookup("DICT_9X9_50")
	assert.ErrorContains(t, err, "not supported")
}

func TestDictionarySizesNested(t *testing.T) {
	// Marker ids must mean the same pattern in every 4x4 dictionary, so
	// the 100-marker table must extend the 50-marker one.
	small, err := Lookup("DICT_4X4_50")
	require.NoError(t, err)
	large, err := Lookup("DICT_4X4_100")
	require.NoError(t, err)
	for id := 0; id < small.Size(); id++ {
		assert.Equal(t, small.patterns[id], large.patterns[id], "marker %d", id)
	}
}

func TestDictionaryPatternDistance(t *testing.T) {
	// Detection depends on markers being distinguishable under noise:
	// every pair of patterns must differ in at least four modules.
	d, err := Lookup("DICT_4X4_100")
	require.NoError(t, err)
	for i := 0; i < d.Size(); i++ {
		for j := i + 1; j < d.Size(); j++ {
			dist := bits.OnesCount16(d.patterns[i] ^ d.patterns[j])
			assert.GreaterOrEqual(t, dist, 4, "markers %d and %d too close", i, j)
		}
	}
}

func TestRender_BorderIsBlack(t *testing.T) {
	d, err := Lookup("DICT_4X4_50")
	require.NoError(t, err)

	const size = 60 // 10px per module
	img, err := d.Render(0, size)
	require.NoError(t, err)
	assert.Equal(t, size, img.Bounds().Dx())
	assert.Equal(t, size, img.Bounds().Dy())

	for i := 0; i < size; i++ {
		assert.Equal(t, uint8(0), img.GrayAt(i, 0).Y, "top border at x=%d", i)
		assert.Equal(t, uint8(0), img.GrayAt(i, size-1).Y, "bottom border at x=%d", i)
		assert.Equal(t, uint8(0), img.GrayAt(0, i).Y, "left border at y=%d", i)
		assert.Equal(t, uint8(0), img.GrayAt(size-1, i).Y, "right border at y=%d", i)
	}
}

func TestRender_PayloadMatchesPattern(t *testing.T) {
	d, err := Lookup("DICT_4X4_50")
	require.NoError(t, err)

	const perModule = 8
	const size = 6 * perModule
	for _, id := range []int{0, 1, 49} {
		img, err := d.Render(id, size)
		require.NoError(t, err)
		for row := 0; row < 4; row++ {
			for col := 0; col < 4; col++ {
				// Sample the center of each payload module.
				x := (col+1)*perModule + perModule/2
				y := (row+1)*perModule + perModule/2
				want := uint8(0)
				if d.bit(id, row, col) {
					want = 255
				}
				assert.Equal(t, want, img.GrayAt(x, y).Y, "marker %d module (%d,%d)", id, row, col)
			}
		}
	}
}

func TestRender_Errors(t *testing.T) {
	d, err := Lookup("DICT_4X4_50")
	require.NoError(t, err)

	_, err = d.Render(50, 100)
	assert.ErrorContains(t, err, "out of range")

	_, err = d.Render(-1, 100)
	assert.ErrorContains(t, err, "out of range")

	_, err = d.Render(0, 5)
	assert.ErrorContains(t, err, "too small")
}
