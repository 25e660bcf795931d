package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPixels_KnownValues(t *testing.T) {
	// Exact values matter for print accuracy, so pin them rather than
	// testing against a reimplemented formula.
	cases := []struct {
		mm   float64
		dpi  int
		want int
	}{
		{25.4, 300, 300}, // one inch
		{0, 300, 0},
		{45, 300, 531},
		{51, 300, 602},   // 45mm marker + 2x3mm border
		{210, 300, 2480}, // A4 width
		{297, 300, 3508}, // A4 height
		{200, 300, 2362}, // 5x7 board + 10mm margins, width
		{290, 300, 3425}, // 5x7 board + 10mm margins, height
		{3, 300, 35},
		{10, 300, 118},
		{33, 300, 390},
		{45, 150, 266},
		{45, 600, 1063},
	}
	for _, c := range cases {
		got, err := ToPixels(c.mm, c.dpi)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "ToPixels(%g, %d)", c.mm, c.dpi)
	}
}

func TestToPixels_InvalidResolution(t *testing.T) {
	for _, dpi := range []int{0, -1, -300} {
		_, err := ToPixels(10, dpi)
		var unitErr *InvalidUnitError
		require.ErrorAs(t, err, &unitErr)
		assert.Equal(t, dpi, unitErr.DPI)
	}
}

func TestToPixels_NegativeLength(t *testing.T) {
	_, err := ToPixels(-0.1, 300)
	var unitErr *InvalidUnitError
	require.ErrorAs(t, err, &unitErr)
}

func TestToPixels_Monotonic(t *testing.T) {
	prev := -1
	for mm := 0.0; mm <= 300; mm += 0.7 {
		px, err := ToPixels(mm, 300)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, px, 0)
		assert.GreaterOrEqual(t, px, prev, "pixels must not decrease as mm grows")
		prev = px
	}
}

func TestToPixels_RoundTripBound(t *testing.T) {
	// The rounding error must stay below one pixel's physical size.
	for _, dpi := range []int{72, 150, 300, 600} {
		pixelMM := MMPerInch / float64(dpi)
		for mm := 0.0; mm <= 500; mm += 1.3 {
			px, err := ToPixels(mm, dpi)
			require.NoError(t, err)
			back, err := ToMillimeters(px, dpi)
			require.NoError(t, err)
			assert.Less(t, math.Abs(back-mm), pixelMM,
				"round trip of %gmm at %d dpi drifted more than one pixel", mm, dpi)
		}
	}
}

func TestToMillimeters_InvalidResolution(t *testing.T) {
	_, err := ToMillimeters(100, 0)
	var unitErr *InvalidUnitError
	require.ErrorAs(t, err, &unitErr)
}
