// Package units converts physical millimeter measurements into integer
// pixel lengths at a given print resolution. Printing accuracy depends on
// these conversions being exact and stable, so all rounding behavior is
// pinned down here and nowhere else.
package units

import (
	"fmt"
	"math"
)

// MMPerInch is the number of millimeters in one inch.
const MMPerInch = 25.4

// InvalidUnitError reports a conversion request with an invalid resolution
// or a negative length.
type InvalidUnitError struct {
	MM  float64
	DPI int
}

func (e *InvalidUnitError) Error() string {
	if e.DPI <= 0 {
		return fmt.Sprintf("invalid resolution: %d dpi (must be > 0)", e.DPI)
	}
	return fmt.Sprintf("invalid length: %gmm (must be >= 0)", e.MM)
}

// ToPixels converts a length in millimeters to pixels at the given
// resolution, rounding half away from zero (math.Round). A zero length is
// valid and converts to zero pixels; negative lengths and non-positive
// resolutions are rejected.
func ToPixels(mm float64, dpi int) (int, error) {
	if dpi <= 0 {
		return 0, &InvalidUnitError{MM: mm, DPI: dpi}
	}
	if mm < 0 {
		return 0, &InvalidUnitError{MM: mm, DPI: dpi}
	}
	return int(math.Round(mm * float64(dpi) / MMPerInch)), nil
}

// ToMillimeters converts a pixel length back to millimeters at the given
// resolution. Used for reporting only; pixel values remain the source of
// truth once converted.
func ToMillimeters(px int, dpi int) (float64, error) {
	if dpi <= 0 {
		return 0, &InvalidUnitError{DPI: dpi}
	}
	return float64(px) * MMPerInch / float64(dpi), nil
}
