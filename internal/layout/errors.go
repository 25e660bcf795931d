package layout

import "fmt"

// InvalidGeometryError reports a physically meaningless layout parameter:
// a non-positive size, a negative margin, or a non-positive cell count.
type InvalidGeometryError struct {
	Field string
	Value float64
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("invalid %s: %g", e.Field, e.Value)
}

// OverflowError reports a grid that does not fit the requested page at the
// requested resolution. The computed pixel sizes are carried for
// diagnostics so the caller can tell the user how far off the layout is.
type OverflowError struct {
	GridWidthPx  int
	GridHeightPx int
	PageWidthPx  int
	PageHeightPx int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("layout does not fit the page: grid %dx%dpx, page %dx%dpx (reduce rows/columns or cell size)",
		e.GridWidthPx, e.GridHeightPx, e.PageWidthPx, e.PageHeightPx)
}
