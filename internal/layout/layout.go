// Package layout plans pixel-space placement of fiducial cells on a
// printed page. All physical inputs are converted to pixels exactly once;
// every downstream computation is integer arithmetic, so rounding drift
// cannot accumulate across cells.
package layout

import (
	"github.com/Suke-go/technetope/internal/units"
)

// PageSpec describes the output page in millimeters.
type PageSpec struct {
	WidthMM  float64 `json:"width_mm"`
	HeightMM float64 `json:"height_mm"`
}

// CellSpec describes one grid cell: the printed payload (marker or board)
// and the white border surrounding it.
type CellSpec struct {
	PayloadMM float64 `json:"payload_mm"` // marker or board edge length
	BorderMM  float64 `json:"border_mm"`  // white margin on each side
}

// GridSpec describes how many cells to lay out and how to number them.
type GridSpec struct {
	Columns int `json:"columns"`
	Rows    int `json:"rows"`
	StartID int `json:"start_id"` // identifier of the first cell; subsequent cells increment by one
}

// BoardSpec describes a ChArUco calibration board. Square counts follow
// the interior-corner convention: a board with N squares per side spans
// N-1 square lengths, so the printed extent is (squares-1)*SquareMM.
type BoardSpec struct {
	SquaresX       int     `json:"squares_x"`
	SquaresY       int     `json:"squares_y"`
	SquareLengthMM float64 `json:"square_length_mm"`
	MarkerLengthMM float64 `json:"marker_length_mm"`
	MarginMM       float64 `json:"margin_mm"`
}

// WidthMM returns the printed board width excluding margins.
func (b BoardSpec) WidthMM() float64 { return float64(b.SquaresX-1) * b.SquareLengthMM }

// HeightMM returns the printed board height excluding margins.
func (b BoardSpec) HeightMM() float64 { return float64(b.SquaresY-1) * b.SquareLengthMM }

// Placement records where one cell lands on the canvas. X and Y are the
// top-left corner of the cell payload in pixels, border excluded.
type Placement struct {
	Index  int `json:"index"`
	Row    int `json:"row"`
	Column int `json:"column"`
	ID     int `json:"id"`
	X      int `json:"x_px"`
	Y      int `json:"y_px"`
	SizePx int `json:"size_px"`
}

// Layout is the fully resolved pixel-space plan for one page. It is
// created once per invocation and never mutated afterwards.
type Layout struct {
	DPI          int         `json:"dpi"`
	PageWidthPx  int         `json:"page_width_px"`
	PageHeightPx int         `json:"page_height_px"`
	PayloadPx    int         `json:"payload_px"`
	BorderPx     int         `json:"border_px"`
	PitchPx      int         `json:"pitch_px"` // payload + 2*border, the repeating stride
	OffsetX      int         `json:"offset_x_px"`
	OffsetY      int         `json:"offset_y_px"`
	Placements   []Placement `json:"placements"`
}

// PlanGrid computes pixel placements for a rows x columns grid of cells
// centered on the page. Cells are emitted in row-major order (row outer,
// column inner) and numbered sequentially from grid.StartID; downstream
// rendering and metadata rely on that order. If the grid does not fit the
// page, PlanGrid fails with an OverflowError rather than shrinking or
// clipping: a silently rescaled calibration target is worse than no
// target at all.
func PlanGrid(page PageSpec, cell CellSpec, grid GridSpec, dpi int) (*Layout, error) {
	if err := validateGrid(page, cell, grid); err != nil {
		return nil, err
	}

	pageW, err := units.ToPixels(page.WidthMM, dpi)
	if err != nil {
		return nil, err
	}
	pageH, err := units.ToPixels(page.HeightMM, dpi)
	if err != nil {
		return nil, err
	}
	payload, err := units.ToPixels(cell.PayloadMM, dpi)
	if err != nil {
		return nil, err
	}
	border, err := units.ToPixels(cell.BorderMM, dpi)
	if err != nil {
		return nil, err
	}

	pitch := payload + 2*border
	gridW := grid.Columns * pitch
	gridH := grid.Rows * pitch

	if gridW > pageW || gridH > pageH {
		return nil, &OverflowError{
			GridWidthPx:  gridW,
			GridHeightPx: gridH,
			PageWidthPx:  pageW,
			PageHeightPx: pageH,
		}
	}

	// Center with floor division: when the slack is odd, the extra pixel
	// goes to the right/bottom edge. Visual regression tests depend on
	// this tie-break staying put.
	offsetX := (pageW - gridW) / 2
	offsetY := (pageH - gridH) / 2

	placements := make([]Placement, 0, grid.Rows*grid.Columns)
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Columns; col++ {
			index := row*grid.Columns + col
			placements = append(placements, Placement{
				Index:  index,
				Row:    row,
				Column: col,
				ID:     grid.StartID + index,
				X:      offsetX + col*pitch + border,
				Y:      offsetY + row*pitch + border,
				SizePx: payload,
			})
		}
	}

	return &Layout{
		DPI:          dpi,
		PageWidthPx:  pageW,
		PageHeightPx: pageH,
		PayloadPx:    payload,
		BorderPx:     border,
		PitchPx:      pitch,
		OffsetX:      offsetX,
		OffsetY:      offsetY,
		Placements:   placements,
	}, nil
}

// PlanBoard computes the single-cell layout for a ChArUco board. The page
// is derived from the board itself: printed extent plus the margin on all
// sides, so the board always fits by construction. The lone placement has
// no meaningful identifier; marker numbering inside the board is the
// renderer's concern.
func PlanBoard(board BoardSpec, dpi int) (*Layout, error) {
	if err := validateBoard(board); err != nil {
		return nil, err
	}

	page := PageSpec{
		WidthMM:  board.WidthMM() + 2*board.MarginMM,
		HeightMM: board.HeightMM() + 2*board.MarginMM,
	}

	pageW, err := units.ToPixels(page.WidthMM, dpi)
	if err != nil {
		return nil, err
	}
	pageH, err := units.ToPixels(page.HeightMM, dpi)
	if err != nil {
		return nil, err
	}
	boardW, err := units.ToPixels(board.WidthMM(), dpi)
	if err != nil {
		return nil, err
	}
	boardH, err := units.ToPixels(board.HeightMM(), dpi)
	if err != nil {
		return nil, err
	}
	square, err := units.ToPixels(board.SquareLengthMM, dpi)
	if err != nil {
		return nil, err
	}

	// The board is not square, so centering is computed per axis off the
	// converted pixel sizes rather than reusing the margin conversion;
	// this keeps the placement consistent with the page dimensions even
	// when rounding makes 2*margin_px differ from page_px - board_px.
	offsetX := (pageW - boardW) / 2
	offsetY := (pageH - boardH) / 2

	return &Layout{
		DPI:          dpi,
		PageWidthPx:  pageW,
		PageHeightPx: pageH,
		PayloadPx:    boardW,
		BorderPx:     offsetX,
		PitchPx:      square, // stride of one chessboard square
		OffsetX:      offsetX,
		OffsetY:      offsetY,
		Placements: []Placement{{
			Index:  0,
			Row:    0,
			Column: 0,
			X:      offsetX,
			Y:      offsetY,
			SizePx: boardW,
		}},
	}, nil
}

func validateGrid(page PageSpec, cell CellSpec, grid GridSpec) error {
	switch {
	case page.WidthMM <= 0:
		return &InvalidGeometryError{Field: "page width", Value: page.WidthMM}
	case page.HeightMM <= 0:
		return &InvalidGeometryError{Field: "page height", Value: page.HeightMM}
	case cell.PayloadMM <= 0:
		return &InvalidGeometryError{Field: "cell payload size", Value: cell.PayloadMM}
	case cell.BorderMM < 0:
		return &InvalidGeometryError{Field: "cell border", Value: cell.BorderMM}
	case grid.Columns < 1:
		return &InvalidGeometryError{Field: "columns", Value: float64(grid.Columns)}
	case grid.Rows < 1:
		return &InvalidGeometryError{Field: "rows", Value: float64(grid.Rows)}
	}
	return nil
}

func validateBoard(board BoardSpec) error {
	switch {
	case board.SquaresX < 2:
		return &InvalidGeometryError{Field: "squares_x", Value: float64(board.SquaresX)}
	case board.SquaresY < 2:
		return &InvalidGeometryError{Field: "squares_y", Value: float64(board.SquaresY)}
	case board.SquareLengthMM <= 0:
		return &InvalidGeometryError{Field: "square length", Value: board.SquareLengthMM}
	case board.MarkerLengthMM <= 0:
		return &InvalidGeometryError{Field: "marker length", Value: board.MarkerLengthMM}
	case board.MarkerLengthMM >= board.SquareLengthMM:
		return &InvalidGeometryError{Field: "marker length", Value: board.MarkerLengthMM}
	case board.MarginMM < 0:
		return &InvalidGeometryError{Field: "margin", Value: board.MarginMM}
	}
	return nil
}
