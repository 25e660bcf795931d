package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/Suke-go/technetope/internal/layout"
)

// MarkerRecord describes one placed marker for downstream calibration
// tooling. Coordinates are pixels on the output image.
type MarkerRecord struct {
	ID      int    `json:"id"`
	Row     int    `json:"row"`
	Column  int    `json:"column"`
	TopLeft [2]int `json:"top_left_px"`
	SizePx  int    `json:"marker_size_px"`
}

// SheetMetadata mirrors the layout of a generated marker sheet.
type SheetMetadata struct {
	RunID        string         `json:"run_id"`
	Output       string         `json:"output"`
	DPI          int            `json:"dpi"`
	PageSizeMM   [2]float64     `json:"page_size_mm"`
	MarkerSizeMM float64        `json:"marker_size_mm"`
	BorderMM     float64        `json:"border_mm"`
	Dictionary   string         `json:"dictionary"`
	StartID      int            `json:"start_id"`
	Rows         int            `json:"rows"`
	Columns      int            `json:"columns"`
	Markers      []MarkerRecord `json:"markers"`
}

// BoardMetadata mirrors the layout of a generated ChArUco board.
type BoardMetadata struct {
	RunID          string   `json:"run_id"`
	Output         string   `json:"output"`
	DPI            int      `json:"dpi"`
	SquaresX       int      `json:"squares_x"`
	SquaresY       int      `json:"squares_y"`
	SquareLengthMM float64  `json:"square_length_mm"`
	MarkerLengthMM float64  `json:"marker_length_mm"`
	Dictionary     string   `json:"dictionary"`
	MarginMM       float64  `json:"margin_mm"`
	BoardWidthMM   float64  `json:"board_width_mm"`
	BoardHeightMM  float64  `json:"board_height_mm"`
	OutputWidthMM  float64  `json:"output_width_mm"`
	OutputHeightMM float64  `json:"output_height_mm"`
	OutputWidthPx  int      `json:"output_width_px"`
	OutputHeightPx int      `json:"output_height_px"`
	Notes          []string `json:"notes"`
}

// NewSheetMetadata builds the metadata record for a planned marker sheet.
func NewSheetMetadata(output, dictionary string, page layout.PageSpec, cell layout.CellSpec, grid layout.GridSpec, l *layout.Layout) SheetMetadata {
	markers := make([]MarkerRecord, 0, len(l.Placements))
	for _, p := range l.Placements {
		markers = append(markers, MarkerRecord{
			ID:      p.ID,
			Row:     p.Row,
			Column:  p.Column,
			TopLeft: [2]int{p.X, p.Y},
			SizePx:  p.SizePx,
		})
	}
	return SheetMetadata{
		RunID:        shortID(),
		Output:       output,
		DPI:          l.DPI,
		PageSizeMM:   [2]float64{page.WidthMM, page.HeightMM},
		MarkerSizeMM: cell.PayloadMM,
		BorderMM:     cell.BorderMM,
		Dictionary:   dictionary,
		StartID:      grid.StartID,
		Rows:         grid.Rows,
		Columns:      grid.Columns,
		Markers:      markers,
	}
}

// NewBoardMetadata builds the metadata record for a planned board,
// including the print-check notes that accompany every physical artifact.
func NewBoardMetadata(output, dictionary string, board layout.BoardSpec, l *layout.Layout) BoardMetadata {
	return BoardMetadata{
		RunID:          shortID(),
		Output:         output,
		DPI:            l.DPI,
		SquaresX:       board.SquaresX,
		SquaresY:       board.SquaresY,
		SquareLengthMM: board.SquareLengthMM,
		MarkerLengthMM: board.MarkerLengthMM,
		Dictionary:     dictionary,
		MarginMM:       board.MarginMM,
		BoardWidthMM:   board.WidthMM(),
		BoardHeightMM:  board.HeightMM(),
		OutputWidthMM:  board.WidthMM() + 2*board.MarginMM,
		OutputHeightMM: board.HeightMM() + 2*board.MarginMM,
		OutputWidthPx:  l.PageWidthPx,
		OutputHeightPx: l.PageHeightPx,
		Notes: []string{
			"Print at 100% scale (actual size), borderless if possible.",
			fmt.Sprintf("Verify with a ruler that chessboard squares measure %gmm.", board.SquareLengthMM),
			fmt.Sprintf("Verify with a ruler that markers measure %gmm.", board.MarkerLengthMM),
			"If the printed size is off, adjust the lengths and regenerate.",
		},
	}
}

// WriteMetadata saves a metadata record as indented JSON, creating parent
// directories as needed.
func WriteMetadata(path string, meta any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

func shortID() string {
	return uuid.New().String()[:8]
}
