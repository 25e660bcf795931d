// Package render composites planned layouts into printable grayscale
// images. It owns pixel assembly only: geometry comes from the layout
// package and marker art from a MarkerRenderer, so everything here is
// deterministic given those two inputs.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/Suke-go/technetope/internal/layout"
	"github.com/Suke-go/technetope/internal/units"
)

// MarkerRenderer produces the bitmap art for a single fiducial marker.
// The aruco package provides the production implementation; tests swap in
// stubs so composition can be verified without any dictionary.
type MarkerRenderer interface {
	Render(id, sizePx int) (*image.Gray, error)
}

// SheetOptions controls optional decoration of a marker sheet.
type SheetOptions struct {
	Labels bool // print "ID n" under each marker
}

// Sheet renders a marker sheet: every placement of the layout drawn onto
// a white page canvas, in placement order.
func Sheet(l *layout.Layout, r MarkerRenderer, opts SheetOptions) (*image.Gray, error) {
	canvas := newCanvas(l.PageWidthPx, l.PageHeightPx)

	for _, p := range l.Placements {
		bitmap, err := r.Render(p.ID, p.SizePx)
		if err != nil {
			return nil, fmt.Errorf("render marker %d: %w", p.ID, err)
		}
		blit(canvas, bitmap, p.X, p.Y)

		if opts.Labels {
			labelY := p.Y + p.SizePx + l.BorderPx/2
			drawLabel(canvas, fmt.Sprintf("ID %d", p.ID), p.X, labelY, labelScale(l.DPI))
		}
	}
	return canvas, nil
}

// Board renders a ChArUco board: a chessboard over the planned payload
// area with a marker embedded in every light square. Marker ids run
// row-major across the light squares starting at zero, which is the
// numbering detectors expect from the legacy board pattern.
func Board(l *layout.Layout, board layout.BoardSpec, r MarkerRenderer) (*image.Gray, error) {
	if len(l.Placements) != 1 {
		return nil, fmt.Errorf("board layout must have exactly one placement, got %d", len(l.Placements))
	}

	markerPx, err := units.ToPixels(board.MarkerLengthMM, l.DPI)
	if err != nil {
		return nil, err
	}

	canvas := newCanvas(l.PageWidthPx, l.PageHeightPx)
	origin := l.Placements[0]
	square := l.PitchPx
	cols := board.SquaresX - 1
	rows := board.SquaresY - 1

	markerID := 0
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := origin.X + col*square
			y := origin.Y + row*square
			if (row+col)%2 == 0 {
				// Dark square, top-left first.
				fillRect(canvas, x, y, square, square, 0)
				continue
			}
			bitmap, err := r.Render(markerID, markerPx)
			if err != nil {
				return nil, fmt.Errorf("render board marker %d: %w", markerID, err)
			}
			inset := (square - markerPx) / 2
			blit(canvas, bitmap, x+inset, y+inset)
			markerID++
		}
	}
	return canvas, nil
}

func newCanvas(w, h int) *image.Gray {
	canvas := image.NewGray(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.Gray{Y: 255}), image.Point{}, draw.Src)
	return canvas
}

// blit copies src onto dst with its top-left corner at (x, y), clipped to
// the destination bounds.
func blit(dst *image.Gray, src *image.Gray, x, y int) {
	rect := src.Bounds().Add(image.Pt(x, y))
	draw.Draw(dst, rect, src, src.Bounds().Min, draw.Src)
}

func fillRect(dst *image.Gray, x, y, w, h int, gray uint8) {
	rect := image.Rect(x, y, x+w, y+h).Intersect(dst.Bounds())
	draw.Draw(dst, rect, image.NewUniform(color.Gray{Y: gray}), image.Point{}, draw.Src)
}
