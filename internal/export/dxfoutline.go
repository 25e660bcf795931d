package export

import (
	"fmt"

	"github.com/yofu/dxf"
	dxfcolor "github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"

	"github.com/Suke-go/technetope/internal/layout"
)

// WriteBoardOutline exports the board geometry as a DXF drawing in
// millimeters: the outer page outline for cutting a mounting plate, the
// board extent, and the chessboard grid lines for aligning the print when
// gluing it down. The origin is the bottom-left corner of the page.
func WriteBoardOutline(path string, board layout.BoardSpec) error {
	if board.SquaresX < 2 || board.SquaresY < 2 {
		return fmt.Errorf("board must have at least 2 squares per side")
	}

	boardW := board.WidthMM()
	boardH := board.HeightMM()
	pageW := boardW + 2*board.MarginMM
	pageH := boardH + 2*board.MarginMM

	d := dxf.NewDrawing()

	d.AddLayer("OUTLINE", dxf.DefaultColor, dxf.DefaultLineType, true)
	rect(d, 0, 0, pageW, pageH)

	d.AddLayer("BOARD", dxfcolor.Red, dxf.DefaultLineType, true)
	rect(d, board.MarginMM, board.MarginMM, boardW, boardH)

	// Interior grid lines, one per internal square boundary.
	d.AddLayer("GRID", dxfcolor.Green, table.LT_HIDDEN, true)
	for i := 1; i < board.SquaresX-1; i++ {
		x := board.MarginMM + float64(i)*board.SquareLengthMM
		d.Line(x, board.MarginMM, 0, x, board.MarginMM+boardH, 0)
	}
	for i := 1; i < board.SquaresY-1; i++ {
		y := board.MarginMM + float64(i)*board.SquareLengthMM
		d.Line(board.MarginMM, y, 0, board.MarginMM+boardW, y, 0)
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("save board outline: %w", err)
	}
	return nil
}

func rect(d *drawing.Drawing, x, y, w, h float64) {
	d.Line(x, y, 0, x+w, y, 0)
	d.Line(x+w, y, 0, x+w, y+h, 0)
	d.Line(x+w, y+h, 0, x, y+h, 0)
	d.Line(x, y+h, 0, x, y, 0)
}
