package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// Guide page layout constants (A4 portrait in mm).
const (
	guidePageWidth   = 210.0
	guidePageHeight  = 297.0
	guideMargin      = 15.0
	guideHeader      = 12.0
	guideQRSize      = 30.0
	guideTextWidth   = guidePageWidth - 2*guideMargin
	guideLineHeight  = 5.5
	guideBoardBottom = 25.0 // reserved band under the board preview
)

// GuideInfo holds everything the printing guide renders: the board
// metadata, the board image as PNG bytes, and the image's physical size.
type GuideInfo struct {
	Board    BoardMetadata
	BoardPNG []byte
}

// guideInstructions are the steps a user must follow to get a
// dimensionally accurate print.
var guideInstructions = []string{
	"1. Open the board PNG in your print dialog and select \"actual size\" / 100% scale. Never use \"fit to page\".",
	"2. Disable any printer-driver scaling and, if available, enable borderless printing.",
	"3. After printing, measure one chessboard square with a ruler. It must match the square length listed above.",
	"4. Measure one marker. It must match the marker length listed above.",
	"5. If either measurement is off, regenerate the board with adjusted lengths instead of rescaling the print.",
	"6. Mount the print on a flat, rigid surface. Any curvature degrades calibration accuracy.",
}

// WriteGuide generates the printing guide PDF: a preview of the board at
// page scale, the board parameters, step-by-step printing instructions,
// and a QR code carrying the board metadata as JSON so the physical
// printout stays traceable to its generation parameters.
func WriteGuide(path string, info GuideInfo) error {
	if len(info.BoardPNG) == 0 {
		return fmt.Errorf("no board image to embed in guide")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, guideMargin)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(guideMargin, guideMargin)
	pdf.CellFormat(guideTextWidth, guideHeader, "ChArUco Board Printing Guide", "", 1, "L", false, 0, "")

	// Parameter summary
	pdf.SetFont("Helvetica", "", 10)
	y := guideMargin + guideHeader + 2
	for _, line := range []string{
		fmt.Sprintf("Board: %dx%d squares, %gmm square, %gmm marker, dictionary %s",
			info.Board.SquaresX, info.Board.SquaresY, info.Board.SquareLengthMM,
			info.Board.MarkerLengthMM, info.Board.Dictionary),
		fmt.Sprintf("Printed size: %.1f x %.1f mm (including %gmm margin) at %d dpi",
			info.Board.OutputWidthMM, info.Board.OutputHeightMM, info.Board.MarginMM, info.Board.DPI),
		fmt.Sprintf("Run: %s  Output: %s", info.Board.RunID, info.Board.Output),
	} {
		pdf.SetXY(guideMargin, y)
		pdf.CellFormat(guideTextWidth, guideLineHeight, line, "", 1, "L", false, 0, "")
		y += guideLineHeight
	}
	y += 3

	// Instructions
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(guideMargin, y)
	pdf.CellFormat(guideTextWidth, guideLineHeight, "Printing instructions", "", 1, "L", false, 0, "")
	y += guideLineHeight + 1
	pdf.SetFont("Helvetica", "", 9)
	for _, step := range guideInstructions {
		pdf.SetXY(guideMargin, y)
		pdf.MultiCell(guideTextWidth, 4.5, step, "", "L", false)
		y = pdf.GetY() + 1
	}
	y += 3

	// Board preview, scaled to the remaining page area while keeping the
	// aspect ratio. The preview is illustrative only; the note below
	// points at the PNG for the actual print.
	previewTop := y
	previewMaxH := guidePageHeight - guideMargin - guideBoardBottom - previewTop
	previewMaxW := guideTextWidth - guideQRSize - 5
	scale := math.Min(previewMaxW/info.Board.OutputWidthMM, previewMaxH/info.Board.OutputHeightMM)
	previewW := info.Board.OutputWidthMM * scale
	previewH := info.Board.OutputHeightMM * scale

	pdf.RegisterImageOptionsReader("board", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(info.BoardPNG))
	pdf.ImageOptions("board", guideMargin, previewTop, previewW, previewH, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	pdf.SetDrawColor(150, 150, 150)
	pdf.SetLineWidth(0.2)
	pdf.Rect(guideMargin, previewTop, previewW, previewH, "D")

	// QR code with the full metadata record, placed beside the preview.
	qrData, err := json.Marshal(info.Board)
	if err != nil {
		return fmt.Errorf("marshal board metadata: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("generate metadata QR code: %w", err)
	}
	qrX := guidePageWidth - guideMargin - guideQRSize
	pdf.RegisterImageOptionsReader("meta-qr", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions("meta-qr", qrX, previewTop, guideQRSize, guideQRSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(qrX, previewTop+guideQRSize+1)
	pdf.MultiCell(guideQRSize, 3, "Scan for board parameters", "", "C", false)

	// Footer note
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(80, 80, 80)
	pdf.SetXY(guideMargin, guidePageHeight-guideMargin-guideLineHeight)
	pdf.CellFormat(guideTextWidth, guideLineHeight,
		"Print the board from the PNG file, not from this preview.", "", 0, "L", false, 0, "")

	return pdf.OutputFileAndClose(path)
}

// ReadBoardPNG loads the board PNG for embedding into the guide.
func ReadBoardPNG(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read board image: %w", err)
	}
	return data, nil
}
