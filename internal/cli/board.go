package cli

import (
	"github.com/spf13/cobra"

	"github.com/Suke-go/technetope/internal/aruco"
	"github.com/Suke-go/technetope/internal/config"
	"github.com/Suke-go/technetope/internal/export"
	"github.com/Suke-go/technetope/internal/layout"
	"github.com/Suke-go/technetope/internal/render"
)

func newBoardCmd(configPath *string) *cobra.Command {
	d := config.Default()

	var (
		output       string
		metadataPath string
		dxfPath      string
		dictionary   string
		dpi          int
		squaresX     int
		squaresY     int
		squareLen    float64
		markerLen    float64
		margin       float64
	)

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Generate a ChArUco calibration board PNG",
		Long:  `Generate a ChArUco board (chessboard with embedded fiducial markers) as a PNG with embedded print resolution. The board's physical dimensions follow the interior-corner convention: an NxM board spans (N-1)x(M-1) square lengths plus the margin.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			dpi = resolveInt(cmd, "dpi", dpi, cfg.DPI)
			dictionary = resolveString(cmd, "dictionary", dictionary, cfg.Dictionary)
			board := layout.BoardSpec{
				SquaresX:       resolveInt(cmd, "squares-x", squaresX, cfg.Board.SquaresX),
				SquaresY:       resolveInt(cmd, "squares-y", squaresY, cfg.Board.SquaresY),
				SquareLengthMM: resolveFloat(cmd, "square-length-mm", squareLen, cfg.Board.SquareLengthMM),
				MarkerLengthMM: resolveFloat(cmd, "marker-length-mm", markerLen, cfg.Board.MarkerLengthMM),
				MarginMM:       resolveFloat(cmd, "margin-mm", margin, cfg.Board.MarginMM),
			}

			dict, err := aruco.Lookup(dictionary)
			if err != nil {
				return err
			}
			l, err := layout.PlanBoard(board, dpi)
			if err != nil {
				return err
			}

			logger.Infof("Board size: %.1fmm x %.1fmm", board.WidthMM(), board.HeightMM())
			logger.Infof("Output: %dpx x %dpx @ %d dpi", l.PageWidthPx, l.PageHeightPx, dpi)

			img, err := render.Board(l, board, dict)
			if err != nil {
				return err
			}
			if err := export.WritePNG(output, img, dpi); err != nil {
				return err
			}
			logger.Infof("Board saved to %s", output)

			if metadataPath != "" {
				meta := export.NewBoardMetadata(output, dictionary, board, l)
				if err := export.WriteMetadata(metadataPath, meta); err != nil {
					return err
				}
				logger.Infof("Metadata saved to %s", metadataPath)
			}
			if dxfPath != "" {
				if err := export.WriteBoardOutline(dxfPath, board); err != nil {
					return err
				}
				logger.Infof("Mounting plate outline saved to %s", dxfPath)
			}

			logger.Info("Print at 100% scale and verify square and marker sizes with a ruler")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "charuco_board_5x7_45mm.png", "output PNG path")
	cmd.Flags().IntVar(&dpi, "dpi", d.DPI, "output resolution in dots per inch")
	cmd.Flags().IntVar(&squaresX, "squares-x", d.Board.SquaresX, "chessboard squares across")
	cmd.Flags().IntVar(&squaresY, "squares-y", d.Board.SquaresY, "chessboard squares down")
	cmd.Flags().Float64Var(&squareLen, "square-length-mm", d.Board.SquareLengthMM, "chessboard square edge length in mm")
	cmd.Flags().Float64Var(&markerLen, "marker-length-mm", d.Board.MarkerLengthMM, "marker edge length in mm")
	cmd.Flags().Float64Var(&margin, "margin-mm", d.Board.MarginMM, "white margin around the board in mm")
	cmd.Flags().StringVar(&dictionary, "dictionary", d.Dictionary, "fiducial dictionary name")
	cmd.Flags().StringVar(&metadataPath, "metadata", "", "write board metadata JSON to this path")
	cmd.Flags().StringVar(&dxfPath, "dxf", "", "write a DXF mounting plate outline to this path")

	return cmd
}
