package cli

import (
	"github.com/spf13/cobra"

	"github.com/Suke-go/technetope/internal/aruco"
	"github.com/Suke-go/technetope/internal/config"
	"github.com/Suke-go/technetope/internal/export"
	"github.com/Suke-go/technetope/internal/layout"
	"github.com/Suke-go/technetope/internal/render"
)

func newGuideCmd(configPath *string) *cobra.Command {
	d := config.Default()

	var (
		output      string
		boardImage  string
		boardOutput string
		dictionary  string
		dpi         int
		squaresX    int
		squaresY    int
		squareLen   float64
		markerLen   float64
		margin      float64
	)

	cmd := &cobra.Command{
		Use:   "guide",
		Short: "Generate the board printing guide PDF",
		Long:  `Generate a PDF that bundles the ChArUco board with step-by-step printing instructions and a QR code carrying the board parameters. The board is rendered from the given parameters, or loaded from an existing PNG with --board-image.`,
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

			l, err := layout.PlanBoard(board, dpi)
			if err != nil {
				return err
			}

			var boardPNG []byte
			imageRef := boardImage
			if boardImage != "" {
				boardPNG, err = export.ReadBoardPNG(boardImage)
				if err != nil {
					return err
				}
				logger.Infof("Embedding existing board image %s", boardImage)
			} else {
				dict, err := aruco.Lookup(dictionary)
				if err != nil {
					return err
				}
				img, err := render.Board(l, board, dict)
				if err != nil {
					return err
				}
				boardPNG, err = export.EncodePNG(img, dpi)
				if err != nil {
					return err
				}
				imageRef = boardOutput
				if boardOutput != "" {
					if err := export.WritePNG(boardOutput, img, dpi); err != nil {
						return err
					}
					logger.Infof("Board saved to %s", boardOutput)
				}
			}

			info := export.GuideInfo{
				Board:    export.NewBoardMetadata(imageRef, dictionary, board, l),
				BoardPNG: boardPNG,
			}
			if err := export.WriteGuide(output, info); err != nil {
				return err
			}
			logger.Infof("Printing guide saved to %s", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "printing_guide.pdf", "output PDF path")
	cmd.Flags().StringVar(&boardImage, "board-image", "", "embed an existing board PNG instead of rendering one")
	cmd.Flags().StringVar(&boardOutput, "board-output", "", "also save the rendered board PNG to this path")
	cmd.Flags().IntVar(&dpi, "dpi", d.DPI, "board resolution in dots per inch")
	cmd.Flags().IntVar(&squaresX, "squares-x", d.Board.SquaresX, "chessboard squares across")
	cmd.Flags().IntVar(&squaresY, "squares-y", d.Board.SquaresY, "chessboard squares down")
	cmd.Flags().Float64Var(&squareLen, "square-length-mm", d.Board.SquareLengthMM, "chessboard square edge length in mm")
	cmd.Flags().Float64Var(&markerLen, "marker-length-mm", d.Board.MarkerLengthMM, "marker edge length in mm")
	cmd.Flags().Float64Var(&margin, "margin-mm", d.Board.MarginMM, "white margin around the board in mm")
	cmd.Flags().StringVar(&dictionary, "dictionary", d.Dictionary, "fiducial dictionary name")

	return cmd
}
