package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Suke-go/technetope/internal/aruco"
	"github.com/Suke-go/technetope/internal/config"
	"github.com/Suke-go/technetope/internal/export"
	"github.com/Suke-go/technetope/internal/layout"
	"github.com/Suke-go/technetope/internal/render"
)

func newMarkersCmd(configPath *string) *cobra.Command {
	d := config.Default()

	var (
		output        string
		metadataPath  string
		inventoryPath string
		individualDir string
		dictionary    string
		dpi           int
		columns       int
		rows          int
		startID       int
		markerSize    float64
		border        float64
		pageWidth     float64
		pageHeight    float64
		noLabels      bool
	)

	cmd := &cobra.Command{
		Use:   "markers",
		Short: "Generate a printable sheet of fiducial markers",
		Long:  `Lay out a grid of fiducial markers on a fixed page and render it as a PNG with embedded print resolution. Markers are numbered row-major from --start-id; the sheet fails rather than shrinking markers when the grid does not fit the page.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			dpi = resolveInt(cmd, "dpi", dpi, cfg.DPI)
			dictionary = resolveString(cmd, "dictionary", dictionary, cfg.Dictionary)
			page := layout.PageSpec{
				WidthMM:  resolveFloat(cmd, "page-width-mm", pageWidth, cfg.Markers.PageWidthMM),
				HeightMM: resolveFloat(cmd, "page-height-mm", pageHeight, cfg.Markers.PageHeightMM),
			}
			cell := layout.CellSpec{
				PayloadMM: resolveFloat(cmd, "marker-size-mm", markerSize, cfg.Markers.MarkerSizeMM),
				BorderMM:  resolveFloat(cmd, "border-mm", border, cfg.Markers.BorderMM),
			}
			grid := layout.GridSpec{
				Columns: resolveInt(cmd, "columns", columns, cfg.Markers.Columns),
				Rows:    resolveInt(cmd, "rows", rows, cfg.Markers.Rows),
				StartID: startID,
			}

			dict, err := aruco.Lookup(dictionary)
			if err != nil {
				return err
			}
			l, err := layout.PlanGrid(page, cell, grid, dpi)
			if err != nil {
				return err
			}

			logger.Infof("Sheet: %d markers (%dx%d), ids %d..%d",
				len(l.Placements), grid.Columns, grid.Rows, grid.StartID, grid.StartID+len(l.Placements)-1)
			logger.Debugf("Canvas %dpx x %dpx, pitch %dpx", l.PageWidthPx, l.PageHeightPx, l.PitchPx)

			img, err := render.Sheet(l, dict, render.SheetOptions{Labels: !noLabels})
			if err != nil {
				return err
			}
			if err := export.WritePNG(output, img, dpi); err != nil {
				return err
			}
			logger.Infof("Marker sheet saved to %s", output)

			if individualDir != "" {
				if err := writeIndividualMarkers(individualDir, dict, l, dpi); err != nil {
					return err
				}
				logger.Infof("Individual markers saved to %s", individualDir)
			}

			meta := export.NewSheetMetadata(output, dictionary, page, cell, grid, l)
			if metadataPath != "" {
				if err := export.WriteMetadata(metadataPath, meta); err != nil {
					return err
				}
				logger.Infof("Metadata saved to %s", metadataPath)
			}
			if inventoryPath != "" {
				if err := export.WriteInventory(inventoryPath, meta); err != nil {
					return err
				}
				logger.Infof("Inventory workbook saved to %s", inventoryPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "markers_a4_45mm.png", "output PNG path")
	cmd.Flags().IntVar(&dpi, "dpi", d.DPI, "page resolution in dots per inch")
	cmd.Flags().Float64Var(&markerSize, "marker-size-mm", d.Markers.MarkerSizeMM, "marker edge length in mm")
	cmd.Flags().Float64Var(&border, "border-mm", d.Markers.BorderMM, "white margin around each marker in mm")
	cmd.Flags().Float64Var(&pageWidth, "page-width-mm", d.Markers.PageWidthMM, "page width in mm")
	cmd.Flags().Float64Var(&pageHeight, "page-height-mm", d.Markers.PageHeightMM, "page height in mm")
	cmd.Flags().IntVar(&columns, "columns", d.Markers.Columns, "markers across")
	cmd.Flags().IntVar(&rows, "rows", d.Markers.Rows, "markers down")
	cmd.Flags().IntVar(&startID, "start-id", 0, "identifier of the first marker")
	cmd.Flags().StringVar(&dictionary, "dictionary", d.Dictionary, "fiducial dictionary name")
	cmd.Flags().StringVar(&individualDir, "individual-dir", "", "also save each marker as its own PNG in this directory")
	cmd.Flags().StringVar(&metadataPath, "metadata", "", "write sheet metadata JSON to this path")
	cmd.Flags().StringVar(&inventoryPath, "inventory", "", "write a marker inventory workbook (xlsx) to this path")
	cmd.Flags().BoolVar(&noLabels, "no-labels", false, "omit the ID caption under each marker")

	return cmd
}

// writeIndividualMarkers saves one PNG per placement, named by marker id.
func writeIndividualMarkers(dir string, dict *aruco.Dictionary, l *layout.Layout, dpi int) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, p := range l.Placements {
		img, err := dict.Render(p.ID, p.SizePx)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, fmt.Sprintf("marker_%03d.png", p.ID))
		if err := export.WritePNG(path, img, dpi); err != nil {
			return err
		}
	}
	return nil
}
