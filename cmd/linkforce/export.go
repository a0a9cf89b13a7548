package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/linkforce/internal/export"
)

type exportOptions struct {
	outputDir string
}

func newExportCmd(flags *rootFlags) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Save the share card as a PNG image",
		Long:  `Render the share card in a headless browser and save it as <name>-card.png.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "Directory for the image (defaults to export.output_dir)")

	return cmd
}

func runExport(cmd *cobra.Command, flags *rootFlags, opts *exportOptions) error {
	app, err := openApp(cmd, flags, appOptions{})
	if err != nil {
		return err
	}
	defer app.Close()

	exporter := app.Exporter
	if opts.outputDir != "" {
		raster, err := newRasterizer(export.Engine(app.Config.Export.Engine))
		if err != nil {
			return newCommandError("export card", "selecting export engine", err, "Set export.engine to chromedp or rod.")
		}
		exporter = export.New(app.Renderer, raster, export.Config{
			OutputDir: opts.outputDir,
			Timeout:   app.Config.Export.Timeout,
			Options: export.Options{
				Width:      app.Config.Export.Width,
				Height:     app.Config.Export.Height,
				PixelRatio: app.Config.Export.PixelRatio,
				BrowserBin: app.Config.Export.BrowserBin,
			},
			Logger: app.Log,
		})
	}

	path, err := exporter.Export(cmd.Context(), app.Store.Current())
	if err != nil {
		suggestion := "Make sure Chrome or Chromium is installed, or set export.browser_bin."
		if errors.Is(err, export.ErrBusy) {
			suggestion = "Wait for the running export to finish."
		}
		return newCommandError("export card", "rendering the share card", err, suggestion)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Card saved to %s\n", path)
	return nil
}
