package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/atharva-patil-create/discharge-summary-generator/internal/export"
	"github.com/atharva-patil-create/discharge-summary-generator/internal/extract"
	"github.com/atharva-patil-create/discharge-summary-generator/internal/pipeline"
	"github.com/atharva-patil-create/discharge-summary-generator/internal/render"
)

func extractCmd() *cobra.Command {
	var (
		inputPath string
		endpoint  string
		outDir    string
		fields    bool
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Submit notes to the extraction service and export the formatted result",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
			slog.SetDefault(logger)

			notes, err := os.ReadFile(inputPath)
			if err != nil {
				return fmt.Errorf("read notes: %w", err)
			}

			rasterizer, err := render.NewRasterizer(render.DefaultCaptureConfig(), logger)
			if err != nil {
				return err
			}
			client := extract.NewClient(extract.Config{BaseURL: endpoint, Timeout: timeout}, logger)
			proc := pipeline.NewProcessor(logger, client, export.NewService(rasterizer, logger))

			res, err := proc.Run(cmd.Context(), string(notes), outDir, fields)
			if err != nil {
				return err
			}

			label := "fresh"
			if res.Exchange.CacheHit {
				label = "cached"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "response %s in %d ms -> %s\n",
				label, res.Exchange.Elapsed.Milliseconds(), res.PDFPath)
			if res.XLSXPath != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "fields -> %s\n", res.XLSXPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "file containing the medical notes")
	cmd.Flags().StringVar(&endpoint, "endpoint", "http://localhost:8000", "base URL of the extraction service")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory for exported artifacts")
	cmd.Flags().BoolVar(&fields, "fields", false, "also export recovered fields as an XLSX workbook")
	cmd.Flags().DurationVar(&timeout, "timeout", 45*time.Second, "request timeout")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
