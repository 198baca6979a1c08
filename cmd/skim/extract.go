package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/skim/internal/api"
	"github.com/jackzampolin/skim/internal/config"
	"github.com/jackzampolin/skim/internal/outline"
	"github.com/jackzampolin/skim/internal/pdf"
)

var extractWorkers int

var extractCmd = &cobra.Command{
	Use:   "extract <file.pdf>",
	Short: "Extract title and heading outline from a local PDF",
	Long: `Extract a document title and heading outline from a PDF on disk,
without a running server.

Examples:
  skim extract doc.pdf              # YAML output
  skim extract doc.pdf -o json      # JSON output
  skim extract doc.pdf --workers 2  # Limit scoring concurrency`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgMgr, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfg := cfgMgr.Get()

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: cfg.SlogLevel(),
		}))

		workers := cfg.Extract.Workers
		if cmd.Flags().Changed("workers") {
			workers = extractWorkers
		}

		document, err := pdf.Decode(args[0])
		if err != nil {
			return err
		}

		extractor := outline.New(outline.Config{Workers: workers, Logger: logger})
		result := extractor.Extract(document)

		return api.Output(result)
	},
}

func init() {
	extractCmd.Flags().IntVar(&extractWorkers, "workers", 0, "Concurrent page scoring workers (0 = NumCPU)")

	rootCmd.AddCommand(extractCmd)
}
