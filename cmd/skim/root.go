package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/skim/internal/api"
	"github.com/jackzampolin/skim/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "skim",
	Short: "Heuristic PDF title and heading outline extraction",
	Long: `Skim extracts a document title and a hierarchical heading outline
(H1-H3) from PDF files using font statistics and layout heuristics,
without any machine learning models.

Headings are detected per page by comparing each line's dominant font
size, weight, and placement against the page's body text, then grouped
into levels by clustering font sizes across the document.`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.skim/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "skim home directory (default: ~/.skim)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}
