package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/skim/internal/server/endpoints"
)

var serverURL string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Commands that call the running server",
	Long: `API commands call the running skim server via HTTP.

These commands require a running server (skim serve).
Use --server to specify a custom server URL.

Examples:
  skim api health                       # Check server health
  skim api extract-headings doc.pdf     # Extract title and outline`,
}

// getServerURL returns the server URL at runtime (after flag parsing).
func getServerURL() string {
	return serverURL
}

func init() {
	// Add --server flag to api command (persistent so all subcommands inherit it)
	apiCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://localhost:8080", "Server URL",
	)

	apiCmd.AddCommand((&endpoints.HealthEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.ExtractEndpoint{}).Command(getServerURL))

	rootCmd.AddCommand(apiCmd)
}
