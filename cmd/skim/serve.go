package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/skim/internal/config"
	"github.com/jackzampolin/skim/internal/home"
	"github.com/jackzampolin/skim/internal/server"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the skim server",
	Long: `Start the skim HTTP server.

The server provides:
  /                     - API info
  /api/health           - Health check
  /api/extract-headings - PDF title and outline extraction (multipart upload)

Examples:
  skim serve                    # Start on default port 8080
  skim serve --port 3000        # Start on custom port
  skim serve --host 0.0.0.0     # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfgMgr, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfgMgr.WatchConfig()
		cfg := cfgMgr.Get()

		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: cfg.SlogLevel(),
		}))

		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		host := serveHost
		if !cmd.Flags().Changed("host") && cfg.Server.Host != "" {
			host = cfg.Server.Host
		}
		port := servePort
		if !cmd.Flags().Changed("port") && cfg.Server.Port != "" {
			port = cfg.Server.Port
		}

		srv, err := server.New(server.Config{
			Host:          host,
			Port:          port,
			Home:          h,
			ConfigManager: cfgMgr,
			Logger:        logger,
		})
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Host to bind to")
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "Port to listen on")

	rootCmd.AddCommand(serveCmd)
}
