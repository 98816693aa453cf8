package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/faktura/invoice-creator/internal/config"
	"github.com/faktura/invoice-creator/internal/server"
)

var (
	serverAddr   string
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for building invoices.

The API provides endpoints for:
  - GET  /api/v1/defaults  - Fresh invoice with an allocated number
  - POST /api/v1/validate  - Validate an invoice
  - POST /api/v1/totals    - Compute invoice totals
  - POST /api/v1/generate  - Structured XML invoice
  - POST /api/v1/render    - PDF rendering
  - GET  /health           - Health check

Configuration comes from INVOICE_* environment variables or an optional
.env file; flags override both.

Examples:
  # Start server on the configured port
  invoice-creator serve

  # Start on a custom port in debug mode
  invoice-creator serve --address :9090 --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", "", "Server listen address (default: from config)")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 0, "HTTP read timeout (default: from config)")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 0, "HTTP write timeout (default: from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	srvConfig := &server.Config{
		Address:      cfg.HTTP.Addr(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		Debug:        cfg.HTTP.Debug || serverDebug,
		Defaults:     cfg.Defaults,
		CounterPath:  cfg.Counter.Path,
	}
	if serverAddr != "" {
		srvConfig.Address = serverAddr
	}
	if readTimeout > 0 {
		srvConfig.ReadTimeout = readTimeout
	}
	if writeTimeout > 0 {
		srvConfig.WriteTimeout = writeTimeout
	}

	srv := server.NewServer(srvConfig)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		fmt.Println("\nShutting down server...")
		os.Exit(0)
	}()

	fmt.Printf("Starting server on %s\n", srvConfig.Address)
	return srv.Run()
}
