package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/envirosense/actionserver"
	"github.com/envirosense/actionserver/internal/config"
	"github.com/envirosense/actionserver/internal/logging"
	"github.com/envirosense/actionserver/internal/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the action webhook server",
	Long:  `Starts the action server, exposing the dialogue engine webhook, a health check, and Prometheus metrics over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		listen, _ := cmd.Flags().GetString("listen")

		cfg, err := config.Load(configPath)
		if err != nil {
			logging.New(logging.ParseLevel("info")).Error("failed to load config", "err", err)
			os.Exit(1)
		}
		if listen != "" {
			cfg.Listen = listen
		}
		logger := logging.New(logging.ParseLevel(cfg.LogLevel))

		metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
		server, err := actionserver.New(cfg,
			actionserver.WithLogger(logger),
			actionserver.WithHooks(metrics.Hooks()),
		)
		if err != nil {
			logger.Error("failed to initialize action server", "err", err)
			os.Exit(1)
		}

		srv := &http.Server{
			Addr:    cfg.Listen,
			Handler: server.Handler(),
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting action server",
				"addr", srv.Addr,
				"backend", cfg.Backend.BaseURL,
				"actions", len(server.Actions()),
			)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			logger.Error("server error", "err", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("starting shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "err", err)
				if err := srv.Close(); err != nil {
					logger.Error("error killing server", "err", err)
				}
			}
			logger.Info("action server stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("listen", "l", "", "Listen address (overrides config)")
}
