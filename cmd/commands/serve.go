package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"swiftkit/internal/http"
	"swiftkit/internal/mt103"
	"swiftkit/internal/pain001"
	"swiftkit/internal/service"
)

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

			logger := slog.New(slog.NewTextHandler(a.out, &slog.HandlerOptions{
				Level: slog.Level(a.config.LogLevel),
			}))
			slog.SetDefault(logger)

			logger.InfoContext(ctx, "Starting application", "version", version)

			paymentService := service.NewService(pain001.NewEncoder(), mt103.Generator{}, logger, a.config.Service)
			httpServer := http.NewServer(paymentService, logger, a.config.HTTP)

			if err := httpServer.Start(ctx); err != nil {
				logger.ErrorContext(ctx, "failed to start http server", "error", err)
				return err
			}

			<-stop

			logger.InfoContext(ctx, "Shutting down...")

			shutdownCtx, cancel := context.WithTimeout(ctx, a.config.HTTP.ShutdownTimeout)
			defer cancel()

			if err := httpServer.Stop(shutdownCtx); err != nil {
				logger.ErrorContext(ctx, "Error stopping HTTP server", "error", err)
			}

			logger.InfoContext(ctx, "Application shutdown complete")

			return nil
		},
	}
}
