package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Black-And-White-Club/darts-league/app/shared/attr"
)

const shutdownTimeout = 10 * time.Second

// Run serves the API until ctx is cancelled or the process is interrupted.
func (app *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              app.Config.HTTP.Address,
		Handler:           app.Router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.InfoContext(ctx, "HTTP server starting", attr.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	return app.WaitForShutdown(ctx, srv, errCh)
}

// WaitForShutdown blocks until a signal, context cancellation or server
// failure, then drains in-flight requests.
func (app *App) WaitForShutdown(ctx context.Context, srv *http.Server, errCh <-chan error) error {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	select {
	case sig := <-interrupt:
		app.logger.Info("Shutdown signal received", attr.String("signal", sig.String()))
	case <-ctx.Done():
		app.logger.Info("Application context cancelled")
	case err, ok := <-errCh:
		if ok && err != nil {
			app.logger.Error("HTTP server failed", attr.Error(err))
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("Server forced to shutdown", attr.Error(err))
		return err
	}
	app.logger.Info("HTTP server stopped")
	return nil
}
