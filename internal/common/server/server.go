package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"userapi/internal/common/constants"
	"userapi/internal/common/logger"
)

// New builds the HTTP server with the shared timeout policy applied. Ports
// come in as strings because they are read straight from the environment.
func New(port string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: constants.ServerReadHeaderTimeout,
		ReadTimeout:       constants.ServerReadTimeout,
		WriteTimeout:      constants.ServerWriteTimeout,
		IdleTimeout:       constants.ServerIdleTimeout,
	}
}

// ShutdownHook runs during the drain period, before the listener is closed.
// Hooks release resources the handlers depend on (caches, pools).
type ShutdownHook func(ctx context.Context) error

// StartWithGracefulShutdown serves until SIGINT or SIGTERM, then drains:
// keep-alives off, hooks run with the drain deadline, listener shut down
// with the overall shutdown deadline. hooks may be nil.
func StartWithGracefulShutdown(
	server *http.Server,
	log *logger.Logger,
	serviceName string,
	hooks []ShutdownHook,
) {
	go func() {
		log.Infof("%s service listening on %s", serviceName, server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start %s service: %v", serviceName, err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infof("shutting down %s service...", serviceName)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer shutdownCancel()

	drainCtx, drainCancel := context.WithTimeout(shutdownCtx, constants.DrainTimeout)
	defer drainCancel()

	server.SetKeepAlivesEnabled(false)

	for i, hook := range hooks {
		if err := hook(drainCtx); err != nil {
			log.Errorf("%s service: shutdown hook %d failed: %v", serviceName, i, err)
		}
	}

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("%s service forced to shutdown: %v", serviceName, err)
		return
	}

	log.Infof("%s service stopped gracefully", serviceName)
}
