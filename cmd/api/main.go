// Command api runs the example service demonstrating the request validation
// adapter.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/nmoreau/go-apihandler/internal/config"
	"github.com/nmoreau/go-apihandler/internal/handler"
	"github.com/nmoreau/go-apihandler/internal/logger"
	"github.com/nmoreau/go-apihandler/internal/middleware"
	"github.com/nmoreau/go-apihandler/internal/router"
	"github.com/nmoreau/go-apihandler/internal/server"
)

// shutdownTimeout bounds how long inflight requests may take to drain.
const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger yet; stderr is all we have.
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg)

	srv := server.New(cfg, log)

	middlewares := middleware.NewMiddlewares(srv)
	handlers := handler.NewHandlers(srv)
	srv.SetupHTTPServer(router.New(middlewares, handlers))

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}
}
