package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/nmoreau/go-apihandler/internal/config"
)

func newTestServer() *Server {
	logger := zerolog.Nop()
	return New(&config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:         "0",
			ReadTimeout:  5,
			WriteTimeout: 5,
			IdleTimeout:  30,
		},
		Logging: config.DefaultLoggingConfig(),
	}, &logger)
}

func TestStartWithoutSetupFails(t *testing.T) {
	s := newTestServer()

	err := s.Start()
	assert.EqualError(t, err, "HTTP server not initialized")
}

func TestShutdownWithoutSetupIsNoop(t *testing.T) {
	s := newTestServer()

	assert.NoError(t, s.Shutdown(context.Background()))
}

func TestSetupHTTPServerAppliesConfig(t *testing.T) {
	s := newTestServer()
	s.SetupHTTPServer(http.NewServeMux())

	assert.Equal(t, ":0", s.httpServer.Addr)
	assert.Equal(t, 5*time.Second, s.httpServer.ReadTimeout)
	assert.Equal(t, 5*time.Second, s.httpServer.WriteTimeout)
	assert.Equal(t, 30*time.Second, s.httpServer.IdleTimeout)
}
